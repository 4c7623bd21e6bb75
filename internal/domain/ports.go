package domain

import "context"

// ApprovalStore holds moderation state keyed by review id. Writes persist
// synchronously; implementations log and swallow write failures so the
// in-memory map stays authoritative for the process lifetime.
type ApprovalStore interface {
	Get(id string) bool
	Set(id string, approved bool)
	Toggle(id string) bool
	ApprovedIDs() map[string]struct{}
	Clear()
	Count() int
}

// HostawayFeed produces raw property-management reviews. Implementations
// recover from upstream failures themselves (sample-data fallback), so a
// returned error means the context was canceled.
type HostawayFeed interface {
	Reviews(ctx context.Context) ([]HostawayReview, error)
}

// PlacesFeed produces raw map/places reviews for one property.
type PlacesFeed interface {
	Reviews(ctx context.Context, propertyName, address string) ([]GoogleReview, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models & queries

type SortField string

const (
	SortSubmittedAt   SortField = "submittedAt"
	SortOverallRating SortField = "overallRating"
	SortPropertyName  SortField = "propertyName"
	SortReviewerName  SortField = "reviewerName"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ReviewFilters are conjunctive; zero values mean "no constraint".
type ReviewFilters struct {
	Source       string // "hostaway", "google", "all" or empty
	MinRating    *float64
	MaxRating    *float64
	Category     string
	Channel      string
	StartDate    string
	EndDate      string
	PropertyName string
	Status       string
	IsApproved   *bool
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ReviewPage struct {
	Data       []NormalizedReview `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type HealthStatus string

const (
	StatusGood     HealthStatus = "good"
	StatusWarning  HealthStatus = "warning"
	StatusCritical HealthStatus = "critical"
)

type SourceCounts struct {
	Hostaway int `json:"hostaway"`
	Google   int `json:"google"`
}

type PropertyStats struct {
	PropertyName  string       `json:"propertyName"`
	Count         int          `json:"count"`
	AverageRating float64      `json:"averageRating"`
	Trend         Trend        `json:"trend"`
	TrendValue    float64      `json:"trendValue"`
	TopIssue      string       `json:"topIssue"`
	Status        HealthStatus `json:"status"`
	ApprovalRatio int          `json:"approvalRatio"`
}

type CategoryAverage struct {
	Category      string  `json:"category"`
	AverageRating float64 `json:"averageRating"`
}

type DashboardStats struct {
	TotalReviews      int               `json:"totalReviews"`
	AverageRating     float64           `json:"averageRating"`
	ApprovedReviews   int               `json:"approvedReviews"`
	PendingReviews    int               `json:"pendingReviews"`
	ReviewsBySource   SourceCounts      `json:"reviewsBySource"`
	ReviewsByProperty []PropertyStats   `json:"reviewsByProperty"`
	CategoryAverages  []CategoryAverage `json:"categoryAverages"`
}
