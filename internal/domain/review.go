package domain

// Source identifies which upstream feed a review came from.
type Source string

const (
	SourceHostaway Source = "hostaway"
	SourceGoogle   Source = "google"
)

// CategoryRating is a per-category score on the source's native scale.
type CategoryRating struct {
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}

// NormalizedReview is the canonical review shape both feeds normalize into.
// Ratings are on a 1-10 scale; OverallRating is nil when the source supplied
// neither a rating nor categories to derive one from. IsApproved is the only
// mutable field; its authoritative value lives in the ApprovalStore.
type NormalizedReview struct {
	ID            string           `json:"id"`
	Source        Source           `json:"source"`
	Type          string           `json:"type"`
	Status        string           `json:"status"`
	OverallRating *float64         `json:"overallRating"`
	ReviewText    string           `json:"reviewText"`
	Categories    []CategoryRating `json:"categories"`
	SubmittedAt   string           `json:"submittedAt"`
	ReviewerName  string           `json:"reviewerName"`
	PropertyName  string           `json:"propertyName"`
	Channel       string           `json:"channel"`
	IsApproved    bool             `json:"isApproved"`
	CreatedAt     string           `json:"createdAt"`
}

// HostawayReview is a raw record from the property-management feed.
type HostawayReview struct {
	ID             int64                    `json:"id"`
	Type           string                   `json:"type"`
	Status         string                   `json:"status"`
	Rating         *float64                 `json:"rating"`
	PublicReview   string                   `json:"publicReview"`
	ReviewCategory []HostawayCategoryRating `json:"reviewCategory"`
	SubmittedAt    string                   `json:"submittedAt"`
	GuestName      string                   `json:"guestName"`
	ListingName    string                   `json:"listingName"`
}

type HostawayCategoryRating struct {
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}

// GoogleReview is a raw record from the Places review feed. Rating is on the
// native 1-5 scale; Time is Unix epoch seconds.
type GoogleReview struct {
	AuthorName string  `json:"author_name"`
	Language   string  `json:"language,omitempty"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}
