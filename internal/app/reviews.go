package app

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"flex_reviews/internal/domain"
)

// ReviewService owns the in-memory review collection. All mutating and
// reading operations serialize on one mutex; toggleApproval is a
// read-modify-write that must be atomic across concurrent requests.
type ReviewService struct {
	mu        sync.Mutex
	reviews   map[string]domain.NormalizedReview
	order     []string // insertion order of ids, keeps All() deterministic
	approvals domain.ApprovalStore
}

func NewReviewService(approvals domain.ApprovalStore) *ReviewService {
	return &ReviewService{
		reviews:   make(map[string]domain.NormalizedReview),
		approvals: approvals,
	}
}

// Add upserts a review keyed by id. The persisted approval state always wins
// over whatever the normalizer set, so re-ingestion is idempotent.
func (s *ReviewService) Add(review domain.NormalizedReview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(review)
}

func (s *ReviewService) add(review domain.NormalizedReview) {
	review.IsApproved = s.approvals.Get(review.ID)
	if _, seen := s.reviews[review.ID]; !seen {
		s.order = append(s.order, review.ID)
	}
	s.reviews[review.ID] = review
}

func (s *ReviewService) AddAll(reviews []domain.NormalizedReview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range reviews {
		s.add(r)
	}
}

func (s *ReviewService) Get(id string) (domain.NormalizedReview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	return r, ok
}

// All returns the stored reviews in insertion order.
func (s *ReviewService) All() []domain.NormalizedReview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allLocked()
}

func (s *ReviewService) allLocked() []domain.NormalizedReview {
	out := make([]domain.NormalizedReview, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.reviews[id])
	}
	return out
}

// Filter applies the given criteria conjunctively. Reviews without an
// overall rating never match a rating bound.
func (s *ReviewService) Filter(f domain.ReviewFilters) []domain.NormalizedReview {
	all := s.All()
	out := make([]domain.NormalizedReview, 0, len(all))
	for _, r := range all {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.NormalizedReview, f domain.ReviewFilters) bool {
	if f.Source != "" && f.Source != "all" && string(r.Source) != f.Source {
		return false
	}
	if f.MinRating != nil && (r.OverallRating == nil || *r.OverallRating < *f.MinRating) {
		return false
	}
	if f.MaxRating != nil && (r.OverallRating == nil || *r.OverallRating > *f.MaxRating) {
		return false
	}
	if f.Category != "" {
		found := false
		for _, c := range r.Categories {
			if strings.EqualFold(c.Category, f.Category) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Channel != "" && !strings.EqualFold(r.Channel, f.Channel) {
		return false
	}
	if f.StartDate != "" && parseWhen(r.SubmittedAt).Before(parseWhen(f.StartDate)) {
		return false
	}
	if f.EndDate != "" && parseWhen(r.SubmittedAt).After(parseWhen(f.EndDate)) {
		return false
	}
	if f.PropertyName != "" && !strings.Contains(strings.ToLower(r.PropertyName), strings.ToLower(f.PropertyName)) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(r.Status, f.Status) {
		return false
	}
	if f.IsApproved != nil && r.IsApproved != *f.IsApproved {
		return false
	}
	return true
}

// Sort returns a new ordered slice; the input is not mutated. desc negates
// the asc comparator, so ties keep one consistent relative order either way.
func (s *ReviewService) Sort(reviews []domain.NormalizedReview, field domain.SortField, order domain.SortOrder) []domain.NormalizedReview {
	out := make([]domain.NormalizedReview, len(reviews))
	copy(out, reviews)

	coll := collate.New(language.English)
	cmp := func(a, b domain.NormalizedReview) int {
		switch field {
		case domain.SortOverallRating:
			av, bv := 0.0, 0.0
			if a.OverallRating != nil {
				av = *a.OverallRating
			}
			if b.OverallRating != nil {
				bv = *b.OverallRating
			}
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		case domain.SortPropertyName:
			return coll.CompareString(a.PropertyName, b.PropertyName)
		case domain.SortReviewerName:
			return coll.CompareString(a.ReviewerName, b.ReviewerName)
		default: // submittedAt
			at, bt := parseWhen(a.SubmittedAt), parseWhen(b.SubmittedAt)
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if order == domain.SortDesc {
			c = -c
		}
		return c < 0
	})
	return out
}

// Paginate slices a 1-indexed page out of reviews. Out-of-range pages yield
// an empty data slice with the pagination metadata still filled in.
func (s *ReviewService) Paginate(reviews []domain.NormalizedReview, page, limit int) domain.ReviewPage {
	start := (page - 1) * limit
	end := start + limit

	data := []domain.NormalizedReview{}
	if start >= 0 && start < len(reviews) {
		if end > len(reviews) {
			end = len(reviews)
		}
		data = append(data, reviews[start:end]...)
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (len(reviews) + limit - 1) / limit
	}
	return domain.ReviewPage{
		Data: data,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      len(reviews),
			TotalPages: totalPages,
		},
	}
}

// ToggleApproval flips a review's moderation flag and persists it through
// the approval store before returning. Unknown ids are a no-op.
func (s *ReviewService) ToggleApproval(id string) (domain.NormalizedReview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[id]
	if !ok {
		return domain.NormalizedReview{}, false
	}
	r.IsApproved = !r.IsApproved
	s.approvals.Set(id, r.IsApproved)
	s.reviews[id] = r
	return r, true
}

func (s *ReviewService) ApprovedReviews() []domain.NormalizedReview {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.NormalizedReview{}
	for _, id := range s.order {
		if r := s.reviews[id]; r.IsApproved {
			out = append(out, r)
		}
	}
	return out
}

// Clear drops the in-memory collection. Persisted approval state is kept so
// re-ingested reviews come back with their moderation flags.
func (s *ReviewService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = make(map[string]domain.NormalizedReview)
	s.order = nil
}
