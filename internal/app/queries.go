package app

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"flex_reviews/internal/domain"
)

// QueryService serves the read paths. The approved-reviews listing, the
// public widget's hot path, goes through the cache; dashboard stats are
// always recomputed. Cache keys carry a generation counter bumped on every
// mutation, so a stale entry can never be served regardless of which filter
// variants were cached.
type QueryService struct {
	reviews  *ReviewService
	cache    domain.Cache
	cacheTTL time.Duration
	gen      atomic.Uint64
}

func NewQueryService(r *ReviewService, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{reviews: r, cache: c, cacheTTL: ttl}
}

// Invalidate marks all cached listings stale. Call after any ingestion or
// approval mutation.
func (s *QueryService) Invalidate() {
	s.gen.Add(1)
}

// Query filters, sorts and paginates the live collection.
func (s *QueryService) Query(f domain.ReviewFilters, sortBy domain.SortField, order domain.SortOrder, page, limit int) domain.ReviewPage {
	filtered := s.reviews.Filter(f)
	sorted := s.reviews.Sort(filtered, sortBy, order)
	return s.reviews.Paginate(sorted, page, limit)
}

// Approved returns approved reviews, optionally narrowed by a
// case-insensitive property-name substring, newest first.
func (s *QueryService) Approved(ctx context.Context, propertyName string) []domain.NormalizedReview {
	key := fmt.Sprintf("approved:%d:%s", s.gen.Load(), strings.ToLower(propertyName))
	if s.cache != nil {
		var cached []domain.NormalizedReview
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached
		}
	}

	approved := s.reviews.ApprovedReviews()
	if propertyName != "" {
		needle := strings.ToLower(propertyName)
		kept := approved[:0]
		for _, r := range approved {
			if strings.Contains(strings.ToLower(r.PropertyName), needle) {
				kept = append(kept, r)
			}
		}
		approved = kept
	}
	out := s.reviews.Sort(approved, domain.SortSubmittedAt, domain.SortDesc)

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out
}

// ToggleApproval flips moderation state and marks cached listings stale.
// The approval store write completes before this returns.
func (s *QueryService) ToggleApproval(id string) (domain.NormalizedReview, bool) {
	r, ok := s.reviews.ToggleApproval(id)
	if ok {
		s.Invalidate()
	}
	return r, ok
}

// Stats recomputes the dashboard from scratch on every call.
func (s *QueryService) Stats() domain.DashboardStats {
	return s.reviews.DashboardStats()
}
