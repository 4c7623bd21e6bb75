package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/domain"
)

// IngestionService pulls raw batches from the two feeds, normalizes them and
// loads the repository. Feed adapters handle their own upstream failures by
// serving the built-in sample batch, so ingestion only fails on a canceled
// context.
type IngestionService struct {
	hostaway domain.HostawayFeed
	places   domain.PlacesFeed
	reviews  *ReviewService
}

func NewIngestionService(h domain.HostawayFeed, p domain.PlacesFeed, r *ReviewService) *IngestionService {
	return &IngestionService{hostaway: h, places: p, reviews: r}
}

// IngestHostaway fetches the property-management batch and stores it.
// Returns the normalized reviews that were ingested.
func (s *IngestionService) IngestHostaway(ctx context.Context) ([]domain.NormalizedReview, error) {
	raw, err := s.hostaway.Reviews(ctx)
	if err != nil {
		return nil, err
	}

	normalized := make([]domain.NormalizedReview, 0, len(raw))
	for _, r := range raw {
		normalized = append(normalized, NormalizeHostaway(r))
	}
	s.reviews.AddAll(normalized)

	log.Info().Int("count", len(normalized)).Msg("hostaway batch ingested")
	return normalized, nil
}

// IngestGoogle fetches the places batch for one property and stores it.
func (s *IngestionService) IngestGoogle(ctx context.Context, propertyName, address string) ([]domain.NormalizedReview, error) {
	raw, err := s.places.Reviews(ctx, propertyName, address)
	if err != nil {
		return nil, err
	}

	normalized := make([]domain.NormalizedReview, 0, len(raw))
	for _, r := range raw {
		normalized = append(normalized, NormalizeGoogle(r, propertyName))
	}
	s.reviews.AddAll(normalized)

	log.Info().Str("property", propertyName).Int("count", len(normalized)).Msg("google batch ingested")
	return normalized, nil
}
