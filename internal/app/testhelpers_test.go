package app_test

import (
	"time"

	"flex_reviews/internal/domain"
)

// fakeStore is an in-memory ApprovalStore for unit tests.
type fakeStore struct {
	m map[string]bool
}

func newFakeStore() *fakeStore { return &fakeStore{m: map[string]bool{}} }

func (f *fakeStore) Get(id string) bool { return f.m[id] }
func (f *fakeStore) Set(id string, approved bool) {
	f.m[id] = approved
}
func (f *fakeStore) Toggle(id string) bool {
	f.m[id] = !f.m[id]
	return f.m[id]
}
func (f *fakeStore) ApprovedIDs() map[string]struct{} {
	out := map[string]struct{}{}
	for id, ok := range f.m {
		if ok {
			out[id] = struct{}{}
		}
	}
	return out
}
func (f *fakeStore) Clear() { f.m = map[string]bool{} }
func (f *fakeStore) Count() int {
	n := 0
	for _, ok := range f.m {
		if ok {
			n++
		}
	}
	return n
}

func pfloat(f float64) *float64 { return &f }
func pbool(b bool) *bool        { return &b }

// review builds a test review; rating nil means "no overall rating".
func review(id, property string, rating *float64, submittedAt string) domain.NormalizedReview {
	return domain.NormalizedReview{
		ID:            id,
		Source:        domain.SourceHostaway,
		Type:          "guest-to-host",
		Status:        "published",
		OverallRating: rating,
		ReviewText:    "fine stay",
		SubmittedAt:   submittedAt,
		ReviewerName:  "Guest " + id,
		PropertyName:  property,
		Channel:       "Hostaway",
	}
}

func daysAgo(n int) string {
	return time.Now().UTC().Add(-time.Duration(n) * 24 * time.Hour).Format(time.RFC3339)
}
