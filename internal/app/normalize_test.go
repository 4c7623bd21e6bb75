package app_test

import (
	"testing"
	"time"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

func TestNormalizeHostaway_VerbatimRating(t *testing.T) {
	got := app.NormalizeHostaway(domain.HostawayReview{
		ID:     7454,
		Type:   "guest-to-host",
		Status: "published",
		Rating: pfloat(9),
		ReviewCategory: []domain.HostawayCategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "value", Rating: 8},
		},
		SubmittedAt: "2023-11-15 14:30:22",
		GuestName:   "Emma Thompson",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
	})

	if got.ID != "hostaway-7454" {
		t.Fatalf("id: got %q", got.ID)
	}
	if got.Source != domain.SourceHostaway {
		t.Fatalf("source: got %q", got.Source)
	}
	if got.OverallRating == nil || *got.OverallRating != 9 {
		t.Fatalf("rating must be used verbatim, got %v", got.OverallRating)
	}
	if len(got.Categories) != 2 || got.Categories[0].Category != "cleanliness" || got.Categories[1].Rating != 8 {
		t.Fatalf("categories must be copied verbatim, got %+v", got.Categories)
	}
	if got.SubmittedAt != "2023-11-15 14:30:22" {
		t.Fatalf("submittedAt must pass through verbatim, got %q", got.SubmittedAt)
	}
	if got.Channel != "Hostaway" {
		t.Fatalf("channel: got %q", got.Channel)
	}
	if got.IsApproved {
		t.Fatalf("new reviews start unapproved")
	}
}

func TestNormalizeHostaway_DerivedRating(t *testing.T) {
	got := app.NormalizeHostaway(domain.HostawayReview{
		ID: 7453,
		ReviewCategory: []domain.HostawayCategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 8},
		},
	})
	if got.OverallRating == nil || *got.OverallRating != 9.0 {
		t.Fatalf("derived rating: got %v, want 9.0", got.OverallRating)
	}
}

func TestNormalizeHostaway_NoRatingNoCategories(t *testing.T) {
	got := app.NormalizeHostaway(domain.HostawayReview{ID: 1})
	if got.OverallRating != nil {
		t.Fatalf("expected absent rating, got %v", *got.OverallRating)
	}
}

func TestNormalizeHostaway_UnknownTypeChannel(t *testing.T) {
	if got := app.NormalizeHostaway(domain.HostawayReview{ID: 2, Type: "system-note"}); got.Channel != "Unknown" {
		t.Fatalf("channel for unknown type: got %q, want Unknown", got.Channel)
	}
	if got := app.NormalizeHostaway(domain.HostawayReview{ID: 3, Type: "host-to-guest"}); got.Channel != "Hostaway" {
		t.Fatalf("channel for host-to-guest: got %q, want Hostaway", got.Channel)
	}
}

func TestNormalizeGoogle_RatingScale(t *testing.T) {
	five := app.NormalizeGoogle(domain.GoogleReview{AuthorName: "A", Rating: 5, Time: 1700000000}, "P")
	if five.OverallRating == nil || *five.OverallRating != 10 {
		t.Fatalf("native 5 must normalize to 10, got %v", five.OverallRating)
	}
	one := app.NormalizeGoogle(domain.GoogleReview{AuthorName: "A", Rating: 1, Time: 1700000000}, "P")
	if one.OverallRating == nil || *one.OverallRating != 2 {
		t.Fatalf("native 1 must normalize to 2, got %v", one.OverallRating)
	}
}

func TestNormalizeGoogle_IDAndTimestamp(t *testing.T) {
	got := app.NormalizeGoogle(domain.GoogleReview{
		AuthorName: "John Smith",
		Rating:     5,
		Text:       "Great!",
		Time:       1699790400,
	}, "2B N1 A - 29 Shoreditch Heights")

	if got.ID != "google-1699790400-John-Smith" {
		t.Fatalf("id: got %q", got.ID)
	}
	want := time.Unix(1699790400, 0).UTC().Format(time.RFC3339)
	if got.SubmittedAt != want {
		t.Fatalf("submittedAt: got %q, want %q", got.SubmittedAt, want)
	}
	if got.Channel != "Google" || got.Source != domain.SourceGoogle {
		t.Fatalf("channel/source: got %q/%q", got.Channel, got.Source)
	}
	// same record must always yield the same id
	again := app.NormalizeGoogle(domain.GoogleReview{AuthorName: "John Smith", Rating: 5, Text: "Great!", Time: 1699790400}, "P")
	if again.ID != got.ID {
		t.Fatalf("id must be deterministic: %q vs %q", again.ID, got.ID)
	}
}

func TestNormalizeGoogle_CategoryExtraction(t *testing.T) {
	got := app.NormalizeGoogle(domain.GoogleReview{
		AuthorName: "A",
		Rating:     4.5,
		Text:       "Spotlessly clean and a very central location, host was responsive.",
		Time:       1,
	}, "P")

	want := []string{"cleanliness", "location", "communication"}
	if len(got.Categories) != len(want) {
		t.Fatalf("categories: got %+v, want %v", got.Categories, want)
	}
	for i, name := range want {
		if got.Categories[i].Category != name {
			t.Fatalf("category %d: got %q, want %q", i, got.Categories[i].Category, name)
		}
		if got.Categories[i].Rating != 9 {
			t.Fatalf("category rating must mirror the normalized overall, got %v", got.Categories[i].Rating)
		}
	}
}

func TestNormalizeGoogle_NegativeDecrement(t *testing.T) {
	// native 1 -> 2 on the 1-10 scale; below 4 with a negative word, so the
	// category score drops by one.
	got := app.NormalizeGoogle(domain.GoogleReview{
		AuthorName: "A",
		Rating:     1,
		Text:       "Terrible. The place was dirty and the price not worth it.",
		Time:       1,
	}, "P")

	for _, c := range got.Categories {
		if c.Rating != 1 {
			t.Fatalf("category %q: got %v, want decremented score 1", c.Category, c.Rating)
		}
	}
}

func TestNormalizeGoogle_NoDecrementAtHighRating(t *testing.T) {
	// "not" appears, but rating 8 >= 4 keeps category scores untouched.
	got := app.NormalizeGoogle(domain.GoogleReview{
		AuthorName: "A",
		Rating:     4,
		Text:       "Clean, though not cheap.",
		Time:       1,
	}, "P")
	for _, c := range got.Categories {
		if c.Rating != 8 {
			t.Fatalf("category %q: got %v, want 8", c.Category, c.Rating)
		}
	}
}

func TestNormalizeGoogle_FallbackOverallCategory(t *testing.T) {
	got := app.NormalizeGoogle(domain.GoogleReview{
		AuthorName: "A",
		Rating:     3,
		Text:       "It was ok.",
		Time:       1,
	}, "P")
	if len(got.Categories) != 1 || got.Categories[0].Category != "overall" || got.Categories[0].Rating != 6 {
		t.Fatalf("expected single synthetic overall category, got %+v", got.Categories)
	}
}
