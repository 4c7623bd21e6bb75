package app

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"flex_reviews/internal/domain"
)

/********** keyword registries (single source of truth) **********/

// channelByType maps property-management review types to display channels.
var channelByType = map[string]string{
	"host-to-guest": "Hostaway",
	"guest-to-host": "Hostaway",
}

// categoryKeywords drives category extraction for places reviews, which carry
// no structured categories. Order matters: entries are scanned in sequence.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"cleanliness", []string{"clean", "spotless", "tidy", "dirty", "messy", "hygiene"}},
	{"location", []string{"location", "convenient", "central", "nearby", "close to", "walking distance"}},
	{"communication", []string{"host", "responsive", "helpful", "communication", "contact", "reply"}},
	{"value", []string{"value", "price", "worth", "expensive", "affordable", "money"}},
	{"amenities", []string{"amenities", "facilities", "wifi", "kitchen", "bathroom", "bedroom"}},
}

// negativeWords lower a category score when the overall rating is already low.
var negativeWords = []string{"not", "poor", "bad", "terrible", "awful", "disappointing"}

/********** helpers **********/

// round1 rounds to one decimal place, half away from zero.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// hyphenateSpaces replaces every whitespace rune with a hyphen, keeping ids
// deterministic for the same author name.
func hyphenateSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, s)
}

/********** hostaway normalizer **********/

// NormalizeHostaway converts a raw property-management record into the
// canonical shape. A missing overall rating is derived as the mean of the
// per-category ratings; with neither, the field stays nil.
func NormalizeHostaway(r domain.HostawayReview) domain.NormalizedReview {
	rating := r.Rating
	if rating == nil && len(r.ReviewCategory) > 0 {
		sum := 0.0
		for _, c := range r.ReviewCategory {
			sum += c.Rating
		}
		avg := round1(sum / float64(len(r.ReviewCategory)))
		rating = &avg
	}

	cats := make([]domain.CategoryRating, 0, len(r.ReviewCategory))
	for _, c := range r.ReviewCategory {
		cats = append(cats, domain.CategoryRating{Category: c.Category, Rating: c.Rating})
	}

	channel := channelByType[r.Type]
	if channel == "" {
		channel = "Unknown"
	}

	return domain.NormalizedReview{
		ID:            fmt.Sprintf("hostaway-%d", r.ID),
		Source:        domain.SourceHostaway,
		Type:          r.Type,
		Status:        r.Status,
		OverallRating: rating,
		ReviewText:    r.PublicReview,
		Categories:    cats,
		SubmittedAt:   r.SubmittedAt,
		ReviewerName:  r.GuestName,
		PropertyName:  r.ListingName,
		Channel:       channel,
		IsApproved:    false,
		CreatedAt:     nowISO(),
	}
}

/********** places normalizer **********/

// NormalizeGoogle converts a raw places record. The native 1-5 rating is
// doubled onto the 1-10 scale all reviews share.
func NormalizeGoogle(r domain.GoogleReview, propertyName string) domain.NormalizedReview {
	rating := r.Rating * 2

	return domain.NormalizedReview{
		ID:            fmt.Sprintf("google-%d-%s", r.Time, hyphenateSpaces(r.AuthorName)),
		Source:        domain.SourceGoogle,
		Type:          "guest-review",
		Status:        "published",
		OverallRating: &rating,
		ReviewText:    r.Text,
		Categories:    extractCategories(r.Text, rating),
		SubmittedAt:   time.Unix(r.Time, 0).UTC().Format(time.RFC3339),
		ReviewerName:  r.AuthorName,
		PropertyName:  propertyName,
		Channel:       "Google",
		IsApproved:    false,
		CreatedAt:     nowISO(),
	}
}

// extractCategories scans the text against the fixed keyword table. When no
// category matches it falls back to a single synthetic "overall" entry.
func extractCategories(text string, rating float64) []domain.CategoryRating {
	lower := strings.ToLower(text)

	hasNegative := false
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			hasNegative = true
			break
		}
	}

	var cats []domain.CategoryRating
	for _, entry := range categoryKeywords {
		matched := false
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		score := rating
		if hasNegative && rating < 4 {
			score = math.Max(1, rating-1)
		}
		cats = append(cats, domain.CategoryRating{Category: entry.category, Rating: score})
	}

	if len(cats) == 0 {
		cats = append(cats, domain.CategoryRating{Category: "overall", Rating: rating})
	}
	return cats
}

/********** timestamp parsing **********/

var submittedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseWhen parses the timestamp formats the two feeds produce. The zero
// time is returned for anything unparseable so comparisons stay total.
func parseWhen(s string) time.Time {
	for _, layout := range submittedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
