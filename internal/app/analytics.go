package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"flex_reviews/internal/domain"
)

// issueCatalog enumerates the issue categories scanned for in problematic
// reviews. Order matters: the top-issue tie-break keeps the first maximum
// found while walking this list.
var issueCatalog = []struct {
	name     string
	keywords []string
}{
	{"WiFi", []string{"wifi", "wi-fi", "internet", "connection", "network"}},
	{"Cleanliness", []string{"clean", "dirty", "mess", "hygiene", "tidy"}},
	{"Noise", []string{"noise", "noisy", "loud", "quiet", "sound"}},
	{"Location", []string{"location", "far", "distance", "transport", "access"}},
	{"Check-in", []string{"check-in", "checkin", "check in", "arrival", "key"}},
	{"Maintenance", []string{"broken", "repair", "fix", "maintenance", "damage"}},
	{"Communication", []string{"communication", "response", "contact", "reply", "host"}},
	{"Amenities", []string{"amenity", "amenities", "facility", "facilities", "equipment"}},
}

// DashboardStats recomputes the full dashboard from the current collection.
// Nothing is cached or maintained incrementally.
func (s *ReviewService) DashboardStats() domain.DashboardStats {
	s.mu.Lock()
	all := s.allLocked()
	s.mu.Unlock()

	stats := domain.DashboardStats{TotalReviews: len(all)}

	ratedSum, ratedCount := 0.0, 0
	for _, r := range all {
		if r.OverallRating != nil {
			ratedSum += *r.OverallRating
			ratedCount++
		}
		switch r.Source {
		case domain.SourceHostaway:
			stats.ReviewsBySource.Hostaway++
		case domain.SourceGoogle:
			stats.ReviewsBySource.Google++
		}
		if r.IsApproved {
			stats.ApprovedReviews++
		} else {
			stats.PendingReviews++
		}
	}
	if ratedCount > 0 {
		stats.AverageRating = round1(ratedSum / float64(ratedCount))
	}

	stats.ReviewsByProperty = propertyStats(all)
	stats.CategoryAverages = categoryAverages(all)
	return stats
}

type propertyAccum struct {
	count         int
	totalRating   float64
	ratingCount   int
	approvedCount int
}

func propertyStats(all []domain.NormalizedReview) []domain.PropertyStats {
	accums := make(map[string]*propertyAccum)
	var names []string
	for _, r := range all {
		acc, ok := accums[r.PropertyName]
		if !ok {
			acc = &propertyAccum{}
			accums[r.PropertyName] = acc
			names = append(names, r.PropertyName)
		}
		acc.count++
		if r.OverallRating != nil {
			acc.totalRating += *r.OverallRating
			acc.ratingCount++
		}
		if r.IsApproved {
			acc.approvedCount++
		}
	}

	now := time.Now()
	out := make([]domain.PropertyStats, 0, len(names))
	for _, name := range names {
		acc := accums[name]

		avg := 0.0
		if acc.ratingCount > 0 {
			avg = round1(acc.totalRating / float64(acc.ratingCount))
		}
		ratio := 0
		if acc.count > 0 {
			ratio = int(math.Round(float64(acc.approvedCount) / float64(acc.count) * 100))
		}
		trend, trendValue := calculateTrend(all, name, now)

		out = append(out, domain.PropertyStats{
			PropertyName:  name,
			Count:         acc.count,
			AverageRating: avg,
			Trend:         trend,
			TrendValue:    trendValue,
			TopIssue:      extractTopIssue(all, name),
			Status:        healthStatus(avg, ratio),
			ApprovalRatio: ratio,
		})
	}
	return out
}

// calculateTrend compares the property's mean rating over the last 7 days
// against the 8-14 day window before it. Either window empty means stable.
func calculateTrend(all []domain.NormalizedReview, property string, now time.Time) (domain.Trend, float64) {
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)
	fourteenDaysAgo := now.Add(-14 * 24 * time.Hour)

	curSum, curN := 0.0, 0
	prevSum, prevN := 0.0, 0
	for _, r := range all {
		if r.PropertyName != property || r.OverallRating == nil {
			continue
		}
		at := parseWhen(r.SubmittedAt)
		switch {
		case !at.Before(sevenDaysAgo) && !at.After(now):
			curSum += *r.OverallRating
			curN++
		case !at.Before(fourteenDaysAgo) && at.Before(sevenDaysAgo):
			prevSum += *r.OverallRating
			prevN++
		}
	}
	if curN == 0 || prevN == 0 {
		return domain.TrendStable, 0
	}

	change := round1(curSum/float64(curN) - prevSum/float64(prevN))
	switch {
	case change > 0.2:
		return domain.TrendUp, change
	case change < -0.2:
		return domain.TrendDown, change
	default:
		return domain.TrendStable, change
	}
}

// extractTopIssue counts issue-keyword mentions across the property's
// problematic reviews (rated <= 6 or unapproved). "—" means nothing is
// problematic; "No issues" means problematic reviews matched no keyword.
func extractTopIssue(all []domain.NormalizedReview, property string) string {
	var problematic []domain.NormalizedReview
	for _, r := range all {
		if r.PropertyName != property {
			continue
		}
		if (r.OverallRating != nil && *r.OverallRating <= 6) || !r.IsApproved {
			problematic = append(problematic, r)
		}
	}
	if len(problematic) == 0 {
		return "—"
	}

	counts := make(map[string]int)
	for _, r := range problematic {
		lower := strings.ToLower(r.ReviewText)
		for _, issue := range issueCatalog {
			for _, kw := range issue.keywords {
				if strings.Contains(lower, kw) {
					counts[issue.name]++
					break
				}
			}
		}
	}
	if len(counts) == 0 {
		return "No issues"
	}

	topName, topCount := "", 0
	for _, issue := range issueCatalog {
		if n := counts[issue.name]; n > topCount {
			topName, topCount = issue.name, n
		}
	}
	if topCount == 1 {
		return fmt.Sprintf("%s (1 mention)", topName)
	}
	return fmt.Sprintf("%s (%d mentions)", topName, topCount)
}

// healthStatus evaluates good first, then critical, else warning. A
// high-rated property with a low approval ratio fails the good conjunction
// and lands on critical, not warning.
func healthStatus(averageRating float64, approvalRatio int) domain.HealthStatus {
	if averageRating >= 8.0 && approvalRatio >= 70 {
		return domain.StatusGood
	}
	if averageRating < 6.0 || approvalRatio < 50 {
		return domain.StatusCritical
	}
	return domain.StatusWarning
}

func categoryAverages(all []domain.NormalizedReview) []domain.CategoryAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var names []string
	for _, r := range all {
		for _, c := range r.Categories {
			if _, seen := counts[c.Category]; !seen {
				names = append(names, c.Category)
			}
			sums[c.Category] += c.Rating
			counts[c.Category]++
		}
	}

	out := make([]domain.CategoryAverage, 0, len(names))
	for _, name := range names {
		out = append(out, domain.CategoryAverage{
			Category:      name,
			AverageRating: round1(sums[name] / float64(counts[name])),
		})
	}
	return out
}
