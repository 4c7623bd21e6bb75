package googleplaces

import "flex_reviews/internal/domain"

// Sample is the fixed fallback batch. Submission times are constants rather
// than offsets from the wall clock so the batch is identical across runs.
func Sample() []domain.GoogleReview {
	return []domain.GoogleReview{
		{
			AuthorName: "John Smith",
			Language:   "en",
			Rating:     5,
			Text:       "Excellent property! The location is perfect, right in the heart of the city. The apartment was spotlessly clean and had all the amenities we needed. Would definitely stay again!",
			Time:       1699790400, // 2023-11-12T12:00:00Z
		},
		{
			AuthorName: "Maria Garcia",
			Language:   "en",
			Rating:     4,
			Text:       "Great place overall. Very clean and modern. The only downside was the noise from the street at night, but the location makes up for it. Host was very responsive.",
			Time:       1698408000, // 2023-10-27T12:00:00Z
		},
		{
			AuthorName: "Tom Brown",
			Language:   "en",
			Rating:     5,
			Text:       "Outstanding! Everything was perfect from check-in to check-out. The apartment is beautiful, well-maintained, and in a fantastic location. Highly recommend!",
			Time:       1695816000, // 2023-09-27T12:00:00Z
		},
	}
}
