package hostaway

import "flex_reviews/internal/domain"

func ptr(f float64) *float64 { return &f }

// Sample is the fixed fallback batch served when the API yields nothing.
// The records are constant so ingestion is reproducible across runs.
func Sample() []domain.HostawayReview {
	return []domain.HostawayReview{
		{
			ID:           7453,
			Type:         "host-to-guest",
			Status:       "published",
			Rating:       nil,
			PublicReview: "Shane and family are wonderful! Would definitely host again :)",
			ReviewCategory: []domain.HostawayCategoryRating{
				{Category: "cleanliness", Rating: 10},
				{Category: "communication", Rating: 10},
				{Category: "respect_house_rules", Rating: 10},
			},
			SubmittedAt: "2020-08-21 22:45:14",
			GuestName:   "Shane Finkelstein",
			ListingName: "2B N1 A - 29 Shoreditch Heights",
		},
		{
			ID:           7454,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       ptr(9),
			PublicReview: "Amazing property in the heart of Shoreditch! The apartment was spotless and exactly as described. Host was very responsive and helpful throughout our stay.",
			ReviewCategory: []domain.HostawayCategoryRating{
				{Category: "cleanliness", Rating: 10},
				{Category: "communication", Rating: 9},
				{Category: "location", Rating: 10},
				{Category: "value", Rating: 8},
			},
			SubmittedAt: "2023-11-15 14:30:22",
			GuestName:   "Emma Thompson",
			ListingName: "2B N1 A - 29 Shoreditch Heights",
		},
		{
			ID:           7455,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       ptr(8),
			PublicReview: "Great location and modern amenities. The only minor issue was some noise from the street at night, but overall a fantastic stay.",
			ReviewCategory: []domain.HostawayCategoryRating{
				{Category: "cleanliness", Rating: 9},
				{Category: "communication", Rating: 8},
				{Category: "location", Rating: 10},
				{Category: "value", Rating: 7},
			},
			SubmittedAt: "2023-11-10 09:15:33",
			GuestName:   "Michael Chen",
			ListingName: "1B S2 B - 15 Camden Lock",
		},
		{
			ID:           7456,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       ptr(10),
			PublicReview: "Absolutely perfect! The apartment exceeded all expectations. Beautiful design, super clean, and the host went above and beyond to make our stay comfortable.",
			ReviewCategory: []domain.HostawayCategoryRating{
				{Category: "cleanliness", Rating: 10},
				{Category: "communication", Rating: 10},
				{Category: "location", Rating: 10},
				{Category: "value", Rating: 10},
			},
			SubmittedAt: "2023-11-08 18:45:11",
			GuestName:   "Sarah Johnson",
			ListingName: "3B W1 C - 42 Notting Hill Gate",
		},
		{
			ID:           7457,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       ptr(7),
			PublicReview: "Good property overall. Check-in was smooth and the location is convenient. However, the WiFi was a bit slow and the heating took a while to warm up.",
			ReviewCategory: []domain.HostawayCategoryRating{
				{Category: "cleanliness", Rating: 8},
				{Category: "communication", Rating: 7},
				{Category: "location", Rating: 9},
				{Category: "value", Rating: 6},
			},
			SubmittedAt: "2023-11-05 12:20:45",
			GuestName:   "David Martinez",
			ListingName: "1B S2 B - 15 Camden Lock",
		},
		{
			ID:           7458,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       ptr(9),
			PublicReview: "Lovely apartment with stunning views! Everything was as described and the host provided excellent recommendations for local restaurants.",
			ReviewCategory: []domain.HostawayCategoryRating{
				{Category: "cleanliness", Rating: 9},
				{Category: "communication", Rating: 10},
				{Category: "location", Rating: 9},
				{Category: "value", Rating: 8},
			},
			SubmittedAt: "2023-11-01 16:30:00",
			GuestName:   "Lisa Anderson",
			ListingName: "3B W1 C - 42 Notting Hill Gate",
		},
		{
			ID:           7459,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       ptr(6),
			PublicReview: "The property has potential but needs some maintenance. The shower pressure was weak and one of the bedroom lights wasn't working. Location is great though.",
			ReviewCategory: []domain.HostawayCategoryRating{
				{Category: "cleanliness", Rating: 7},
				{Category: "communication", Rating: 8},
				{Category: "location", Rating: 9},
				{Category: "value", Rating: 5},
			},
			SubmittedAt: "2023-10-28 10:15:22",
			GuestName:   "Robert Wilson",
			ListingName: "2B N1 A - 29 Shoreditch Heights",
		},
		{
			ID:           7460,
			Type:         "guest-to-host",
			Status:       "published",
			Rating:       ptr(10),
			PublicReview: "Five stars all around! This is our second time staying at a Flex Living property and we're never disappointed. Highly recommend!",
			ReviewCategory: []domain.HostawayCategoryRating{
				{Category: "cleanliness", Rating: 10},
				{Category: "communication", Rating: 10},
				{Category: "location", Rating: 10},
				{Category: "value", Rating: 10},
			},
			SubmittedAt: "2023-10-25 20:45:30",
			GuestName:   "Jennifer Lee",
			ListingName: "3B W1 C - 42 Notting Hill Gate",
		},
	}
}
