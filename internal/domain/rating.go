package domain

import "math"

// StarSlots is the width of the star indicator.
const StarSlots = 5

// AverageRating returns the arithmetic mean of the ratings, or 0 when the
// set is empty.
func AverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}

// StarBar is the derived 5-slot filled/empty star indicator.
type StarBar struct {
	Filled int `json:"filled"`
	Empty  int `json:"empty"`
}

// Stars maps a rating onto the star bar. Partial ratings truncate down to
// the nearest whole slot, so 3.7 renders three filled stars.
func Stars(rating float64) StarBar {
	filled := int(math.Floor(rating))
	if filled < 0 {
		filled = 0
	}
	if filled > StarSlots {
		filled = StarSlots
	}
	return StarBar{Filled: filled, Empty: StarSlots - filled}
}
