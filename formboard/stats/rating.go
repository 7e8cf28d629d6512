package stats

import (
	"codeberg.org/formboard/server/formboard/completions"
)

// AverageRating returns the arithmetic mean of the non-nil ratings in the
// given completions and how many there were. Completions without a rating
// count toward totals elsewhere but not here. An empty rated set yields 0.0,
// never an absent value, so callers need no special case.
func AverageRating(comps []completions.Completion) (float64, int) {
	sum := 0
	count := 0

	for _, c := range comps {
		if c.Rating == nil {
			continue
		}

		sum += *c.Rating
		count++
	}

	if count == 0 {
		return 0, 0
	}

	return float64(sum) / float64(count), count
}
