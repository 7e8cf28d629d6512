package stats

import (
	"time"

	"codeberg.org/formboard/server/formboard/completions"
)

// CountWithinDays counts completions whose completedAt falls inside the
// trailing window [now - days, now]. The lower bound is inclusive.
func CountWithinDays(comps []completions.Completion, now time.Time, days int) int {
	cutoff := now.AddDate(0, 0, -days)
	count := 0

	for _, c := range comps {
		if !c.CompletedAt.Before(cutoff) {
			count++
		}
	}

	return count
}
