package stats

import (
	"sort"
	"time"

	"codeberg.org/formboard/server/formboard/completions"
)

const dayFormat = "2006-01-02"

// DailyHistogram buckets completions per UTC calendar day over the trailing
// window [now - days, now] and returns exactly days+1 entries in ascending
// date order, zero-count days included. Completions whose truncated day falls
// outside the window are ignored.
func DailyHistogram(comps []completions.Completion, days int, now time.Time) []ActivityEntry {
	buckets := make(map[string]int, days+1)

	end := now.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		buckets[d.Format(dayFormat)] = 0
	}

	for _, c := range comps {
		day := c.CompletedAt.UTC().Truncate(24 * time.Hour)

		if day.Before(start) || day.After(end) {
			continue
		}

		buckets[day.Format(dayFormat)]++
	}

	entries := make([]ActivityEntry, 0, len(buckets))

	for date, count := range buckets {
		entries = append(entries, ActivityEntry{Date: date, Count: count})
	}

	// lexicographic order equals chronological order for yyyy-mm-dd
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries
}
