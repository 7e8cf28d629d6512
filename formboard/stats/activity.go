package stats

import (
	"sort"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
)

// MergeRecentActivity builds the recent-activity feed for one user from their
// completions and their own posted forms. titleOf resolves a form id to its
// title for completion entries; it returns UnknownFormTitle for deleted forms.
//
// Each source is independently sorted descending and cut to limit before the
// merge, and the merged feed is cut to limit again. When one source dominates
// recent history the other still contributes up to limit candidates to the
// final sort, so the result can differ from a single merge-then-cut.
func MergeRecentActivity(
	comps []completions.Completion,
	posted []forms.Form,
	titleOf func(formID string) string,
	limit int,
) []RecentActivity {
	if limit <= 0 {
		return []RecentActivity{}
	}

	recentComps := make([]completions.Completion, len(comps))
	copy(recentComps, comps)

	sort.Slice(recentComps, func(i, j int) bool {
		return recentComps[i].CompletedAt.After(recentComps[j].CompletedAt)
	})

	if len(recentComps) > limit {
		recentComps = recentComps[:limit]
	}

	recentForms := make([]forms.Form, len(posted))
	copy(recentForms, posted)

	sort.Slice(recentForms, func(i, j int) bool {
		return recentForms[i].CreatedAt.After(recentForms[j].CreatedAt)
	})

	if len(recentForms) > limit {
		recentForms = recentForms[:limit]
	}

	feed := make([]RecentActivity, 0, len(recentComps)+len(recentForms))

	for _, c := range recentComps {
		feed = append(feed, RecentActivity{
			Type:      ActivityCompleted,
			FormID:    c.FormID,
			FormTitle: titleOf(c.FormID),
			Timestamp: c.CompletedAt,
			Rating:    c.Rating,
			Feedback:  c.Feedback,
		})
	}

	for _, f := range recentForms {
		feed = append(feed, RecentActivity{
			Type:      ActivityPosted,
			FormID:    f.ID,
			FormTitle: f.Title,
			Timestamp: f.CreatedAt,
		})
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}

	return feed
}
