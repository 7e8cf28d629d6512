package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
)

func staticTitle(title string) func(string) string {
	return func(string) string { return title }
}

func TestMergeRecentActivity(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	comps := []completions.Completion{
		{FormID: "f1", CompletedAt: now.Add(-1 * time.Hour), Rating: intp(5), Feedback: "great"},
		{FormID: "f2", CompletedAt: now.Add(-3 * time.Hour)},
	}
	posted := []forms.Form{
		{ID: "f3", Title: "Survey", CreatedAt: now.Add(-2 * time.Hour)},
	}

	feed := MergeRecentActivity(comps, posted, staticTitle("Quiz"), 10)
	require.Len(t, feed, 3)

	assert.Equal(t, ActivityCompleted, feed[0].Type)
	assert.Equal(t, "Quiz", feed[0].FormTitle)
	assert.Equal(t, intp(5), feed[0].Rating)
	assert.Equal(t, "great", feed[0].Feedback)

	assert.Equal(t, ActivityPosted, feed[1].Type)
	assert.Equal(t, "Survey", feed[1].FormTitle)

	assert.Equal(t, "f2", feed[2].FormID)

	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp))
	}
}

func TestMergeRecentActivity_TruncatesEachSourceFirst(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// 15 recent completions crowd out older ones before the merge, so only
	// the 10 newest completions compete with the 2 postings.
	comps := make([]completions.Completion, 15)
	for i := range comps {
		comps[i] = completions.Completion{
			FormID:      fmt.Sprintf("f%d", i),
			CompletedAt: now.Add(-time.Duration(i) * time.Minute),
		}
	}

	posted := []forms.Form{
		{ID: "p1", Title: "Old Survey", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "p2", Title: "Ancient Survey", CreatedAt: now.AddDate(0, 0, -60)},
	}

	feed := MergeRecentActivity(comps, posted, staticTitle("Form"), 10)
	require.Len(t, feed, 10)

	for _, entry := range feed {
		assert.Equal(t, ActivityCompleted, entry.Type)
	}
}

func TestMergeRecentActivity_UnknownForm(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	comps := []completions.Completion{
		{FormID: "gone", CompletedAt: now},
	}

	feed := MergeRecentActivity(comps, nil, staticTitle(UnknownFormTitle), 10)
	require.Len(t, feed, 1)
	assert.Equal(t, UnknownFormTitle, feed[0].FormTitle)
}

func TestMergeRecentActivity_LimitZero(t *testing.T) {
	comps := []completions.Completion{{FormID: "f1", CompletedAt: time.Now()}}

	feed := MergeRecentActivity(comps, nil, staticTitle("Form"), 0)
	assert.Empty(t, feed)
}
