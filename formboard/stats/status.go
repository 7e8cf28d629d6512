package stats

import (
	"time"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
)

// Classify derives a form's status from its completions, an optional viewer
// and a reference instant. The rules apply in strict priority order, first
// match wins:
//
//  1. "completed" when the viewer has a completion on the form
//  2. "popular" when the form has more than PopularThreshold completions
//  3. "new" when the form is younger than NewFormWindow
//
// A popular form that is also young is "popular". No rule matching yields
// the empty string (no status).
func Classify(form forms.Form, comps []completions.Completion, viewerID string, now time.Time) string {
	if viewerID != "" && CompletedBy(comps, viewerID) {
		return StatusCompleted
	}

	if len(comps) > PopularThreshold {
		return StatusPopular
	}

	if now.Sub(form.CreatedAt) < NewFormWindow {
		return StatusNew
	}

	return ""
}

// reports whether the given user has a completion in the set
func CompletedBy(comps []completions.Completion, userID string) bool {
	for _, c := range comps {
		if c.UserID == userID {
			return true
		}
	}

	return false
}
