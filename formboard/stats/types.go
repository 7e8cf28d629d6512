package stats

import (
	"context"
	"time"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
)

const (
	// forms with strictly more completions than this are "popular"
	PopularThreshold = 20

	// forms younger than this are "new"
	NewFormWindow = 7 * 24 * time.Hour

	// trailing window of the daily activity histogram
	DefaultActivityDays = 90

	// size of the recent-activity feed
	DefaultFeedLimit = 10

	// title substituted when a completed form no longer resolves
	UnknownFormTitle = "Unknown Form"
)

// form status values, in priority order
const (
	StatusCompleted = "completed"
	StatusPopular   = "popular"
	StatusNew       = "new"
)

// activity feed entry kinds
const (
	ActivityPosted    = "posted"
	ActivityCompleted = "completed"
)

// Store is the narrow record-store contract the engine reads through.
// Implementations must uphold the one-completion-per-(form,user) invariant;
// the engine does not re-validate it. GetForm returns (nil, nil) when the
// form does not exist.
type Store interface {
	ListForms(ctx context.Context, filter forms.ListFilter) ([]forms.Form, error)
	GetForm(ctx context.Context, formID string) (*forms.Form, error)
	ListCompletionsByForm(ctx context.Context, formID string) ([]completions.Completion, error)
	ListCompletionsByUser(ctx context.Context, userID string) ([]completions.Completion, error)
	UpsertCompletion(ctx context.Context, formID, userID string, rating *int, feedback string) (*completions.Completion, error)
}

// Engine derives rolling statistics and activity views from form and
// completion records. All computations are pure over the data read for the
// call; time-windowed ones take the reference instant explicitly.
type Engine struct {
	store Store
}

// a form together with its derived statistics
type FormWithStats struct {
	forms.Form
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	IsCompleted *bool   `json:"is_completed,omitempty"` // only set when a viewer is known
	Status      string  `json:"status,omitempty"`
}

// rolling per-user metrics
type UserStats struct {
	TotalFilled int     `json:"total_filled"`
	Last7Days   int     `json:"last_7_days"`
	Last30Days  int     `json:"last_30_days"`
	FormsPosted int     `json:"forms_posted"`
	AvgRating   float64 `json:"avg_rating"`
}

// one calendar day of the activity histogram
type ActivityEntry struct {
	Date  string `json:"date"` // ISO yyyy-mm-dd, UTC
	Count int    `json:"count"`
}

// one entry of the merged posted/completed feed
type RecentActivity struct {
	Type      string    `json:"type"` // "posted" or "completed"
	FormID    string    `json:"form_id"`
	FormTitle string    `json:"form_title"`
	Timestamp time.Time `json:"timestamp"`
	Rating    *int      `json:"rating,omitempty"`
	Feedback  string    `json:"feedback,omitempty"`
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// returns the record store the engine reads through
func (e *Engine) Store() Store {
	return e.store
}
