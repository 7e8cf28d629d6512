package completions

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles completion database operations
type Repository struct {
	db *pgxpool.Pool
}

// records that a user finished a form, with an optional rating and feedback.
// At most one completion exists per (form, user) pair; repeat completions
// update the existing record in place.
type Completion struct {
	ID          string    `json:"id"`
	FormID      string    `json:"form_id"`
	UserID      string    `json:"user_id"`
	Rating      *int      `json:"rating,omitempty"` // 1-5 when present
	Feedback    string    `json:"feedback,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

type UpsertCompletionRequest struct {
	Rating   *int   `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Feedback string `json:"feedback,omitempty" binding:"max=2000"`
}
