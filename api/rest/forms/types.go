package forms

import (
	"context"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
	"codeberg.org/formboard/server/formboard/stats"
)

// FormStore is the form-record access the handlers need beyond the stats
// store contract. Both the postgres repository and the in-memory store
// satisfy it.
type FormStore interface {
	Create(ctx context.Context, userID string, req forms.CreateFormRequest) (*forms.Form, error)
	Get(ctx context.Context, formID string) (*forms.Form, error)
	Update(ctx context.Context, formID, userID string, req forms.UpdateFormRequest) (*forms.Form, error)
	Delete(ctx context.Context, formID, userID string) error
}

// FormsListResponse wraps a filtered listing with derived statistics
type FormsListResponse struct {
	Forms []stats.FormWithStats `json:"forms"`
}

// CompletionsListResponse wraps the owner-facing feedback listing
type CompletionsListResponse struct {
	Completions []completions.Completion `json:"completions"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
