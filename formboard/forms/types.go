package forms

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles form database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a posted link to an externally-hosted survey form
type Form struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	URL           string    `json:"url"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedBy     string    `json:"created_by"`
	EstimatedTime int       `json:"estimated_time"` // minutes
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateFormRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Description   string   `json:"description,omitempty" binding:"max=2000"`
	URL           string   `json:"url" binding:"required,url,max=2048"`
	Tags          []string `json:"tags,omitempty" binding:"max=20,dive,max=50"`
	EstimatedTime int      `json:"estimated_time" binding:"required,min=1,max=1440"`
}

type UpdateFormRequest struct {
	Title         *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	URL           *string  `json:"url,omitempty" binding:"omitempty,url,max=2048"`
	Tags          []string `json:"tags,omitempty" binding:"max=20,dive,max=50"`
	EstimatedTime *int     `json:"estimated_time,omitempty" binding:"omitempty,min=1,max=1440"`
}

// ListFilter narrows a form listing. Dimensions compose with AND;
// tag matching is OR across the given tags.
type ListFilter struct {
	Search    string   // case-insensitive substring over title and description
	Tags      []string // a form matches if it carries any of these tags
	CreatedBy string   // exact match on creator
}

// reports whether a form passes the filter
func (f ListFilter) Matches(form Form) bool {
	if f.CreatedBy != "" && form.CreatedBy != f.CreatedBy {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		title := strings.ToLower(form.Title)
		desc := strings.ToLower(form.Description)

		if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}

	if len(f.Tags) > 0 && !hasAnyTag(form.Tags, f.Tags) {
		return false
	}

	return true
}

func hasAnyTag(formTags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range formTags {
			if t == w {
				return true
			}
		}
	}

	return false
}
