package completions

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts or refreshes the completion for a (form, user) pair
func (r *Repository) Upsert(
	ctx context.Context,
	formID, userID string,
	rating *int,
	feedback string,
) (*Completion, error) {
	var completion Completion

	err := r.db.QueryRow(
		ctx,
		queryUpsert,
		formID,
		userID,
		rating,
		feedback,
	).Scan(
		&completion.ID,
		&completion.FormID,
		&completion.UserID,
		&completion.Rating,
		&completion.Feedback,
		&completion.CompletedAt,
	)

	if err != nil {
		return nil, err
	}

	return &completion, nil
}

func (r *Repository) ListByForm(ctx context.Context, formID string) ([]Completion, error) {
	return r.list(ctx, queryListByForm, formID)
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Completion, error) {
	return r.list(ctx, queryListByUser, userID)
}

func (r *Repository) list(ctx context.Context, query, arg string) ([]Completion, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var completions []Completion

	for rows.Next() {
		var c Completion
		err := rows.Scan(
			&c.ID,
			&c.FormID,
			&c.UserID,
			&c.Rating,
			&c.Feedback,
			&c.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		completions = append(completions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return completions, nil
}
