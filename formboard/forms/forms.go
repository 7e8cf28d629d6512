package forms

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrFormNotFound = errors.New("form not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(
	ctx context.Context,
	userID string,
	req CreateFormRequest,
) (*Form, error) {
	var form Form

	// initialize empty arrays if nil to avoid null in JSON responses
	tags := req.Tags

	if tags == nil {
		tags = []string{}
	}

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		userID,
		req.Title,
		req.Description,
		req.URL,
		tags,
		req.EstimatedTime,
	).Scan(
		&form.ID,
		&form.CreatedBy,
		&form.Title,
		&form.Description,
		&form.URL,
		&form.Tags,
		&form.EstimatedTime,
		&form.CreatedAt,
		&form.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &form, nil
}

func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Form, error) {
	var createdBy, search *string

	if filter.CreatedBy != "" {
		createdBy = &filter.CreatedBy
	}

	if filter.Search != "" {
		search = &filter.Search
	}

	tags := filter.Tags
	if tags == nil {
		tags = []string{}
	}

	rows, err := r.db.Query(ctx, queryList, createdBy, search, tags)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var forms []Form

	for rows.Next() {
		var f Form
		err := rows.Scan(
			&f.ID,
			&f.CreatedBy,
			&f.Title,
			&f.Description,
			&f.URL,
			&f.Tags,
			&f.EstimatedTime,
			&f.CreatedAt,
			&f.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		forms = append(forms, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return forms, nil
}

func (r *Repository) Get(ctx context.Context, formID string) (*Form, error) {
	var form Form

	err := r.db.QueryRow(ctx, queryGet, formID).Scan(
		&form.ID,
		&form.CreatedBy,
		&form.Title,
		&form.Description,
		&form.URL,
		&form.Tags,
		&form.EstimatedTime,
		&form.CreatedAt,
		&form.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFormNotFound
	}

	if err != nil {
		return nil, err
	}

	return &form, nil
}

func (r *Repository) Update(
	ctx context.Context,
	formID, userID string,
	req UpdateFormRequest,
) (*Form, error) {
	var form Form

	err := r.db.QueryRow(
		ctx,
		queryUpdate,
		req.Title,
		req.Description,
		req.URL,
		req.Tags,
		req.EstimatedTime,
		formID,
		userID,
	).Scan(
		&form.ID,
		&form.CreatedBy,
		&form.Title,
		&form.Description,
		&form.URL,
		&form.Tags,
		&form.EstimatedTime,
		&form.CreatedAt,
		&form.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFormNotFound
	}

	if err != nil {
		return nil, err
	}

	return &form, nil
}

func (r *Repository) Delete(ctx context.Context, formID, userID string) error {
	result, err := r.db.Exec(ctx, queryDelete, formID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrFormNotFound
	}

	return nil
}
