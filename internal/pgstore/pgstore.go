// Package pgstore binds the postgres repositories to the stats store
// contract.
package pgstore

import (
	"context"
	"errors"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
)

type Store struct {
	forms       *forms.Repository
	completions *completions.Repository
}

func New(formRepo *forms.Repository, completionRepo *completions.Repository) *Store {
	return &Store{
		forms:       formRepo,
		completions: completionRepo,
	}
}

func (s *Store) ListForms(ctx context.Context, filter forms.ListFilter) ([]forms.Form, error) {
	return s.forms.List(ctx, filter)
}

// GetForm maps a missing form to (nil, nil); the engine substitutes the
// placeholder title instead of failing.
func (s *Store) GetForm(ctx context.Context, formID string) (*forms.Form, error) {
	form, err := s.forms.Get(ctx, formID)

	if errors.Is(err, forms.ErrFormNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return form, nil
}

func (s *Store) ListCompletionsByForm(ctx context.Context, formID string) ([]completions.Completion, error) {
	return s.completions.ListByForm(ctx, formID)
}

func (s *Store) ListCompletionsByUser(ctx context.Context, userID string) ([]completions.Completion, error) {
	return s.completions.ListByUser(ctx, userID)
}

func (s *Store) UpsertCompletion(
	ctx context.Context,
	formID, userID string,
	rating *int,
	feedback string,
) (*completions.Completion, error) {
	return s.completions.Upsert(ctx, formID, userID, rating, feedback)
}
