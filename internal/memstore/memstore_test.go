package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/formboard/server/formboard/forms"
	"codeberg.org/formboard/server/formboard/users"
)

func newForm(t *testing.T, s *Store, userID, title string, tags []string) *forms.Form {
	t.Helper()

	form, err := s.Create(context.Background(), userID, forms.CreateFormRequest{
		Title:         title,
		URL:           "https://forms.example.com/" + title,
		Tags:          tags,
		EstimatedTime: 5,
	})
	require.NoError(t, err)

	return form
}

func TestFormLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	form := newForm(t, s, "owner-1", "signup", []string{"growth"})

	got, err := s.Get(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, "signup", got.Title)

	title := "signup v2"
	updated, err := s.Update(ctx, form.ID, "owner-1", forms.UpdateFormRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "signup v2", updated.Title)
	assert.Equal(t, form.CreatedAt, updated.CreatedAt)

	_, err = s.Update(ctx, form.ID, "someone-else", forms.UpdateFormRequest{Title: &title})
	assert.ErrorIs(t, err, forms.ErrFormNotFound)

	require.NoError(t, s.Delete(ctx, form.ID, "owner-1"))

	_, err = s.Get(ctx, form.ID)
	assert.ErrorIs(t, err, forms.ErrFormNotFound)
}

func TestListFormsFilters(t *testing.T) {
	ctx := context.Background()
	s := New()

	newForm(t, s, "owner-1", "hiring funnel", []string{"hr"})
	newForm(t, s, "owner-2", "incident retro", []string{"ops"})

	all, err := s.ListForms(ctx, forms.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.ListForms(ctx, forms.ListFilter{CreatedBy: "owner-1"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "hiring funnel", mine[0].Title)

	tagged, err := s.ListForms(ctx, forms.ListFilter{Tags: []string{"ops", "hr"}})
	require.NoError(t, err)
	assert.Len(t, tagged, 2)
}

func TestUpsertCompletionIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New()

	form := newForm(t, s, "owner-1", "nps", nil)

	rating := 3
	first, err := s.UpsertCompletion(ctx, form.ID, "filler-1", &rating, "ok")
	require.NoError(t, err)

	better := 5
	second, err := s.UpsertCompletion(ctx, form.ID, "filler-1", &better, "better")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, *second.Rating)
	assert.False(t, second.CompletedAt.Before(first.CompletedAt))

	byForm, err := s.ListCompletionsByForm(ctx, form.ID)
	require.NoError(t, err)
	require.Len(t, byForm, 1)
	assert.Equal(t, "better", byForm[0].Feedback)
}

func TestDeleteFormKeepsCompletions(t *testing.T) {
	ctx := context.Background()
	s := New()

	form := newForm(t, s, "owner-1", "exit", nil)

	_, err := s.UpsertCompletion(ctx, form.ID, "filler-1", nil, "")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, form.ID, "owner-1"))

	byUser, err := s.ListCompletionsByUser(ctx, "filler-1")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, form.ID, byUser[0].FormID)

	got, err := s.GetForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := New()

	created, err := s.Users().Create(ctx, "ada", "ada@example.com", "hash", "Ada L")
	require.NoError(t, err)

	_, err = s.Users().Create(ctx, "ada", "other@example.com", "hash", "")
	assert.ErrorIs(t, err, users.ErrUserExists)

	byName, err := s.Users().FindByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	oauth, err := s.Users().FindOrCreateByProvider(ctx, "github", "42", "grace", "grace@example.com", "Grace H")
	require.NoError(t, err)

	again, err := s.Users().FindOrCreateByProvider(ctx, "github", "42", "ignored", "new@example.com", "Grace H")
	require.NoError(t, err)
	assert.Equal(t, oauth.ID, again.ID)
	assert.Equal(t, "new@example.com", again.Email)

	_, err = s.Users().FindByID(ctx, "missing")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
