// Package memstore is an in-memory record store. It backs STORE_BACKEND=memory
// and serves as a deterministic fixture in tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
	"codeberg.org/formboard/server/formboard/users"
)

// holds all records behind a single lock; the completion upsert is atomic
// per (formID, userID) key
type Store struct {
	mu          sync.RWMutex
	users       map[string]*users.User
	forms       map[string]*forms.Form
	completions map[completionKey]*completions.Completion
}

type completionKey struct {
	formID string
	userID string
}

func New() *Store {
	return &Store{
		users:       make(map[string]*users.User),
		forms:       make(map[string]*forms.Form),
		completions: make(map[completionKey]*completions.Completion),
	}
}

// --- forms ---

func (s *Store) Create(_ context.Context, userID string, req forms.CreateFormRequest) (*forms.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	form := &forms.Form{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		URL:           req.URL,
		Tags:          tags,
		CreatedBy:     userID,
		EstimatedTime: req.EstimatedTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.forms[form.ID] = form
	copied := *form
	return &copied, nil
}

func (s *Store) ListForms(_ context.Context, filter forms.ListFilter) ([]forms.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []forms.Form

	for _, form := range s.forms {
		if filter.Matches(*form) {
			matched = append(matched, *form)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}

func (s *Store) Get(_ context.Context, formID string) (*forms.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	form, exists := s.forms[formID]
	if !exists {
		return nil, forms.ErrFormNotFound
	}

	copied := *form
	return &copied, nil
}

// GetForm is the stats store accessor: a missing form is (nil, nil), not an error
func (s *Store) GetForm(_ context.Context, formID string) (*forms.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	form, exists := s.forms[formID]
	if !exists {
		return nil, nil
	}

	copied := *form
	return &copied, nil
}

func (s *Store) Update(_ context.Context, formID, userID string, req forms.UpdateFormRequest) (*forms.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, exists := s.forms[formID]
	if !exists || form.CreatedBy != userID {
		return nil, forms.ErrFormNotFound
	}

	if req.Title != nil {
		form.Title = *req.Title
	}

	if req.Description != nil {
		form.Description = *req.Description
	}

	if req.URL != nil {
		form.URL = *req.URL
	}

	if req.Tags != nil {
		form.Tags = req.Tags
	}

	if req.EstimatedTime != nil {
		form.EstimatedTime = *req.EstimatedTime
	}

	form.UpdatedAt = time.Now()

	copied := *form
	return &copied, nil
}

// Delete removes a form but keeps its completions; feeds referencing the
// form fall back to the placeholder title.
func (s *Store) Delete(_ context.Context, formID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, exists := s.forms[formID]
	if !exists || form.CreatedBy != userID {
		return forms.ErrFormNotFound
	}

	delete(s.forms, formID)
	return nil
}

// --- completions ---

func (s *Store) UpsertCompletion(
	_ context.Context,
	formID, userID string,
	rating *int,
	feedback string,
) (*completions.Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := completionKey{formID: formID, userID: userID}

	existing, exists := s.completions[key]
	if exists {
		existing.Rating = rating
		existing.Feedback = feedback
		existing.CompletedAt = time.Now()

		copied := *existing
		return &copied, nil
	}

	completion := &completions.Completion{
		ID:          uuid.NewString(),
		FormID:      formID,
		UserID:      userID,
		Rating:      rating,
		Feedback:    feedback,
		CompletedAt: time.Now(),
	}

	s.completions[key] = completion
	copied := *completion
	return &copied, nil
}

func (s *Store) ListCompletionsByForm(_ context.Context, formID string) ([]completions.Completion, error) {
	return s.listCompletions(func(c *completions.Completion) bool {
		return c.FormID == formID
	}), nil
}

func (s *Store) ListCompletionsByUser(_ context.Context, userID string) ([]completions.Completion, error) {
	return s.listCompletions(func(c *completions.Completion) bool {
		return c.UserID == userID
	}), nil
}

func (s *Store) listCompletions(match func(*completions.Completion) bool) []completions.Completion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []completions.Completion

	for _, c := range s.completions {
		if match(c) {
			matched = append(matched, *c)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CompletedAt.After(matched[j].CompletedAt)
	})

	return matched
}

// returns the user-record view of the store
func (s *Store) Users() *Users {
	return &Users{s: s}
}

// Users exposes user records with the same method set as the postgres
// user repository.
type Users struct {
	s *Store
}

func (u *Users) Create(_ context.Context, username, email, passwordHash, fullName string) (*users.User, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return nil, users.ErrUserExists
		}
	}

	now := time.Now()
	user := &users.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: &passwordHash,
		FullName:     fullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (u *Users) FindOrCreateByProvider(
	_ context.Context,
	provider, providerID, username, email, fullName string,
) (*users.User, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Provider == provider && u.ProviderID == providerID {
			u.Email = email
			u.FullName = fullName
			u.UpdatedAt = time.Now()

			copied := *u
			return &copied, nil
		}
	}

	now := time.Now()
	user := &users.User{
		ID:         uuid.NewString(),
		Username:   username,
		Email:      email,
		FullName:   fullName,
		Provider:   provider,
		ProviderID: providerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (u *Users) FindByID(_ context.Context, userID string) (*users.User, error) {
	s := u.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, users.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

func (u *Users) FindByUsername(_ context.Context, username string) (*users.User, error) {
	s := u.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}

	return nil, users.ErrUserNotFound
}
