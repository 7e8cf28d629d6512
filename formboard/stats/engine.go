package stats

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
)

// builds the derived view for a single form
func (e *Engine) FormWithStats(
	ctx context.Context,
	form forms.Form,
	viewerID string,
	now time.Time,
) (*FormWithStats, error) {
	comps, err := e.store.ListCompletionsByForm(ctx, form.ID)
	if err != nil {
		return nil, fmt.Errorf("list completions for form %s: %w", form.ID, err)
	}

	fws := buildFormStats(form, comps, viewerID, now)
	return &fws, nil
}

// lists forms matching the filter, each with derived statistics
func (e *Engine) ListFormsWithStats(
	ctx context.Context,
	filter forms.ListFilter,
	viewerID string,
	now time.Time,
) ([]FormWithStats, error) {
	matched, err := e.store.ListForms(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}

	result := make([]FormWithStats, 0, len(matched))

	for _, form := range matched {
		comps, err := e.store.ListCompletionsByForm(ctx, form.ID)
		if err != nil {
			return nil, fmt.Errorf("list completions for form %s: %w", form.ID, err)
		}

		result = append(result, buildFormStats(form, comps, viewerID, now))
	}

	return result, nil
}

// computes a user's rolling metrics relative to now
func (e *Engine) UserStats(ctx context.Context, userID string, now time.Time) (*UserStats, error) {
	filled, err := e.store.ListCompletionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list completions for user %s: %w", userID, err)
	}

	posted, err := e.store.ListForms(ctx, forms.ListFilter{CreatedBy: userID})
	if err != nil {
		return nil, fmt.Errorf("list forms for user %s: %w", userID, err)
	}

	// every individual rating across all owned forms weighs equally;
	// this is not a mean of per-form means
	var received []completions.Completion

	for _, form := range posted {
		comps, err := e.store.ListCompletionsByForm(ctx, form.ID)
		if err != nil {
			return nil, fmt.Errorf("list completions for form %s: %w", form.ID, err)
		}

		received = append(received, comps...)
	}

	avg, _ := AverageRating(received)

	return &UserStats{
		TotalFilled: len(filled),
		Last7Days:   CountWithinDays(filled, now, 7),
		Last30Days:  CountWithinDays(filled, now, 30),
		FormsPosted: len(posted),
		AvgRating:   avg,
	}, nil
}

// returns the user's daily completion histogram over the trailing window
func (e *Engine) DailyActivity(ctx context.Context, userID string, days int, now time.Time) ([]ActivityEntry, error) {
	comps, err := e.store.ListCompletionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list completions for user %s: %w", userID, err)
	}

	return DailyHistogram(comps, days, now), nil
}

// returns the user's merged posted/completed feed, most recent first
func (e *Engine) RecentActivity(ctx context.Context, userID string, limit int) ([]RecentActivity, error) {
	comps, err := e.store.ListCompletionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list completions for user %s: %w", userID, err)
	}

	posted, err := e.store.ListForms(ctx, forms.ListFilter{CreatedBy: userID})
	if err != nil {
		return nil, fmt.Errorf("list forms for user %s: %w", userID, err)
	}

	titles := make(map[string]string, len(comps))

	titleOf := func(formID string) string {
		if title, ok := titles[formID]; ok {
			return title
		}

		title := UnknownFormTitle

		form, err := e.store.GetForm(ctx, formID)
		if err == nil && form != nil {
			title = form.Title
		}

		titles[formID] = title
		return title
	}

	return MergeRecentActivity(comps, posted, titleOf, limit), nil
}

func buildFormStats(form forms.Form, comps []completions.Completion, viewerID string, now time.Time) FormWithStats {
	rating, reviewCount := AverageRating(comps)

	fws := FormWithStats{
		Form:        form,
		Rating:      rating,
		ReviewCount: reviewCount,
	}

	if viewerID != "" {
		completed := CompletedBy(comps, viewerID)
		fws.IsCompleted = &completed
	}

	fws.Status = Classify(form, comps, viewerID, now)

	return fws
}
