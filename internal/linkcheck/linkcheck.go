// Package linkcheck periodically verifies that posted form URLs are still
// reachable. Forms point at externally-hosted surveys, so a dead link makes
// the posting useless; unreachable ones are logged for the operator.
package linkcheck

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"codeberg.org/formboard/server/formboard/forms"
	"codeberg.org/formboard/server/internal/logger"
)

// read access the checker needs over the record store
type FormLister interface {
	ListForms(ctx context.Context, filter forms.ListFilter) ([]forms.Form, error)
}

type Checker struct {
	lister   FormLister
	client   *http.Client
	limiter  *rate.Limiter
	interval time.Duration
}

// creates a checker that sweeps all posted forms every interval, issuing at
// most rps outbound requests per second
func New(lister FormLister, interval time.Duration, rps float64) *Checker {
	return &Checker{
		lister: lister,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		interval: interval,
	}
}

// begins the background sweep loop
func (c *Checker) Start(ctx context.Context) {
	logger.Info("starting link checker", "interval", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("link checker stopped")
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *Checker) sweep(ctx context.Context) {
	formsList, err := c.lister.ListForms(ctx, forms.ListFilter{})
	if err != nil {
		logger.ErrorErr(err, "link checker failed to list forms")
		return
	}

	checked := 0
	dead := 0

	for _, form := range formsList {
		if err := c.limiter.Wait(ctx); err != nil {
			return // context cancelled
		}

		if !c.reachable(ctx, form.URL) {
			dead++
			logger.Warn("form URL unreachable",
				"form_id", form.ID,
				"url", form.URL,
			)
		}

		checked++
	}

	logger.Debug("link sweep finished", "checked", checked, "unreachable", dead)
}

func (c *Checker) reachable(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}

	defer resp.Body.Close() //nolint:errcheck // response body is unused

	return resp.StatusCode < 400
}
