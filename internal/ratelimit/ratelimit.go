// Package ratelimit provides the per-client HTTP rate limiting middleware.
package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"
	libredis "github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"codeberg.org/formboard/server/internal/logger"
)

// Middleware builds a per-IP rate limiting middleware. The rate uses the
// limiter format, e.g. "100-M" for 100 requests per minute. With a redis URL
// the counters are shared across instances; without one they live in process
// memory.
func Middleware(rateFormat, redisURL string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rateFormat, err)
	}

	var store limiter.Store

	if redisURL != "" {
		opts, err := libredis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}

		client := libredis.NewClient(opts)

		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "formboard:ratelimit",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}

		logger.Info("rate limiting backed by redis", "rate", rateFormat)
	} else {
		store = memorystore.NewStore()
		logger.Info("rate limiting backed by process memory", "rate", rateFormat)
	}

	return mgin.NewMiddleware(limiter.New(store, rate)), nil
}
