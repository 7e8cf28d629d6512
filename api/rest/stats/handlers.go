package stats

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/formboard/server/formboard/stats"
	"codeberg.org/formboard/server/internal/auth"
	"codeberg.org/formboard/server/internal/errors"
)

const (
	maxActivityDays = 365
	maxFeedLimit    = 50
)

// GetUserStatsHandler returns the authenticated user's rolling metrics
func GetUserStatsHandler(engine *stats.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		result, err := engine.UserStats(c.Request.Context(), userID, time.Now())
		if err != nil {
			errors.InternalError(c, "failed to compute user statistics", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetActivityHandler returns the authenticated user's daily completion
// histogram over a trailing window (?days=90, bounded 1..365)
func GetActivityHandler(engine *stats.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		days, ok := boundedIntQuery(c, "days", stats.DefaultActivityDays, maxActivityDays)
		if !ok {
			return
		}

		entries, err := engine.DailyActivity(c.Request.Context(), userID, days, time.Now())
		if err != nil {
			errors.InternalError(c, "failed to compute activity", err)
			return
		}

		c.JSON(http.StatusOK, ActivityResponse{Days: days, Activity: entries})
	}
}

// GetRecentActivityHandler returns the authenticated user's merged
// posted/completed feed (?limit=10, bounded 1..50)
func GetRecentActivityHandler(engine *stats.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		limit, ok := boundedIntQuery(c, "limit", stats.DefaultFeedLimit, maxFeedLimit)
		if !ok {
			return
		}

		feed, err := engine.RecentActivity(c.Request.Context(), userID, limit)
		if err != nil {
			errors.InternalError(c, "failed to build activity feed", err)
			return
		}

		c.JSON(http.StatusOK, RecentActivityResponse{Activity: feed})
	}
}

// parses a positive bounded integer query parameter, rejecting zero,
// negative and non-numeric values before they reach the engine
func boundedIntQuery(c *gin.Context, name string, fallback, max int) (int, bool) {
	raw, present := c.GetQuery(name)
	if !present {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 || value > max {
		errors.BadRequest(c, "invalid "+name, nil)
		return 0, false
	}

	return value, true
}
