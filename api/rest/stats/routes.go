package stats

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/formboard/server/formboard/stats"
	"codeberg.org/formboard/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, engine *stats.Engine) {
	statsGroup := router.Group("/stats")
	statsGroup.Use(auth.AuthMiddleware())
	{
		statsGroup.GET("/me", GetUserStatsHandler(engine))
		statsGroup.GET("/activity", GetActivityHandler(engine))
		statsGroup.GET("/recent", GetRecentActivityHandler(engine))
	}
}
