package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"codeberg.org/formboard/server/api/rest/auth"
	"codeberg.org/formboard/server/api/rest/forms"
	"codeberg.org/formboard/server/api/rest/health"
	"codeberg.org/formboard/server/api/rest/stats"
	"codeberg.org/formboard/server/internal/ratelimit"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", health.Handler)

	limit, err := ratelimit.Middleware(server.config.RateLimit, server.config.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to build rate limiter: %w", err)
	}

	v1 := router.Group("/api/v1")
	v1.Use(limit)

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userStore)
		forms.RegisterRoutes(v1, server.formStore, server.engine)
		stats.RegisterRoutes(v1, server.engine)
	}

	return nil
}
