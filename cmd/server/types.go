package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	restauth "codeberg.org/formboard/server/api/rest/auth"
	restforms "codeberg.org/formboard/server/api/rest/forms"
	"codeberg.org/formboard/server/formboard/stats"
	"codeberg.org/formboard/server/internal/config"
	"codeberg.org/formboard/server/internal/linkcheck"
)

// holds all dependencies and state for the API server
type Server struct {
	db        *pgxpool.Pool // nil when the memory backend is selected
	config    *config.Config
	userStore restauth.UserStore
	formStore restforms.FormStore
	engine    *stats.Engine
	checker   *linkcheck.Checker
	router    *gin.Engine
}
