package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/formboard/server/formboard/completions"
	"codeberg.org/formboard/server/formboard/forms"
	"codeberg.org/formboard/server/formboard/users"
	"codeberg.org/formboard/server/internal/config"
	"codeberg.org/formboard/server/internal/linkcheck"
	"codeberg.org/formboard/server/internal/logger"
	"codeberg.org/formboard/server/internal/memstore"
	"codeberg.org/formboard/server/internal/pgstore"
	"codeberg.org/formboard/server/formboard/stats"
)

const (
	// how often the link checker sweeps posted form URLs
	linkCheckInterval = 6 * time.Hour

	// outbound requests per second during a link sweep
	linkCheckRPS = 2
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	server := &Server{config: cfg}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		store := memstore.New()

		server.userStore = store.Users()
		server.formStore = store
		server.engine = stats.NewEngine(store)

		logger.Warn("using in-memory store backend, records do not survive restarts")

	default:
		db, err := newPool(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		userRepo := users.NewRepository(db)
		formRepo := forms.NewRepository(db)
		completionRepo := completions.NewRepository(db)

		server.db = db
		server.userStore = userRepo
		server.formStore = formRepo
		server.engine = stats.NewEngine(pgstore.New(formRepo, completionRepo))
	}

	server.checker = linkcheck.New(server.engine.Store(), linkCheckInterval, linkCheckRPS)

	server.router = gin.Default()

	if err := RegisterRoutes(server.router, server); err != nil {
		if server.db != nil {
			server.db.Close()
		}

		return nil, err
	}

	return server, nil
}

func newPool(connString string) (*pgxpool.Pool, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
