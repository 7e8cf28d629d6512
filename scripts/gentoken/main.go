// Generates a JWT for a throwaway test user so API endpoints can be
// exercised with curl during development.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"codeberg.org/formboard/server/formboard/users"
	"codeberg.org/formboard/server/internal/auth"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repo := users.NewRepository(dbPool)

	user, err := repo.FindOrCreateByProvider(ctx, "test", "test-user-123", "testuser", "test@formboard.dev", "Test User")
	if err != nil {
		log.Fatalf("Failed to create test user: %v", err)
	}

	token, err := auth.GenerateJWT(user.ID, user.Username, user.Email)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("Test user: %s (ID: %s)\n\n", user.Email, user.ID)
	fmt.Printf("export TEST_TOKEN=\"%s\"\n", token)
}
