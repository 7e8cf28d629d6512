package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
)

// sets up OAuth providers using goth. Providers without configured client
// credentials are skipped; with none configured, password auth is the only
// way in.
func InitializeProviders() error {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	var providers []goth.Provider

	if os.Getenv("GOOGLE_CLIENT_ID") != "" && os.Getenv("GOOGLE_CLIENT_SECRET") != "" {
		providers = append(providers, google.New(
			os.Getenv("GOOGLE_CLIENT_ID"),
			os.Getenv("GOOGLE_CLIENT_SECRET"),
			baseURL+"/api/v1/auth/google/callback",
			"email", "profile",
		))
	}

	if os.Getenv("GITHUB_CLIENT_ID") != "" && os.Getenv("GITHUB_CLIENT_SECRET") != "" {
		providers = append(providers, github.New(
			os.Getenv("GITHUB_CLIENT_ID"),
			os.Getenv("GITHUB_CLIENT_SECRET"),
			baseURL+"/api/v1/auth/github/callback",
			"user:email",
		))
	}

	if len(providers) == 0 {
		return nil
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set when OAuth providers are configured")
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))

	// configure cookie for OAuth redirects
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300, // 5 minutes, enough for OAuth flow
		HttpOnly: true,
		Secure:   strings.HasPrefix(baseURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	goth.UseProviders(providers...)
	return nil
}
