package auth

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"

	"codeberg.org/formboard/server/formboard/users"
	"codeberg.org/formboard/server/internal/auth"
	"codeberg.org/formboard/server/internal/errors"
)

// RegisterHandler godoc
// @Summary Register a new account
// @Description Create a user with username/password credentials. Returns the user and a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func RegisterHandler(userStore UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			errors.InternalError(c, "failed to process credentials", err)
			return
		}

		user, err := userStore.Create(c.Request.Context(), req.Username, strings.ToLower(req.Email), hash, req.FullName)

		if stderrors.Is(err, users.ErrUserExists) {
			errors.Conflict(c, "username or email already taken")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to create user", err)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Username, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{
			User:  user,
			Token: token,
		})
	}
}

// LoginHandler godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(userStore UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userStore.FindByUsername(c.Request.Context(), req.Username)

		if stderrors.Is(err, users.ErrUserNotFound) {
			errors.Unauthorized(c, "invalid credentials")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to look up user", err)
			return
		}

		// OAuth-only accounts carry no password credential
		if user.PasswordHash == nil || !auth.CheckPassword(*user.PasswordHash, req.Password) {
			errors.Unauthorized(c, "invalid credentials")
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Username, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			User:  user,
			Token: token,
		})
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(userStore UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userStore.FindByID(c.Request.Context(), userID)

		if stderrors.Is(err, users.ErrUserNotFound) {
			errors.NotFound(c, "user")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to load user", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// BeginAuthHandler godoc
// @Summary Start OAuth authentication
// @Description Begin OAuth authentication flow with specified provider (google, github)
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 302 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider} [get]
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !isValidProvider(provider) {
			errors.BadRequest(c, "invalid provider", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description OAuth provider callback. Returns user data and JWT token
// @Tags auth
// @Produce json
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider}/callback [get]
func CallbackHandler(userStore UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		user, err := userStore.FindOrCreateByProvider(
			c.Request.Context(),
			gothUser.Provider,
			gothUser.UserID,
			usernameFromEmail(gothUser.Email),
			gothUser.Email,
			gothUser.Name,
		)

		if err != nil {
			errors.InternalError(c, "failed to create user", err)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Username, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			User:  user,
			Token: token,
		})
	}
}

func isValidProvider(provider string) bool {
	return provider == "google" || provider == "github"
}

// derives an initial username for OAuth accounts; uniqueness conflicts are
// resolved by the store's provider upsert keeping the first value
func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}

	return email
}
