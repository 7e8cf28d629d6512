package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restauth "codeberg.org/formboard/server/api/rest/auth"
	"codeberg.org/formboard/server/internal/memstore"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	restauth.RegisterRoutes(router.Group("/api/v1"), memstore.New().Users())

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func register(t *testing.T, router *gin.Engine, username string) *httptest.ResponseRecorder {
	t.Helper()

	return postJSON(t, router, "/api/v1/auth/register", restauth.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct horse battery",
		FullName: "Test User",
	})
}

func TestRegisterAndLogin(t *testing.T) {
	router := newRouter(t)

	w := register(t, router, "ada")
	require.Equal(t, http.StatusCreated, w.Code)

	var created restauth.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Token)
	require.NotNil(t, created.User)
	assert.Equal(t, "ada", created.User.Username)
	assert.Nil(t, created.User.PasswordHash)

	w = postJSON(t, router, "/api/v1/auth/login", restauth.LoginRequest{
		Username: "ada",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var logged restauth.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.Equal(t, created.User.ID, logged.User.ID)
	assert.NotEmpty(t, logged.Token)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router := newRouter(t)

	require.Equal(t, http.StatusCreated, register(t, router, "ada").Code)
	assert.Equal(t, http.StatusConflict, register(t, router, "ada").Code)
}

func TestRegister_Validation(t *testing.T) {
	router := newRouter(t)

	w := postJSON(t, router, "/api/v1/auth/register", restauth.RegisterRequest{
		Username: "ab", // too short
		Email:    "not-an-email",
		Password: "short",
		FullName: "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newRouter(t)

	require.Equal(t, http.StatusCreated, register(t, router, "ada").Code)

	w := postJSON(t, router, "/api/v1/auth/login", restauth.LoginRequest{
		Username: "ada",
		Password: "wrong password!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	router := newRouter(t)

	w := postJSON(t, router, "/api/v1/auth/login", restauth.LoginRequest{
		Username: "ghost",
		Password: "whatever123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
