package stats_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reststats "codeberg.org/formboard/server/api/rest/stats"
	"codeberg.org/formboard/server/formboard/forms"
	"codeberg.org/formboard/server/formboard/stats"
	"codeberg.org/formboard/server/internal/auth"
	"codeberg.org/formboard/server/internal/memstore"
)

func newRouter(t *testing.T, store *memstore.Store) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	reststats.RegisterRoutes(router.Group("/api/v1"), stats.NewEngine(store))

	return router
}

func authedGet(t *testing.T, router *gin.Engine, userID, path string) *httptest.ResponseRecorder {
	t.Helper()

	token, err := auth.GenerateJWT(userID, "tester", "tester@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestGetUserStats(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	router := newRouter(t, store)

	owner := "11111111-1111-1111-1111-111111111111"
	filler := "22222222-2222-2222-2222-222222222222"

	form, err := store.Create(ctx, owner, forms.CreateFormRequest{
		Title: "pulse", URL: "https://forms.example.com/pulse", EstimatedTime: 3,
	})
	require.NoError(t, err)

	rating := 4
	_, err = store.UpsertCompletion(ctx, form.ID, filler, &rating, "")
	require.NoError(t, err)

	w := authedGet(t, router, owner, "/api/v1/stats/me")
	require.Equal(t, http.StatusOK, w.Code)

	var got stats.UserStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, 0, got.TotalFilled)
	assert.Equal(t, 1, got.FormsPosted)
	assert.InDelta(t, 4.0, got.AvgRating, 1e-9)
}

func TestGetUserStats_RequiresAuth(t *testing.T) {
	router := newRouter(t, memstore.New())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetActivity(t *testing.T) {
	store := memstore.New()
	router := newRouter(t, store)

	w := authedGet(t, router, "11111111-1111-1111-1111-111111111111", "/api/v1/stats/activity?days=30")
	require.Equal(t, http.StatusOK, w.Code)

	var got reststats.ActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, 30, got.Days)
	assert.Len(t, got.Activity, 31)
}

func TestGetActivity_InvalidDays(t *testing.T) {
	router := newRouter(t, memstore.New())
	userID := "11111111-1111-1111-1111-111111111111"

	for _, query := range []string{"days=0", "days=-5", "days=9000", "days=abc"} {
		w := authedGet(t, router, userID, "/api/v1/stats/activity?"+query)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestGetRecentActivity(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	router := newRouter(t, store)

	userID := "11111111-1111-1111-1111-111111111111"

	_, err := store.Create(ctx, userID, forms.CreateFormRequest{
		Title: "census", URL: "https://forms.example.com/census", EstimatedTime: 10,
	})
	require.NoError(t, err)

	w := authedGet(t, router, userID, "/api/v1/stats/recent")
	require.Equal(t, http.StatusOK, w.Code)

	var got reststats.RecentActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	require.Len(t, got.Activity, 1)
	assert.Equal(t, stats.ActivityPosted, got.Activity[0].Type)
	assert.Equal(t, "census", got.Activity[0].FormTitle)
}
