package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"starwars_api/internal/handlers"
	"starwars_api/internal/utils"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, Handlers{
		Auth:      handlers.NewAuthHandler(nil),
		Users:     handlers.NewUserHandler(nil),
		Favorites: handlers.NewFavoriteHandler(nil),
		Catalog:   handlers.NewCatalogHandler(nil),
	}, utils.NewTokenManager([]byte("secret"), time.Minute))
	return router
}

func TestRegisteredRoutes(t *testing.T) {
	var got []string
	for _, r := range newRouter().Routes() {
		got = append(got, r.Method+" "+r.Path)
	}

	assert.ElementsMatch(t, []string{
		"GET /",
		"GET /metrics",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"GET /api/v1/users",
		"GET /api/v1/users/me",
		"PATCH /api/v1/users/me",
		"DELETE /api/v1/users/me",
		"GET /api/v1/users/me/favorites",
		"POST /api/v1/users/me/favorites/planets/:planet_id",
		"DELETE /api/v1/users/me/favorites/planets/:planet_id",
		"POST /api/v1/users/me/favorites/characters/:character_id",
		"DELETE /api/v1/users/me/favorites/characters/:character_id",
		"GET /api/v1/planets",
		"GET /api/v1/planets/:id",
		"GET /api/v1/planets/:id/favorited-by",
		"GET /api/v1/characters",
		"GET /api/v1/characters/:id",
		"GET /api/v1/characters/:id/favorited-by",
	}, got)
}

func TestUserRoutesRequireToken(t *testing.T) {
	router := newRouter()
	for _, path := range []string{"/api/v1/users", "/api/v1/users/me", "/api/v1/users/me/favorites"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	router := newRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
