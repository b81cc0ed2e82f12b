package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superheroes-api/internal/domain"
	"superheroes-api/internal/handler"
	"superheroes-api/internal/infrastructure/database"
	"superheroes-api/internal/middleware"
	"superheroes-api/internal/repository"
	"superheroes-api/internal/service"
	"superheroes-api/internal/validator"
)

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLite(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.MigrateUp(db, database.DialectSQLite))

	dialect, err := repository.NewDialect(database.DialectSQLite)
	require.NoError(t, err)

	svc := service.NewHeroService(repository.NewSQLHeroRepository(db, dialect), validator.NewValidator(), nil)
	return newRouter([]string{"http://localhost:4200"},
		handler.NewHeroHandler(svc),
		handler.NewHealthHandler(db, nil),
	)
}

func call(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_HeroLifecycle(t *testing.T) {
	router := setupApp(t)

	w := call(router, http.MethodPost, "/superheroes",
		`{"name":"Clark Kent","alias":"Superman","powers":["Flight","Super strength"],"city":"Metropolis","powerLevel":10}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created service.HeroResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Superman", created.Alias)
	assert.Equal(t, []string{"Flight", "Super strength"}, created.Powers)
	assert.True(t, created.IsActive)
	assert.Equal(t, 2, created.PowerCount)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = call(router, http.MethodPost, "/superheroes",
		`{"name":"Someone","alias":"Superman","powers":"x","city":"Gotham","powerLevel":3}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(router, http.MethodGet, "/superheroes?name=CLARK&limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list handler.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Data, 1)
	assert.Equal(t, 5, list.Pagination.Limit)

	w = call(router, http.MethodGet, "/superheroes/search?alias=man", "")
	require.Equal(t, http.StatusOK, w.Code)
	var found []service.HeroResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Len(t, found, 1)

	w = call(router, http.MethodPatch, "/superheroes/1", `{"isActive":false,"powerLevel":9}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated service.HeroResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.False(t, updated.IsActive)
	assert.Equal(t, 9, updated.PowerLevel)
	assert.Equal(t, "Superman", updated.Alias)

	w = call(router, http.MethodGet, "/superheroes/search?alias=man", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = call(router, http.MethodGet, "/superheroes/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.HeroStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 0, stats.Active)
	assert.Equal(t, 1, stats.Inactive)
	assert.Equal(t, map[int]int{9: 1}, stats.ByPowerLevel)
	assert.Equal(t, map[string]int{"Metropolis": 1}, stats.ByCities)

	w = call(router, http.MethodDelete, "/superheroes/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Superhero 1 permanently deleted"}`, w.Body.String())

	w = call(router, http.MethodGet, "/superheroes/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Health(t *testing.T) {
	router := setupApp(t)

	w := call(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, handler.WelcomeMessage, w.Body.String())

	w = call(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health handler.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, handler.ServiceName, health.Service)

	w = call(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	router := setupApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/superheroes", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSConfig(t *testing.T) {
	c := corsConfig([]string{"*"})
	assert.True(t, c.AllowAllOrigins)
	assert.Empty(t, c.AllowOrigins)

	c = corsConfig([]string{"https://a.example", "https://b.example"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowOrigins)
}

func TestRouter_RejectsPowerWithComma(t *testing.T) {
	router := setupApp(t)

	w := call(router, http.MethodPost, "/superheroes",
		`{"name":"Clark Kent","alias":"Superman","powers":["Flight, X-ray vision"],"city":"Metropolis","powerLevel":10}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"powers"`)

	w = call(router, http.MethodGet, "/superheroes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list handler.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Zero(t, list.Total)
}
