package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superheroes-api/internal/domain"
	"superheroes-api/internal/mocks"
	"superheroes-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupHeroRouter(t *testing.T) (*gin.Engine, *mocks.MockHeroServiceInterface) {
	t.Helper()
	mockService := mocks.NewMockHeroServiceInterface(t)
	handler := NewHeroHandler(mockService)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router, mockService
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func supermanResponse() *service.HeroResponse {
	return &service.HeroResponse{
		ID:                    1,
		Name:                  "Clark Kent",
		Alias:                 "SUPERMAN",
		Powers:                []string{"Flight", "Super strength"},
		City:                  "Metropolis",
		PowerLevel:            10,
		IsActive:              true,
		CreatedAt:             "2024-05-01T10:00:00.000Z",
		UpdatedAt:             "2024-05-01T10:00:00.000Z",
		PowerCount:            2,
		PowerLevelDescription: "Elite",
	}
}

func TestHeroHandler_Create(t *testing.T) {
	t.Run("creates hero", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in domain.CreateHeroInput) bool {
				return in.Alias == "SUPERMAN" &&
					len(in.Powers) == 2 &&
					in.PowerLevel != nil && *in.PowerLevel == 10 &&
					in.IsActive == nil
			})).
			Return(supermanResponse(), nil)

		w := doRequest(router, http.MethodPost, "/superheroes",
			`{"name":"Clark Kent","alias":"SUPERMAN","powers":["Flight","Super strength"],"city":"Metropolis","powerLevel":10}`)

		require.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(2), response["powerCount"])
		assert.Equal(t, "Elite", response["powerLevelDescription"])
		assert.Equal(t, true, response["isActive"])
		assert.Equal(t, "2024-05-01T10:00:00.000Z", response["createdAt"])
	})

	t.Run("accepts powers as a comma separated string", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in domain.CreateHeroInput) bool {
				return len(in.Powers) == 2 && in.Powers[0] == "Flight" && in.Powers[1] == "Super strength"
			})).
			Return(supermanResponse(), nil)

		w := doRequest(router, http.MethodPost, "/superheroes",
			`{"name":"Clark Kent","alias":"SUPERMAN","powers":"Flight, Super strength","city":"Metropolis","powerLevel":10}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		router, _ := setupHeroRouter(t)

		w := doRequest(router, http.MethodPost, "/superheroes",
			`{"name":"Clark Kent","alias":"SUPERMAN","powers":["Flight"],"city":"Metropolis","powerLevel":10,"secretIdentity":"yes"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "secretIdentity")
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		router, _ := setupHeroRouter(t)

		w := doRequest(router, http.MethodPost, "/superheroes", `{"powerLevel":"high"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "powerLevel")
	})

	t.Run("rejects empty body", func(t *testing.T) {
		router, _ := setupHeroRouter(t)

		w := doRequest(router, http.MethodPost, "/superheroes", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "request body is required")
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		router, _ := setupHeroRouter(t)

		body := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		w := doRequest(router, http.MethodPost, "/superheroes", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "request body is too large")
	})

	t.Run("rejects numeric and boolean strings", func(t *testing.T) {
		router, _ := setupHeroRouter(t)

		w := doRequest(router, http.MethodPost, "/superheroes",
			`{"name":"Clark Kent","alias":"SUPERMAN","powers":["Flight"],"city":"Metropolis","powerLevel":"5"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "field powerLevel has the wrong type")

		w = doRequest(router, http.MethodPost, "/superheroes",
			`{"name":"Clark Kent","alias":"SUPERMAN","powers":["Flight"],"city":"Metropolis","powerLevel":5,"isActive":"false"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "field isActive has the wrong type")
	})

	t.Run("validation error includes details", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(nil, &domain.ValidationError{Fields: map[string]string{"powerLevel": "must be between 1 and 10"}})

		w := doRequest(router, http.MethodPost, "/superheroes", `{"name":"x","alias":"y","powers":["a"],"city":"z","powerLevel":11}`)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var response struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "must be between 1 and 10", response.Details["powerLevel"])
	})

	t.Run("alias conflict", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrAliasConflict)

		w := doRequest(router, http.MethodPost, "/superheroes", `{"name":"x","alias":"SUPERMAN","powers":["a"],"city":"z","powerLevel":5}`)

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "alias already exists")
	})

	t.Run("store failure hides the cause", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, errors.Join(domain.ErrCreateFailed, errors.New("connection refused")))

		w := doRequest(router, http.MethodPost, "/superheroes", `{"name":"x","alias":"y","powers":["a"],"city":"z","powerLevel":5}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestHeroHandler_List(t *testing.T) {
	t.Run("paginates with explicit limit and offset", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().
			FindAll(mock.Anything, mock.MatchedBy(func(f domain.HeroFilter) bool {
				return f.Limit != nil && *f.Limit == 2 && f.Offset != nil && *f.Offset == 2 &&
					f.IsActive != nil && *f.IsActive
			})).
			Return(&service.HeroPage{Data: []service.HeroResponse{*supermanResponse()}, Total: 5}, nil)

		w := doRequest(router, http.MethodGet, "/superheroes?limit=2&offset=2&isActive=true", "")

		require.Equal(t, http.StatusOK, w.Code)

		var response ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 1)
		assert.Equal(t, 5, response.Total)
		assert.Equal(t, PaginationResponse{Limit: 2, Offset: 2, Total: 5, HasNext: true, HasPrev: true}, response.Pagination)
	})

	t.Run("limit defaults to total", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().
			FindAll(mock.Anything, domain.HeroFilter{}).
			Return(&service.HeroPage{Data: []service.HeroResponse{}, Total: 3}, nil)

		w := doRequest(router, http.MethodGet, "/superheroes", "")

		require.Equal(t, http.StatusOK, w.Code)

		var response ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, PaginationResponse{Limit: 3, Offset: 0, Total: 3, HasNext: false, HasPrev: false}, response.Pagination)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("invalid query never reaches the service", func(t *testing.T) {
		router, _ := setupHeroRouter(t)

		w := doRequest(router, http.MethodGet, "/superheroes?isActive=yes&limit=0", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid boolean value")
		assert.Contains(t, w.Body.String(), "limit")
	})
}

func TestHeroHandler_Stats(t *testing.T) {
	router, mockService := setupHeroRouter(t)

	mockService.EXPECT().GetStats(mock.Anything).Return(&domain.HeroStats{
		Total:        3,
		Active:       2,
		Inactive:     1,
		ByPowerLevel: map[int]int{10: 1, 5: 2},
		ByCities:     map[string]int{"Gotham": 3},
	}, nil)

	w := doRequest(router, http.MethodGet, "/superheroes/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"total":3,"active":2,"inactive":1,"byPowerLevel":{"10":1,"5":2},"byCities":{"Gotham":3}}`,
		w.Body.String())
}

func TestHeroHandler_Search(t *testing.T) {
	t.Run("returns matches", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().FindByAlias(mock.Anything, "man").
			Return([]service.HeroResponse{*supermanResponse()}, nil)

		w := doRequest(router, http.MethodGet, "/superheroes/search?alias=man", "")

		require.Equal(t, http.StatusOK, w.Code)

		var response []service.HeroResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, "SUPERMAN", response[0].Alias)
	})

	t.Run("missing alias", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().FindByAlias(mock.Anything, "").
			Return(nil, domain.NewValidationError("alias", "alias is required"))

		w := doRequest(router, http.MethodGet, "/superheroes/search", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHeroHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)
		mockService.EXPECT().FindOne(mock.Anything, int64(1)).Return(supermanResponse(), nil)

		w := doRequest(router, http.MethodGet, "/superheroes/1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alias":"SUPERMAN"`)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)
		mockService.EXPECT().FindOne(mock.Anything, int64(999)).Return(nil, domain.ErrHeroNotFound)

		w := doRequest(router, http.MethodGet, "/superheroes/999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-integer id", func(t *testing.T) {
		router, _ := setupHeroRouter(t)

		w := doRequest(router, http.MethodGet, "/superheroes/abc", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "id must be an integer")
	})
}

func TestHeroHandler_Update(t *testing.T) {
	t.Run("updates provided fields", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)

		mockService.EXPECT().
			Update(mock.Anything, int64(1), mock.MatchedBy(func(in domain.UpdateHeroInput) bool {
				return in.City != nil && *in.City == "Smallville" && in.Name == nil && in.Powers == nil
			})).
			Return(supermanResponse(), nil)

		w := doRequest(router, http.MethodPatch, "/superheroes/1", `{"city":"Smallville"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("alias conflict", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)
		mockService.EXPECT().Update(mock.Anything, int64(1), mock.Anything).Return(nil, domain.ErrAliasConflict)

		w := doRequest(router, http.MethodPatch, "/superheroes/1", `{"alias":"SUPERMAN"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)
		mockService.EXPECT().Update(mock.Anything, int64(42), mock.Anything).Return(nil, domain.ErrHeroNotFound)

		w := doRequest(router, http.MethodPatch, "/superheroes/42", `{"city":"Gotham"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		router, _ := setupHeroRouter(t)

		w := doRequest(router, http.MethodPatch, "/superheroes/1", `{"id":7}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHeroHandler_Delete(t *testing.T) {
	t.Run("deletes hero", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)
		mockService.EXPECT().HardDelete(mock.Anything, int64(1)).Return("Superhero 1 permanently deleted", nil)

		w := doRequest(router, http.MethodDelete, "/superheroes/1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Superhero 1 permanently deleted"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := setupHeroRouter(t)
		mockService.EXPECT().HardDelete(mock.Anything, int64(999)).Return("", domain.ErrHeroNotFound)

		w := doRequest(router, http.MethodDelete, "/superheroes/999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPaginate(t *testing.T) {
	limit, offset := 10, 0
	got := paginate(domain.HeroFilter{Limit: &limit, Offset: &offset}, 10)
	assert.False(t, got.HasNext)
	assert.False(t, got.HasPrev)

	empty := paginate(domain.HeroFilter{}, 0)
	assert.Equal(t, PaginationResponse{}, empty)
}
