package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"superheroes-api/internal/domain"
	"superheroes-api/internal/logger"
	"superheroes-api/internal/service"
)

func init() {
	binding.EnableDecoderDisallowUnknownFields = true
}

// HeroHandler handles hero-related HTTP requests.
type HeroHandler struct {
	heroService service.HeroServiceInterface
}

// NewHeroHandler creates a new HeroHandler.
func NewHeroHandler(heroService service.HeroServiceInterface) *HeroHandler {
	return &HeroHandler{
		heroService: heroService,
	}
}

// PaginationResponse describes the page returned by List.
type PaginationResponse struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// ListResponse is the body of GET /superheroes.
type ListResponse struct {
	Data       []service.HeroResponse `json:"data"`
	Total      int                    `json:"total"`
	Pagination PaginationResponse     `json:"pagination"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRoutes mounts the hero routes under BasePath.
func (h *HeroHandler) RegisterRoutes(r gin.IRouter) {
	heroes := r.Group(BasePath)
	heroes.POST("", h.Create)
	heroes.GET("", h.List)
	heroes.GET("/stats", h.Stats)
	heroes.GET("/search", h.Search)
	heroes.GET("/:id", h.Get)
	heroes.PATCH("/:id", h.Update)
	heroes.DELETE("/:id", h.Delete)
}

// Create handles POST /superheroes
func (h *HeroHandler) Create(c *gin.Context) {
	var in domain.CreateHeroInput
	if err := bindJSON(c, &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hero, err := h.heroService.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hero)
}

// List handles GET /superheroes
func (h *HeroHandler) List(c *gin.Context) {
	filter, err := service.ParseHeroFilter(c.Request.URL.Query())
	if err != nil {
		writeError(c, err)
		return
	}

	page, err := h.heroService.FindAll(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Data:       page.Data,
		Total:      page.Total,
		Pagination: paginate(filter, page.Total),
	})
}

// Stats handles GET /superheroes/stats
func (h *HeroHandler) Stats(c *gin.Context) {
	stats, err := h.heroService.GetStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Search handles GET /superheroes/search?alias=
func (h *HeroHandler) Search(c *gin.Context) {
	heroes, err := h.heroService.FindByAlias(c.Request.Context(), c.Query("alias"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, heroes)
}

// Get handles GET /superheroes/:id
func (h *HeroHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	hero, err := h.heroService.FindOne(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, hero)
}

// Update handles PATCH /superheroes/:id
func (h *HeroHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in domain.UpdateHeroInput
	if err := bindJSON(c, &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hero, err := h.heroService.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, hero)
}

// Delete handles DELETE /superheroes/:id
func (h *HeroHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	msg, err := h.heroService.HardDelete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// paginate fills in the pagination block; limit defaults to the total.
func paginate(filter domain.HeroFilter, total int) PaginationResponse {
	limit := total
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	offset := 0
	if filter.Offset != nil {
		offset = *filter.Offset
	}
	return PaginationResponse{
		Limit:   limit,
		Offset:  offset,
		Total:   total,
		HasNext: offset+limit < total,
		HasPrev: offset > 0,
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body into dst, capping its size and rejecting
// unknown fields, and turns decoder errors into client-facing messages.
func bindJSON(c *gin.Context, dst any) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return errors.New("request body is required")
	case errors.As(err, &typeErr):
		return fmt.Errorf("field %s has the wrong type", typeErr.Field)
	case errors.As(err, &maxErr):
		return errors.New("request body is too large")
	default:
		return fmt.Errorf("invalid request body: %s", err.Error())
	}
}

// writeError maps service errors to HTTP responses. Unexpected errors are
// logged and reported without their cause.
func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": ve.Fields})
	case errors.Is(err, domain.ErrHeroNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrHeroNotFound.Error()})
	case errors.Is(err, domain.ErrAliasConflict):
		c.JSON(http.StatusConflict, gin.H{"error": domain.ErrAliasConflict.Error()})
	case errors.Is(err, domain.ErrCreateFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrCreateFailed.Error()})
	case errors.Is(err, domain.ErrUpdateFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrUpdateFailed.Error()})
	default:
		logger.FromContext(c.Request.Context()).Error("Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
