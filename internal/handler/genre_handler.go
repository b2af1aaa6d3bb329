package handler

import (
	"context"
	"net/http"

	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GenreManager is the resource manager behind the /genre routes.
type GenreManager interface {
	List(ctx context.Context, p service.Pagination) ([]models.Genre, error)
	Get(ctx context.Context, id uint) (*models.Genre, error)
	Create(ctx context.Context, in service.CreateGenreInput) (*models.Genre, error)
	Update(ctx context.Context, id uint, in service.UpdateGenreInput) (*models.Genre, error)
	Remove(ctx context.Context, id uint) (*models.Genre, error)
}

// GenreHandler handles genre-related requests.
type GenreHandler struct {
	genres GenreManager
	events *hub.Hub
}

// NewGenreHandler creates a new genres handler. events may be nil.
func NewGenreHandler(genres GenreManager, events *hub.Hub) *GenreHandler {
	return &GenreHandler{genres: genres, events: events}
}

// RegisterRoutes registers genre routes.
func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/genre", h.List)
	rg.GET("/genre/:id", h.Get)
	rg.POST("/genre", h.Create)
	rg.PATCH("/genre/:id", h.Update)
	rg.DELETE("/genre/:id", h.Remove)
}

// List godoc
// @Summary      Get a list of genres
// @Tags         genre
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of genres"
// @Param        offset query     int  false  "Number of genres to skip"
// @Success      200    {array}   GenreResponse
// @Failure      400    {object}  middleware.ErrorResponse
// @Router       /genre [get]
func (h *GenreHandler) List(c *gin.Context) {
	page, err := bindPagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	genres, err := h.genres.List(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newGenreResponses(genres))
}

// Get godoc
// @Summary      Get a single genre by ID
// @Tags         genre
// @Produce      json
// @Param        id  path      int  true  "Genre ID"
// @Success      200 {object}  GenreResponse
// @Failure      400 {object}  middleware.ErrorResponse "Bad request"
// @Failure      404 {object}  middleware.ErrorResponse "Genre not found"
// @Router       /genre/{id} [get]
func (h *GenreHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	genre, err := h.genres.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newGenreResponse(*genre))
}

// Create godoc
// @Summary      Create a new genre
// @Tags         genre
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Param        input body      CreateGenreRequest true "Genre Info"
// @Success      201   {object}  GenreResponse
// @Failure      400   {object}  middleware.ErrorResponse
// @Failure      401   {object}  middleware.ErrorResponse
// @Failure      409   {object}  middleware.ErrorResponse "Genre already exists"
// @Router       /genre [post]
func (h *GenreHandler) Create(c *gin.Context) {
	var input CreateGenreRequest
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	genre, err := h.genres.Create(c.Request.Context(), service.CreateGenreInput{Name: *input.Name})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := newGenreResponse(*genre)
	h.publish("created", response)
	c.JSON(http.StatusCreated, response)
}

// Update godoc
// @Summary      Update a genre
// @Tags         genre
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Param        id    path      int                true  "Genre ID"
// @Param        input body      UpdateGenreRequest true  "Fields to change"
// @Success      200   {object}  GenreResponse
// @Failure      400   {object}  middleware.ErrorResponse
// @Failure      401   {object}  middleware.ErrorResponse
// @Failure      404   {object}  middleware.ErrorResponse "Genre not found"
// @Failure      409   {object}  middleware.ErrorResponse "Genre already exists"
// @Router       /genre/{id} [patch]
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var input UpdateGenreRequest
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	genre, err := h.genres.Update(c.Request.Context(), id, service.UpdateGenreInput{Name: input.Name})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := newGenreResponse(*genre)
	h.publish("updated", response)
	c.JSON(http.StatusOK, response)
}

// Remove godoc
// @Summary      Delete a genre
// @Description  Deletes a genre and removes it from every game. Games are kept.
// @Tags         genre
// @Produce      json
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Param        id  path      int  true  "Genre ID"
// @Success      200 {object}  GenreResponse "The removed genre"
// @Failure      400 {object}  middleware.ErrorResponse
// @Failure      401 {object}  middleware.ErrorResponse
// @Failure      404 {object}  middleware.ErrorResponse "Genre not found"
// @Router       /genre/{id} [delete]
func (h *GenreHandler) Remove(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	genre, err := h.genres.Remove(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := newGenreResponse(*genre)
	h.publish("removed", response)
	c.JSON(http.StatusOK, response)
}

func (h *GenreHandler) publish(action string, genre GenreResponse) {
	if h.events != nil {
		h.events.Publish(hub.TopicGenre, action, genre)
	}
}
