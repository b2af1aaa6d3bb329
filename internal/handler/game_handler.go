package handler

import (
	"context"
	"net/http"

	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GameManager is the resource manager behind the /game routes.
type GameManager interface {
	List(ctx context.Context, p service.Pagination) ([]models.Game, error)
	Get(ctx context.Context, id uint) (*models.Game, error)
	Create(ctx context.Context, in service.CreateGameInput) (*models.Game, error)
	Update(ctx context.Context, id uint, in service.UpdateGameInput) (*models.Game, error)
	Remove(ctx context.Context, id uint) (*models.Game, error)
}

// GameHandler handles game-related requests.
type GameHandler struct {
	games  GameManager
	events *hub.Hub
}

// NewGameHandler creates a new games handler. events may be nil.
func NewGameHandler(games GameManager, events *hub.Hub) *GameHandler {
	return &GameHandler{games: games, events: events}
}

// RegisterRoutes registers game routes.
func (h *GameHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/game", h.List)
	rg.GET("/game/:id", h.Get)
	rg.POST("/game", h.Create)
	rg.PATCH("/game/:id", h.Update)
	rg.DELETE("/game/:id", h.Remove)
}

// List godoc
// @Summary      Get a list of games
// @Description  Retrieves games with their genres. Without limit every game is returned.
// @Tags         game
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of games"
// @Param        offset query     int  false  "Number of games to skip"
// @Success      200    {array}   GameResponse
// @Failure      400    {object}  middleware.ErrorResponse
// @Router       /game [get]
func (h *GameHandler) List(c *gin.Context) {
	page, err := bindPagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	games, err := h.games.List(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newGameResponses(games))
}

// Get godoc
// @Summary      Get a single game by ID
// @Tags         game
// @Produce      json
// @Param        id  path      int  true  "Game ID"
// @Success      200 {object}  GameResponse
// @Failure      400 {object}  middleware.ErrorResponse "Bad request"
// @Failure      404 {object}  middleware.ErrorResponse "Game not found"
// @Router       /game/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	game, err := h.games.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// Create godoc
// @Summary      Create a new game
// @Description  Creates a game. Genre names that do not exist yet are created.
// @Tags         game
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Param        input body      CreateGameRequest true "Game Info"
// @Success      201   {object}  GameResponse
// @Failure      400   {object}  middleware.ErrorResponse
// @Failure      401   {object}  middleware.ErrorResponse
// @Router       /game [post]
func (h *GameHandler) Create(c *gin.Context) {
	var input CreateGameRequest
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	game, err := h.games.Create(c.Request.Context(), service.CreateGameInput{
		Name:        *input.Name,
		Description: *input.Description,
		Image:       *input.Image,
		Genres:      input.Genres,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := newGameResponse(*game)
	h.publish("created", response)
	c.JSON(http.StatusCreated, response)
}

// Update godoc
// @Summary      Update a game
// @Description  Updates only the provided fields. When genres is given it replaces the game's genres.
// @Tags         game
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Param        id    path      int               true  "Game ID"
// @Param        input body      UpdateGameRequest true  "Fields to change"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  middleware.ErrorResponse
// @Failure      401   {object}  middleware.ErrorResponse
// @Failure      404   {object}  middleware.ErrorResponse "Game not found"
// @Router       /game/{id} [patch]
func (h *GameHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var input UpdateGameRequest
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	game, err := h.games.Update(c.Request.Context(), id, service.UpdateGameInput{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Genres:      input.Genres,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := newGameResponse(*game)
	h.publish("updated", response)
	c.JSON(http.StatusOK, response)
}

// Remove godoc
// @Summary      Delete a game
// @Description  Deletes a game and its genre associations. Genres are kept.
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Param        id  path      int  true  "Game ID"
// @Success      200 {object}  GameResponse "The removed game"
// @Failure      400 {object}  middleware.ErrorResponse
// @Failure      401 {object}  middleware.ErrorResponse
// @Failure      404 {object}  middleware.ErrorResponse "Game not found"
// @Router       /game/{id} [delete]
func (h *GameHandler) Remove(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	game, err := h.games.Remove(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := newGameResponse(*game)
	h.publish("removed", response)
	c.JSON(http.StatusOK, response)
}

func (h *GameHandler) publish(action string, game GameResponse) {
	if h.events != nil {
		h.events.Publish(hub.TopicGame, action, game)
	}
}
