package handler

import (
	"io"
	"net/http"

	"gamecatalog/backend/internal/apperror"
	"gamecatalog/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// subscriberBuffer is how many events a slow subscriber may lag behind
// before further events are dropped for it.
const subscriberBuffer = 16

// EventsHandler streams catalog change events over Server-Sent Events.
type EventsHandler struct {
	hub *hub.Hub
}

func NewEventsHandler(h *hub.Hub) *EventsHandler {
	return &EventsHandler{hub: h}
}

func (h *EventsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.Stream)
}

// Stream godoc
// @Summary      Stream catalog changes
// @Description  Server-Sent Events feed of game and genre creations, updates and removals.
// @Tags         events
// @Produce      text/event-stream
// @Param        resource query string false "Only events of this resource" Enums(game, genre)
// @Success      200 {object} hub.Event
// @Failure      400 {object} middleware.ErrorResponse
// @Router       /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	topic := hub.TopicAll
	switch resource := c.Query("resource"); resource {
	case "":
	case hub.TopicGame, hub.TopicGenre:
		topic = resource
	default:
		_ = c.Error(apperror.ValidationFailed([]string{"resource must be one of the following values: game, genre"}))
		return
	}

	client := make(hub.Client, subscriberBuffer)
	h.hub.Subscribe(topic, client)
	defer h.hub.Unsubscribe(topic, client)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
