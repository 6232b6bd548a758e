package api

import (
	"io"

	"workshop-admin-api/internal/infra/realtime"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	hub *realtime.Hub
}

func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// @Summary Event stream
// @Description Server-sent events: heartbeats plus operations_changed nudges
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	ch, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Kind), event)
			return true
		case <-clientGone:
			return false
		}
	})
}
