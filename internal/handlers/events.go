package handlers

import (
	"bufio"
	"encoding/json"
	"time"

	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// EventsHandler streams change events over SSE
type EventsHandler struct {
	Store *services.Store
	Bus   *events.Bus
}

// StreamEvents handles GET /api/events
// @Summary Stream change events
// @Description Server-sent event stream of the authenticated user's data changes
// @Tags Events
// @Produce text/event-stream
// @Param kinds query string false "Entity kinds to subscribe to, repeatable or comma-separated"
// @Success 200 {string} string "SSE stream"
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /events [get]
func (h *EventsHandler) StreamEvents(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "data.authorization.user")
	}

	kinds := make([]events.Kind, 0)
	for _, k := range parseCSVQuery(c, "kinds") {
		kinds = append(kinds, events.Kind(k))
	}

	ch, cancel := h.Bus.Subscribe(userID, h.Store.Tier(), 64, kinds...)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		heartbeat := time.NewTicker(15 * time.Second)
		defer heartbeat.Stop()

		for {
			select {
			case <-heartbeat.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case ev, ok := <-ch:
				if !ok {
					return
				}
				payload, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				if _, err := w.WriteString("event: change\ndata: " + string(payload) + "\n\n"); err != nil {
					return
				}
				// A failed flush is the only reliable disconnect signal here.
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}
