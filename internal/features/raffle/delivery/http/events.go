package http

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"raffle-manager-backend/internal/common/logger"
)

// @Summary Live raffle events
// @Description Server-Sent Events stream: raffle.created, raffle.updated, raffle.deleted, prize.drawn, raffle.closed
// @Tags raffles
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /raffles/events [get]
func (h *RaffleHandler) streamEvents(c *gin.Context) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	logger.Debug().Str("client_ip", c.ClientIP()).Msg("Event stream opened")

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.SSEvent("ready", gin.H{"at": time.Now().UTC()})
	c.Writer.Flush()
	c.Stream(func(w io.Writer) bool {
		select {
		case evt, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(evt.Type, evt)
			return true
		case t := <-ticker.C:
			c.SSEvent("ping", gin.H{"at": t.UTC()})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	logger.Debug().Str("client_ip", c.ClientIP()).Msg("Event stream closed")
}
