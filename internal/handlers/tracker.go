package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/realtime"
	"github.com/Bloodcipher/Amara/internal/tracker"
)

type TrackerHandler struct {
	log    *logger.Logger
	hub    *realtime.SSEHub
	merger *tracker.Merger
}

func NewTrackerHandler(log *logger.Logger, hub *realtime.SSEHub, merger *tracker.Merger) *TrackerHandler {
	return &TrackerHandler{
		log:    log.With("handler", "TrackerHandler"),
		hub:    hub,
		merger: merger,
	}
}

// GET /api/tracker/summary
func (h *TrackerHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"summary": h.merger.Summary(),
		"live":    h.merger.Live(),
	})
}

// GET /api/tracker/activity
func (h *TrackerHandler) Activity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"activity": h.merger.Activity(),
		"live":     h.merger.Live(),
	})
}

// GET /api/tracker/stream
// Opens an SSE connection subscribed to the tracker channel. The current
// summary and feed are pushed first so a fresh display renders immediately.
func (h *TrackerHandler) Stream(c *gin.Context) {
	client := h.hub.NewSSEClient()
	h.hub.AddChannel(client, realtime.ChannelTracker)

	client.Outbound <- realtime.SSEMessage{
		Channel: realtime.ChannelTracker,
		Event:   realtime.SSEEventTrackerSnapshot,
		Data:    h.merger.Summary(),
	}
	feed := h.merger.Activity()
	for i := len(feed) - 1; i >= 0; i-- {
		// replay oldest first so the client ends up newest-first
		select {
		case client.Outbound <- realtime.SSEMessage{
			Channel: realtime.ChannelTracker,
			Event:   realtime.SSEEventTrackerActivity,
			Data:    feed[i],
		}:
		default:
		}
	}

	h.hub.ServeHTTP(c.Writer, c.Request, client)
	h.hub.CloseClient(client)
}
