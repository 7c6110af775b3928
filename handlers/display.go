package handlers

import (
	"io"
	"net/http"
	"time"

	"campusroom/services/display"
	"campusroom/services/schedule"
	"campusroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DisplayHandler serves the public occupancy board.
type DisplayHandler struct {
	Svc display.DisplayService
	Hub *display.Hub
}

// NewDisplayHandler constructs a DisplayHandler.
func NewDisplayHandler(svc display.DisplayService, hub *display.Hub) *DisplayHandler {
	return &DisplayHandler{Svc: svc, Hub: hub}
}

// GetBoardHandler returns the occupancy board for a date, defaulting to today
// in the reference timezone.
func (h *DisplayHandler) GetBoardHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = schedule.DateString(time.Now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date must be YYYY-MM-DD")
		return
	}

	board, err := h.Svc.GetBoard(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("Failed to build board", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build board", err.Error())
		return
	}
	c.JSON(http.StatusOK, board)
}

// StreamBoardHandler pushes board updates to the display over SSE until the
// client disconnects.
func (h *DisplayHandler) StreamBoardHandler(c *gin.Context) {
	updates, cancel := h.Hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Send the current board first so a fresh display is not blank until the
	// next change.
	date := schedule.DateString(time.Now())
	if board, err := h.Svc.GetBoard(c.Request.Context(), date); err == nil {
		c.SSEvent("board", board)
		c.Writer.Flush()
	}

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case payload, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("board", string(payload))
			return true
		}
	})
}
