package handlers

import (
	"net/http"

	"campusroom/models"
	"campusroom/services/timetable"
	"campusroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimetableHandler serves the booking endpoints.
type TimetableHandler struct {
	Svc timetable.TimetableService
}

// NewTimetableHandler constructs a TimetableHandler.
func NewTimetableHandler(svc timetable.TimetableService) *TimetableHandler {
	return &TimetableHandler{Svc: svc}
}

// CreateEntryHandler books a class session after the availability check.
func (h *TimetableHandler) CreateEntryHandler(c *gin.Context) {
	var req timetable.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	entry, err := h.Svc.CreateEntry(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Warn("Booking rejected", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to book session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateEntryHandler edits an existing session; the edited entry never
// conflicts with its own slot.
func (h *TimetableHandler) UpdateEntryHandler(c *gin.Context) {
	var req timetable.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	id := c.Param("id")
	entry, err := h.Svc.UpdateEntry(c.Request.Context(), id, req)
	if err != nil {
		getLogger(c).Warn("Booking update rejected", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to update session", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *TimetableHandler) DeleteEntryHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteEntry(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete entry", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to delete session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// SetStatusHandler applies or clears a manual status override.
func (h *TimetableHandler) SetStatusHandler(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	id := c.Param("id")
	entry, err := h.Svc.SetManualStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		getLogger(c).Warn("Status override rejected", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to set status", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CheckAvailabilityHandler probes a slot without booking it. A backend
// failure is reported as 503, not as an available slot.
func (h *TimetableHandler) CheckAvailabilityHandler(c *gin.Context) {
	classroomID := c.Query("classroomId")
	date := c.Query("date")
	start := c.Query("start")
	end := c.Query("end")
	excludeID := c.Query("excludeId")
	if classroomID == "" || date == "" || start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "classroomId, date, start and end are required")
		return
	}

	free, err := h.Svc.CheckAvailability(c.Request.Context(), classroomID, date, start, end, excludeID)
	if err != nil {
		getLogger(c).Warn("Availability check failed", zap.String("classroomId", classroomID), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Availability check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": free})
}

// GetRoomDayHandler lists one classroom's sessions for a date.
func (h *TimetableHandler) GetRoomDayHandler(c *gin.Context) {
	entries, err := h.Svc.GetRoomDay(c.Request.Context(), c.Param("classroomId"), c.Query("date"))
	if err != nil {
		getLogger(c).Error("Failed to list room sessions", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetTeacherDayHandler lists one teacher's sessions for a date.
func (h *TimetableHandler) GetTeacherDayHandler(c *gin.Context) {
	entries, err := h.Svc.GetTeacherDay(c.Request.Context(), c.Param("teacherId"), c.Query("date"))
	if err != nil {
		getLogger(c).Error("Failed to list teacher sessions", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// ImportHandler applies a batch of pre-parsed timetable rows.
func (h *TimetableHandler) ImportHandler(c *gin.Context) {
	var body struct {
		Rows []models.ImportRow `json:"rows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	results, err := h.Svc.Import(c.Request.Context(), body.Rows)
	if err != nil {
		getLogger(c).Error("Bulk import aborted", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Bulk import failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
