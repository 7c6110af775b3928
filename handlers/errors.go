package handlers

import (
	"errors"
	"net/http"

	"campusroom/services/campus"
	"campusroom/services/schedule"
	"campusroom/services/timetable"
)

// statusForError maps service errors onto HTTP status codes. An availability
// check that could not be completed is a 503: the caller must retry, never
// assume the slot is free.
func statusForError(err error) int {
	switch {
	case errors.Is(err, campus.ErrNotFound), errors.Is(err, timetable.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, campus.ErrHasDependents), errors.Is(err, timetable.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, schedule.ErrInvalidTimeFormat),
		errors.Is(err, schedule.ErrInvalidRange),
		errors.Is(err, timetable.ErrInvalidDate),
		errors.Is(err, timetable.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, schedule.ErrAvailabilityCheck):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
