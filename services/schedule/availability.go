package schedule

import (
	"context"
	"fmt"

	"campusroom/models"
)

// EntryFetcher supplies the timetable entries the checker reads. The
// timetable repository implements it; tests substitute in-memory fakes.
type EntryFetcher interface {
	GetByClassroomAndDate(ctx context.Context, classroomID, date string) ([]models.Entry, error)
}

// Overlaps reports whether two half-open minute ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Ranges that only touch at a boundary do not
// overlap: back-to-back sessions are legal.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

// IsSlotAvailable reports whether the proposed [startMin, endMin) slot is free
// for the classroom on the given date. Entries with a canceled manual status
// never occupy a slot. excludeID, when non-empty, skips that entry so an edit
// does not conflict with itself.
//
// A fetch failure is returned as ErrAvailabilityCheck; the caller must block
// the booking action rather than optimistically proceed.
func IsSlotAvailable(ctx context.Context, fetch EntryFetcher, classroomID, date string, startMin, endMin int, excludeID string) (bool, error) {
	if startMin >= endMin {
		return false, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidRange, FormatClock(startMin), FormatClock(endMin))
	}

	entries, err := fetch.GetByClassroomAndDate(ctx, classroomID, date)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrAvailabilityCheck, err)
	}

	for _, e := range entries {
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		if e.ManualStatus == models.StatusCanceled {
			continue
		}
		if Overlaps(startMin, endMin, e.StartMin, e.EndMin) {
			return false, nil
		}
	}
	return true, nil
}
