package schedule

import (
	"time"

	"campusroom/models"
)

// Resolution is the outcome of resolving one entry's display status. Next is
// populated only when the room is effectively free despite the entry existing
// (canceled, rescheduled, delayed, or ended), pointing at the classroom's
// earliest upcoming session for display fallback.
type Resolution struct {
	Status string
	Next   *models.Entry
}

// ResolveStatus computes the display status of an entry at the given instant.
// now may carry any location; it is shifted to the reference timezone first.
//
// Manual canceled, rescheduled, and delayed are sticky and do not decay with
// time. Manual ongoing holds only while the session window is open: once the
// end has passed, time wins and the entry reads as ended. Ended is terminal.
// A manual "scheduled" carries no extra information and falls through to the
// time-derived rules.
func ResolveStatus(e models.Entry, now time.Time) string {
	nowRef := ReferenceNow(now)
	today := nowRef.Format("2006-01-02")
	nowMin := nowRef.Hour()*60 + nowRef.Minute()

	switch e.ManualStatus {
	case models.StatusCanceled, models.StatusRescheduled, models.StatusDelayed:
		return e.ManualStatus
	case models.StatusEnded:
		return models.StatusEnded
	case models.StatusOngoing:
		if e.Date < today || (e.Date == today && nowMin > e.EndMin) {
			return models.StatusEnded
		}
		return models.StatusOngoing
	}

	switch {
	case e.Date < today:
		return models.StatusEnded
	case e.Date > today:
		return models.StatusScheduled
	case nowMin >= e.StartMin && nowMin <= e.EndMin:
		// Inclusive of both ends: a class reads ongoing at its exact end minute.
		return models.StatusOngoing
	case nowMin > e.EndMin:
		return models.StatusEnded
	default:
		return models.StatusScheduled
	}
}

// NextUpcoming returns a copy of the earliest non-canceled entry whose start
// is strictly after now's reference clock, or nil if none exists. entries are
// the classroom's sessions for the date under display.
func NextUpcoming(entries []models.Entry, now time.Time) *models.Entry {
	nowMin := ClockMinutes(now)

	var next *models.Entry
	for i := range entries {
		e := entries[i]
		if e.ManualStatus == models.StatusCanceled {
			continue
		}
		if e.StartMin <= nowMin {
			continue
		}
		if next == nil || e.StartMin < next.StartMin {
			next = &e
		}
	}
	if next == nil {
		return nil
	}
	copied := *next
	return &copied
}

// Resolve computes an entry's status and, when the room is effectively free,
// the classroom's next upcoming session among its siblings (the entry itself
// is never its own fallback).
func Resolve(e models.Entry, siblings []models.Entry, now time.Time) Resolution {
	status := ResolveStatus(e, now)
	res := Resolution{Status: status}

	switch status {
	case models.StatusCanceled, models.StatusRescheduled, models.StatusDelayed, models.StatusEnded:
		others := make([]models.Entry, 0, len(siblings))
		for _, s := range siblings {
			if s.ID == e.ID {
				continue
			}
			others = append(others, s)
		}
		res.Next = NextUpcoming(others, now)
	}
	return res
}

// RoomOccupied reports whether any of the classroom's entries resolves to
// ongoing at the given instant. Canceled, delayed, rescheduled, and ended
// entries do not hold a room occupied.
func RoomOccupied(entries []models.Entry, now time.Time) bool {
	for _, e := range entries {
		if ResolveStatus(e, now) == models.StatusOngoing {
			return true
		}
	}
	return false
}
