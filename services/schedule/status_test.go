package schedule

import (
	"testing"
	"time"

	"campusroom/models"
)

// istTime builds an instant whose reference wall clock reads the given date
// and HH:MM.
func istTime(t *testing.T, date, clock string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, refLocation)
	if err != nil {
		t.Fatalf("bad fixture time %s %s: %v", date, clock, err)
	}
	return parsed
}

func TestResolveStatus_TimeDerived(t *testing.T) {
	booking := entry("b1", "5", "2024-01-10", 540, 600, "") // 09:00-10:00

	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before start today", istTime(t, "2024-01-10", "08:30"), models.StatusScheduled},
		{"at start", istTime(t, "2024-01-10", "09:00"), models.StatusOngoing},
		{"mid session", istTime(t, "2024-01-10", "09:30"), models.StatusOngoing},
		{"at end exactly", istTime(t, "2024-01-10", "10:00"), models.StatusOngoing},
		{"one minute past end", istTime(t, "2024-01-10", "10:01"), models.StatusEnded},
		{"previous date", istTime(t, "2024-01-11", "06:00"), models.StatusEnded},
		{"future date", istTime(t, "2024-01-09", "12:00"), models.StatusScheduled},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ResolveStatus(booking, c.now); got != c.want {
				t.Fatalf("ResolveStatus at %v = %q, want %q", c.now, got, c.want)
			}
		})
	}
}

func TestResolveStatus_ManualOverrides(t *testing.T) {
	mid := istTime(t, "2024-01-10", "09:30")
	after := istTime(t, "2024-01-10", "11:00")

	// Sticky overrides do not decay with time.
	for _, status := range []string{models.StatusCanceled, models.StatusRescheduled, models.StatusDelayed} {
		booking := entry("b1", "5", "2024-01-10", 540, 600, status)
		if got := ResolveStatus(booking, mid); got != status {
			t.Fatalf("manual %q at 09:30 = %q", status, got)
		}
		if got := ResolveStatus(booking, after); got != status {
			t.Fatalf("manual %q at 11:00 = %q, overrides must be sticky", status, got)
		}
	}

	// Manual ongoing does not survive past the session window.
	ongoing := entry("b1", "5", "2024-01-10", 540, 600, models.StatusOngoing)
	if got := ResolveStatus(ongoing, mid); got != models.StatusOngoing {
		t.Fatalf("manual ongoing inside window = %q", got)
	}
	if got := ResolveStatus(ongoing, after); got != models.StatusEnded {
		t.Fatalf("manual ongoing past end = %q, want ended", got)
	}
	nextDay := istTime(t, "2024-01-11", "08:00")
	if got := ResolveStatus(ongoing, nextDay); got != models.StatusEnded {
		t.Fatalf("manual ongoing on a later date = %q, want ended", got)
	}

	// Ended is terminal.
	ended := entry("b1", "5", "2024-01-10", 540, 600, models.StatusEnded)
	if got := ResolveStatus(ended, mid); got != models.StatusEnded {
		t.Fatalf("manual ended = %q", got)
	}
}

func TestResolveStatus_Idempotent(t *testing.T) {
	booking := entry("b1", "5", "2024-01-10", 540, 600, "")
	now := istTime(t, "2024-01-10", "09:30")
	first := ResolveStatus(booking, now)
	second := ResolveStatus(booking, now)
	if first != second {
		t.Fatalf("ResolveStatus not idempotent: %q then %q", first, second)
	}
}

func TestNextUpcoming(t *testing.T) {
	now := istTime(t, "2024-01-10", "09:30")
	entries := []models.Entry{
		entry("a", "5", "2024-01-10", 540, 600, models.StatusCanceled), // 09:00-10:00 canceled
		entry("b", "5", "2024-01-10", 600, 660, ""),                    // 10:00-11:00
		entry("c", "5", "2024-01-10", 720, 780, ""),                    // 12:00-13:00
	}

	next := NextUpcoming(entries, now)
	if next == nil || next.ID != "b" {
		t.Fatalf("NextUpcoming = %+v, want entry b", next)
	}

	// A canceled future entry is never the fallback.
	canceledOnly := []models.Entry{
		entry("a", "5", "2024-01-10", 600, 660, models.StatusCanceled),
	}
	if got := NextUpcoming(canceledOnly, now); got != nil {
		t.Fatalf("NextUpcoming over canceled entries = %+v, want nil", got)
	}

	// A session already started is not upcoming.
	started := []models.Entry{
		entry("a", "5", "2024-01-10", 570, 660, ""),
	}
	if got := NextUpcoming(started, now); got != nil {
		t.Fatalf("NextUpcoming over started entry = %+v, want nil", got)
	}
}

func TestResolve_NextOnlyWhenRoomFree(t *testing.T) {
	now := istTime(t, "2024-01-10", "09:30")
	canceled := entry("a", "5", "2024-01-10", 540, 600, models.StatusCanceled)
	upcoming := entry("b", "5", "2024-01-10", 600, 660, "")
	siblings := []models.Entry{canceled, upcoming}

	res := Resolve(canceled, siblings, now)
	if res.Status != models.StatusCanceled {
		t.Fatalf("status = %q", res.Status)
	}
	if res.Next == nil || res.Next.ID != "b" {
		t.Fatalf("Next = %+v, want entry b", res.Next)
	}

	// An ongoing session has no fallback.
	ongoing := entry("c", "5", "2024-01-10", 540, 600, "")
	res = Resolve(ongoing, []models.Entry{ongoing, upcoming}, now)
	if res.Status != models.StatusOngoing {
		t.Fatalf("status = %q", res.Status)
	}
	if res.Next != nil {
		t.Fatalf("ongoing session must not carry a fallback, got %+v", res.Next)
	}

	// A delayed future session is not its own fallback.
	delayed := entry("d", "5", "2024-01-10", 600, 660, models.StatusDelayed)
	res = Resolve(delayed, []models.Entry{delayed}, now)
	if res.Status != models.StatusDelayed {
		t.Fatalf("status = %q", res.Status)
	}
	if res.Next != nil {
		t.Fatalf("delayed session resolved itself as fallback: %+v", res.Next)
	}
}

func TestRoomOccupied(t *testing.T) {
	now := istTime(t, "2024-01-10", "09:30")

	// Canceled session does not hold the room; upcoming session does not either.
	entries := []models.Entry{
		entry("a", "5", "2024-01-10", 540, 600, models.StatusCanceled),
		entry("b", "5", "2024-01-10", 600, 660, ""),
	}
	if RoomOccupied(entries, now) {
		t.Fatal("room with only canceled/upcoming sessions must be free")
	}

	entries = append(entries, entry("c", "5", "2024-01-10", 540, 600, ""))
	if !RoomOccupied(entries, now) {
		t.Fatal("room with an ongoing session must be occupied")
	}

	// Delayed and rescheduled sessions do not occupy.
	entries = []models.Entry{
		entry("d", "5", "2024-01-10", 540, 600, models.StatusDelayed),
		entry("e", "5", "2024-01-10", 540, 600, models.StatusRescheduled),
	}
	if RoomOccupied(entries, now) {
		t.Fatal("delayed/rescheduled sessions must not occupy the room")
	}
}
