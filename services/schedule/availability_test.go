package schedule

import (
	"context"
	"errors"
	"testing"

	"campusroom/models"
)

type fakeFetcher struct {
	entries []models.Entry
	err     error
}

func (f *fakeFetcher) GetByClassroomAndDate(_ context.Context, classroomID, date string) ([]models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Entry
	for _, e := range f.entries {
		if e.ClassroomID == classroomID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func entry(id, classroomID, date string, startMin, endMin int, manualStatus string) models.Entry {
	return models.Entry{
		ID:           id,
		ClassroomID:  classroomID,
		Date:         date,
		StartMin:     startMin,
		EndMin:       endMin,
		StartTime:    FormatClock(startMin),
		EndTime:      FormatClock(endMin),
		ManualStatus: manualStatus,
	}
}

func TestIsSlotAvailable_Overlaps(t *testing.T) {
	// Existing booking 09:00-10:00 in classroom 5 on 2024-01-10.
	fetch := &fakeFetcher{entries: []models.Entry{
		entry("b1", "5", "2024-01-10", 540, 600, ""),
	}}

	cases := []struct {
		name     string
		start    int
		end      int
		wantFree bool
	}{
		{"back-to-back after", 600, 660, true},
		{"back-to-back before", 480, 540, true},
		{"interior overlap", 570, 630, false},
		{"identical range", 540, 600, false},
		{"contained inside", 555, 585, false},
		{"containing", 500, 650, false},
		{"overlap at start", 500, 541, false},
		{"overlap at end", 599, 650, false},
		{"well before", 420, 480, true},
		{"well after", 660, 720, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			free, err := IsSlotAvailable(context.Background(), fetch, "5", "2024-01-10", c.start, c.end, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if free != c.wantFree {
				t.Fatalf("IsSlotAvailable(%s-%s) = %v, want %v", FormatClock(c.start), FormatClock(c.end), free, c.wantFree)
			}
		})
	}
}

func TestIsSlotAvailable_OtherRoomOrDate(t *testing.T) {
	fetch := &fakeFetcher{entries: []models.Entry{
		entry("b1", "5", "2024-01-10", 540, 600, ""),
	}}

	free, err := IsSlotAvailable(context.Background(), fetch, "6", "2024-01-10", 540, 600, "")
	if err != nil || !free {
		t.Fatalf("different classroom should be free, got %v, %v", free, err)
	}
	free, err = IsSlotAvailable(context.Background(), fetch, "5", "2024-01-11", 540, 600, "")
	if err != nil || !free {
		t.Fatalf("different date should be free, got %v, %v", free, err)
	}
}

func TestIsSlotAvailable_CanceledNeverBlocks(t *testing.T) {
	fetch := &fakeFetcher{entries: []models.Entry{
		entry("b1", "5", "2024-01-10", 540, 600, models.StatusCanceled),
	}}

	free, err := IsSlotAvailable(context.Background(), fetch, "5", "2024-01-10", 540, 600, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("canceled booking must not block an overlapping proposal")
	}
}

func TestIsSlotAvailable_ExcludeSelfOnEdit(t *testing.T) {
	fetch := &fakeFetcher{entries: []models.Entry{
		entry("b1", "5", "2024-01-10", 540, 600, ""),
	}}

	// Editing b1 without changing its time must not conflict with itself.
	free, err := IsSlotAvailable(context.Background(), fetch, "5", "2024-01-10", 540, 600, "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("edit of a booking must not conflict with its own slot")
	}

	// But it still conflicts with a second booking.
	fetch.entries = append(fetch.entries, entry("b2", "5", "2024-01-10", 570, 630, ""))
	free, err = IsSlotAvailable(context.Background(), fetch, "5", "2024-01-10", 540, 600, "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free {
		t.Fatal("edit must still conflict with other bookings")
	}
}

func TestIsSlotAvailable_InvalidRange(t *testing.T) {
	fetch := &fakeFetcher{}
	for _, c := range []struct{ start, end int }{{600, 540}, {540, 540}} {
		_, err := IsSlotAvailable(context.Background(), fetch, "5", "2024-01-10", c.start, c.end, "")
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("range %d-%d: got %v, want ErrInvalidRange", c.start, c.end, err)
		}
	}
}

func TestIsSlotAvailable_FetchFailure(t *testing.T) {
	fetch := &fakeFetcher{err: errors.New("connection reset")}
	free, err := IsSlotAvailable(context.Background(), fetch, "5", "2024-01-10", 540, 600, "")
	if !errors.Is(err, ErrAvailabilityCheck) {
		t.Fatalf("got %v, want ErrAvailabilityCheck", err)
	}
	if free {
		t.Fatal("a failed check must never report the slot as available")
	}
}

func TestOverlaps_Boundaries(t *testing.T) {
	if Overlaps(540, 600, 600, 660) {
		t.Fatal("touching boundary (end == start) must not overlap")
	}
	if Overlaps(600, 660, 540, 600) {
		t.Fatal("touching boundary (start == end) must not overlap")
	}
	if !Overlaps(540, 600, 599, 660) {
		t.Fatal("one-minute intersection must overlap")
	}
}
