package display

import (
	"context"
	"testing"
	"time"

	"campusroom/models"
	"campusroom/services/schedule"
)

type fakeDirectory struct {
	rooms []models.Classroom
}

func (f *fakeDirectory) GetAllClassrooms(_ context.Context) ([]models.Classroom, error) {
	return f.rooms, nil
}

func (f *fakeDirectory) GetBuildingByID(_ context.Context, id string) (*models.Building, error) {
	return &models.Building{ID: id, Name: "Main Block"}, nil
}

func (f *fakeDirectory) GetFloorByID(_ context.Context, id string) (*models.Floor, error) {
	return &models.Floor{ID: id, Label: "1st Floor"}, nil
}

type fakeEntries struct {
	entries []models.Entry
}

func (f *fakeEntries) GetByDate(_ context.Context, date string) ([]models.Entry, error) {
	var out []models.Entry
	for _, e := range f.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func fixtureEntry(id, classroomID string, startMin, endMin int, manualStatus string) models.Entry {
	return models.Entry{
		ID:           id,
		ClassroomID:  classroomID,
		Date:         "2024-01-10",
		StartMin:     startMin,
		EndMin:       endMin,
		StartTime:    schedule.FormatClock(startMin),
		EndTime:      schedule.FormatClock(endMin),
		ManualStatus: manualStatus,
		ClassName:    "Physics II",
	}
}

// 09:30 IST on the board date.
func boardNow(t *testing.T) time.Time {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2024-01-10T09:30:00+05:30")
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return now
}

func TestComputeBoard_OngoingRoom(t *testing.T) {
	svc := &DefaultDisplayService{
		Classrooms: &fakeDirectory{rooms: []models.Classroom{{ID: "5", Name: "101", BuildingID: "b1", FloorID: "f1"}}},
		Entries:    &fakeEntries{entries: []models.Entry{fixtureEntry("a", "5", 540, 600, "")}},
	}

	board, err := svc.ComputeBoard(context.Background(), "2024-01-10", boardNow(t))
	if err != nil {
		t.Fatalf("ComputeBoard: %v", err)
	}
	if len(board.Rooms) != 1 {
		t.Fatalf("got %d rooms, want 1", len(board.Rooms))
	}

	room := board.Rooms[0]
	if room.Available {
		t.Fatal("room with ongoing session must not be available")
	}
	if room.Current == nil || room.Current.ID != "a" || room.Current.Status != models.StatusOngoing {
		t.Fatalf("Current = %+v, want ongoing entry a", room.Current)
	}
	if room.Next != nil {
		t.Fatalf("occupied room must carry no Next, got %+v", room.Next)
	}
	if room.BuildingName != "Main Block" || room.FloorLabel != "1st Floor" {
		t.Fatalf("labels missing: %+v", room)
	}
}

func TestComputeBoard_CanceledFreesRoomWithNextFallback(t *testing.T) {
	// A 09:00-10:00 canceled, B 10:00-11:00 scheduled; at 09:30 the room is
	// free and B is the upcoming fallback.
	svc := &DefaultDisplayService{
		Classrooms: &fakeDirectory{rooms: []models.Classroom{{ID: "5", Name: "101", BuildingID: "b1", FloorID: "f1"}}},
		Entries: &fakeEntries{entries: []models.Entry{
			fixtureEntry("a", "5", 540, 600, models.StatusCanceled),
			fixtureEntry("b", "5", 600, 660, ""),
		}},
	}

	board, err := svc.ComputeBoard(context.Background(), "2024-01-10", boardNow(t))
	if err != nil {
		t.Fatalf("ComputeBoard: %v", err)
	}

	room := board.Rooms[0]
	if !room.Available {
		t.Fatal("canceled session must not hold the room occupied")
	}
	if room.Next == nil || room.Next.ID != "b" {
		t.Fatalf("Next = %+v, want entry b", room.Next)
	}
	if room.Current != nil {
		t.Fatalf("free room must carry no Current, got %+v", room.Current)
	}
}

func TestComputeBoard_RoomWithoutEntries(t *testing.T) {
	svc := &DefaultDisplayService{
		Classrooms: &fakeDirectory{rooms: []models.Classroom{{ID: "9", Name: "204", BuildingID: "b1", FloorID: "f2"}}},
		Entries:    &fakeEntries{},
	}

	board, err := svc.ComputeBoard(context.Background(), "2024-01-10", boardNow(t))
	if err != nil {
		t.Fatalf("ComputeBoard: %v", err)
	}
	room := board.Rooms[0]
	if !room.Available || room.Current != nil || room.Next != nil {
		t.Fatalf("empty room should be plainly available: %+v", room)
	}
}
