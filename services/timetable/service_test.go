package timetable

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"campusroom/models"
	"campusroom/services/schedule"
)

// memRepo is an in-memory TimetableRepository for service tests.
type memRepo struct {
	entries  map[string]models.Entry
	nextID   int
	fetchErr error
}

func newMemRepo() *memRepo {
	return &memRepo{entries: map[string]models.Entry{}}
}

func (m *memRepo) Create(_ context.Context, e *models.Entry) (*models.Entry, error) {
	if e.ID == "" {
		m.nextID++
		e.ID = fmt.Sprintf("e%d", m.nextID)
	}
	m.entries[e.ID] = *e
	return e, nil
}

func (m *memRepo) Update(_ context.Context, e *models.Entry) (*models.Entry, error) {
	if _, ok := m.entries[e.ID]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	m.entries[e.ID] = *e
	return e, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.entries, id)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*models.Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &e, nil
}

func (m *memRepo) GetByClassroomAndDate(_ context.Context, classroomID, date string) ([]models.Entry, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	var out []models.Entry
	for _, e := range m.entries {
		if e.ClassroomID == classroomID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo) GetByDate(_ context.Context, date string) ([]models.Entry, error) {
	var out []models.Entry
	for _, e := range m.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo) GetByTeacherAndDate(_ context.Context, teacherID, date string) ([]models.Entry, error) {
	var out []models.Entry
	for _, e := range m.entries {
		if e.TeacherID == teacherID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo) SetManualStatus(_ context.Context, id, status string) (*models.Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	e.ManualStatus = status
	m.entries[id] = e
	return &e, nil
}

func (m *memRepo) Watch(_ context.Context) (*mongo.ChangeStream, error) {
	return nil, errors.New("not supported in memRepo")
}

func (m *memRepo) EnsureIndexes() error { return nil }

// fixedDirectory resolves every classroom to a single fixture room.
type fixedDirectory struct{}

func (fixedDirectory) GetClassroomByID(_ context.Context, id string) (*models.Classroom, error) {
	return &models.Classroom{ID: id, Name: "101", FloorID: "f1", BuildingID: "b1"}, nil
}

func (fixedDirectory) GetFloorByID(_ context.Context, id string) (*models.Floor, error) {
	return &models.Floor{ID: id, Label: "1st Floor", BuildingID: "b1"}, nil
}

func (fixedDirectory) GetBuildingByID(_ context.Context, id string) (*models.Building, error) {
	return &models.Building{ID: id, Name: "Main Block"}, nil
}

type fixedTeachers struct{}

func (fixedTeachers) GetByID(_ context.Context, id string) (*models.Teacher, error) {
	return &models.Teacher{ID: id, Name: "A. Rao"}, nil
}

func newService(repo *memRepo) *DefaultTimetableService {
	return &DefaultTimetableService{Repo: repo, Directory: fixedDirectory{}, Teachers: fixedTeachers{}}
}

func request(classroomID, date, start, end string) EntryRequest {
	return EntryRequest{
		ClassroomID: classroomID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		ClassName:   "Physics II",
		TeacherID:   "t1",
	}
}

func TestCreateEntry_DenormalizesAndStores(t *testing.T) {
	svc := newService(newMemRepo())
	entry, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.StartMin != 540 || entry.EndMin != 600 {
		t.Fatalf("minutes = %d-%d, want 540-600", entry.StartMin, entry.EndMin)
	}
	if entry.RoomLabel != "101" || entry.BuildingLabel != "Main Block" || entry.TeacherName != "A. Rao" {
		t.Fatalf("labels not denormalized: %+v", entry)
	}
}

func TestCreateEntry_RejectsConflict(t *testing.T) {
	svc := newService(newMemRepo())
	if _, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "09:00", "10:00")); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "09:30", "10:30"))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("overlapping booking error = %v, want ErrSlotTaken", err)
	}

	// Back-to-back is legal.
	if _, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "10:00", "11:00")); err != nil {
		t.Fatalf("back-to-back booking rejected: %v", err)
	}
}

func TestCreateEntry_FetchFailureBlocksBooking(t *testing.T) {
	repo := newMemRepo()
	repo.fetchErr = errors.New("mongo down")
	svc := newService(repo)

	_, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "09:00", "10:00"))
	if !errors.Is(err, schedule.ErrAvailabilityCheck) {
		t.Fatalf("error = %v, want ErrAvailabilityCheck", err)
	}
	if len(repo.entries) != 0 {
		t.Fatal("entry persisted despite failed availability check")
	}
}

func TestCreateEntry_ValidatesInput(t *testing.T) {
	svc := newService(newMemRepo())

	_, err := svc.CreateEntry(context.Background(), request("5", "01/10/2024", "09:00", "10:00"))
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("bad date error = %v, want ErrInvalidDate", err)
	}

	_, err = svc.CreateEntry(context.Background(), request("5", "2024-01-10", "9am", "10:00"))
	if !errors.Is(err, schedule.ErrInvalidTimeFormat) {
		t.Fatalf("bad time error = %v, want ErrInvalidTimeFormat", err)
	}

	_, err = svc.CreateEntry(context.Background(), request("5", "2024-01-10", "10:00", "09:00"))
	if !errors.Is(err, schedule.ErrInvalidRange) {
		t.Fatalf("inverted range error = %v, want ErrInvalidRange", err)
	}
}

func TestUpdateEntry_ExcludesSelf(t *testing.T) {
	svc := newService(newMemRepo())
	created, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	// Same time, same entry: must not conflict with itself.
	updated, err := svc.UpdateEntry(context.Background(), created.ID, request("5", "2024-01-10", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("self-edit rejected: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed ID: %s -> %s", created.ID, updated.ID)
	}

	// But moving onto another entry still conflicts.
	if _, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "10:00", "11:00")); err != nil {
		t.Fatalf("second booking: %v", err)
	}
	_, err = svc.UpdateEntry(context.Background(), created.ID, request("5", "2024-01-10", "09:30", "10:30"))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("move onto occupied slot error = %v, want ErrSlotTaken", err)
	}
}

func TestCreateEntry_CanceledSlotIsReusable(t *testing.T) {
	svc := newService(newMemRepo())
	created, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if _, err := svc.SetManualStatus(context.Background(), created.ID, models.StatusCanceled); err != nil {
		t.Fatalf("SetManualStatus: %v", err)
	}

	// The canceled session no longer blocks the slot.
	if _, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "09:00", "10:00")); err != nil {
		t.Fatalf("rebooking over canceled session rejected: %v", err)
	}
}

func TestSetManualStatus_Validation(t *testing.T) {
	svc := newService(newMemRepo())
	created, err := svc.CreateEntry(context.Background(), request("5", "2024-01-10", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	if _, err := svc.SetManualStatus(context.Background(), created.ID, "postponed"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status error = %v, want ErrInvalidStatus", err)
	}

	updated, err := svc.SetManualStatus(context.Background(), created.ID, models.StatusDelayed)
	if err != nil {
		t.Fatalf("SetManualStatus: %v", err)
	}
	if updated.ManualStatus != models.StatusDelayed {
		t.Fatalf("manual status = %q", updated.ManualStatus)
	}

	// Clearing reverts to time-derived status.
	cleared, err := svc.SetManualStatus(context.Background(), created.ID, "")
	if err != nil {
		t.Fatalf("clear status: %v", err)
	}
	if cleared.ManualStatus != "" {
		t.Fatalf("manual status not cleared: %q", cleared.ManualStatus)
	}
}

func TestImport_ReportsPerRow(t *testing.T) {
	svc := newService(newMemRepo())
	rows := []models.ImportRow{
		{ClassroomID: "5", Date: "2024-01-10", StartTime: "09:00", EndTime: "10:00", ClassName: "Physics II"},
		{ClassroomID: "5", Date: "2024-01-10", StartTime: "09:30", EndTime: "10:30", ClassName: "Chemistry I"}, // conflicts
		{ClassroomID: "5", Date: "2024-01-10", StartTime: "10:00", EndTime: "11:00", ClassName: "Biology"},
		{ClassroomID: "5", Date: "2024-01-10", StartTime: "25:00", EndTime: "26:00", ClassName: "Ghost"}, // malformed
	}

	results, err := svc.Import(context.Background(), rows)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	if results[0].Error != "" || results[0].EntryID == "" {
		t.Fatalf("row 1 should succeed: %+v", results[0])
	}
	if results[1].Error == "" {
		t.Fatal("row 2 overlaps row 1 and must be rejected")
	}
	if results[2].Error != "" {
		t.Fatalf("row 3 is back-to-back and must succeed: %+v", results[2])
	}
	if results[3].Error == "" {
		t.Fatal("row 4 is malformed and must be rejected")
	}
}

func TestImport_StopsOnBackendFailure(t *testing.T) {
	repo := newMemRepo()
	repo.fetchErr = errors.New("mongo down")
	svc := newService(repo)

	_, err := svc.Import(context.Background(), []models.ImportRow{
		{ClassroomID: "5", Date: "2024-01-10", StartTime: "09:00", EndTime: "10:00", ClassName: "Physics II"},
	})
	if !errors.Is(err, schedule.ErrAvailabilityCheck) {
		t.Fatalf("error = %v, want ErrAvailabilityCheck", err)
	}
}
