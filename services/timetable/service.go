// File: services/timetable/service.go
package timetable

import (
	"context"
	"errors"
	"fmt"
	"time"

	timetableRepo "campusroom/database/repository/timetable"
	"campusroom/models"
	"campusroom/services/schedule"
)

var (
	// ErrSlotTaken reports a proposed session that overlaps an existing one.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrNotFound reports a missing timetable entry.
	ErrNotFound = errors.New("timetable entry not found")
	// ErrInvalidStatus reports a manual status outside the allowed set.
	ErrInvalidStatus = errors.New("invalid manual status")
	// ErrInvalidDate reports a date not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")
)

// DirectoryLookup is the slice of the campus repository the timetable service
// needs to denormalize display labels onto entries.
type DirectoryLookup interface {
	GetClassroomByID(ctx context.Context, id string) (*models.Classroom, error)
	GetFloorByID(ctx context.Context, id string) (*models.Floor, error)
	GetBuildingByID(ctx context.Context, id string) (*models.Building, error)
}

// TeacherLookup resolves teacher display names.
type TeacherLookup interface {
	GetByID(ctx context.Context, id string) (*models.Teacher, error)
}

// EntryRequest carries the caller-supplied fields of a create or update.
type EntryRequest struct {
	ClassroomID string `json:"classroom_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	ClassName   string `json:"class_name" binding:"required"`
	Subject     string `json:"subject"`
	TeacherID   string `json:"teacher_id"`
}

// TimetableService manages class session bookings. Every write path runs
// through the same availability check; no call site re-derives overlap
// arithmetic on its own.
type TimetableService interface {
	CreateEntry(ctx context.Context, req EntryRequest) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id string, req EntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	SetManualStatus(ctx context.Context, id, status string) (*models.Entry, error)
	CheckAvailability(ctx context.Context, classroomID, date, startTime, endTime, excludeID string) (bool, error)
	GetRoomDay(ctx context.Context, classroomID, date string) ([]models.Entry, error)
	GetTeacherDay(ctx context.Context, teacherID, date string) ([]models.Entry, error)
	Import(ctx context.Context, rows []models.ImportRow) ([]models.ImportResult, error)
}

// DefaultTimetableService is the production implementation.
type DefaultTimetableService struct {
	Repo      timetableRepo.TimetableRepository
	Directory DirectoryLookup
	Teachers  TeacherLookup
}

// validateRequest normalizes the request times and checks the date shape.
func validateRequest(req EntryRequest) (startMin, endMin int, err error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	startMin, err = schedule.ParseClock(req.StartTime)
	if err != nil {
		return 0, 0, err
	}
	endMin, err = schedule.ParseClock(req.EndTime)
	if err != nil {
		return 0, 0, err
	}
	if startMin >= endMin {
		return 0, 0, fmt.Errorf("%w: %s is not before %s", schedule.ErrInvalidRange, req.StartTime, req.EndTime)
	}
	return startMin, endMin, nil
}

// buildEntry assembles an entry from a validated request, resolving display
// labels from the directory.
func (s *DefaultTimetableService) buildEntry(ctx context.Context, req EntryRequest, startMin, endMin int) (*models.Entry, error) {
	room, err := s.Directory.GetClassroomByID(ctx, req.ClassroomID)
	if err != nil {
		return nil, fmt.Errorf("classroom %s not found: %w", req.ClassroomID, err)
	}

	entry := &models.Entry{
		ClassroomID: req.ClassroomID,
		Date:        req.Date,
		StartTime:   schedule.FormatClock(startMin),
		EndTime:     schedule.FormatClock(endMin),
		StartMin:    startMin,
		EndMin:      endMin,
		ClassName:   req.ClassName,
		Subject:     req.Subject,
		TeacherID:   req.TeacherID,
		RoomLabel:   room.Name,
	}

	if floor, err := s.Directory.GetFloorByID(ctx, room.FloorID); err == nil {
		entry.FloorLabel = floor.Label
	}
	if building, err := s.Directory.GetBuildingByID(ctx, room.BuildingID); err == nil {
		entry.BuildingLabel = building.Name
	}
	if req.TeacherID != "" {
		if teacher, err := s.Teachers.GetByID(ctx, req.TeacherID); err == nil {
			entry.TeacherName = teacher.Name
		}
	}
	return entry, nil
}

func (s *DefaultTimetableService) CreateEntry(ctx context.Context, req EntryRequest) (*models.Entry, error) {
	startMin, endMin, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	free, err := schedule.IsSlotAvailable(ctx, s.Repo, req.ClassroomID, req.Date, startMin, endMin, "")
	if err != nil {
		// A failed check blocks the booking; it must never pass as available.
		return nil, err
	}
	if !free {
		return nil, fmt.Errorf("%w: %s %s-%s in classroom %s", ErrSlotTaken, req.Date, req.StartTime, req.EndTime, req.ClassroomID)
	}

	entry, err := s.buildEntry(ctx, req, startMin, endMin)
	if err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, entry)
}

func (s *DefaultTimetableService) UpdateEntry(ctx context.Context, id string, req EntryRequest) (*models.Entry, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	startMin, endMin, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	// The entry being edited is excluded so an unchanged time never
	// conflicts with itself.
	free, err := schedule.IsSlotAvailable(ctx, s.Repo, req.ClassroomID, req.Date, startMin, endMin, id)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, fmt.Errorf("%w: %s %s-%s in classroom %s", ErrSlotTaken, req.Date, req.StartTime, req.EndTime, req.ClassroomID)
	}

	entry, err := s.buildEntry(ctx, req, startMin, endMin)
	if err != nil {
		return nil, err
	}
	entry.ID = existing.ID
	entry.ManualStatus = existing.ManualStatus
	entry.CreatedAt = existing.CreatedAt
	return s.Repo.Update(ctx, entry)
}

func (s *DefaultTimetableService) DeleteEntry(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *DefaultTimetableService) SetManualStatus(ctx context.Context, id, status string) (*models.Entry, error) {
	if status != "" && !models.ManualStatuses[status] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	entry, err := s.Repo.SetManualStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entry, nil
}

func (s *DefaultTimetableService) CheckAvailability(ctx context.Context, classroomID, date, startTime, endTime, excludeID string) (bool, error) {
	startMin, err := schedule.ParseClock(startTime)
	if err != nil {
		return false, err
	}
	endMin, err := schedule.ParseClock(endTime)
	if err != nil {
		return false, err
	}
	return schedule.IsSlotAvailable(ctx, s.Repo, classroomID, date, startMin, endMin, excludeID)
}

func (s *DefaultTimetableService) GetRoomDay(ctx context.Context, classroomID, date string) ([]models.Entry, error) {
	return s.Repo.GetByClassroomAndDate(ctx, classroomID, date)
}

func (s *DefaultTimetableService) GetTeacherDay(ctx context.Context, teacherID, date string) ([]models.Entry, error) {
	return s.Repo.GetByTeacherAndDate(ctx, teacherID, date)
}

// Import applies pre-parsed bulk rows one by one through the same conflict
// check as single bookings. Rows are independent: a rejected row does not
// stop the rest, each outcome is reported back per row.
func (s *DefaultTimetableService) Import(ctx context.Context, rows []models.ImportRow) ([]models.ImportResult, error) {
	results := make([]models.ImportResult, 0, len(rows))
	for i, row := range rows {
		req := EntryRequest{
			ClassroomID: row.ClassroomID,
			Date:        row.Date,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
			ClassName:   row.ClassName,
			Subject:     row.Subject,
			TeacherID:   row.TeacherID,
		}
		entry, err := s.CreateEntry(ctx, req)
		if err != nil {
			if errors.Is(err, schedule.ErrAvailabilityCheck) {
				// Backend trouble is not a per-row problem; stop the import.
				return results, err
			}
			results = append(results, models.ImportResult{Row: i + 1, Error: err.Error()})
			continue
		}
		results = append(results, models.ImportResult{Row: i + 1, EntryID: entry.ID})
	}
	return results, nil
}
