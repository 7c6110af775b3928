// File: services/campus/service.go
package campus

import (
	"context"
	"errors"
	"fmt"
	"time"

	campusRepo "campusroom/database/repository/campus"
	teacherRepo "campusroom/database/repository/teacher"
	timetableRepo "campusroom/database/repository/timetable"
	"campusroom/models"
	"campusroom/services/schedule"
)

var (
	// ErrNotFound reports a missing directory record.
	ErrNotFound = errors.New("record not found")
	// ErrHasDependents blocks deletion of a record that is still referenced.
	ErrHasDependents = errors.New("record still has dependents")
)

// CampusService manages the campus directory: buildings, floors, classrooms,
// departments, and teachers.
type CampusService interface {
	CreateBuilding(ctx context.Context, b models.Building) (*models.Building, error)
	UpdateBuilding(ctx context.Context, b models.Building) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id string) error
	GetBuildings(ctx context.Context) ([]models.Building, error)

	CreateFloor(ctx context.Context, f models.Floor) (*models.Floor, error)
	UpdateFloor(ctx context.Context, f models.Floor) (*models.Floor, error)
	DeleteFloor(ctx context.Context, id string) error
	GetFloors(ctx context.Context, buildingID string) ([]models.Floor, error)

	CreateClassroom(ctx context.Context, c models.Classroom) (*models.Classroom, error)
	UpdateClassroom(ctx context.Context, c models.Classroom) (*models.Classroom, error)
	DeleteClassroom(ctx context.Context, id string) error
	GetClassrooms(ctx context.Context, floorID string) ([]models.Classroom, error)

	CreateDepartment(ctx context.Context, d models.Department) (*models.Department, error)
	UpdateDepartment(ctx context.Context, d models.Department) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id string) error
	GetDepartments(ctx context.Context) ([]models.Department, error)

	CreateTeacher(ctx context.Context, t models.Teacher) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, t models.Teacher) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error
	GetTeachers(ctx context.Context, departmentID string) ([]models.Teacher, error)
}

// DefaultCampusService is the production implementation.
type DefaultCampusService struct {
	Repo      campusRepo.CampusRepository
	Teachers  teacherRepo.TeacherRepository
	Timetable timetableRepo.TimetableRepository
}

// Buildings.

func (s *DefaultCampusService) CreateBuilding(ctx context.Context, b models.Building) (*models.Building, error) {
	if b.Name == "" {
		return nil, fmt.Errorf("building name is required")
	}
	return s.Repo.CreateBuilding(ctx, &b)
}

func (s *DefaultCampusService) UpdateBuilding(ctx context.Context, b models.Building) (*models.Building, error) {
	if _, err := s.Repo.GetBuildingByID(ctx, b.ID); err != nil {
		return nil, fmt.Errorf("%w: building %s", ErrNotFound, b.ID)
	}
	return s.Repo.UpdateBuilding(ctx, &b)
}

func (s *DefaultCampusService) DeleteBuilding(ctx context.Context, id string) error {
	floors, err := s.Repo.GetFloorsByBuilding(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check building floors: %w", err)
	}
	if len(floors) > 0 {
		return fmt.Errorf("%w: building %s has %d floors", ErrHasDependents, id, len(floors))
	}
	return s.Repo.DeleteBuilding(ctx, id)
}

func (s *DefaultCampusService) GetBuildings(ctx context.Context) ([]models.Building, error) {
	return s.Repo.GetAllBuildings(ctx)
}

// Floors.

func (s *DefaultCampusService) CreateFloor(ctx context.Context, f models.Floor) (*models.Floor, error) {
	if _, err := s.Repo.GetBuildingByID(ctx, f.BuildingID); err != nil {
		return nil, fmt.Errorf("%w: building %s", ErrNotFound, f.BuildingID)
	}
	return s.Repo.CreateFloor(ctx, &f)
}

func (s *DefaultCampusService) UpdateFloor(ctx context.Context, f models.Floor) (*models.Floor, error) {
	if _, err := s.Repo.GetFloorByID(ctx, f.ID); err != nil {
		return nil, fmt.Errorf("%w: floor %s", ErrNotFound, f.ID)
	}
	return s.Repo.UpdateFloor(ctx, &f)
}

func (s *DefaultCampusService) DeleteFloor(ctx context.Context, id string) error {
	rooms, err := s.Repo.GetClassroomsByFloor(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check floor classrooms: %w", err)
	}
	if len(rooms) > 0 {
		return fmt.Errorf("%w: floor %s has %d classrooms", ErrHasDependents, id, len(rooms))
	}
	return s.Repo.DeleteFloor(ctx, id)
}

func (s *DefaultCampusService) GetFloors(ctx context.Context, buildingID string) ([]models.Floor, error) {
	return s.Repo.GetFloorsByBuilding(ctx, buildingID)
}

// Classrooms.

func (s *DefaultCampusService) CreateClassroom(ctx context.Context, c models.Classroom) (*models.Classroom, error) {
	floor, err := s.Repo.GetFloorByID(ctx, c.FloorID)
	if err != nil {
		return nil, fmt.Errorf("%w: floor %s", ErrNotFound, c.FloorID)
	}
	// Keep the building reference consistent with the floor's.
	c.BuildingID = floor.BuildingID
	return s.Repo.CreateClassroom(ctx, &c)
}

func (s *DefaultCampusService) UpdateClassroom(ctx context.Context, c models.Classroom) (*models.Classroom, error) {
	if _, err := s.Repo.GetClassroomByID(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("%w: classroom %s", ErrNotFound, c.ID)
	}
	if floor, err := s.Repo.GetFloorByID(ctx, c.FloorID); err == nil {
		c.BuildingID = floor.BuildingID
	}
	return s.Repo.UpdateClassroom(ctx, &c)
}

func (s *DefaultCampusService) DeleteClassroom(ctx context.Context, id string) error {
	// Block deletion while today's entries exist to avoid orphaning the board.
	today := schedule.DateString(time.Now())
	entries, err := s.Timetable.GetByClassroomAndDate(ctx, id, today)
	if err != nil {
		return fmt.Errorf("failed to check classroom entries: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: classroom %s has %d entries today", ErrHasDependents, id, len(entries))
	}
	return s.Repo.DeleteClassroom(ctx, id)
}

func (s *DefaultCampusService) GetClassrooms(ctx context.Context, floorID string) ([]models.Classroom, error) {
	if floorID == "" {
		return s.Repo.GetAllClassrooms(ctx)
	}
	return s.Repo.GetClassroomsByFloor(ctx, floorID)
}

// Departments.

func (s *DefaultCampusService) CreateDepartment(ctx context.Context, d models.Department) (*models.Department, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("department name is required")
	}
	return s.Repo.CreateDepartment(ctx, &d)
}

func (s *DefaultCampusService) UpdateDepartment(ctx context.Context, d models.Department) (*models.Department, error) {
	if _, err := s.Repo.GetDepartmentByID(ctx, d.ID); err != nil {
		return nil, fmt.Errorf("%w: department %s", ErrNotFound, d.ID)
	}
	return s.Repo.UpdateDepartment(ctx, &d)
}

func (s *DefaultCampusService) DeleteDepartment(ctx context.Context, id string) error {
	teachers, err := s.Teachers.GetByDepartment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check department teachers: %w", err)
	}
	if len(teachers) > 0 {
		return fmt.Errorf("%w: department %s has %d teachers", ErrHasDependents, id, len(teachers))
	}
	return s.Repo.DeleteDepartment(ctx, id)
}

func (s *DefaultCampusService) GetDepartments(ctx context.Context) ([]models.Department, error) {
	return s.Repo.GetAllDepartments(ctx)
}

// Teachers.

func (s *DefaultCampusService) CreateTeacher(ctx context.Context, t models.Teacher) (*models.Teacher, error) {
	if _, err := s.Repo.GetDepartmentByID(ctx, t.DepartmentID); err != nil {
		return nil, fmt.Errorf("%w: department %s", ErrNotFound, t.DepartmentID)
	}
	return s.Teachers.Create(ctx, &t)
}

func (s *DefaultCampusService) UpdateTeacher(ctx context.Context, t models.Teacher) (*models.Teacher, error) {
	if _, err := s.Teachers.GetByID(ctx, t.ID); err != nil {
		return nil, fmt.Errorf("%w: teacher %s", ErrNotFound, t.ID)
	}
	return s.Teachers.Update(ctx, &t)
}

func (s *DefaultCampusService) DeleteTeacher(ctx context.Context, id string) error {
	return s.Teachers.Delete(ctx, id)
}

func (s *DefaultCampusService) GetTeachers(ctx context.Context, departmentID string) ([]models.Teacher, error) {
	if departmentID == "" {
		return s.Teachers.GetAll(ctx)
	}
	return s.Teachers.GetByDepartment(ctx, departmentID)
}
