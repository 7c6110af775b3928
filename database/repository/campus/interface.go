// File: database/repository/campus/interface.go
package campusRepo

import (
	"context"

	"campusroom/database"
	"campusroom/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CampusRepository persists the physical campus directory: buildings, floors,
// classrooms, and departments.
type CampusRepository interface {
	CreateBuilding(ctx context.Context, b *models.Building) (*models.Building, error)
	UpdateBuilding(ctx context.Context, b *models.Building) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id string) error
	GetBuildingByID(ctx context.Context, id string) (*models.Building, error)
	GetAllBuildings(ctx context.Context) ([]models.Building, error)

	CreateFloor(ctx context.Context, f *models.Floor) (*models.Floor, error)
	UpdateFloor(ctx context.Context, f *models.Floor) (*models.Floor, error)
	DeleteFloor(ctx context.Context, id string) error
	GetFloorByID(ctx context.Context, id string) (*models.Floor, error)
	GetFloorsByBuilding(ctx context.Context, buildingID string) ([]models.Floor, error)

	CreateClassroom(ctx context.Context, c *models.Classroom) (*models.Classroom, error)
	UpdateClassroom(ctx context.Context, c *models.Classroom) (*models.Classroom, error)
	DeleteClassroom(ctx context.Context, id string) error
	GetClassroomByID(ctx context.Context, id string) (*models.Classroom, error)
	GetClassroomsByFloor(ctx context.Context, floorID string) ([]models.Classroom, error)
	GetAllClassrooms(ctx context.Context) ([]models.Classroom, error)

	CreateDepartment(ctx context.Context, d *models.Department) (*models.Department, error)
	UpdateDepartment(ctx context.Context, d *models.Department) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id string) error
	GetDepartmentByID(ctx context.Context, id string) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]models.Department, error)
}

type mongoCampusRepo struct {
	buildings   *mongo.Collection
	floors      *mongo.Collection
	classrooms  *mongo.Collection
	departments *mongo.Collection
}

// NewMongoCampusRepo constructs a new MongoDB CampusRepository.
func NewMongoCampusRepo() CampusRepository {
	db := database.DB()
	return &mongoCampusRepo{
		buildings:   db.Collection("buildings"),
		floors:      db.Collection("floors"),
		classrooms:  db.Collection("classrooms"),
		departments: db.Collection("departments"),
	}
}
