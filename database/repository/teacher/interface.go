// File: database/repository/teacher/interface.go
package teacherRepo

import (
	"context"

	"campusroom/database"
	"campusroom/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TeacherRepository persists teacher directory records.
type TeacherRepository interface {
	Create(ctx context.Context, t *models.Teacher) (*models.Teacher, error)
	Update(ctx context.Context, t *models.Teacher) (*models.Teacher, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Teacher, error)
	GetByDepartment(ctx context.Context, departmentID string) ([]models.Teacher, error)
	GetAll(ctx context.Context) ([]models.Teacher, error)
}

type mongoTeacherRepo struct {
	coll *mongo.Collection
}

// NewMongoTeacherRepo constructs a new MongoDB TeacherRepository.
func NewMongoTeacherRepo() TeacherRepository {
	return &mongoTeacherRepo{
		coll: database.DB().Collection("teachers"),
	}
}
