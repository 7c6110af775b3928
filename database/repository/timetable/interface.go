// File: database/repository/timetable/interface.go
package timetableRepo

import (
	"context"

	"campusroom/database"
	"campusroom/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TimetableRepository persists timetable entries and exposes the read and
// change-notification surface the scheduling services consume.
type TimetableRepository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Entry, error)
	GetByClassroomAndDate(ctx context.Context, classroomID, date string) ([]models.Entry, error)
	GetByDate(ctx context.Context, date string) ([]models.Entry, error)
	GetByTeacherAndDate(ctx context.Context, teacherID, date string) ([]models.Entry, error)
	SetManualStatus(ctx context.Context, id, status string) (*models.Entry, error)
	Watch(ctx context.Context) (*mongo.ChangeStream, error)
	EnsureIndexes() error
}

type mongoTimetableRepo struct {
	coll *mongo.Collection
}

// NewMongoTimetableRepo constructs a new MongoDB TimetableRepository.
func NewMongoTimetableRepo() TimetableRepository {
	return &mongoTimetableRepo{
		coll: database.DB().Collection("timetable_entries"),
	}
}
