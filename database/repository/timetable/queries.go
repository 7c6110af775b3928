// File: database/repository/timetable/queries.go
package timetableRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campusroom/models"
)

func (r *mongoTimetableRepo) findSorted(ctx context.Context, filter bson.M) ([]models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_min", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding timetable entries: %w", err)
	}
	return entries, nil
}

func (r *mongoTimetableRepo) GetByClassroomAndDate(ctx context.Context, classroomID, date string) ([]models.Entry, error) {
	return r.findSorted(ctx, bson.M{"classroom_id": classroomID, "date": date})
}

func (r *mongoTimetableRepo) GetByDate(ctx context.Context, date string) ([]models.Entry, error) {
	return r.findSorted(ctx, bson.M{"date": date})
}

func (r *mongoTimetableRepo) GetByTeacherAndDate(ctx context.Context, teacherID, date string) ([]models.Entry, error) {
	return r.findSorted(ctx, bson.M{"teacher_id": teacherID, "date": date})
}
