// File: database/repository/timetable/indexes.go
package timetableRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the timetable collection.
func (r *mongoTimetableRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on entry ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for classroomId and date (conflict-check query pattern)
		{
			Keys:    bson.D{{Key: "classroom_id", Value: 1}, {Key: "date", Value: 1}, {Key: "start_min", Value: 1}},
			Options: options.Index().SetName("classroom_date_start_idx"),
		},
		// Teacher schedule lookups
		{
			Keys:    bson.D{{Key: "teacher_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("teacher_date_idx"),
		},
		// Board queries fetch whole days
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create timetable indexes: %w", err)
	}
	return nil
}
