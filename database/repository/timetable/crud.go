// File: database/repository/timetable/crud.go
package timetableRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"campusroom/models"
)

func (r *mongoTimetableRepo) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to insert timetable entry: %w", err)
	}
	return entry, nil
}

func (r *mongoTimetableRepo) Update(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": entry.ID}, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update timetable entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return entry, nil
}

func (r *mongoTimetableRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete timetable entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTimetableRepo) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.Entry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoTimetableRepo) SetManualStatus(ctx context.Context, id, status string) (*models.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"manual_status": status, "updated_at": time.Now()}}
	if status == "" {
		// Clearing the override reverts the entry to time-derived status.
		update = bson.M{
			"$unset": bson.M{"manual_status": ""},
			"$set":   bson.M{"updated_at": time.Now()},
		}
	}

	res := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update)
	if res.Err() != nil {
		return nil, res.Err()
	}
	return r.GetByID(ctx, id)
}
