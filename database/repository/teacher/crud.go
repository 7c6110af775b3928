// File: database/repository/teacher/crud.go
package teacherRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campusroom/models"
)

func (r *mongoTeacherRepo) Create(ctx context.Context, t *models.Teacher) (*models.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to insert teacher: %w", err)
	}
	return t, nil
}

func (r *mongoTeacherRepo) Update(ctx context.Context, t *models.Teacher) (*models.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	t.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": t.ID}, t)
	if err != nil {
		return nil, fmt.Errorf("failed to update teacher: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}

func (r *mongoTeacherRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTeacherRepo) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t models.Teacher
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoTeacherRepo) GetByDepartment(ctx context.Context, departmentID string) ([]models.Teacher, error) {
	return r.find(ctx, bson.M{"department_id": departmentID})
}

func (r *mongoTeacherRepo) GetAll(ctx context.Context) ([]models.Teacher, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoTeacherRepo) find(ctx context.Context, filter bson.M) ([]models.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teachers: %w", err)
	}
	defer cursor.Close(ctx)

	var teachers []models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("error decoding teachers: %w", err)
	}
	return teachers, nil
}
