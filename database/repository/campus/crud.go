// File: database/repository/campus/crud.go
package campusRepo

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

const opTimeout = 5 * time.Second

func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", coll.Name(), err)
	}
	return nil
}

func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	res, err := coll.ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", coll.Name(), err)
	}
	return out, nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var doc T
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Buildings.

func (r *mongoCampusRepo) CreateBuilding(ctx context.Context, b *models.Building) (*models.Building, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	if err := insertOne(ctx, r.buildings, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *mongoCampusRepo) UpdateBuilding(ctx context.Context, b *models.Building) (*models.Building, error) {
	b.UpdatedAt = time.Now()
	if err := replaceByID(ctx, r.buildings, b.ID, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *mongoCampusRepo) DeleteBuilding(ctx context.Context, id string) error {
	return deleteByID(ctx, r.buildings, id)
}

func (r *mongoCampusRepo) GetBuildingByID(ctx context.Context, id string) (*models.Building, error) {
	return findByID[models.Building](ctx, r.buildings, id)
}

func (r *mongoCampusRepo) GetAllBuildings(ctx context.Context) ([]models.Building, error) {
	return findMany[models.Building](ctx, r.buildings, bson.M{}, bson.D{{Key: "name", Value: 1}})
}

// Floors.

func (r *mongoCampusRepo) CreateFloor(ctx context.Context, f *models.Floor) (*models.Floor, error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.CreatedAt = time.Now()
	f.UpdatedAt = f.CreatedAt
	if err := insertOne(ctx, r.floors, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *mongoCampusRepo) UpdateFloor(ctx context.Context, f *models.Floor) (*models.Floor, error) {
	f.UpdatedAt = time.Now()
	if err := replaceByID(ctx, r.floors, f.ID, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *mongoCampusRepo) DeleteFloor(ctx context.Context, id string) error {
	return deleteByID(ctx, r.floors, id)
}

func (r *mongoCampusRepo) GetFloorByID(ctx context.Context, id string) (*models.Floor, error) {
	return findByID[models.Floor](ctx, r.floors, id)
}

func (r *mongoCampusRepo) GetFloorsByBuilding(ctx context.Context, buildingID string) ([]models.Floor, error) {
	return findMany[models.Floor](ctx, r.floors, bson.M{"building_id": buildingID}, bson.D{{Key: "number", Value: 1}})
}

// Classrooms.

func (r *mongoCampusRepo) CreateClassroom(ctx context.Context, c *models.Classroom) (*models.Classroom, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	if err := insertOne(ctx, r.classrooms, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *mongoCampusRepo) UpdateClassroom(ctx context.Context, c *models.Classroom) (*models.Classroom, error) {
	c.UpdatedAt = time.Now()
	if err := replaceByID(ctx, r.classrooms, c.ID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *mongoCampusRepo) DeleteClassroom(ctx context.Context, id string) error {
	return deleteByID(ctx, r.classrooms, id)
}

func (r *mongoCampusRepo) GetClassroomByID(ctx context.Context, id string) (*models.Classroom, error) {
	return findByID[models.Classroom](ctx, r.classrooms, id)
}

func (r *mongoCampusRepo) GetClassroomsByFloor(ctx context.Context, floorID string) ([]models.Classroom, error) {
	return findMany[models.Classroom](ctx, r.classrooms, bson.M{"floor_id": floorID}, bson.D{{Key: "name", Value: 1}})
}

func (r *mongoCampusRepo) GetAllClassrooms(ctx context.Context) ([]models.Classroom, error) {
	return findMany[models.Classroom](ctx, r.classrooms, bson.M{}, bson.D{{Key: "building_id", Value: 1}, {Key: "name", Value: 1}})
}

// Departments.

func (r *mongoCampusRepo) CreateDepartment(ctx context.Context, d *models.Department) (*models.Department, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	if err := insertOne(ctx, r.departments, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *mongoCampusRepo) UpdateDepartment(ctx context.Context, d *models.Department) (*models.Department, error) {
	d.UpdatedAt = time.Now()
	if err := replaceByID(ctx, r.departments, d.ID, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *mongoCampusRepo) DeleteDepartment(ctx context.Context, id string) error {
	return deleteByID(ctx, r.departments, id)
}

func (r *mongoCampusRepo) GetDepartmentByID(ctx context.Context, id string) (*models.Department, error) {
	return findByID[models.Department](ctx, r.departments, id)
}

func (r *mongoCampusRepo) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	return findMany[models.Department](ctx, r.departments, bson.M{}, bson.D{{Key: "name", Value: 1}})
}
