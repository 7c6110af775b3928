// File: database/repository/timetable/watch.go
package timetableRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Watch opens a change stream over the timetable collection covering inserts,
// updates, replaces and deletes. The display service consumes it to re-run
// status resolution whenever an entry changes; consumers are expected to
// re-open the stream on error, the fallback re-poll covers the gap.
func (r *mongoTimetableRepo) Watch(ctx context.Context) (*mongo.ChangeStream, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open timetable change stream: %w", err)
	}
	return stream, nil
}
