// File: services/display/watch.go
package display

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"campusroom/services/schedule"
)

// EntryWatcher opens a change stream over the timetable collection.
type EntryWatcher interface {
	Watch(ctx context.Context) (*mongo.ChangeStream, error)
}

// RunWatcher follows timetable changes and refreshes today's board on every
// event. The stream is best-effort: on error it is reopened after a backoff,
// and the periodic re-poll worker covers any events missed in between.
func (s *DefaultDisplayService) RunWatcher(ctx context.Context, watcher EntryWatcher) {
	for {
		if ctx.Err() != nil {
			return
		}

		stream, err := watcher.Watch(ctx)
		if err != nil {
			s.Logger.Error("board watcher: failed to open change stream", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(10 * time.Second):
			}
			continue
		}

		s.Logger.Info("board watcher: following timetable changes")
		for stream.Next(ctx) {
			today := schedule.DateString(s.now())
			if _, err := s.Refresh(ctx, today); err != nil {
				s.Logger.Error("board watcher: refresh failed", zap.String("date", today), zap.Error(err))
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			s.Logger.Warn("board watcher: change stream interrupted", zap.Error(err))
		}
		_ = stream.Close(context.Background())
	}
}
