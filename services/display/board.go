// File: services/display/board.go
package display

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"campusroom/models"
	"campusroom/services/schedule"
	"campusroom/utils"
)

// ClassroomLister is the slice of the campus repository the board needs.
type ClassroomLister interface {
	GetAllClassrooms(ctx context.Context) ([]models.Classroom, error)
	GetBuildingByID(ctx context.Context, id string) (*models.Building, error)
	GetFloorByID(ctx context.Context, id string) (*models.Floor, error)
}

// DayEntryLister fetches a whole day's timetable entries.
type DayEntryLister interface {
	GetByDate(ctx context.Context, date string) ([]models.Entry, error)
}

// DisplayService produces the live occupancy board for the public display.
type DisplayService interface {
	GetBoard(ctx context.Context, date string) (*models.Board, error)
	Refresh(ctx context.Context, date string) (*models.Board, error)
}

// DefaultDisplayService is the production implementation. Boards are cached
// in Redis and pushed to SSE clients through the board pub/sub channel.
type DefaultDisplayService struct {
	Classrooms ClassroomLister
	Entries    DayEntryLister
	Cache      *redis.Client
	Logger     *zap.Logger

	// Now returns the current instant; tests pin it.
	Now func() time.Time
}

func (s *DefaultDisplayService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// entryView projects an entry for the board with its resolved status.
func entryView(e models.Entry, status string) *models.EntryView {
	return &models.EntryView{
		ID:          e.ID,
		ClassName:   e.ClassName,
		Subject:     e.Subject,
		TeacherName: e.TeacherName,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Status:      status,
	}
}

// ComputeBoard builds the board for a date at an explicit instant. It is a
// pure composition over the fetched data and the schedule resolver.
func (s *DefaultDisplayService) ComputeBoard(ctx context.Context, date string, now time.Time) (*models.Board, error) {
	rooms, err := s.Classrooms.GetAllClassrooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classrooms: %w", err)
	}
	entries, err := s.Entries.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable entries: %w", err)
	}

	byRoom := make(map[string][]models.Entry)
	for _, e := range entries {
		byRoom[e.ClassroomID] = append(byRoom[e.ClassroomID], e)
	}

	board := &models.Board{
		Date:        date,
		Rooms:       make([]models.RoomStatus, 0, len(rooms)),
		GeneratedAt: now,
	}

	for _, room := range rooms {
		roomEntries := byRoom[room.ID]
		status := models.RoomStatus{
			ClassroomID: room.ID,
			RoomName:    room.Name,
		}
		if b, err := s.Classrooms.GetBuildingByID(ctx, room.BuildingID); err == nil {
			status.BuildingName = b.Name
		}
		if f, err := s.Classrooms.GetFloorByID(ctx, room.FloorID); err == nil {
			status.FloorLabel = f.Label
		}

		occupied := schedule.RoomOccupied(roomEntries, now)
		status.Available = !occupied

		if occupied {
			for _, e := range roomEntries {
				if st := schedule.ResolveStatus(e, now); st == models.StatusOngoing {
					status.Current = entryView(e, st)
					break
				}
			}
		} else if next := schedule.NextUpcoming(roomEntries, now); next != nil {
			status.Next = entryView(*next, schedule.ResolveStatus(*next, now))
		}

		board.Rooms = append(board.Rooms, status)
	}
	return board, nil
}

// GetBoard returns the cached board for a date, computing and caching it on a
// miss. Staleness is bounded by the cache TTL plus the watcher and the
// periodic refresh.
func (s *DefaultDisplayService) GetBoard(ctx context.Context, date string) (*models.Board, error) {
	key := utils.BoardCachePrefix + date

	if raw, err := s.Cache.Get(ctx, key).Bytes(); err == nil {
		var board models.Board
		if err := json.Unmarshal(raw, &board); err == nil {
			return &board, nil
		}
		// Corrupt cache entry; fall through to recompute.
	}
	return s.Refresh(ctx, date)
}

// Refresh recomputes the board, stores it in the cache, and publishes it to
// display subscribers.
func (s *DefaultDisplayService) Refresh(ctx context.Context, date string) (*models.Board, error) {
	board, err := s.ComputeBoard(ctx, date, s.now())
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(board)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}

	key := utils.BoardCachePrefix + date
	if err := s.Cache.Set(ctx, key, raw, utils.BoardCacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache board", zap.String("date", date), zap.Error(err))
	}
	if err := s.Cache.Publish(ctx, utils.BoardChannel, raw).Err(); err != nil {
		s.Logger.Warn("failed to publish board update", zap.String("date", date), zap.Error(err))
	}
	return board, nil
}
