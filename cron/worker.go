package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"campusroom/config"
	"campusroom/services/display"
	"campusroom/services/schedule"

	"github.com/hibiken/asynq"
)

const TypeBoardRefresh = "board:refresh"

// InitBoardWorker runs the async worker in background. It periodically
// rebuilds the occupancy board for the current day so displays recover
// even when a change-stream event is missed.
func InitBoardWorker(displaySvc display.DisplayService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBoardRefresh, handleBoardRefresh(displaySvc))

	interval := config.AppConfig.BoardRefreshMinutes
	if interval <= 0 {
		interval = 5
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.UTC,
	})
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %dm", interval),
		asynq.NewTask(TypeBoardRefresh, nil),
	); err != nil {
		log.Fatalf("[BoardWorker] ❗ Failed to register refresh schedule: %v", err)
	}

	// Start async worker with retry logic
	go func() {
		log.Println("[BoardWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BoardWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BoardWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[BoardWorker] ❌ Scheduler stopped: %v", err)
		}
	}()
}

func handleBoardRefresh(displaySvc display.DisplayService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		date := schedule.DateString(time.Now())
		if _, err := displaySvc.Refresh(ctx, date); err != nil {
			log.Printf("[BoardHandler] ❌ Failed to refresh board for %s: %v", date, err)
			return err
		}
		log.Printf("[BoardHandler] ⏰ Refreshed board for %s", date)
		return nil
	}
}
