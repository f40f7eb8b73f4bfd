package worker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jmatson/shepherd/internal/config"
)

// cleanupSchedule controls how often the upload janitor runs.
const cleanupSchedule = "@every 15m"

// StartScheduler creates and starts an Asynq Scheduler for periodic tasks.
// Returns a stop function for graceful shutdown.
func StartScheduler(cfg *config.Config) (stop func(), err error) {
	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	logger := NewLogger(cfg.LogLevel, cfg.LogFormat)

	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
			Logger:   &asynqLoggerAdapter{logger: logger},
		},
	)

	task := asynq.NewTask(
		TaskCleanupUploads,
		nil,
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
		asynq.Retention(6*time.Hour),
		asynq.Unique(10*time.Minute),
	)

	entryID, err := scheduler.Register(cleanupSchedule, task)
	if err != nil {
		return nil, fmt.Errorf("failed to register cleanup schedule: %w", err)
	}

	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}

	slog.Info(
		"Scheduler started",
		"schedule", cleanupSchedule,
		"entry_id", entryID,
	)

	return func() { scheduler.Shutdown() }, nil
}
