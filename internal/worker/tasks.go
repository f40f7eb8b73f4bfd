package worker

import (
	"time"

	"github.com/hibiken/asynq"
)

// Task type constants
const (
	TaskCleanupUploads = "uploads:cleanup"
)

// Package-level Asynq client (singleton)
var client *asynq.Client

// InitClient initializes the global Asynq client for task enqueueing.
// Must be called before any EnqueueX functions.
func InitClient(redisURL string) error {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return err
	}

	client = asynq.NewClient(opt)
	return nil
}

// CloseClient closes the Asynq client connection gracefully.
func CloseClient() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// EnqueueCleanupUploads enqueues an immediate sweep of the upload scratch
// directory. The scheduler also fires this periodically; enqueue it directly
// when you want a cleanup without waiting for the next tick.
func EnqueueCleanupUploads() error {
	task := asynq.NewTask(
		TaskCleanupUploads,
		nil,
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
		asynq.Retention(6*time.Hour),
	)

	_, err := client.Enqueue(task)
	return err
}
