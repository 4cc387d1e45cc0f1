package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"counselhub/config"
	"counselhub/models"
)

const (
	// TypeBookingConfirmed carries a confirmation notification payload.
	TypeBookingConfirmed = "booking:confirmed"
	// TypeHoldSweep triggers a pass over lapsed slot holds.
	TypeHoldSweep = "booking:sweep_holds"
)

// Enqueuer pushes booking tasks onto the async queue.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer builds an Enqueuer against the configured task-queue Redis DB.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		}),
	}
}

func (e *Enqueuer) EnqueueBookingConfirmed(ctx context.Context, payload models.NotificationPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingConfirmed, b)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}

func (e *Enqueuer) Close() error {
	return e.client.Close()
}
