package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"counselhub/config"
	meetingRepo "counselhub/database/repository/meeting"
	"counselhub/models"
	"counselhub/services/booking"
	"counselhub/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitBookingWorker runs the async worker in background: confirmation
// notifications plus the periodic sweep of lapsed slot holds.
func InitBookingWorker(dispatcher notification.Dispatcher, meetings meetingRepo.MeetingBookingRepository, orch booking.ScheduleOrchestrator) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirmed, handleBookingConfirmed(dispatcher, meetings))
	mux.HandleFunc(TypeHoldSweep, handleHoldSweep(orch))

	// Start Redis health monitor
	go monitorRedisConnection()

	go runHoldSweepScheduler(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingConfirmed(dispatcher notification.Dispatcher, meetings meetingRepo.MeetingBookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NotificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[BookingHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[BookingHandler] 📣 Dispatching %s for booking %s", p.TemplateID, p.MeetingBookingID)

		if p.Event == nil {
			return dispatcher.Send(ctx, p.TemplateID, p.Channel, p.Recipients, p.Subject, p.Data)
		}

		eventID, err := dispatcher.SendWithCalendarEvent(ctx, p.TemplateID, p.Channel, p.Recipients, p.Subject, p.Data, *p.Event)
		if eventID != "" && p.MeetingBookingID != "" {
			if serr := meetings.SetCalendarEventID(ctx, p.MeetingBookingID, eventID); serr != nil {
				log.Printf("[BookingHandler] ❌ Failed to persist calendar event id: %v", serr)
			}
		}
		if err != nil {
			log.Printf("[BookingHandler] ❌ Failed to send notification: %v", err)
		}
		return err
	}
}

func handleHoldSweep(orch booking.ScheduleOrchestrator) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		released, err := orch.SweepExpiredHolds(ctx)
		if err != nil {
			log.Printf("[HoldSweep] ❌ Sweep failed: %v", err)
			return err
		}
		if released > 0 {
			log.Printf("[HoldSweep] 🧹 Released %d lapsed holds", released)
		}
		return nil
	}
}

// runHoldSweepScheduler enqueues the sweep task on a fixed cadence.
func runHoldSweepScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 5m", asynq.NewTask(TypeHoldSweep, nil)); err != nil {
		log.Fatalf("[HoldSweep] ❗ Failed to register sweep schedule: %v", err)
	}
	if err := scheduler.Run(); err != nil {
		log.Fatalf("[HoldSweep] ❗ Scheduler stopped: %v", err)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[BookingWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
