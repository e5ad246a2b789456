// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"rentaldesk/config"
	showingRepo "rentaldesk/database/repository/showing"
	"rentaldesk/models"
	"rentaldesk/utils"
)

const (
	TypeShowingReminder     = "showing:reminder"
	TypeShowingAutoComplete = "showing:autocomplete"

	reminderLead = 24 * time.Hour
)

// ReminderPayload is the queued reminder task body.
type ReminderPayload struct {
	ShowingID     string `json:"showingId"`
	PropertyID    string `json:"propertyId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobDB,
	}
}

// AsynqScheduler queues showing reminders through asynq. It satisfies the
// showing service's ReminderScheduler.
type AsynqScheduler struct {
	client *asynq.Client
}

func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder to fire the day before the visit.
// Showings booked closer in get no reminder.
func (s *AsynqScheduler) ScheduleReminder(ctx context.Context, sh *models.Showing) error {
	clock, err := time.Parse("15:04", sh.ScheduledTime)
	if err != nil {
		return fmt.Errorf("cron: unparseable scheduled time %q: %w", sh.ScheduledTime, err)
	}
	visitAt := time.Date(
		sh.ScheduledDate.Year(), sh.ScheduledDate.Month(), sh.ScheduledDate.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC,
	)
	fireAt := visitAt.Add(-reminderLead)
	if !fireAt.After(time.Now().UTC()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		ShowingID:     sh.ID,
		PropertyID:    sh.PropertyID,
		Name:          sh.Name,
		Email:         sh.Email,
		ScheduledDate: sh.ScheduledDate.Format("2006-01-02"),
		ScheduledTime: sh.ScheduledTime,
	})
	if err != nil {
		return fmt.Errorf("cron: failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeShowingReminder, payload)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("cron: failed to enqueue reminder: %w", err)
	}
	return nil
}

func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}

// InitShowingWorker runs the async worker and the periodic housekeeping
// scheduler in the background.
func InitShowingWorker(repo showingRepo.ShowingRepository) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(redisOpts(), asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeShowingReminder, handleReminderTask(repo))
	mux.HandleFunc(TypeShowingAutoComplete, handleAutoCompleteTask(repo))

	go func() {
		logger.Info("Starting showing worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("Showing worker failed to start", zap.Error(err))
		}
	}()

	// Periodic sweep: flip stale CONFIRMED showings to COMPLETED.
	scheduler := asynq.NewScheduler(redisOpts(), nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeShowingAutoComplete, nil)); err != nil {
		logger.Fatal("Failed to register autocomplete task", zap.Error(err))
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Fatal("Showing scheduler failed to start", zap.Error(err))
		}
	}()
}

func handleReminderTask(repo showingRepo.ShowingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("cron: invalid reminder payload: %w", err)
		}

		// The showing may have been cancelled or deleted since booking.
		sh, err := repo.GetByID(ctx, p.ShowingID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("cron: failed to load showing %s: %w", p.ShowingID, err)
		}
		if sh.Status != models.ShowingPending && sh.Status != models.ShowingConfirmed {
			return nil
		}

		// Delivery channel (email/SMS) is pluggable; for now the reminder is logged
		// so operators can follow the queue in the structured logs.
		utils.GetLogger().Info("Showing reminder due",
			zap.String("showingId", p.ShowingID),
			zap.String("propertyId", p.PropertyID),
			zap.String("name", p.Name),
			zap.String("email", p.Email),
			zap.String("date", p.ScheduledDate),
			zap.String("time", p.ScheduledTime),
		)
		return nil
	}
}

func handleAutoCompleteTask(repo showingRepo.ShowingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := repo.CompletePastConfirmed(ctx, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("cron: autocomplete sweep failed: %w", err)
		}
		if n > 0 {
			utils.GetLogger().Info("Auto-completed past showings", zap.Int64("count", n))
		}
		return nil
	}
}
