package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/vogiaan1904/smartq-queue/internal/models"
	"github.com/vogiaan1904/smartq-queue/internal/queue"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

// Scheduler enqueues reminder tasks for asynchronous delivery. It implements
// service.ReminderScheduler.
type Scheduler struct {
	client *asynq.Client
	l      logger.Logger
}

func NewScheduler(redisOpt asynq.RedisClientOpt, l logger.Logger) *Scheduler {
	return &Scheduler{
		client: asynq.NewClient(redisOpt),
		l:      l,
	}
}

func (s *Scheduler) ScheduleDepartureReminder(ctx context.Context, b models.Booking, d queue.Derived) error {
	payload, err := json.Marshal(DepartureReminderPayload{
		BookingID:   b.ID,
		ClinicName:  b.ClinicName,
		TokenNumber: b.TokenNumber,
		TimeToLeave: d.TimeToLeave,
		State:       string(d.State),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeDepartureReminder, payload)

	info, err := s.client.EnqueueContext(ctx, task, asynq.Queue("critical"), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	s.l.Debug("Departure reminder enqueued",
		"booking_id", b.ID,
		"task_id", info.ID,
		"state", d.State,
	)

	return nil
}

func (s *Scheduler) Close() error {
	return s.client.Close()
}
