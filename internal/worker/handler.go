package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/vogiaan1904/smartq-queue/internal/queue"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
	"github.com/vogiaan1904/smartq-queue/pkg/notify"
)

type Handlers struct {
	notifier notify.Notifier
	l        logger.Logger
}

func NewHandlers(notifier notify.Notifier, l logger.Logger) *Handlers {
	return &Handlers{
		notifier: notifier,
		l:        l,
	}
}

func (h *Handlers) HandleDepartureReminder(ctx context.Context, t *asynq.Task) error {
	var payload DepartureReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	msg := map[string]any{
		"type":         "departure_reminder",
		"booking_id":   payload.BookingID,
		"clinic_name":  payload.ClinicName,
		"token_number": payload.TokenNumber,
		"message":      reminderMessage(payload),
	}

	channel := fmt.Sprintf("booking-%s", payload.BookingID)
	if err := h.notifier.Publish(ctx, channel, msg); err != nil {
		return err
	}

	h.l.Info("Departure reminder delivered",
		"booking_id", payload.BookingID,
		"state", payload.State,
	)

	return nil
}

func reminderMessage(p DepartureReminderPayload) string {
	switch queue.State(p.State) {
	case queue.StateArrived:
		return fmt.Sprintf("Your turn at %s is here. Head to the counter with token %d.", p.ClinicName, p.TokenNumber)
	default:
		return fmt.Sprintf("Time to leave for %s. Your token %d is coming up in about %d minutes.", p.ClinicName, p.TokenNumber, p.TimeToLeave)
	}
}
