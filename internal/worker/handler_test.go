package worker

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hibiken/asynq"

	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

type capturingNotifier struct {
	channel string
	payload any
}

func (n *capturingNotifier) Publish(ctx context.Context, channel string, payload any) error {
	n.channel = channel
	n.payload = payload
	return nil
}

func (n *capturingNotifier) Close() {}

type nopLogger struct{}

func (nopLogger) Debug(msg string, kv ...any)    {}
func (nopLogger) Info(msg string, kv ...any)     {}
func (nopLogger) Warn(msg string, kv ...any)     {}
func (nopLogger) Error(msg string, kv ...any)    {}
func (nopLogger) Fatal(msg string, kv ...any)    {}
func (nopLogger) Sync() error                    { return nil }
func (l nopLogger) With(kv ...any) logger.Logger { return l }

func TestHandleDepartureReminder(t *testing.T) {
	cases := []struct {
		name        string
		state       string
		wantPhrase  string
		timeToLeave int
	}{
		{"alert reminder", "alert", "Time to leave", 10},
		{"arrived reminder", "arrived", "Your turn", 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &capturingNotifier{}
			h := NewHandlers(notifier, nopLogger{})

			payload, _ := json.Marshal(DepartureReminderPayload{
				BookingID:   "bk-1",
				ClinicName:  "City Dental Clinic",
				TokenNumber: 14,
				TimeToLeave: tt.timeToLeave,
				State:       tt.state,
			})

			task := asynq.NewTask(TypeDepartureReminder, payload)
			if err := h.HandleDepartureReminder(context.Background(), task); err != nil {
				t.Fatalf("HandleDepartureReminder: %v", err)
			}

			if notifier.channel != "booking-bk-1" {
				t.Errorf("channel = %q, want booking-bk-1", notifier.channel)
			}

			msg, ok := notifier.payload.(map[string]any)
			if !ok {
				t.Fatalf("payload type %T", notifier.payload)
			}
			if !strings.Contains(msg["message"].(string), tt.wantPhrase) {
				t.Errorf("message = %q, want it to contain %q", msg["message"], tt.wantPhrase)
			}
		})
	}
}

func TestHandleDepartureReminderBadPayload(t *testing.T) {
	h := NewHandlers(&capturingNotifier{}, nopLogger{})

	task := asynq.NewTask(TypeDepartureReminder, []byte("not json"))
	if err := h.HandleDepartureReminder(context.Background(), task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
