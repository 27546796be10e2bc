package kafka

import "time"

const (
	TopicBookingCreated  = "booking.created"
	TopicServingAdvanced = "serving.advanced"
	TopicBookingArchived = "booking.archived"

	TopicTokenAdvanced = "token.advanced"
)

// Events published by the queue service.

type BookingCreatedEvent struct {
	BookingID    string    `json:"booking_id"`
	ClinicID     string    `json:"clinic_id"`
	TokenNumber  int       `json:"token_number"`
	ServingToken int       `json:"serving_token"`
	IsEmergency  bool      `json:"is_emergency"`
	BookedAt     int64     `json:"booked_at"`
	Timestamp    time.Time `json:"timestamp"`
}

type ServingAdvancedEvent struct {
	BookingID    string    `json:"booking_id"`
	ClinicID     string    `json:"clinic_id"`
	ServingToken int       `json:"serving_token"`
	TokenNumber  int       `json:"token_number"`
	Timestamp    time.Time `json:"timestamp"`
}

type BookingArchivedEvent struct {
	BookingID   string    `json:"booking_id"`
	ClinicID    string    `json:"clinic_id"`
	TokenNumber int       `json:"token_number"`
	Reason      string    `json:"reason"` // fulfilled, cancelled
	Timestamp   time.Time `json:"timestamp"`
}

// Events consumed by the queue service (from the clinic staff desk).

type TokenAdvancedEvent struct {
	ClinicID     string    `json:"clinic_id"`
	ServingToken int       `json:"serving_token"`
	Timestamp    time.Time `json:"timestamp"`
}
