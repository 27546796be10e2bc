package service

import (
	"github.com/vogiaan1904/smartq-queue/internal/models"
	"github.com/vogiaan1904/smartq-queue/internal/queue"
)

type JoinQueueInput struct {
	ClinicID      string `json:"clinic_id"`
	TransportMode string `json:"transport_mode"`
	IsEmergency   bool   `json:"is_emergency"`
}

type JoinQueueOutput struct {
	BookingID     string `json:"booking_id"`
	ClinicID      string `json:"clinic_id"`
	ClinicName    string `json:"clinic_name"`
	DoctorName    string `json:"doctor_name"`
	TokenNumber   int    `json:"token_number"`
	ServingToken  int    `json:"serving_token"`
	EstimatedWait int    `json:"estimated_wait_minutes"`
	BookedAt      int64  `json:"booked_at"`
	BookingToken  string `json:"booking_token"`
}

type BookingStatusOutput struct {
	Booking models.Booking `json:"booking"`
	Derived queue.Derived  `json:"derived"`
}

type ClinicSummary struct {
	models.Clinic
	Badge         queue.Badge `json:"badge"`
	EstimatedWait int         `json:"estimated_wait_minutes"`
}

type ClinicDetail struct {
	Clinic           models.Clinic            `json:"clinic"`
	Doctor           models.Doctor            `json:"doctor"`
	Badge            queue.Badge              `json:"badge"`
	EstimatedWait    int                      `json:"estimated_wait_minutes"`
	TransportOptions []models.TransportOption `json:"transport_options"`
}
