package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vogiaan1904/smartq-queue/config"
	"github.com/vogiaan1904/smartq-queue/internal/catalog"
	"github.com/vogiaan1904/smartq-queue/internal/delivery/kafka"
	"github.com/vogiaan1904/smartq-queue/internal/delivery/kafka/producer"
	"github.com/vogiaan1904/smartq-queue/internal/errors"
	"github.com/vogiaan1904/smartq-queue/internal/models"
	"github.com/vogiaan1904/smartq-queue/internal/queue"
	repository "github.com/vogiaan1904/smartq-queue/internal/repository/redis"
	pkgLog "github.com/vogiaan1904/smartq-queue/pkg/logger"
)

// ReminderScheduler enqueues a departure reminder for later delivery.
type ReminderScheduler interface {
	ScheduleDepartureReminder(ctx context.Context, b models.Booking, d queue.Derived) error
}

type BookingService interface {
	JoinQueue(ctx context.Context, in *JoinQueueInput) (*JoinQueueOutput, error)
	GetStatus(ctx context.Context) (*BookingStatusOutput, error)
	AdvanceServingToken(ctx context.Context, token int) error
	Snooze(ctx context.Context) (*BookingStatusOutput, error)
	Cancel(ctx context.Context) error
	GetHistory(ctx context.Context, limit int) ([]models.Booking, error)

	ListClinics(ctx context.Context, clinicType string) ([]ClinicSummary, error)
	GetClinic(ctx context.Context, id string) (*ClinicDetail, error)

	Restore(ctx context.Context) error
	ValidateBookingToken(token string) (string, error)
}

type bookingService struct {
	store *queue.Store
	cat   *catalog.Catalog
	repo  repository.BookingRepository
	prod  producer.Producer
	sched ReminderScheduler
	l     pkgLog.Logger
	jwt   config.JWTConfig

	mu        sync.Mutex
	lastState queue.State
}

// NewBookingService wires the booking state machine. prod and sched may be nil
// when Kafka or the worker pool are disabled; persistence and the in-memory
// store still work without them.
func NewBookingService(
	store *queue.Store,
	cat *catalog.Catalog,
	repo repository.BookingRepository,
	prod producer.Producer,
	sched ReminderScheduler,
	l pkgLog.Logger,
	jwtCfg config.JWTConfig,
) BookingService {
	return &bookingService{
		store: store,
		cat:   cat,
		repo:  repo,
		prod:  prod,
		sched: sched,
		l:     l,
		jwt:   jwtCfg,
	}
}

func (s *bookingService) JoinQueue(ctx context.Context, in *JoinQueueInput) (*JoinQueueOutput, error) {
	clinic, err := s.cat.Clinic(in.ClinicID)
	if err != nil {
		s.l.Warn("service.bookingService.JoinQueue", "clinic_id", in.ClinicID, "error", err)
		return nil, err
	}

	doctor, err := s.cat.DoctorForClinic(clinic.ID)
	if err != nil {
		return nil, err
	}

	mode := models.TransportMode(in.TransportMode)
	travelTime, err := s.cat.TravelTime(mode)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:            uuid.NewString(),
		ClinicID:      clinic.ID,
		ClinicName:    clinic.Name,
		DoctorName:    doctor.Name,
		TokenNumber:   clinic.QueueLength + rand.IntN(5) + 8,
		ServingToken:  rand.IntN(5) + 1,
		TransportMode: mode,
		TravelTime:    travelTime,
		AvgWaitTime:   clinic.AvgWaitPerPatient,
		IsEmergency:   in.IsEmergency,
		BookedAt:      time.Now().UnixMilli(),
	}

	if err := s.store.SetActive(b); err != nil {
		return nil, err
	}

	if err := s.repo.SaveActive(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.prod != nil {
		if err := s.prod.PublishBookingCreated(ctx, kafka.BookingCreatedEvent{
			BookingID:    b.ID,
			ClinicID:     b.ClinicID,
			TokenNumber:  b.TokenNumber,
			ServingToken: b.ServingToken,
			IsEmergency:  b.IsEmergency,
			BookedAt:     b.BookedAt,
		}); err != nil {
			s.l.Error("Failed to publish booking created event", "booking_id", b.ID, "error", err)
		}
	}

	d := queue.Compute(*b)

	s.mu.Lock()
	s.lastState = d.State
	s.mu.Unlock()

	token, err := s.generateBookingToken(b.ID)
	if err != nil {
		s.l.Error("Failed to sign booking token", "booking_id", b.ID, "error", err)
	}

	s.l.Info("Booking created",
		"booking_id", b.ID,
		"clinic_id", b.ClinicID,
		"token_number", b.TokenNumber,
		"serving_token", b.ServingToken,
		"is_emergency", b.IsEmergency,
	)

	return &JoinQueueOutput{
		BookingID:     b.ID,
		ClinicID:      b.ClinicID,
		ClinicName:    b.ClinicName,
		DoctorName:    b.DoctorName,
		TokenNumber:   b.TokenNumber,
		ServingToken:  b.ServingToken,
		EstimatedWait: d.TotalWait,
		BookedAt:      b.BookedAt,
		BookingToken:  token,
	}, nil
}

func (s *bookingService) GetStatus(ctx context.Context) (*BookingStatusOutput, error) {
	b := s.store.Active()
	if b == nil {
		return nil, errors.ErrNoActiveBooking
	}

	return &BookingStatusOutput{
		Booking: *b,
		Derived: queue.Compute(*b),
	}, nil
}

// AdvanceServingToken applies an observed serving position, from the staff
// desk feed or the local simulator. With no active booking it is a silent
// no-op so a late tick cannot resurrect an archived booking.
func (s *bookingService) AdvanceServingToken(ctx context.Context, token int) error {
	if s.store.Active() == nil {
		return nil
	}

	archived := s.store.UpdateServingToken(token)
	if archived {
		return s.finishBooking(ctx, "fulfilled")
	}

	b := s.store.Active()
	if b == nil {
		return nil
	}

	if err := s.repo.SaveActive(ctx, b); err != nil {
		return fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.prod != nil {
		if err := s.prod.PublishServingAdvanced(ctx, kafka.ServingAdvancedEvent{
			BookingID:    b.ID,
			ClinicID:     b.ClinicID,
			ServingToken: b.ServingToken,
			TokenNumber:  b.TokenNumber,
		}); err != nil {
			s.l.Error("Failed to publish serving advanced event", "booking_id", b.ID, "error", err)
		}
	}

	d := queue.Compute(*b)
	s.maybeScheduleReminder(ctx, *b, d)

	return nil
}

// maybeScheduleReminder fires once per state transition into alert or arrived.
func (s *bookingService) maybeScheduleReminder(ctx context.Context, b models.Booking, d queue.Derived) {
	s.mu.Lock()
	prev := s.lastState
	s.lastState = d.State
	s.mu.Unlock()

	if s.sched == nil || d.State == prev {
		return
	}

	if d.State != queue.StateAlert && d.State != queue.StateArrived {
		return
	}

	if err := s.sched.ScheduleDepartureReminder(ctx, b, d); err != nil {
		s.l.Error("Failed to schedule departure reminder", "booking_id", b.ID, "error", err)
	}
}

func (s *bookingService) Snooze(ctx context.Context) (*BookingStatusOutput, error) {
	if s.store.Active() == nil {
		return nil, errors.ErrNoActiveBooking
	}

	s.store.Snooze()

	b := s.store.Active()
	if b == nil {
		return nil, errors.ErrNoActiveBooking
	}

	if err := s.repo.SaveActive(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.l.Info("Booking snoozed", "booking_id", b.ID, "token_number", b.TokenNumber)

	return &BookingStatusOutput{
		Booking: *b,
		Derived: queue.Compute(*b),
	}, nil
}

func (s *bookingService) Cancel(ctx context.Context) error {
	if !s.store.Cancel() {
		return errors.ErrNoActiveBooking
	}

	return s.finishBooking(ctx, "cancelled")
}

// finishBooking persists an archive that the store has already performed. The
// freshest history entry is the booking exactly as it stood.
func (s *bookingService) finishBooking(ctx context.Context, reason string) error {
	past := s.store.Past()
	if len(past) == 0 {
		return nil
	}
	rec := past[0]

	if err := s.repo.ClearActive(ctx); err != nil {
		return fmt.Errorf("failed to clear active booking: %w", err)
	}

	if err := s.repo.PushHistory(ctx, rec); err != nil {
		return fmt.Errorf("failed to archive booking: %w", err)
	}

	if s.prod != nil {
		if err := s.prod.PublishBookingArchived(ctx, kafka.BookingArchivedEvent{
			BookingID:   rec.ID,
			ClinicID:    rec.ClinicID,
			TokenNumber: rec.TokenNumber,
			Reason:      reason,
		}); err != nil {
			s.l.Error("Failed to publish booking archived event", "booking_id", rec.ID, "error", err)
		}
	}

	s.l.Info("Booking archived", "booking_id", rec.ID, "reason", reason)

	return nil
}

func (s *bookingService) GetHistory(ctx context.Context, limit int) ([]models.Booking, error) {
	past := s.store.Past()
	if limit > 0 && len(past) > limit {
		past = past[:limit]
	}
	return past, nil
}

func (s *bookingService) ListClinics(ctx context.Context, clinicType string) ([]ClinicSummary, error) {
	clinics := s.cat.Clinics(clinicType)

	out := make([]ClinicSummary, 0, len(clinics))
	for _, c := range clinics {
		out = append(out, ClinicSummary{
			Clinic:        c,
			Badge:         queue.ClassifyWait(c.QueueLength, queue.PositionScale),
			EstimatedWait: c.QueueLength * c.AvgWaitPerPatient,
		})
	}

	return out, nil
}

func (s *bookingService) GetClinic(ctx context.Context, id string) (*ClinicDetail, error) {
	clinic, err := s.cat.Clinic(id)
	if err != nil {
		return nil, err
	}

	doctor, err := s.cat.DoctorForClinic(clinic.ID)
	if err != nil {
		return nil, err
	}

	wait := clinic.QueueLength * clinic.AvgWaitPerPatient

	return &ClinicDetail{
		Clinic:           clinic,
		Doctor:           doctor,
		Badge:            queue.ClassifyWait(wait, queue.MinuteScale),
		EstimatedWait:    wait,
		TransportOptions: s.cat.TransportOptions(),
	}, nil
}

// Restore rehydrates the in-memory store from Redis at startup.
func (s *bookingService) Restore(ctx context.Context) error {
	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active booking: %w", err)
	}

	past, err := s.repo.GetHistory(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to load booking history: %w", err)
	}

	s.store.Restore(active, past)

	if active != nil {
		s.mu.Lock()
		s.lastState = queue.Compute(*active).State
		s.mu.Unlock()

		s.l.Info("Restored active booking",
			"booking_id", active.ID,
			"token_number", active.TokenNumber,
			"serving_token", active.ServingToken,
		)
	}

	return nil
}

func (s *bookingService) generateBookingToken(bookingID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"booking_id": bookingID,
		"iat":        now.Unix(),
		"exp":        now.Add(s.jwt.Expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign booking token: %w", err)
	}

	return signed, nil
}

// ValidateBookingToken checks the signature and expiry and returns the booking
// ID embedded in the token.
func (s *bookingService) ValidateBookingToken(token string) (string, error) {
	if token == "" {
		return "", ErrTokenEmpty
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwt.Secret), nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", ErrTokenInvalid
	}

	bookingID, ok := claims["booking_id"].(string)
	if !ok || bookingID == "" {
		return "", ErrTokenInvalid
	}

	return bookingID, nil
}
