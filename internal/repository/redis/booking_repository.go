package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vogiaan1904/smartq-queue/internal/models"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

// BookingRepository persists the active booking and the archive so state
// survives restarts. Redis is the system of record; the in-memory store is
// rehydrated from it at startup.
type BookingRepository interface {
	SaveActive(ctx context.Context, b *models.Booking) error
	GetActive(ctx context.Context) (*models.Booking, error)
	ClearActive(ctx context.Context) error

	PushHistory(ctx context.Context, b models.Booking) error
	GetHistory(ctx context.Context, limit int) ([]models.Booking, error)
}

type redisBookingRepository struct {
	cli          *redis.Client
	l            logger.Logger
	historyLimit int
}

func NewRedisBookingRepository(cli *redis.Client, l logger.Logger, historyLimit int) BookingRepository {
	return &redisBookingRepository{
		cli:          cli,
		l:            l,
		historyLimit: historyLimit,
	}
}

func (r *redisBookingRepository) SaveActive(ctx context.Context, b *models.Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	if err := r.cli.Set(ctx, r.activeKey(), data, 0).Err(); err != nil {
		r.l.Error("redisBookingRepository.SaveActive", "error", err)
		return err
	}

	r.l.Debug("Active booking saved",
		"booking_id", b.ID,
		"clinic_id", b.ClinicID,
		"token_number", b.TokenNumber,
	)

	return nil
}

func (r *redisBookingRepository) GetActive(ctx context.Context) (*models.Booking, error) {
	data, err := r.cli.Get(ctx, r.activeKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}

		r.l.Error("redisBookingRepository.GetActive", "error", err)
		return nil, err
	}

	var b models.Booking
	if err := json.Unmarshal(data, &b); err != nil {
		r.l.Error("redisBookingRepository.GetActive", "error", err)
		return nil, err
	}

	return &b, nil
}

func (r *redisBookingRepository) ClearActive(ctx context.Context) error {
	if err := r.cli.Del(ctx, r.activeKey()).Err(); err != nil {
		r.l.Error("redisBookingRepository.ClearActive", "error", err)
		return err
	}

	return nil
}

// PushHistory prepends the booking to the archive, most recent first, and
// trims the list to the configured limit.
func (r *redisBookingRepository) PushHistory(ctx context.Context, b models.Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	pipe := r.cli.Pipeline()
	pipe.LPush(ctx, r.historyKey(), data)
	pipe.LTrim(ctx, r.historyKey(), 0, int64(r.historyLimit-1))

	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Error("redisBookingRepository.PushHistory", "error", err)
		return err
	}

	r.l.Debug("Booking archived", "booking_id", b.ID, "token_number", b.TokenNumber)

	return nil
}

func (r *redisBookingRepository) GetHistory(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 || limit > r.historyLimit {
		limit = r.historyLimit
	}

	items, err := r.cli.LRange(ctx, r.historyKey(), 0, int64(limit-1)).Result()
	if err != nil {
		r.l.Error("redisBookingRepository.GetHistory", "error", err)
		return nil, err
	}

	bookings := make([]models.Booking, 0, len(items))
	for _, item := range items {
		var b models.Booking
		if err := json.Unmarshal([]byte(item), &b); err != nil {
			r.l.Warn("Skipping corrupt history entry", "error", err)
			continue
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *redisBookingRepository) activeKey() string {
	return "smartq:booking:active"
}

func (r *redisBookingRepository) historyKey() string {
	return "smartq:booking:history"
}
