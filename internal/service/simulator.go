package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vogiaan1904/smartq-queue/internal/queue"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

// Simulator advances the serving token on a fixed interval while a booking is
// active, standing in for the staff desk feed during development.
type Simulator interface {
	Start(ctx context.Context) error
	Stop() error
	GetStatus() SimulatorStatus
}

type SimulatorStatus struct {
	IsRunning bool      `json:"is_running"`
	StartedAt time.Time `json:"started_at,omitempty"`
	TickCount int64     `json:"tick_count"`
}

type simulator struct {
	bkSvc    BookingService
	store    *queue.Store
	interval time.Duration
	l        logger.Logger

	mu        sync.Mutex
	isRunning bool
	startedAt time.Time
	stopCh    chan struct{}
	wg        sync.WaitGroup

	tickCount atomic.Int64
}

func NewSimulator(
	bkSvc BookingService,
	store *queue.Store,
	interval time.Duration,
	l logger.Logger,
) Simulator {
	return &simulator{
		bkSvc:    bkSvc,
		store:    store,
		interval: interval,
		l:        l,
		stopCh:   make(chan struct{}),
	}
}

func (s *simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return errors.New("simulator is already running")
	}

	s.isRunning = true
	s.startedAt = time.Now()

	s.wg.Add(1)
	go s.loop(ctx)

	s.l.Info("Queue simulator started", "interval", s.interval)
	return nil
}

func (s *simulator) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return errors.New("simulator is not running")
	}

	close(s.stopCh)
	s.wg.Wait()
	s.isRunning = false

	s.l.Info("Queue simulator stopped", "ticks", s.tickCount.Load())
	return nil
}

func (s *simulator) GetStatus() SimulatorStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SimulatorStatus{
		IsRunning: s.isRunning,
		StartedAt: s.startedAt,
		TickCount: s.tickCount.Load(),
	}
}

// loop owns the ticker. It runs only while a booking is active so an empty
// store costs nothing, and it stops the ticker the moment the booking is
// archived or cancelled.
func (s *simulator) loop(ctx context.Context) {
	defer s.wg.Done()

	snaps := make(chan queue.Snapshot, 1)
	unsubscribe := s.store.Subscribe(snaps)
	defer unsubscribe()

	var ticker *time.Ticker
	var tickC <-chan time.Time

	startTicker := func() {
		if ticker == nil {
			ticker = time.NewTicker(s.interval)
			tickC = ticker.C
		}
	}
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
	}
	defer stopTicker()

	if s.store.Active() != nil {
		startTicker()
	}

	for {
		select {
		case <-s.stopCh:
			return

		case <-ctx.Done():
			return

		case snap := <-snaps:
			if snap.Active != nil {
				startTicker()
			} else {
				stopTicker()
			}

		case <-tickC:
			s.tick(ctx)
		}
	}
}

func (s *simulator) tick(ctx context.Context) {
	b := s.store.Active()
	if b == nil {
		return
	}

	if err := s.bkSvc.AdvanceServingToken(ctx, b.ServingToken+1); err != nil {
		s.l.Error("Simulator tick failed", "booking_id", b.ID, "error", err)
		return
	}

	s.tickCount.Add(1)
}
