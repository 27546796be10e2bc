package queue

import (
	"sync"

	"github.com/vogiaan1904/smartq-queue/internal/errors"
	"github.com/vogiaan1904/smartq-queue/internal/models"
)

// SnoozeOffset is how many positions a snooze pushes the user's token back.
const SnoozeOffset = 2

// Snapshot is the store state delivered to subscribers after every mutation.
type Snapshot struct {
	Active *models.Booking
	Past   []models.Booking
}

// Store is the single source of truth for at most one active booking plus an
// append-only history of past bookings, most recent first.
//
// Mutations with no active booking are silent no-ops. The one exception is
// SetActive with a non-nil record while another is live, which is rejected so
// a caller bug cannot drop a booking on the floor.
//
// The store is safe for concurrent use: HTTP handlers, the Kafka feed and the
// tick simulator may all drive it at once.
type Store struct {
	mu     sync.RWMutex
	active *models.Booking
	past   []models.Booking
	subs   map[int]chan<- Snapshot
	nextID int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]chan<- Snapshot)}
}

// Restore seeds the store from persisted state. Meant for startup only.
func (s *Store) Restore(active *models.Booking, past []models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if active != nil {
		cp := *active
		s.active = &cp
	} else {
		s.active = nil
	}
	s.past = append([]models.Booking(nil), past...)
	s.notifyLocked()
}

// SetActive replaces the active booking wholesale. Passing nil clears it
// without touching history.
func (s *Store) SetActive(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b != nil && s.active != nil {
		return errors.ErrBookingAlreadyActive
	}

	if b != nil {
		cp := *b
		s.active = &cp
	} else {
		s.active = nil
	}
	s.notifyLocked()
	return nil
}

// UpdateServingToken records an externally observed serving position. When the
// position reaches or passes the user's token the booking is archived exactly
// as it stood and the store reports archived=true. A no-op without an active
// booking, so a late tick can never resurrect an archived booking.
func (s *Store) UpdateServingToken(token int) (archived bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return false
	}

	if token >= s.active.TokenNumber {
		s.archiveLocked()
		return true
	}

	s.active.ServingToken = token
	s.notifyLocked()
	return false
}

// Snooze pushes the user's token back by SnoozeOffset, trading queue position
// for more time. The token number never decreases.
func (s *Store) Snooze() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return
	}

	s.active.TokenNumber += SnoozeOffset
	s.notifyLocked()
}

// Cancel archives the active booking as it stood and clears it. Reports
// whether there was a booking to cancel.
func (s *Store) Cancel() (cancelled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return false
	}

	s.archiveLocked()
	return true
}

// Active returns a copy of the active booking, or nil when there is none.
func (s *Store) Active() *models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == nil {
		return nil
	}
	cp := *s.active
	return &cp
}

// Past returns a copy of the booking history, most recent first.
func (s *Store) Past() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, len(s.past))
	copy(out, s.past)
	return out
}

// Subscribe registers a channel that receives a snapshot after every
// mutation. Slow subscribers drop updates rather than block the store.
// The returned function unregisters the channel.
func (s *Store) Subscribe(ch chan<- Snapshot) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) archiveLocked() {
	s.past = append([]models.Booking{*s.active}, s.past...)
	s.active = nil
	s.notifyLocked()
}

func (s *Store) notifyLocked() {
	if len(s.subs) == 0 {
		return
	}

	snap := Snapshot{Past: make([]models.Booking, len(s.past))}
	copy(snap.Past, s.past)
	if s.active != nil {
		cp := *s.active
		snap.Active = &cp
	}

	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
