package queue

import (
	"math"

	"github.com/vogiaan1904/smartq-queue/internal/models"
)

// State classifies how urgently the user should act on an active booking.
type State string

const (
	StateRelax     State = "relax"
	StateAlert     State = "alert"
	StateArrived   State = "arrived"
	StateEmergency State = "emergency"
)

const (
	// departureBuffer is the fixed preparation time, in minutes, subtracted
	// on top of travel time when computing when to leave.
	departureBuffer = 10
	// alertThreshold is the leave-by window, in minutes, below which the
	// booking flips to the alert state.
	alertThreshold = 15
)

// Derived carries the presentation values computed from a booking snapshot.
// Values are cheap to derive and change on every tick, so they are recomputed
// on every read rather than cached.
type Derived struct {
	// PeopleAhead is the raw tokenNumber - servingToken difference. It goes
	// negative once the serving token passes the user's token, right before
	// archival.
	PeopleAhead int `json:"people_ahead"`
	// PeopleAheadClamped is the canonical non-negative display value.
	PeopleAheadClamped int `json:"people_ahead_clamped"`
	// TotalWait is the estimated remaining wait in minutes, clamped to >= 0.
	TotalWait int `json:"total_wait"`
	// TimeToLeave is how many minutes remain before the user should depart,
	// net of travel time and the preparation buffer. Zero or negative means
	// they should already be on their way.
	TimeToLeave int `json:"time_to_leave"`
	// Progress is the 0..1 fraction of the queue completed, relative to the
	// user's own token number.
	Progress float64 `json:"progress"`
	State    State   `json:"state"`
}

// Compute derives wait, leave-by, progress and state values for a booking.
func Compute(b models.Booking) Derived {
	ahead := b.TokenNumber - b.ServingToken
	rawWait := ahead * b.AvgWaitTime
	timeToLeave := rawWait - b.TravelTime - departureBuffer

	progress := 1.0
	if ahead > 0 {
		progress = math.Min(1, 1-float64(ahead)/float64(b.TokenNumber))
	}

	return Derived{
		PeopleAhead:        ahead,
		PeopleAheadClamped: max(0, ahead),
		TotalWait:          max(0, rawWait),
		TimeToLeave:        timeToLeave,
		Progress:           progress,
		State:              classify(b.IsEmergency, timeToLeave),
	}
}

// classify picks the queue state, first match wins. Emergency bookings keep
// their own state regardless of timing.
func classify(emergency bool, timeToLeave int) State {
	switch {
	case emergency:
		return StateEmergency
	case timeToLeave <= 0:
		return StateArrived
	case timeToLeave <= alertThreshold:
		return StateAlert
	default:
		return StateRelax
	}
}
