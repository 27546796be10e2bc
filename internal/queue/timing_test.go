package queue

import (
	"testing"

	"github.com/vogiaan1904/smartq-queue/internal/models"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name        string
		booking     models.Booking
		ahead       int
		aheadClamp  int
		totalWait   int
		timeToLeave int
		progress    float64
		state       State
	}{
		{
			name:        "plenty of time",
			booking:     models.Booking{TokenNumber: 20, ServingToken: 5, AvgWaitTime: 10, TravelTime: 20},
			ahead:       15,
			aheadClamp:  15,
			totalWait:   150,
			timeToLeave: 120,
			progress:    0.25,
			state:       StateRelax,
		},
		{
			name:        "leave imminently",
			booking:     models.Booking{TokenNumber: 20, ServingToken: 15, AvgWaitTime: 5, TravelTime: 10},
			ahead:       5,
			aheadClamp:  5,
			totalWait:   25,
			timeToLeave: 5,
			progress:    0.75,
			state:       StateAlert,
		},
		{
			name:        "alert boundary",
			booking:     models.Booking{TokenNumber: 20, ServingToken: 15, AvgWaitTime: 7, TravelTime: 10},
			ahead:       5,
			aheadClamp:  5,
			totalWait:   35,
			timeToLeave: 15,
			progress:    0.75,
			state:       StateAlert,
		},
		{
			name:        "turn reached",
			booking:     models.Booking{TokenNumber: 20, ServingToken: 20, AvgWaitTime: 5, TravelTime: 10},
			ahead:       0,
			aheadClamp:  0,
			totalWait:   0,
			timeToLeave: -20,
			progress:    1,
			state:       StateArrived,
		},
		{
			name:        "serving passed the token",
			booking:     models.Booking{TokenNumber: 20, ServingToken: 23, AvgWaitTime: 5, TravelTime: 10},
			ahead:       -3,
			aheadClamp:  0,
			totalWait:   0,
			timeToLeave: -35,
			progress:    1,
			state:       StateArrived,
		},
		{
			name:        "emergency wins over timing",
			booking:     models.Booking{TokenNumber: 20, ServingToken: 5, AvgWaitTime: 10, TravelTime: 20, IsEmergency: true},
			ahead:       15,
			aheadClamp:  15,
			totalWait:   150,
			timeToLeave: 120,
			progress:    0.25,
			state:       StateEmergency,
		},
		{
			name:        "emergency with no time left",
			booking:     models.Booking{TokenNumber: 20, ServingToken: 20, AvgWaitTime: 5, TravelTime: 10, IsEmergency: true},
			ahead:       0,
			aheadClamp:  0,
			totalWait:   0,
			timeToLeave: -20,
			progress:    1,
			state:       StateEmergency,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			d := Compute(tt.booking)
			if d.PeopleAhead != tt.ahead {
				t.Errorf("PeopleAhead = %d, want %d", d.PeopleAhead, tt.ahead)
			}
			if d.PeopleAheadClamped != tt.aheadClamp {
				t.Errorf("PeopleAheadClamped = %d, want %d", d.PeopleAheadClamped, tt.aheadClamp)
			}
			if d.TotalWait != tt.totalWait {
				t.Errorf("TotalWait = %d, want %d", d.TotalWait, tt.totalWait)
			}
			if d.TimeToLeave != tt.timeToLeave {
				t.Errorf("TimeToLeave = %d, want %d", d.TimeToLeave, tt.timeToLeave)
			}
			if d.Progress != tt.progress {
				t.Errorf("Progress = %v, want %v", d.Progress, tt.progress)
			}
			if d.State != tt.state {
				t.Errorf("State = %s, want %s", d.State, tt.state)
			}
		})
	}
}

func TestComputeAfterSnooze(t *testing.T) {
	b := models.Booking{TokenNumber: 20, ServingToken: 15, AvgWaitTime: 5, TravelTime: 10}
	before := Compute(b)

	b.TokenNumber += SnoozeOffset
	after := Compute(b)

	if after.PeopleAhead != before.PeopleAhead+SnoozeOffset {
		t.Fatalf("PeopleAhead after snooze = %d, want %d", after.PeopleAhead, before.PeopleAhead+SnoozeOffset)
	}
	if after.TimeToLeave <= before.TimeToLeave {
		t.Fatalf("snooze did not buy time: before %d, after %d", before.TimeToLeave, after.TimeToLeave)
	}
}
