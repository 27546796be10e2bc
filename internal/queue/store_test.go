package queue

import (
	"testing"

	"github.com/vogiaan1904/smartq-queue/internal/errors"
	"github.com/vogiaan1904/smartq-queue/internal/models"
)

func testBooking(id string, tokenNumber, servingToken int) *models.Booking {
	return &models.Booking{
		ID:            id,
		ClinicID:      "1",
		ClinicName:    "City Dental Clinic",
		DoctorName:    "Dr. Aditi Kulkarni",
		TokenNumber:   tokenNumber,
		ServingToken:  servingToken,
		TransportMode: models.TransportCar,
		TravelTime:    20,
		AvgWaitTime:   10,
		BookedAt:      1700000000000,
	}
}

func TestSetActiveRejectsSecondBooking(t *testing.T) {
	s := NewStore()

	if err := s.SetActive(testBooking("a", 20, 5)); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if err := s.SetActive(testBooking("b", 30, 5)); err != errors.ErrBookingAlreadyActive {
		t.Fatalf("SetActive second booking: got %v, want ErrBookingAlreadyActive", err)
	}
	if got := s.Active(); got == nil || got.ID != "a" {
		t.Fatalf("active booking changed after rejected SetActive: %+v", got)
	}

	// Clearing with nil is always allowed and does not touch history.
	if err := s.SetActive(nil); err != nil {
		t.Fatalf("SetActive(nil): %v", err)
	}
	if s.Active() != nil {
		t.Fatal("active booking not cleared")
	}
	if len(s.Past()) != 0 {
		t.Fatalf("SetActive(nil) touched history: %d entries", len(s.Past()))
	}
}

func TestUpdateServingTokenKeepsBookingActiveUntilFulfilled(t *testing.T) {
	s := NewStore()
	if err := s.SetActive(testBooking("a", 20, 5)); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	for _, token := range []int{6, 10, 19} {
		if archived := s.UpdateServingToken(token); archived {
			t.Fatalf("UpdateServingToken(%d) archived early", token)
		}
		if got := s.Active().ServingToken; got != token {
			t.Fatalf("serving token = %d, want %d", got, token)
		}
	}

	if archived := s.UpdateServingToken(20); !archived {
		t.Fatal("UpdateServingToken(20) did not archive")
	}
	if s.Active() != nil {
		t.Fatal("booking still active after archival")
	}

	past := s.Past()
	if len(past) != 1 {
		t.Fatalf("history length = %d, want 1", len(past))
	}
	// The record is archived as it stood, serving token included.
	if past[0].ServingToken != 19 {
		t.Fatalf("archived serving token = %d, want 19", past[0].ServingToken)
	}

	// A late tick after archival must not resurrect anything.
	if archived := s.UpdateServingToken(25); archived {
		t.Fatal("UpdateServingToken archived twice")
	}
	if len(s.Past()) != 1 {
		t.Fatalf("history grew on no-op tick: %d entries", len(s.Past()))
	}
}

func TestSnooze(t *testing.T) {
	s := NewStore()

	// Snooze without an active booking is a silent no-op.
	s.Snooze()
	if s.Active() != nil || len(s.Past()) != 0 {
		t.Fatal("snooze with no booking mutated state")
	}

	if err := s.SetActive(testBooking("a", 20, 5)); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	s.Snooze()
	if got := s.Active().TokenNumber; got != 22 {
		t.Fatalf("token number after one snooze = %d, want 22", got)
	}
	s.Snooze()
	if got := s.Active().TokenNumber; got != 24 {
		t.Fatalf("token number after two snoozes = %d, want 24", got)
	}
	if len(s.Past()) != 0 {
		t.Fatal("snooze touched history")
	}
}

func TestCancelArchivesRecordUnchanged(t *testing.T) {
	s := NewStore()
	b := testBooking("a", 20, 7)
	b.IsEmergency = true
	if err := s.SetActive(b); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	if !s.Cancel() {
		t.Fatal("Cancel reported no booking")
	}
	if s.Active() != nil {
		t.Fatal("booking still active after cancel")
	}

	past := s.Past()
	if len(past) != 1 {
		t.Fatalf("history length = %d, want 1", len(past))
	}
	if past[0] != *b {
		t.Fatalf("archived record mutated: got %+v, want %+v", past[0], *b)
	}

	// Cancel with nothing active is a no-op.
	if s.Cancel() {
		t.Fatal("Cancel succeeded with no active booking")
	}
}

func TestHistoryOrderingMostRecentFirst(t *testing.T) {
	s := NewStore()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.SetActive(testBooking(id, 10, 1)); err != nil {
			t.Fatalf("SetActive(%s): %v", id, err)
		}
		s.Cancel()
	}

	past := s.Past()
	want := []string{"c", "b", "a"}
	if len(past) != len(want) {
		t.Fatalf("history length = %d, want %d", len(past), len(want))
	}
	for i, id := range want {
		if past[i].ID != id {
			t.Fatalf("past[%d].ID = %s, want %s", i, past[i].ID, id)
		}
	}
}

func TestPastReturnsCopy(t *testing.T) {
	s := NewStore()
	if err := s.SetActive(testBooking("a", 10, 1)); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	s.Cancel()

	past := s.Past()
	past[0].ClinicName = "mutated"
	if s.Past()[0].ClinicName != "City Dental Clinic" {
		t.Fatal("Past leaked internal slice")
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	s := NewStore()
	ch := make(chan Snapshot, 16)
	unsub := s.Subscribe(ch)
	defer unsub()

	if err := s.SetActive(testBooking("a", 20, 5)); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	select {
	case snap := <-ch:
		if snap.Active == nil || snap.Active.ID != "a" {
			t.Fatalf("snapshot active = %+v, want booking a", snap.Active)
		}
	default:
		t.Fatal("no snapshot after SetActive")
	}

	s.Cancel()
	var last Snapshot
	got := false
	for {
		select {
		case snap := <-ch:
			last = snap
			got = true
			continue
		default:
		}
		break
	}
	if !got {
		t.Fatal("no snapshot after Cancel")
	}
	if last.Active != nil {
		t.Fatal("snapshot after cancel still has active booking")
	}
	if len(last.Past) != 1 {
		t.Fatalf("snapshot history length = %d, want 1", len(last.Past))
	}

	unsub()
	s.Snooze() // must not panic or send after unsubscribe
	select {
	case <-ch:
		t.Fatal("received snapshot after unsubscribe")
	default:
	}
}

func TestRestore(t *testing.T) {
	s := NewStore()
	active := testBooking("a", 20, 5)
	past := []models.Booking{*testBooking("b", 10, 10), *testBooking("c", 8, 8)}

	s.Restore(active, past)

	if got := s.Active(); got == nil || got.ID != "a" {
		t.Fatalf("restored active = %+v", got)
	}
	if got := s.Past(); len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("restored history = %+v", got)
	}
}
