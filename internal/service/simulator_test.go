package service

import (
	"context"
	"testing"
	"time"
)

func TestSimulatorAdvancesWhileBookingActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.svc.JoinQueue(ctx, &JoinQueueInput{ClinicID: "1", TransportMode: "car"})
	if err != nil {
		t.Fatalf("JoinQueue: %v", err)
	}

	sim := NewSimulator(f.svc, f.store, 10*time.Millisecond, testLogger{})
	if err := sim.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer sim.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("serving token never advanced")
		case <-time.After(10 * time.Millisecond):
		}

		b := f.store.Active()
		if b == nil {
			// Simulator already walked the queue to completion.
			return
		}
		if b.ServingToken > out.ServingToken {
			return
		}
	}
}

func TestSimulatorStopsTickingAfterCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.JoinQueue(ctx, &JoinQueueInput{ClinicID: "1", TransportMode: "car"}); err != nil {
		t.Fatalf("JoinQueue: %v", err)
	}

	sim := NewSimulator(f.svc, f.store, 10*time.Millisecond, testLogger{})
	if err := sim.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer sim.Stop()

	if err := f.svc.Cancel(ctx); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	_, hist := f.repo.snapshot()
	histLen := len(hist)
	time.Sleep(100 * time.Millisecond)

	// Ticks after cancellation must not touch the archive or revive a booking.
	if f.store.Active() != nil {
		t.Fatal("booking resurrected after cancel")
	}
	if _, hist := f.repo.snapshot(); len(hist) != histLen {
		t.Fatalf("history grew after cancel: %d -> %d", histLen, len(hist))
	}
}

func TestSimulatorLifecycle(t *testing.T) {
	f := newFixture(t)

	sim := NewSimulator(f.svc, f.store, time.Second, testLogger{})

	if err := sim.Stop(); err == nil {
		t.Error("Stop before Start should fail")
	}

	if err := sim.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := sim.Start(context.Background()); err == nil {
		t.Error("second Start should fail")
	}

	st := sim.GetStatus()
	if !st.IsRunning {
		t.Error("status should report running")
	}

	if err := sim.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if sim.GetStatus().IsRunning {
		t.Error("status should report stopped")
	}
}
