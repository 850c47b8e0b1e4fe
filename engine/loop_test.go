package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/shrimp-pond/events"
)

func TestLoopTicksAndStops(t *testing.T) {
	var ticks atomic.Int64
	l := NewLoop(LoopConfig{
		Interval: time.Millisecond,
		OnTick: func(now time.Time, dt time.Duration) {
			if dt < 0 {
				t.Errorf("negative dt: %v", dt)
			}
			ticks.Add(1)
		},
	})

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	l.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("loop did not stop")
	}

	if ticks.Load() == 0 {
		t.Errorf("loop never ticked")
	}
	if l.TickCount() != uint64(ticks.Load()) {
		t.Errorf("tick count mismatch: %d vs %d", l.TickCount(), ticks.Load())
	}

	// Stop is idempotent
	l.Stop()
}

func TestLoopDrainsEventsBeforeTick(t *testing.T) {
	q := events.NewQueue()
	var order []string
	l := NewLoop(LoopConfig{
		Interval: time.Millisecond,
		Queue:    q,
		OnEvent: func(ev events.Event) {
			order = append(order, "event")
		},
		OnTick: func(now time.Time, dt time.Duration) {
			order = append(order, "tick")
		},
	})

	q.Push(events.Event{Type: events.EventPointerDown, X: 1, Y: 2})

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	l.Stop()
	<-done

	if len(order) < 2 || order[0] != "event" || order[1] != "tick" {
		t.Errorf("expected events drained before the first tick, got %v", order)
	}
}
