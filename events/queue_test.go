package events

import (
	"sync"
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	now := time.Now()
	for i := 0; i < 10; i++ {
		q.Push(Event{Type: EventPointerDown, X: i, Time: now})
	}

	got := q.Consume()
	if len(got) != 10 {
		t.Fatalf("expected 10 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.X != i {
			t.Errorf("event %d out of order: X=%d", i, ev.X)
		}
	}

	if q.Consume() != nil {
		t.Errorf("queue should be empty after consume")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+50; i++ {
		q.Push(Event{Type: EventPointerDown, X: i})
	}

	got := q.Consume()
	if len(got) == 0 || len(got) > QueueSize {
		t.Fatalf("expected up to %d events, got %d", QueueSize, len(got))
	}
	last := got[len(got)-1]
	if last.X != QueueSize+49 {
		t.Errorf("newest event lost: last X=%d", last.X)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 20

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: EventPointerDown, X: p, Y: i})
			}
		}(p)
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if batch == nil {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("expected %d events, got %d", producers*perProducer, total)
	}
}
