package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/shrimp-pond/events"
)

// Loop drives the simulation on a fixed tick with drift correction.
// Input events produced by other goroutines are drained from the queue at
// the start of every tick, so all simulation and render work stays on the
// loop goroutine
type Loop struct {
	interval time.Duration
	tp       TimeProvider
	queue    *events.Queue

	onEvent func(ev events.Event)
	onTick  func(now time.Time, dt time.Duration)
	onFrame func(now time.Time)

	lastTick     time.Time
	nextDeadline time.Time

	tickCount atomic.Uint64
	stopChan  chan struct{}
	stopOnce  sync.Once
	running   atomic.Bool
}

// LoopConfig wires the loop's collaborators. OnEvent, OnTick and OnFrame
// may be nil
type LoopConfig struct {
	Interval time.Duration
	Time     TimeProvider
	Queue    *events.Queue

	OnEvent func(ev events.Event)
	OnTick  func(now time.Time, dt time.Duration)
	OnFrame func(now time.Time)
}

func NewLoop(cfg LoopConfig) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = 33 * time.Millisecond
	}
	if cfg.Time == nil {
		cfg.Time = NewMonotonicTimeProvider()
	}
	return &Loop{
		interval: cfg.Interval,
		tp:       cfg.Time,
		queue:    cfg.Queue,
		onEvent:  cfg.OnEvent,
		onTick:   cfg.OnTick,
		onFrame:  cfg.OnFrame,
		stopChan: make(chan struct{}),
	}
}

// TickCount returns the number of completed ticks
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}

// Stop halts Run after the current tick completes. Safe to call from any
// goroutine, idempotent
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Run blocks until Stop is called, executing ticks at the configured
// interval. A slow tick is absorbed by re-anchoring the deadline instead
// of bursting catch-up ticks
func (l *Loop) Run() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer l.running.Store(false)

	l.lastTick = l.tp.Now()
	l.nextDeadline = l.lastTick.Add(l.interval)

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		l.runTick()

		now := l.tp.Now()
		l.nextDeadline = l.nextDeadline.Add(l.interval)
		if now.Sub(l.nextDeadline) > l.interval*2 {
			l.nextDeadline = now.Add(l.interval)
		}
		sleep := l.nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// runTick executes one full cycle: drain input, advance simulation, render
func (l *Loop) runTick() {
	now := l.tp.Now()
	dt := now.Sub(l.lastTick)
	if dt < 0 {
		dt = 0
	}
	l.lastTick = now

	if l.queue != nil && l.onEvent != nil {
		for _, ev := range l.queue.Consume() {
			l.onEvent(ev)
		}
	}
	if l.onTick != nil {
		l.onTick(now, dt)
	}
	if l.onFrame != nil {
		l.onFrame(now)
	}

	l.tickCount.Add(1)
}
