package pond

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

// Mode is the active motion state, exactly one per agent at any time
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeAliveWiggle
	ModeMovingForward
	ModeReturningDirect
	ModeReturningAlongPath
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeAliveWiggle:
		return "AliveWiggle"
	case ModeMovingForward:
		return "MovingForward"
	case ModeReturningDirect:
		return "ReturningDirect"
	case ModeReturningAlongPath:
		return "ReturningAlongPath"
	}
	return "Unknown"
}

// task is an interruptible multi-tick motion, advanced once per tick.
// Cancellation is replacing the active task, never signaling it
type task interface {
	// step advances by one tick and reports completion
	step(now time.Time, dt time.Duration) bool
}

// Agent is one independently animated shrimp: a pose, a recorded path,
// an inactivity clock, and at most one active motion task
type Agent struct {
	id      uuid.UUID
	cfg     Config
	pose    Pose
	initial Pose
	mode    Mode
	active  task
	rec     *Recorder
	sink    CueSink

	lastInteraction time.Time

	// last emitted horizontal travel sign (-1, 0, +1), used to emit turn
	// cues only on direction changes
	turnSign int
}

// NewAgent creates an agent at rest. The starting pose is captured as the
// immutable initial pose and the path is seeded with it
func NewAgent(cfg Config, start Pose, now time.Time, sink CueSink) *Agent {
	if start.Scale == 0 {
		start.Scale = vmath.Scale
	}
	a := &Agent{
		id:              uuid.New(),
		cfg:             cfg,
		pose:            start,
		initial:         start,
		mode:            ModeIdle,
		rec:             NewRecorder(cfg.MaxRecorded, cfg.RecordMinGap, cfg.RecordInterval),
		sink:            sink,
		lastInteraction: now,
	}
	a.rec.Reset(start.Point())
	return a
}

func (a *Agent) ID() uuid.UUID     { return a.id }
func (a *Agent) Pose() Pose        { return a.pose }
func (a *Agent) InitialPose() Pose { return a.initial }
func (a *Agent) Mode() Mode        { return a.mode }
func (a *Agent) Config() Config    { return a.cfg }

// PathLen returns the current recorded path length
func (a *Agent) PathLen() int { return a.rec.Len() }

// NotifyInteraction re-arms the inactivity watchdog. It is the only way
// to re-arm it after an automatic return
func (a *Agent) NotifyInteraction(now time.Time) {
	a.lastInteraction = now
}

// Alive plays the stationary wiggle, canceling any active motion first
func (a *Agent) Alive(now time.Time) {
	a.active = nil
	a.mode = ModeAliveWiggle
	a.active = newWiggleTask(a)
	a.emit(CueAlive)
}

// MoveTo starts a forward move toward target, reseeding the recorded path
// from the current position
func (a *Agent) MoveTo(target Point, now time.Time) {
	a.active = nil
	a.mode = ModeMovingForward
	a.rec.Reset(a.pose.Point())
	a.active = newMoveTask(a, target)
	a.emit(CueMove)
}

// Return sends the agent back to its initial pose: along the recorded
// path in reverse when at least two points exist, in a straight line
// otherwise
func (a *Agent) Return(now time.Time) {
	a.active = nil
	if a.rec.Len() >= 2 {
		a.mode = ModeReturningAlongPath
		a.active = newReturnTask(a, slices.Collect(a.rec.Reversed()))
	} else {
		a.mode = ModeReturningDirect
		a.active = newReturnTask(a, []Point{a.initial.Point()})
	}
	a.emit(CueReturn)
}

// Update runs one simulation tick: the watchdog check, then one step of
// the active task, if any
func (a *Agent) Update(now time.Time, dt time.Duration) {
	a.checkWatchdog(now)
	if a.active != nil {
		if a.active.step(now, dt) {
			a.active = nil
		}
	}
}

// checkWatchdog triggers an automatic return when the agent has been
// untouched past the idle timeout and its pose has drifted from rest.
// The interaction clock is then pushed far into the future so the return
// fires at most once until a genuine interaction re-arms it
func (a *Agent) checkWatchdog(now time.Time) {
	if a.cfg.IdleTimeout <= 0 {
		return
	}
	if now.Sub(a.lastInteraction) < a.cfg.IdleTimeout {
		return
	}
	if a.atRest() {
		return
	}
	a.Return(now)
	a.lastInteraction = now.Add(parameter.WatchdogSuppress)
}

// atRest reports whether the pose matches the initial pose within the
// rest epsilons
func (a *Agent) atRest() bool {
	if vmath.Magnitude(a.pose.X-a.initial.X, a.pose.Y-a.initial.Y) > a.cfg.RestPosEpsilon {
		return false
	}
	if vmath.Abs(vmath.AngleDiff(a.pose.Heading, a.initial.Heading)) > a.cfg.RestAngleEpsilon {
		return false
	}
	return true
}

// settleAtRest hard-snaps to the initial pose, reseeds the path with the
// rest position and clears the turn sign. Called when a return completes
func (a *Agent) settleAtRest() {
	a.pose = a.initial
	a.rec.Reset(a.initial.Point())
	a.turnSign = 0
	a.mode = ModeIdle
	a.emit(CueIdle)
}

// face rotates the heading toward the travel direction plus the sprite
// forward offset, clamped to the rotation rate. A zero direction never
// changes the facing
func (a *Agent) face(dx, dy int64, dt time.Duration) {
	if dx == 0 && dy == 0 {
		return
	}
	target := vmath.NormalizeAngle(vmath.Atan2(dy, dx) + a.cfg.ForwardOffset)
	if !a.cfg.SmoothRotation {
		a.pose.Heading = target
		return
	}
	maxStep := vmath.Mul(a.cfg.RotationRate, vmath.FromFloat(dt.Seconds()))
	a.pose.Heading = vmath.RotateToward(a.pose.Heading, target, maxStep)
}

// noteTurn emits a turn cue when the horizontal travel sign changes
func (a *Agent) noteTurn(dx int64) {
	s := vmath.SignInt(dx)
	if s == 0 || s == a.turnSign {
		return
	}
	a.turnSign = s
	if s > 0 {
		a.emit(CueTurnRight)
	} else {
		a.emit(CueTurnLeft)
	}
}

func (a *Agent) emit(c Cue) {
	if a.sink != nil {
		a.sink.Cue(c)
	}
}
