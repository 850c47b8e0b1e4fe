package pond

import (
	"time"

	"github.com/lixenwraith/shrimp-pond/vmath"
)

// motionTask drives the pose through an ordered waypoint list one tick at
// a time. Forward moves carry a single waypoint and record the traversal;
// returns carry the reversed trace (or just the rest position) and finish
// with a hard snap to the initial pose
type motionTask struct {
	a         *Agent
	waypoints []Point
	idx       int
	speed     int64
	record    bool
	toRest    bool
}

func newMoveTask(a *Agent, target Point) *motionTask {
	return &motionTask{
		a:         a,
		waypoints: []Point{target},
		speed:     a.cfg.MoveSpeed,
		record:    true,
	}
}

func newReturnTask(a *Agent, waypoints []Point) *motionTask {
	return &motionTask{
		a:         a,
		waypoints: waypoints,
		speed:     vmath.Mul(a.cfg.MoveSpeed, a.cfg.ReturnMultiplier),
		toRest:    true,
	}
}

func (m *motionTask) step(now time.Time, dt time.Duration) bool {
	a := m.a

	// Consume waypoints already inside the arrive radius, snapping exactly
	for m.idx < len(m.waypoints) {
		wp := m.waypoints[m.idx]
		if vmath.Magnitude(wp.X-a.pose.X, wp.Y-a.pose.Y) > a.cfg.ArriveRadius {
			break
		}
		a.pose.X, a.pose.Y = wp.X, wp.Y
		m.idx++
	}
	if m.idx >= len(m.waypoints) {
		m.finish()
		return true
	}

	wp := m.waypoints[m.idx]
	dx := wp.X - a.pose.X
	dy := wp.Y - a.pose.Y

	a.face(dx, dy, dt)
	a.noteTurn(dx)

	// Translation step, clamped to the remaining distance
	dist := vmath.Magnitude(dx, dy)
	stepLen := vmath.Mul(m.speed, vmath.FromFloat(dt.Seconds()))
	if stepLen >= dist {
		a.pose.X, a.pose.Y = wp.X, wp.Y
		m.idx++
	} else {
		nx, ny := vmath.Normalize2D(dx, dy)
		a.pose.X += vmath.Mul(nx, stepLen)
		a.pose.Y += vmath.Mul(ny, stepLen)
	}

	if m.record {
		a.rec.MaybeAppend(a.pose.Point(), now)
	}

	if m.idx >= len(m.waypoints) {
		m.finish()
		return true
	}
	return false
}

func (m *motionTask) finish() {
	a := m.a

	if m.toRest {
		a.settleAtRest()
		return
	}

	// Forward arrival: guarantee the trace ends at the true destination
	if m.record && len(m.waypoints) > 0 {
		a.rec.Finalize(m.waypoints[len(m.waypoints)-1])
	}
	a.pose.Scale = a.initial.Scale
	a.mode = ModeIdle
	a.emit(CueIdle)
}
