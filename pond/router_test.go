package pond

import (
	"testing"
	"time"

	"github.com/lixenwraith/shrimp-pond/vmath"
)

func testPond(n int) (*Registry, *Router, time.Time) {
	now := time.Unix(0, 0)
	reg := NewRegistry()
	for i := 0; i < n; i++ {
		reg.Spawn(testConfig(), Pose{X: vmath.FromInt(2 + 3*i), Y: vmath.FromInt(2)}, now, nil)
	}
	rt := NewRouter(reg, reg, DefaultRouterConfig(), 7)
	return reg, rt, now
}

func TestPressOnAgentWiggles(t *testing.T) {
	reg, rt, now := testPond(3)
	agents := reg.Agents()

	rt.PointerDown(agents[1].Pose().Point(), now)

	if agents[1].Mode() != ModeAliveWiggle {
		t.Errorf("hit agent should wiggle, mode=%v", agents[1].Mode())
	}
	for _, i := range []int{0, 2} {
		if agents[i].Mode() != ModeIdle {
			t.Errorf("agent %d should be untouched, mode=%v", i, agents[i].Mode())
		}
	}
}

func TestBlankPressMovesBetweenMinAndMax(t *testing.T) {
	// Blank press with min=1, max=2 over 5 agents moves
	// between 1 and 2 agents, the rest are untouched
	reg, rt, now := testPond(5)

	rt.PointerDown(pt(40, 20), now)

	moving := 0
	for _, a := range reg.Agents() {
		switch a.Mode() {
		case ModeMovingForward:
			moving++
		case ModeIdle:
		default:
			t.Errorf("unexpected mode %v", a.Mode())
		}
	}
	if moving < 1 || moving > 2 {
		t.Errorf("expected 1..2 moving agents, got %d", moving)
	}
}

func TestBlankPressDistinctAgents(t *testing.T) {
	// Repeated presses: the moved set is always distinct agents, counts
	// always within bounds
	reg, rt, now := testPond(5)

	for i := 0; i < 50; i++ {
		rt.PointerDown(pt(40, 20), now)
		moving := 0
		for _, a := range reg.Agents() {
			if a.Mode() == ModeMovingForward {
				moving++
			}
		}
		if moving < 1 || moving > 2 {
			t.Fatalf("press %d: moving=%d out of bounds", i, moving)
		}
		// Reset modes for the next round
		for _, a := range reg.Agents() {
			a.active = nil
			a.mode = ModeIdle
		}
	}
}

func TestPressNotifiesEveryAgent(t *testing.T) {
	reg, rt, _ := testPond(4)

	pressAt := time.Unix(100, 0)
	rt.PointerDown(pt(40, 20), pressAt)

	for i, a := range reg.Agents() {
		if !a.lastInteraction.Equal(pressAt) {
			t.Errorf("agent %d interaction clock not refreshed", i)
		}
	}
}

func TestPressWithNoAgents(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg, reg, DefaultRouterConfig(), 1)
	// Must be a silent no-op
	rt.PointerDown(pt(5, 5), time.Unix(0, 0))
}

func TestMoveTargetClampedToBounds(t *testing.T) {
	now := time.Unix(0, 0)
	reg := NewRegistry()
	reg.Spawn(testConfig(), Pose{X: vmath.FromInt(2), Y: vmath.FromInt(2)}, now, nil)

	cfg := DefaultRouterConfig()
	cfg.MinMove, cfg.MaxMove = 1, 1
	cfg.Bounds = &Rect{
		MinX: 0, MinY: 0,
		MaxX: vmath.FromInt(10), MaxY: vmath.FromInt(10),
	}
	rt := NewRouter(reg, reg, cfg, 3)

	rt.PointerDown(pt(50, -4), now)

	a := reg.Agents()[0]
	mt, ok := a.active.(*motionTask)
	if !ok {
		t.Fatalf("expected an active move")
	}
	want := Point{X: vmath.FromInt(10), Y: 0}
	if mt.waypoints[0] != want {
		t.Errorf("target not clamped: %+v", mt.waypoints[0])
	}
}

func TestPausedRouterStillNotifies(t *testing.T) {
	reg, rt, _ := testPond(2)
	rt.SetPaused(true)

	pressAt := time.Unix(50, 0)
	rt.PointerDown(pt(40, 20), pressAt)

	for _, a := range reg.Agents() {
		if a.Mode() != ModeIdle {
			t.Errorf("paused router dispatched a move")
		}
		if !a.lastInteraction.Equal(pressAt) {
			t.Errorf("paused router should still broadcast interactions")
		}
	}
}

func TestRegistryHitPicksNearest(t *testing.T) {
	now := time.Unix(0, 0)
	reg := NewRegistry()
	a1 := reg.Spawn(testConfig(), Pose{X: vmath.FromInt(5), Y: vmath.FromInt(5)}, now, nil)
	a2 := reg.Spawn(testConfig(), Pose{X: vmath.FromFloat(5.8), Y: vmath.FromInt(5)}, now, nil)

	got, ok := reg.Hit(pt(5.1, 5))
	if !ok || got.ID() != a1.ID() {
		t.Errorf("expected nearest agent a1")
	}

	got, ok = reg.Hit(pt(5.7, 5))
	if !ok || got.ID() != a2.ID() {
		t.Errorf("expected nearest agent a2")
	}

	if _, ok := reg.Hit(pt(50, 50)); ok {
		t.Errorf("far point should miss")
	}
}
