package pond

import (
	"time"

	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

// HitTester resolves a world point to a specific agent, or reports no hit.
// Injected so the router never depends on a particular spatial query
type HitTester interface {
	Hit(p Point) (*Agent, bool)
}

// Rect is an optional world-space bound for move targets
type Rect struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

// Clamp pulls p inside the rectangle
func (r Rect) Clamp(p Point) Point {
	if p.X < r.MinX {
		p.X = r.MinX
	}
	if p.X > r.MaxX {
		p.X = r.MaxX
	}
	if p.Y < r.MinY {
		p.Y = r.MinY
	}
	if p.Y > r.MaxY {
		p.Y = r.MaxY
	}
	return p
}

// RouterConfig tunes pointer dispatch
type RouterConfig struct {
	// MinMove / MaxMove bound how many agents react to a blank press
	MinMove, MaxMove int

	// Bounds, when set, clamps move targets into the world rectangle
	Bounds *Rect
}

// DefaultRouterConfig returns the standard press dispatch tuning
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		MinMove: parameter.MinMovePerPress,
		MaxMove: parameter.MaxMovePerPress,
	}
}

// Router maps pointer presses to agent requests: a press on an agent
// plays its wiggle, a press on open water moves a small random group
// toward the pressed point. Every press re-arms every agent's watchdog
type Router struct {
	reg *Registry
	hit HitTester
	cfg RouterConfig
	rng *vmath.FastRand

	paused bool
}

func NewRouter(reg *Registry, hit HitTester, cfg RouterConfig, seed uint64) *Router {
	if cfg.MinMove < 0 {
		cfg.MinMove = 0
	}
	if cfg.MaxMove < cfg.MinMove {
		cfg.MaxMove = cfg.MinMove
	}
	return &Router{
		reg: reg,
		hit: hit,
		cfg: cfg,
		rng: vmath.NewFastRand(seed),
	}
}

// SetPaused gates press dispatch without affecting interaction broadcast
func (rt *Router) SetPaused(p bool) {
	rt.paused = p
}

func (rt *Router) Paused() bool {
	return rt.paused
}

// PointerDown handles one press at world point p
func (rt *Router) PointerDown(p Point, now time.Time) {
	rt.reg.NotifyAll(now)
	if rt.paused {
		return
	}

	if a, ok := rt.hit.Hit(p); ok {
		a.Alive(now)
		return
	}

	agents := rt.reg.Agents()
	if len(agents) == 0 {
		return
	}

	c := rt.cfg.MinMove + rt.rng.Intn(rt.cfg.MaxMove-rt.cfg.MinMove+1)
	if c > len(agents) {
		c = len(agents)
	}
	if c <= 0 {
		return
	}

	// Fisher-Yates shuffle, take the first c
	for i := len(agents) - 1; i > 0; i-- {
		j := rt.rng.Intn(i + 1)
		agents[i], agents[j] = agents[j], agents[i]
	}

	target := p
	if rt.cfg.Bounds != nil {
		target = rt.cfg.Bounds.Clamp(p)
	}
	for _, a := range agents[:c] {
		a.MoveTo(target, now)
	}
}
