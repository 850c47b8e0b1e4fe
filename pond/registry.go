package pond

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/shrimp-pond/vmath"
)

// Registry owns agent lifetime. The router and renderer hold the registry,
// never the agents themselves
type Registry struct {
	agents []*Agent
	byID   map[uuid.UUID]*Agent
}

func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[uuid.UUID]*Agent),
	}
}

// Spawn creates an agent at rest at the given pose and registers it
func (r *Registry) Spawn(cfg Config, start Pose, now time.Time, sink CueSink) *Agent {
	a := NewAgent(cfg, start, now, sink)
	r.agents = append(r.agents, a)
	r.byID[a.id] = a
	return a
}

// Get returns the agent with the given ID
func (r *Registry) Get(id uuid.UUID) (*Agent, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// Agents returns a copy of the agent list in spawn order
func (r *Registry) Agents() []*Agent {
	out := make([]*Agent, len(r.agents))
	copy(out, r.agents)
	return out
}

func (r *Registry) Len() int {
	return len(r.agents)
}

// Update advances every agent by one tick
func (r *Registry) Update(now time.Time, dt time.Duration) {
	for _, a := range r.agents {
		a.Update(now, dt)
	}
}

// NotifyAll broadcasts an interaction timestamp to every agent
func (r *Registry) NotifyAll(now time.Time) {
	for _, a := range r.agents {
		a.NotifyInteraction(now)
	}
}

// Hit returns the nearest agent whose hit radius contains p
func (r *Registry) Hit(p Point) (*Agent, bool) {
	var best *Agent
	var bestDist int64
	for _, a := range r.agents {
		d := vmath.Magnitude(a.pose.X-p.X, a.pose.Y-p.Y)
		if d > a.cfg.HitRadius {
			continue
		}
		if best == nil || d < bestDist {
			best = a
			bestDist = d
		}
	}
	return best, best != nil
}
