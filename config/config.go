package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/pond"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

// Scene is the optional YAML pond description. Every field is optional;
// absent fields fall back to compiled defaults, so an empty file is a
// valid scene
type Scene struct {
	// Shrimp is the population when no explicit placement is given
	Shrimp int `yaml:"shrimp"`

	// Placement pins agents to cells, overriding Shrimp when non-empty
	Placement []PlacementSpec `yaml:"placement"`

	// Agents overrides per-agent tuning
	Agents AgentSpec `yaml:"agents"`

	// Router overrides interaction dispatch tuning
	Router RouterSpec `yaml:"router"`

	// Audio enables the speaker, default true
	Audio *bool `yaml:"audio"`

	// Seed fixes the water and dispatch randomness, 0 means time-seeded
	Seed int64 `yaml:"seed"`

	// Backdrop is an optional ASCII art file path
	Backdrop string `yaml:"backdrop"`
}

// Duration accepts "3s"-style YAML strings for time fields
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// PlacementSpec pins one agent to a cell with an optional facing
type PlacementSpec struct {
	X              int     `yaml:"x"`
	Y              int     `yaml:"y"`
	HeadingDegrees float64 `yaml:"heading_degrees"`
}

// AgentSpec carries per-agent tuning overrides. Pointer fields distinguish
// "absent" from an explicit zero
type AgentSpec struct {
	MoveSpeed           *float64       `yaml:"move_speed"`
	RotationRateDegrees *float64       `yaml:"rotation_rate_degrees"`
	SmoothRotation      *bool          `yaml:"smooth_rotation"`
	IdleTimeout         *Duration      `yaml:"idle_timeout"`
	MaxRecordedPoints   *int           `yaml:"max_recorded_points"`
}

// RouterSpec carries dispatch overrides
type RouterSpec struct {
	MinMove *int `yaml:"min_move"`
	MaxMove *int `yaml:"max_move"`
}

// Default returns the compiled-in scene
func Default() *Scene {
	return &Scene{
		Shrimp: parameter.DefaultShrimpCount,
	}
}

// Load reads a YAML scene file. An empty path returns the default scene;
// a present-but-broken file is an error, never a silent fallback
func Load(path string) (*Scene, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", path, err)
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("scene %q: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", path, err)
	}
	return s, nil
}

func (s *Scene) validate() error {
	if s.Shrimp < 0 {
		return fmt.Errorf("shrimp count %d is negative", s.Shrimp)
	}
	if s.Router.MinMove != nil && *s.Router.MinMove < 1 {
		return fmt.Errorf("router min_move %d must be at least 1", *s.Router.MinMove)
	}
	if s.Router.MinMove != nil && s.Router.MaxMove != nil && *s.Router.MaxMove < *s.Router.MinMove {
		return fmt.Errorf("router max_move %d below min_move %d", *s.Router.MaxMove, *s.Router.MinMove)
	}
	if s.Agents.MoveSpeed != nil && *s.Agents.MoveSpeed <= 0 {
		return fmt.Errorf("agent move_speed %f must be positive", *s.Agents.MoveSpeed)
	}
	return nil
}

// AudioEnabled reports whether the speaker should be opened
func (s *Scene) AudioEnabled() bool {
	return s.Audio == nil || *s.Audio
}

// AgentConfig merges the scene's agent overrides onto the defaults
func (s *Scene) AgentConfig() pond.Config {
	cfg := pond.DefaultConfig()
	if v := s.Agents.MoveSpeed; v != nil {
		cfg.MoveSpeed = vmath.FromFloat(*v)
	}
	if v := s.Agents.RotationRateDegrees; v != nil {
		cfg.RotationRate = vmath.FromDegrees(*v)
	}
	if v := s.Agents.SmoothRotation; v != nil {
		cfg.SmoothRotation = *v
	}
	if v := s.Agents.IdleTimeout; v != nil {
		cfg.IdleTimeout = time.Duration(*v)
	}
	if v := s.Agents.MaxRecordedPoints; v != nil && *v > 0 {
		cfg.MaxRecorded = *v
	}
	return cfg
}

// RouterConfig merges the scene's router overrides onto the defaults
func (s *Scene) RouterConfig() pond.RouterConfig {
	cfg := pond.DefaultRouterConfig()
	if v := s.Router.MinMove; v != nil {
		cfg.MinMove = *v
	}
	if v := s.Router.MaxMove; v != nil {
		cfg.MaxMove = *v
	}
	if cfg.MaxMove < cfg.MinMove {
		cfg.MaxMove = cfg.MinMove
	}
	return cfg
}
