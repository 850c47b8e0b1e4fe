package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pond.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Shrimp != parameter.DefaultShrimpCount {
		t.Errorf("default shrimp = %d, want %d", s.Shrimp, parameter.DefaultShrimpCount)
	}
	if !s.AudioEnabled() {
		t.Errorf("audio should default on")
	}
}

func TestLoadMissingFileIsError(t *testing.T) {
	if _, err := Load("/nonexistent/pond.yaml"); err == nil {
		t.Errorf("missing explicit scene file should error")
	}
}

func TestLoadFullScene(t *testing.T) {
	path := writeScene(t, `
shrimp: 9
seed: 77
audio: false
placement:
  - {x: 4, y: 2, heading_degrees: 90}
  - {x: 10, y: 6}
agents:
  move_speed: 3.5
  idle_timeout: 5s
  smooth_rotation: false
router:
  min_move: 2
  max_move: 4
`)
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Shrimp != 9 || s.Seed != 77 || s.AudioEnabled() {
		t.Errorf("scene scalars wrong: %+v", s)
	}
	if len(s.Placement) != 2 || s.Placement[0].HeadingDegrees != 90 {
		t.Errorf("placement wrong: %+v", s.Placement)
	}

	cfg := s.AgentConfig()
	if cfg.MoveSpeed != vmath.FromFloat(3.5) {
		t.Errorf("move speed override not applied")
	}
	if cfg.IdleTimeout != 5*time.Second {
		t.Errorf("idle timeout override not applied: %v", cfg.IdleTimeout)
	}
	if cfg.SmoothRotation {
		t.Errorf("smooth rotation override not applied")
	}

	rc := s.RouterConfig()
	if rc.MinMove != 2 || rc.MaxMove != 4 {
		t.Errorf("router overrides not applied: %+v", rc)
	}
}

func TestPartialSceneKeepsDefaults(t *testing.T) {
	path := writeScene(t, "shrimp: 3\n")
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := s.AgentConfig()
	def := vmath.FromFloat(parameter.MoveSpeedFloat)
	if cfg.MoveSpeed != def {
		t.Errorf("untouched field changed: %d vs %d", cfg.MoveSpeed, def)
	}
	if cfg.IdleTimeout != parameter.IdleTimeout {
		t.Errorf("idle timeout default lost: %v", cfg.IdleTimeout)
	}
}

func TestValidation(t *testing.T) {
	cases := []string{
		"shrimp: -1\n",
		"router: {min_move: 0}\n",
		"router: {min_move: 3, max_move: 1}\n",
		"agents: {move_speed: 0}\n",
	}
	for _, body := range cases {
		if _, err := Load(writeScene(t, body)); err == nil {
			t.Errorf("scene %q should fail validation", body)
		}
	}
}

func TestMalformedYAMLIsError(t *testing.T) {
	if _, err := Load(writeScene(t, "shrimp: [broken\n")); err == nil {
		t.Errorf("malformed yaml should error")
	}
}
