package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/shrimp-pond/parameter"
)

// Water renders the shimmering pond surface from 3D noise, with the third
// axis driven by wall time so the surface drifts between frames
type Water struct {
	noise opensimplex.Noise
	start time.Time
	ramp  []rune
}

func NewWater(seed int64, start time.Time) *Water {
	return &Water{
		noise: opensimplex.NewNormalized(seed),
		start: start,
		ramp:  []rune(parameter.WaterGlyphRamp),
	}
}

// sample returns the surface intensity in [0,1] for a cell at a time
func (w *Water) sample(cx, cy int, now time.Time) float64 {
	t := now.Sub(w.start).Seconds()
	return w.noise.Eval3(
		float64(cx)*parameter.WaterNoiseFrequency,
		float64(cy)*parameter.WaterNoiseFrequency*parameter.WaterNoiseAspect,
		t*parameter.WaterShimmerSpeed,
	)
}

// Cell returns the glyph and style for one surface cell
func (w *Water) Cell(cx, cy int, now time.Time) (rune, tcell.Style) {
	n := w.sample(cx, cy, now)

	idx := int(n * float64(len(w.ramp)))
	if idx >= len(w.ramp) {
		idx = len(w.ramp) - 1
	}
	if idx < 0 {
		idx = 0
	}

	style := tcell.StyleDefault.
		Background(waterColor(n * 0.3)).
		Foreground(waterColor(0.3 + n*0.7))
	return w.ramp[idx], style
}
