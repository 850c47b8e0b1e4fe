package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Water ramp endpoints, blended in Lab space for a perceptually even
	// deep-to-surface gradient
	waterDeep    = colorful.Color{R: 0.01, G: 0.07, B: 0.18}
	waterSurface = colorful.Color{R: 0.22, G: 0.62, B: 0.78}

	shrimpBody      = colorful.Color{R: 0.95, G: 0.45, B: 0.35}
	shrimpHighlight = colorful.Color{R: 1.00, G: 0.85, B: 0.70}
	shrimpDim       = colorful.Color{R: 0.60, G: 0.30, B: 0.25}

	rippleColor = colorful.Color{R: 0.75, G: 0.90, B: 0.95}

	backdropColor = colorful.Color{R: 0.15, G: 0.30, B: 0.30}

	statusColor = colorful.Color{R: 0.70, G: 0.75, B: 0.65}
)

// toTcell converts a colorful color to a tcell RGB color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// waterColor blends the water ramp at the given intensity in [0,1]
func waterColor(intensity float64) tcell.Color {
	return toTcell(waterDeep.BlendLab(waterSurface, intensity))
}
