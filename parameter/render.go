package parameter

import (
	"time"
)

// Water Background
const (
	// WaterNoiseFrequency scales cell coordinates into noise space
	WaterNoiseFrequency = 0.11

	// WaterNoiseAspect compensates terminal cell aspect ratio (cells are ~2x taller than wide)
	WaterNoiseAspect = 2.0

	// WaterShimmerSpeed is noise time-axis drift per second
	WaterShimmerSpeed = 0.35

	// WaterGlyphRamp maps noise intensity to surface glyphs, dark to bright
	WaterGlyphRamp = "  .·~≈"
)

// Press Ripple
const (
	RippleLifetime = 600 * time.Millisecond

	// RippleMaxRadiusFloat is the ripple expansion in world units
	RippleMaxRadiusFloat = 3.0
)
