package parameter

import (
	"time"
)

// Pond Defaults
const (
	// DefaultShrimpCount when no scene file is supplied
	DefaultShrimpCount = 5

	// HitRadiusFloat is the pick distance for pointer-on-shrimp tests, in world units
	HitRadiusFloat = 1.2

	// MinMovePerPress / MaxMovePerPress bound how many shrimp react to a blank press
	MinMovePerPress = 1
	MaxMovePerPress = 2

	// TickInterval is the simulation and render tick
	TickInterval = 33 * time.Millisecond

	// SpawnMarginCells keeps initial shrimp placement away from the border
	SpawnMarginCells = 3
)
