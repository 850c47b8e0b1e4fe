package parameter

import (
	"time"
)

// Shrimp Motion
const (
	// MoveSpeedFloat is the base forward speed in world units per second
	MoveSpeedFloat = 2.0

	// RotationRateDegrees is how fast a shrimp turns toward its travel direction
	RotationRateDegrees = 540.0

	// ArriveRadiusFloat is the distance at which a leg counts as complete
	ArriveRadiusFloat = 0.02

	// ReturnSpeedMultiplierFloat makes returns deliberately faster than outbound moves
	ReturnSpeedMultiplierFloat = 1.15

	// SpriteForwardOffsetDegrees aligns sprite art with the heading angle
	SpriteForwardOffsetDegrees = 0.0
)

// Path Recording
const (
	// RecordInterval throttles waypoint sampling during forward moves
	RecordInterval = 60 * time.Millisecond

	// MaxRecordedPoints bounds the recorded path regardless of move length
	MaxRecordedPoints = 400

	// RecordMinGapFloat is the minimum spacing between stored waypoints
	RecordMinGapFloat = 0.005
)

// Alive Wiggle
const (
	WiggleDuration = 900 * time.Millisecond

	// WiggleAmplitudeDegrees is the heading oscillation around the rest angle
	WiggleAmplitudeDegrees = 2.0

	// WiggleScalePulseFloat is the uniform scale oscillation (±1%)
	WiggleScalePulseFloat = 0.01

	// WiggleCycles is full sine cycles over WiggleDuration
	WiggleCycles = 3
)

// Inactivity Watchdog
const (
	// IdleTimeout is how long without interaction before an automatic return
	IdleTimeout = 3 * time.Second

	// RestPositionEpsilonFloat below which the pose counts as at rest
	RestPositionEpsilonFloat = 0.001

	// RestAngleEpsilonDegrees below which the heading counts as at rest
	RestAngleEpsilonDegrees = 0.1

	// WatchdogSuppress pushes the interaction clock far into the future after
	// an auto-return so it fires at most once per interaction
	WatchdogSuppress = 1000 * time.Hour
)
