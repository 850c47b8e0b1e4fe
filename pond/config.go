package pond

import (
	"time"

	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

// Config tunes one agent, immutable after construction
type Config struct {
	// Motion
	MoveSpeed        int64 // world units per second, Q32.32
	RotationRate     int64 // rotation units per second, Q32.32
	ArriveRadius     int64 // leg completion distance
	ReturnMultiplier int64 // return speed = MoveSpeed * ReturnMultiplier
	ForwardOffset    int64 // sprite-forward heading offset
	SmoothRotation   bool  // false snaps heading straight to travel direction

	// Path recording
	RecordInterval time.Duration
	MaxRecorded    int
	RecordMinGap   int64

	// Alive wiggle
	WiggleDuration   time.Duration
	WiggleAmplitude  int64 // heading oscillation, rotation units
	WiggleScalePulse int64 // uniform scale oscillation, Q32.32 fraction

	// Inactivity watchdog
	IdleTimeout      time.Duration
	RestPosEpsilon   int64
	RestAngleEpsilon int64

	// Pointer pick distance
	HitRadius int64
}

// DefaultConfig returns the standard shrimp tuning
func DefaultConfig() Config {
	return Config{
		MoveSpeed:        vmath.FromFloat(parameter.MoveSpeedFloat),
		RotationRate:     vmath.FromDegrees(parameter.RotationRateDegrees),
		ArriveRadius:     vmath.FromFloat(parameter.ArriveRadiusFloat),
		ReturnMultiplier: vmath.FromFloat(parameter.ReturnSpeedMultiplierFloat),
		ForwardOffset:    vmath.FromDegrees(parameter.SpriteForwardOffsetDegrees),
		SmoothRotation:   true,

		RecordInterval: parameter.RecordInterval,
		MaxRecorded:    parameter.MaxRecordedPoints,
		RecordMinGap:   vmath.FromFloat(parameter.RecordMinGapFloat),

		WiggleDuration:   parameter.WiggleDuration,
		WiggleAmplitude:  vmath.FromDegrees(parameter.WiggleAmplitudeDegrees),
		WiggleScalePulse: vmath.FromFloat(parameter.WiggleScalePulseFloat),

		IdleTimeout:      parameter.IdleTimeout,
		RestPosEpsilon:   vmath.FromFloat(parameter.RestPositionEpsilonFloat),
		RestAngleEpsilon: vmath.FromDegrees(parameter.RestAngleEpsilonDegrees),

		HitRadius: vmath.FromFloat(parameter.HitRadiusFloat),
	}
}
