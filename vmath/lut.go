package vmath

import (
	"math"
)

const (
	LUTSize = 1024
	LUTMask = LUTSize - 1
)

// SinLUT and CosLUT scaled by Q32.32, index maps [0, LUTSize) to [0, 2π)
var (
	SinLUT [LUTSize]int64
	CosLUT [LUTSize]int64

	// atan2LUT maps ratio [0,1] to angle [0, Scale/8] (one octant)
	atan2LUT [LUTSize]int64
)

func init() {
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int64(math.Sin(rad) * ScaleF)
		CosLUT[i] = int64(math.Cos(rad) * ScaleF)
	}

	for i := 0; i < LUTSize; i++ {
		ratio := float64(i) / float64(LUTMask)
		angle := math.Atan(ratio)
		atan2LUT[i] = int64(angle / (2 * math.Pi) * ScaleF)
	}
}

// Sin returns sine of an angle where 0..Scale maps to 0..2π
func Sin(angle int64) int64 {
	return SinLUT[(angle>>(Shift-10))&LUTMask]
}

func Cos(angle int64) int64 {
	return CosLUT[(angle>>(Shift-10))&LUTMask]
}

// Atan2 returns angle in [0, Scale) for (dy, dx) using LUT
// Result is Q32.32 where Scale = full rotation (2π)
// Zero vector returns 0
func Atan2(dy, dx int64) int64 {
	if dx == 0 && dy == 0 {
		return 0
	}

	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}

	var baseAngle int64
	if adx >= ady {
		// Octants 0,3,4,7: ratio = |dy/dx| in [0,1]
		idx := (ady * LUTMask) / adx
		if idx > LUTMask {
			idx = LUTMask
		}
		baseAngle = atan2LUT[idx]
	} else {
		// Octants 1,2,5,6: ratio = |dx/dy| in [0,1], angle = π/2 - atan(ratio)
		idx := (adx * LUTMask) / ady
		if idx > LUTMask {
			idx = LUTMask
		}
		baseAngle = Scale/4 - atan2LUT[idx]
	}

	if dx > 0 {
		if dy >= 0 {
			return baseAngle // Q1
		}
		return Scale - baseAngle // Q4
	} else if dx < 0 {
		if dy >= 0 {
			return Scale/2 - baseAngle // Q2
		}
		return Scale/2 + baseAngle // Q3
	}

	// dx == 0, dy != 0
	if dy > 0 {
		return Scale / 4
	}
	return 3 * Scale / 4
}
