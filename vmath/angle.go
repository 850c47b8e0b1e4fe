package vmath

// Angles are Q32.32 where Scale = one full rotation (2π)

// FromDegrees converts degrees to Q32.32 rotation units
func FromDegrees(deg float64) int64 {
	return FromFloat(deg / 360.0)
}

// ToDegrees converts Q32.32 rotation units to degrees
func ToDegrees(angle int64) float64 {
	return ToFloat(angle) * 360.0
}

// NormalizeAngle wraps angle to [0, Scale)
func NormalizeAngle(angle int64) int64 {
	angle %= Scale
	if angle < 0 {
		angle += Scale
	}
	return angle
}

// AngleDiff returns shortest signed difference between angles
// Result in [-Scale/2, Scale/2]
func AngleDiff(from, to int64) int64 {
	diff := NormalizeAngle(to) - NormalizeAngle(from)
	if diff > Scale/2 {
		diff -= Scale
	} else if diff < -Scale/2 {
		diff += Scale
	}
	return diff
}

// RotateToward moves current toward target by at most maxStep, never overshooting
// All values in Q32.32 rotation units, result normalized to [0, Scale)
func RotateToward(current, target, maxStep int64) int64 {
	diff := AngleDiff(current, target)
	if Abs(diff) <= maxStep {
		return NormalizeAngle(target)
	}
	if diff > 0 {
		return NormalizeAngle(current + maxStep)
	}
	return NormalizeAngle(current - maxStep)
}
