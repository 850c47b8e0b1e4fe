package vmath

import (
	"math"
	"testing"
)

func TestMulDivRoundtrip(t *testing.T) {
	cases := []float64{0.005, 0.02, 1.0, 1.15, 2.0, -3.5, 400.0}
	for _, c := range cases {
		f := FromFloat(c)
		got := ToFloat(Mul(f, Scale))
		if math.Abs(got-c) > 1e-6 {
			t.Errorf("Mul(%v, 1.0) = %v, want %v", c, got, c)
		}
		got = ToFloat(Div(f, Scale))
		if math.Abs(got-c) > 1e-6 {
			t.Errorf("Div(%v, 1.0) = %v, want %v", c, got, c)
		}
	}
}

func TestDivByZero(t *testing.T) {
	if Div(Scale, 0) != 0 {
		t.Errorf("Div by zero should return 0")
	}
}

func TestAtan2Quadrants(t *testing.T) {
	cases := []struct {
		dy, dx  float64
		wantDeg float64
	}{
		{0, 1, 0},
		{1, 1, 45},
		{1, 0, 90},
		{1, -1, 135},
		{0, -1, 180},
		{-1, -1, 225},
		{-1, 0, 270},
		{-1, 1, 315},
	}
	for _, c := range cases {
		got := ToDegrees(Atan2(FromFloat(c.dy), FromFloat(c.dx)))
		if math.Abs(got-c.wantDeg) > 1.0 {
			t.Errorf("Atan2(%v, %v) = %.2f°, want %.2f°", c.dy, c.dx, got, c.wantDeg)
		}
	}
}

func TestAtan2ZeroVector(t *testing.T) {
	if Atan2(0, 0) != 0 {
		t.Errorf("Atan2(0,0) should return 0")
	}
}

func TestAngleDiff(t *testing.T) {
	a10 := FromDegrees(10)
	a350 := FromDegrees(350)
	diff := AngleDiff(a350, a10)
	if math.Abs(ToDegrees(diff)-20) > 0.1 {
		t.Errorf("AngleDiff(350°, 10°) = %.2f°, want 20°", ToDegrees(diff))
	}
	diff = AngleDiff(a10, a350)
	if math.Abs(ToDegrees(diff)+20) > 0.1 {
		t.Errorf("AngleDiff(10°, 350°) = %.2f°, want -20°", ToDegrees(diff))
	}
}

func TestRotateTowardNoOvershoot(t *testing.T) {
	current := FromDegrees(0)
	target := FromDegrees(90)
	step := FromDegrees(45)

	current = RotateToward(current, target, step)
	if math.Abs(ToDegrees(current)-45) > 0.1 {
		t.Fatalf("first step = %.2f°, want 45°", ToDegrees(current))
	}
	current = RotateToward(current, target, step)
	if current != NormalizeAngle(target) {
		t.Errorf("expected exact target after 2 steps, got %.4f°", ToDegrees(current))
	}
	// Further steps must hold exactly
	current = RotateToward(current, target, step)
	if current != NormalizeAngle(target) {
		t.Errorf("rotation moved past target")
	}
}

func TestRotateTowardShortestArc(t *testing.T) {
	// 350° -> 10° should pass through 0, not 180
	current := FromDegrees(350)
	current = RotateToward(current, FromDegrees(10), FromDegrees(15))
	deg := ToDegrees(current)
	if deg > 20 && deg < 340 {
		t.Errorf("rotation took the long way around: %.2f°", deg)
	}
}

func TestNormalize2D(t *testing.T) {
	nx, ny := Normalize2D(FromInt(3), FromInt(4))
	mag := ToFloat(Magnitude(nx, ny))
	if math.Abs(mag-1.0) > 0.05 {
		t.Errorf("normalized magnitude = %v, want ~1.0", mag)
	}
	nx, ny = Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("zero vector should normalize to zero")
	}
}

func TestFastRandIntn(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) out of range: %d", v)
		}
	}
	if NewFastRand(0).Next() == 0 {
		t.Errorf("zero seed must not produce zero state")
	}
}
