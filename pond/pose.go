package pond

import (
	"github.com/lixenwraith/shrimp-pond/vmath"
)

// Point is a world-space position in Q32.32 fixed point
type Point struct {
	X, Y int64
}

// Pose is one agent's position, heading and uniform scale
// Heading is Q32.32 rotation units (vmath.Scale = full turn)
// Scale is a Q32.32 multiplier (vmath.Scale = 1.0)
type Pose struct {
	X, Y    int64
	Heading int64
	Scale   int64
}

// Point returns the positional part of the pose
func (p Pose) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// DistanceTo returns the approximate distance between two points
func (p Point) DistanceTo(o Point) int64 {
	return vmath.Magnitude(o.X-p.X, o.Y-p.Y)
}
