package render

import (
	"github.com/lixenwraith/shrimp-pond/pond"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

// One world unit spans one terminal cell. World coordinates address cell
// centers so an agent spawned on a cell sits exactly on it

// CellToWorld returns the world point at the center of a screen cell
func CellToWorld(cx, cy int) pond.Point {
	return pond.Point{
		X: vmath.FromInt(cx) + vmath.Half,
		Y: vmath.FromInt(cy) + vmath.Half,
	}
}

// WorldToCell returns the screen cell containing a world point
func WorldToCell(p pond.Point) (int, int) {
	return vmath.ToInt(p.X), vmath.ToInt(p.Y)
}
