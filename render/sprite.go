package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shrimp-pond/pond"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

// octantRunes maps a heading octant to a body glyph, starting at east and
// proceeding counter-clockwise in screen space (y grows downward, so the
// world angle order is E, SE, S, SW, W, NW, N, NE)
var octantRunes = [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

// headingOctant buckets a Q32.32 rotation into one of 8 facing directions,
// with bucket centers on the compass points
func headingOctant(heading int64) int {
	h := vmath.NormalizeAngle(heading + vmath.Scale/16)
	return int(h >> (vmath.Shift - 3) & 7)
}

// spriteRune returns the body glyph for an agent's facing
func spriteRune(heading int64) rune {
	return octantRunes[headingOctant(heading)]
}

// spriteStyle picks the body color from the wiggle scale pulse: brighter
// when the pulse swells the agent, dimmer when it shrinks it
func spriteStyle(a *pond.Agent, bg tcell.Color) tcell.Style {
	pose := a.Pose()
	style := tcell.StyleDefault.Background(bg)
	switch {
	case pose.Scale > vmath.Scale:
		return style.Foreground(toTcell(shrimpHighlight)).Bold(true)
	case pose.Scale < vmath.Scale:
		return style.Foreground(toTcell(shrimpDim))
	default:
		return style.Foreground(toTcell(shrimpBody))
	}
}
