package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shrimp-pond/pond"
)

// Renderer draws the whole pond each frame: water, backdrop, ripples,
// agents, status line
type Renderer struct {
	screen   tcell.Screen
	width    int
	height   int
	water    *Water
	ripples  *Ripples
	backdrop *Backdrop
}

// NewRenderer creates a renderer sized from the screen
func NewRenderer(screen tcell.Screen, seed int64, start time.Time) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		width:   w,
		height:  h,
		water:   NewWater(seed, start),
		ripples: NewRipples(),
	}
}

// SetBackdrop installs optional ASCII art, nil clears it
func (r *Renderer) SetBackdrop(b *Backdrop) {
	r.backdrop = b
}

// Resize re-reads the screen geometry after a terminal resize
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.screen.Sync()
}

// Size returns the current pond size in cells
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// AddRipple spawns a press ripple at a world point
func (r *Renderer) AddRipple(origin pond.Point, now time.Time) {
	r.ripples.Add(origin, now)
}

// Frame renders one full frame and flushes it to the terminal
func (r *Renderer) Frame(reg *pond.Registry, now time.Time, paused, muted bool) {
	r.drawWater(now)
	r.backdrop.Draw(r.screen, r.width, r.height-1)
	r.ripples.Draw(r.screen, r.width, r.height-1, now)
	r.drawAgents(reg)
	r.drawStatusBar(reg, paused, muted)
	r.screen.Show()
}

func (r *Renderer) drawWater(now time.Time) {
	for y := 0; y < r.height-1; y++ {
		for x := 0; x < r.width; x++ {
			glyph, style := r.water.Cell(x, y, now)
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawAgents(reg *pond.Registry) {
	for _, a := range reg.Agents() {
		pose := a.Pose()
		cx, cy := WorldToCell(pose.Point())
		if cx < 0 || cy < 0 || cx >= r.width || cy >= r.height-1 {
			continue
		}
		// Keep the water background under the sprite
		_, _, cellStyle, _ := r.screen.GetContent(cx, cy)
		_, bg, _ := cellStyle.Decompose()
		r.screen.SetContent(cx, cy, spriteRune(pose.Heading), nil, spriteStyle(a, bg))
	}
}

// drawStatusBar paints the bottom row: population, mode tallies, toggles
func (r *Renderer) drawStatusBar(reg *pond.Registry, paused, muted bool) {
	moving := 0
	for _, a := range reg.Agents() {
		if a.Mode() != pond.ModeIdle {
			moving++
		}
	}

	text := fmt.Sprintf(" shrimp %d  active %d ", reg.Len(), moving)
	if paused {
		text += " [PAUSED]"
	}
	if muted {
		text += " [MUTED]"
	}
	text += "  q quit · s sound · space pause"

	style := tcell.StyleDefault.
		Foreground(toTcell(statusColor)).
		Background(tcell.NewRGBColor(10, 10, 20))

	y := r.height - 1
	for x := 0; x < r.width; x++ {
		ch := ' '
		if x < len([]rune(text)) {
			ch = []rune(text)[x]
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}
