package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/pond"
)

// rippleRunes is the expanding ring sequence, young to old
var rippleRunes = []rune{'·', 'o', 'O', '○'}

// ripple is one expanding press ring
type ripple struct {
	origin pond.Point
	start  time.Time
}

// Ripples tracks active press ripples and expires them after their lifetime
type Ripples struct {
	active []ripple
}

func NewRipples() *Ripples {
	return &Ripples{}
}

// Add spawns a ripple at a world point
func (r *Ripples) Add(origin pond.Point, now time.Time) {
	r.active = append(r.active, ripple{origin: origin, start: now})
}

// prune drops expired ripples in place
func (r *Ripples) prune(now time.Time) {
	kept := r.active[:0]
	for _, rp := range r.active {
		if now.Sub(rp.start) < parameter.RippleLifetime {
			kept = append(kept, rp)
		}
	}
	r.active = kept
}

// Len returns the live ripple count
func (r *Ripples) Len() int { return len(r.active) }

// Draw expires old ripples and draws the rest as expanding rings
func (r *Ripples) Draw(screen tcell.Screen, width, height int, now time.Time) {
	r.prune(now)
	style := tcell.StyleDefault.Foreground(toTcell(rippleColor))

	for _, rp := range r.active {
		progress := float64(now.Sub(rp.start)) / float64(parameter.RippleLifetime)
		radius := progress * parameter.RippleMaxRadiusFloat

		glyph := rippleRunes[int(progress*float64(len(rippleRunes)))%len(rippleRunes)]
		cx, cy := WorldToCell(rp.origin)

		// Ring cells at the 8 compass offsets of the current radius
		rc := int(radius + 0.5)
		if rc < 1 {
			rc = 1
		}
		for _, off := range [8][2]int{
			{rc, 0}, {-rc, 0}, {0, rc}, {0, -rc},
			{rc, rc}, {rc, -rc}, {-rc, rc}, {-rc, -rc},
		} {
			x, y := cx+off[0], cy+off[1]
			if x < 0 || y < 0 || x >= width || y >= height {
				continue
			}
			screen.SetContent(x, y, glyph, nil, style)
		}
	}
}
