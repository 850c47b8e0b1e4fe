package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Backdrop is decorative ASCII art anchored to the bottom-left of the pond,
// drawn between the water and the agents
type Backdrop struct {
	lines []string
}

// LoadBackdrop reads an ASCII art file, one row per line. Trailing blank
// lines are dropped, tabs are not expanded
func LoadBackdrop(path string) (*Backdrop, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("backdrop %q: %w", path, err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return &Backdrop{lines: lines}, nil
}

// Draw paints the art anchored bottom-left, skipping spaces so the water
// shows through
func (b *Backdrop) Draw(screen tcell.Screen, width, height int) {
	if b == nil || len(b.lines) == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(backdropColor))

	top := height - len(b.lines)
	for row, line := range b.lines {
		y := top + row
		if y < 0 || y >= height {
			continue
		}
		for col, ch := range []rune(line) {
			if ch == ' ' || col >= width {
				continue
			}
			screen.SetContent(col, y, ch, nil, style)
		}
	}
}
