package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic intents. It tracks the mouse
// button mask so a held button reports exactly one press
type Machine struct {
	lastButtons tcell.ButtonMask
}

func NewMachine() *Machine {
	return &Machine{}
}

// Process parses one terminal event, returning nil when the event carries
// no semantic action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case 's', 'S':
			return &Intent{Type: IntentToggleSound}
		case ' ':
			return &Intent{Type: IntentTogglePause}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	buttons := ev.Buttons() & tcell.ButtonMask(0xff)
	pressed := buttons &^ m.lastButtons
	m.lastButtons = buttons

	if pressed&tcell.Button1 != 0 {
		x, y := ev.Position()
		return &Intent{Type: IntentPointerDown, X: x, Y: y}
	}
	return nil
}
