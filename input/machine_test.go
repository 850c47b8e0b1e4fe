package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyIntents(t *testing.T) {
	m := NewMachine()
	cases := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), IntentToggleSound},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentTogglePause},
	}
	for _, c := range cases {
		got := m.Process(c.ev)
		if got == nil || got.Type != c.want {
			t.Errorf("key %v: got %+v, want type %v", c.ev.Key(), got, c.want)
		}
	}

	if m.Process(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) != nil {
		t.Errorf("unbound key should produce no intent")
	}
}

func TestMousePressEdgeDetection(t *testing.T) {
	m := NewMachine()

	press := tcell.NewEventMouse(4, 7, tcell.Button1, tcell.ModNone)
	got := m.Process(press)
	if got == nil || got.Type != IntentPointerDown || got.X != 4 || got.Y != 7 {
		t.Fatalf("expected pointer down at (4,7), got %+v", got)
	}

	// Held button: no second press intent
	drag := tcell.NewEventMouse(5, 7, tcell.Button1, tcell.ModNone)
	if m.Process(drag) != nil {
		t.Errorf("held button must not re-fire")
	}

	// Release then press again: new intent
	release := tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone)
	if m.Process(release) != nil {
		t.Errorf("release should produce no intent")
	}
	again := m.Process(tcell.NewEventMouse(1, 2, tcell.Button1, tcell.ModNone))
	if again == nil || again.Type != IntentPointerDown {
		t.Errorf("new press after release should fire")
	}
}

func TestResizeIntent(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventResize(80, 24))
	if got == nil || got.Type != IntentResize {
		t.Errorf("expected resize intent, got %+v", got)
	}
}
