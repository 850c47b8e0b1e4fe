package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shrimp-pond/core"
	"github.com/lixenwraith/shrimp-pond/events"
)

// StartPump polls the screen on its own goroutine and pushes parsed
// intents into the event queue. tcell's PollEvent returns nil once the
// screen is finalized, which ends the pump
func StartPump(screen tcell.Screen, queue *events.Queue) {
	machine := NewMachine()
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			queue.Push(toEvent(intent, ev))
		}
	})
}

func toEvent(intent *Intent, ev tcell.Event) events.Event {
	out := events.Event{X: intent.X, Y: intent.Y, Time: ev.When()}
	switch intent.Type {
	case IntentQuit:
		out.Type = events.EventQuit
	case IntentPointerDown:
		out.Type = events.EventPointerDown
	case IntentToggleSound:
		out.Type = events.EventToggleSound
	case IntentTogglePause:
		out.Type = events.EventTogglePause
	case IntentResize:
		out.Type = events.EventResize
	}
	return out
}
