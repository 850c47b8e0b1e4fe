package events

import (
	"time"
)

// EventType discriminates input events crossing from the tcell poll
// goroutine into the simulation tick
type EventType uint8

const (
	// EventPointerDown is a primary-button press
	// Producer: input pump | Consumer: interaction router | X,Y = screen cell
	EventPointerDown EventType = iota

	// EventQuit requests loop shutdown (Esc, Ctrl+C, q)
	EventQuit

	// EventToggleSound flips audio mute
	EventToggleSound

	// EventTogglePause gates simulation dispatch without stopping the loop
	EventTogglePause

	// EventResize signals a terminal geometry change
	EventResize
)

// Event is a single input event with its press timestamp
type Event struct {
	Type EventType
	X, Y int
	Time time.Time
}
