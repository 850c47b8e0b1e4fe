package input

// IntentType discriminates semantic actions parsed from terminal events
type IntentType uint8

const (
	IntentNone IntentType = iota

	// IntentQuit requests shutdown (Esc, Ctrl+C, q)
	IntentQuit

	// IntentPointerDown is a primary-button press at a screen cell
	IntentPointerDown

	// IntentToggleSound flips audio mute (s)
	IntentToggleSound

	// IntentTogglePause gates interaction dispatch (space)
	IntentTogglePause

	// IntentResize signals a terminal geometry change
	IntentResize
)

// Intent is one parsed semantic action. X, Y carry the screen cell for
// pointer intents
type Intent struct {
	Type IntentType
	X, Y int
}
