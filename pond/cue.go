package pond

// Cue is a discrete behavior notification for external collaborators
// (sound, visual flashes). Cues are observational: emission never feeds
// back into agent behavior
type Cue uint8

const (
	CueAlive Cue = iota
	CueMove
	CueTurnLeft
	CueTurnRight
	CueReturn
	CueIdle
)

func (c Cue) String() string {
	switch c {
	case CueAlive:
		return "Alive"
	case CueMove:
		return "Move"
	case CueTurnLeft:
		return "TurnLeft"
	case CueTurnRight:
		return "TurnRight"
	case CueReturn:
		return "Return"
	case CueIdle:
		return "Idle"
	}
	return "Unknown"
}

// CueSink receives behavior cues, fire-and-forget
// A nil sink is valid and drops all cues
type CueSink interface {
	Cue(c Cue)
}

// MultiSink fans a cue out to several sinks in order, skipping nil entries
type MultiSink []CueSink

func (m MultiSink) Cue(c Cue) {
	for _, s := range m {
		if s != nil {
			s.Cue(c)
		}
	}
}
