package parameter

import (
	"time"
)

// Cue Tones
const (
	SampleRate = 44100

	// SpeakerBufferLength is the beep speaker buffer duration
	SpeakerBufferLength = 100 * time.Millisecond

	// Tone frequencies per behavior cue, chosen as a rough pentatonic set
	// so rapid cue bursts stay listenable
	ToneAliveHz     = 880.0
	ToneMoveHz      = 587.0
	ToneTurnLeftHz  = 659.0
	ToneTurnRightHz = 784.0
	ToneReturnHz    = 523.0
	ToneIdleHz      = 440.0

	ToneDuration = 45 * time.Millisecond
)
