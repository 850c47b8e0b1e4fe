package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/pond"
)

const (
	sampleRate = beep.SampleRate(parameter.SampleRate)

	toneGain = 0.25
)

// SoundManager plays short tone blips for behavior cues. It implements
// pond.CueSink; cue playback is fire-and-forget and never blocks the tick
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	tones       map[pond.Cue]floatBuffer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a sound manager with all cue tones pre-rendered
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		tones: map[pond.Cue]floatBuffer{
			pond.CueAlive:     generateTone(parameter.ToneAliveHz),
			pond.CueMove:      generateTone(parameter.ToneMoveHz),
			pond.CueTurnLeft:  generateTone(parameter.ToneTurnLeftHz),
			pond.CueTurnRight: generateTone(parameter.ToneTurnRightHz),
			pond.CueReturn:    generateTone(parameter.ToneReturnHz),
			pond.CueIdle:      generateTone(parameter.ToneIdleHz),
		},
	}
}

// Initialize opens the speaker. On machines without an audio device this
// returns an error and the manager stays silent but usable
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.SpeakerBufferLength))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences and detaches all streamers. beep has no speaker close,
// clearing the mixer is sufficient
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute flips the mute state and reports the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether cue playback is suppressed
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Cue plays the tone for a behavior cue. Unknown cues are dropped
func (sm *SoundManager) Cue(c pond.Cue) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf, ok := sm.tones[c]
	if !ok {
		return
	}
	speaker.Lock()
	sm.mixer.Add(&bufferStreamer{buf: buf, gain: toneGain})
	speaker.Unlock()
}
