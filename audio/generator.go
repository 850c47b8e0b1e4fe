package audio

import (
	"math"

	"github.com/lixenwraith/shrimp-pond/parameter"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates a raw sine at the given frequency
func oscillator(freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.SampleRate)

	for i := 0; i < samples; i++ {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(parameter.SampleRate))
	releaseSamples := int(releaseSec * float64(parameter.SampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// generateTone builds a short enveloped sine blip. A fifth of the tone is
// attack, two fifths release, which keeps 45ms blips click-free
func generateTone(freq float64) floatBuffer {
	dur := parameter.ToneDuration.Seconds()
	samples := int(dur * float64(parameter.SampleRate))
	buf := oscillator(freq, samples)
	applyEnvelope(buf, dur*0.2, dur*0.4)
	return buf
}

// bufferStreamer plays a floatBuffer once at the given gain
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
