package pond

import (
	"time"

	"github.com/lixenwraith/shrimp-pond/parameter"
	"github.com/lixenwraith/shrimp-pond/vmath"
)

// wiggleTask plays a bounded-duration "alive" oscillation: the heading
// swings sinusoidally around its pre-wiggle value with a small amplitude
// and the scale follows the same sinusoid. The position is pinned to its
// pre-wiggle value every tick, guaranteeing zero net translation, and the
// exact pre-wiggle orientation and scale are restored on completion
type wiggleTask struct {
	a        *Agent
	elapsed  time.Duration
	duration time.Duration

	pinX, pinY  int64
	baseHeading int64
	baseScale   int64
}

func newWiggleTask(a *Agent) *wiggleTask {
	return &wiggleTask{
		a:           a,
		duration:    a.cfg.WiggleDuration,
		pinX:        a.pose.X,
		pinY:        a.pose.Y,
		baseHeading: a.pose.Heading,
		baseScale:   a.pose.Scale,
	}
}

func (w *wiggleTask) step(now time.Time, dt time.Duration) bool {
	a := w.a
	w.elapsed += dt

	if w.elapsed >= w.duration {
		// Exact restore, not sinusoid decay
		a.pose.X, a.pose.Y = w.pinX, w.pinY
		a.pose.Heading = w.baseHeading
		a.pose.Scale = w.baseScale
		a.mode = ModeIdle
		a.emit(CueIdle)
		return true
	}

	// Phase runs WiggleCycles full turns over the duration
	t := vmath.FromFloat(w.elapsed.Seconds() / w.duration.Seconds())
	s := vmath.Sin(vmath.NormalizeAngle(t * parameter.WiggleCycles))

	a.pose.Heading = vmath.NormalizeAngle(w.baseHeading + vmath.Mul(a.cfg.WiggleAmplitude, s))
	a.pose.Scale = w.baseScale + vmath.Mul(vmath.Mul(w.baseScale, a.cfg.WiggleScalePulse), s)

	// Pinned regardless of any other effect
	a.pose.X, a.pose.Y = w.pinX, w.pinY

	return false
}
