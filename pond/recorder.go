package pond

import (
	"iter"
	"time"

	"github.com/lixenwraith/shrimp-pond/vmath"
)

// Recorder keeps a bounded, sparsely sampled trace of a forward move.
// Appends are throttled by wall-clock interval and minimum spacing so long
// or jittery traversals stay within the capacity bound while the reverse
// replay remains visually faithful
type Recorder struct {
	points     []Point
	max        int
	minGap     int64
	interval   time.Duration
	lastAppend time.Time
}

// NewRecorder creates an empty recorder with the given bounds
func NewRecorder(max int, minGap int64, interval time.Duration) *Recorder {
	if max < 1 {
		max = 1
	}
	return &Recorder{
		points:   make([]Point, 0, max),
		max:      max,
		minGap:   minGap,
		interval: interval,
	}
}

// Reset clears the trace and seeds it with a single point
func (r *Recorder) Reset(seed Point) {
	r.points = r.points[:0]
	r.points = append(r.points, seed)
	r.lastAppend = time.Time{}
}

// MaybeAppend stores p iff capacity remains, the sampling interval has
// elapsed since the last append, and p is farther than the minimum gap
// from the last stored point. No-op otherwise
func (r *Recorder) MaybeAppend(p Point, now time.Time) {
	if len(r.points) >= r.max {
		return
	}
	if !r.lastAppend.IsZero() && now.Sub(r.lastAppend) < r.interval {
		return
	}
	if len(r.points) > 0 {
		last := r.points[len(r.points)-1]
		if vmath.Magnitude(p.X-last.X, p.Y-last.Y) <= r.minGap {
			return
		}
	}
	r.points = append(r.points, p)
	r.lastAppend = now
}

// Finalize appends the true arrival point, bypassing sampling throttles,
// so the trace always ends where the move ended. Skipped only when the
// point is already stored last or capacity is exhausted
func (r *Recorder) Finalize(p Point) {
	if len(r.points) > 0 && r.points[len(r.points)-1] == p {
		return
	}
	if len(r.points) >= r.max {
		return
	}
	r.points = append(r.points, p)
}

// Len returns the number of stored points
func (r *Recorder) Len() int {
	return len(r.points)
}

// Reversed returns a lazy last-to-first view of the stored points.
// The sequence is finite, restartable, and never mutates the recorder
func (r *Recorder) Reversed() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := len(r.points) - 1; i >= 0; i-- {
			if !yield(r.points[i]) {
				return
			}
		}
	}
}
