package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and records the last N samples into a ring
// buffer so the UI can follow the loudness of whatever the speaker plays.
type levelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	t.mu.Lock()
	for i := 0; i < n; i++ {
		t.buffer[t.nextIndex] = samples[i]
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
	}
	t.mu.Unlock()
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// reset silences the recorded history once the source is exhausted.
func (t *levelTap) reset() {
	t.mu.Lock()
	clear(t.buffer)
	t.mu.Unlock()
}

// level returns the RMS of the mono mix over the ring buffer, in [0,1].
func (t *levelTap) level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.buffer) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range t.buffer {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Min(1, math.Sqrt(sumSquares/float64(len(t.buffer))))
}
