// Package audio plays the short chime that marks a section change.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/portfolio/internal/config"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeLength   = 350 * time.Millisecond
	levelRingSize = 2048
)

// Chime synthesizes an exponentially decaying sine of the given frequency.
func Chime(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			v := math.Sin(2*math.Pi*freq*t) * math.Exp(-config.ChimeDecay*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// Player owns the speaker. A disabled player does nothing.
type Player struct {
	enabled bool

	once    sync.Once
	initErr error
	tap     *levelTap
}

func NewPlayer(enabled bool) *Player {
	return &Player{enabled: enabled}
}

// Play starts a chime. The speaker is initialized on first use; if that
// fails the error is returned on every call and nothing is played.
func (p *Player) Play() error {
	if !p.enabled {
		return nil
	}
	p.once.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
			p.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	if p.initErr != nil {
		return p.initErr
	}

	tap := newLevelTap(&effects.Volume{
		Streamer: Chime(sampleRate, config.ChimeFrequency, chimeLength),
		Base:     2,
		Volume:   config.ChimeVolume,
	}, levelRingSize)

	p.tap = tap
	speaker.Play(beep.Seq(tap, beep.Callback(tap.reset)))
	return nil
}

// Level is the loudness of the chime currently playing, in [0,1].
func (p *Player) Level() float64 {
	if !p.enabled {
		return 0
	}
	if p.tap == nil {
		return 0
	}
	return p.tap.level()
}
