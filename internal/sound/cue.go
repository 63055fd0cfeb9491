// Package sound plays short synthesized cues for drag feedback.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	gain       = 0.25
)

// Cue identifies a feedback sound.
type Cue int

const (
	Grab    Cue = iota // point picked up
	Release            // point dropped
	Saved              // animation written
)

type note struct {
	freq float64 // zero is a rest
	dur  time.Duration
}

var cues = map[Cue][]note{
	Grab:    {{freq: 880, dur: 60 * time.Millisecond}},
	Release: {{freq: 660, dur: 60 * time.Millisecond}},
	Saved: {
		{freq: 660, dur: 80 * time.Millisecond},
		{dur: 30 * time.Millisecond},
		{freq: 990, dur: 120 * time.Millisecond},
	},
}

// Player queues cues on the speaker. A Player whose speaker failed to
// initialize stays silent.
type Player struct {
	rate    beep.SampleRate
	enabled bool
}

// NewPlayer initializes the speaker. On failure it still returns a usable,
// silent Player together with the error.
func NewPlayer() (*Player, error) {
	p := &Player{rate: SampleRate}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return p, fmt.Errorf("sound: init speaker: %w", err)
	}
	p.enabled = true
	return p, nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool { return p != nil && p.enabled }

// Play queues c without blocking.
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	speaker.Play(Streamer(p.rate, c))
}

// Streamer returns the samples of c at the given rate.
func Streamer(rate beep.SampleRate, c Cue) beep.Streamer {
	notes := cues[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		parts = append(parts, tone(rate, n.freq, n.dur))
	}
	return beep.Seq(parts...)
}

// tone is a sine wave with a linear fade-out so it ends without a click.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	step := 2 * math.Pi * freq / float64(rate)
	var pos int
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && pos < total; n++ {
			env := 1 - float64(pos)/float64(total)
			v := gain * env * math.Sin(step*float64(pos))
			samples[n][0], samples[n][1] = v, v
			pos++
		}
		return n, true
	})
}
