package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndLevel(t *testing.T) {
	samples := drain(tone(SampleRate, 440, 50*time.Millisecond))
	require.Len(t, samples, SampleRate.N(50*time.Millisecond))

	var peak float64
	for _, s := range samples {
		require.Equal(t, s[0], s[1])
		peak = math.Max(peak, math.Abs(s[0]))
	}
	require.LessOrEqual(t, peak, gain)
	require.Greater(t, peak, 0.0)
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{Grab, 60 * time.Millisecond},
		{Release, 60 * time.Millisecond},
	}
	for _, tt := range tests {
		require.Len(t, drain(Streamer(SampleRate, tt.cue)), SampleRate.N(tt.want))
	}

	want := SampleRate.N(80*time.Millisecond) + SampleRate.N(30*time.Millisecond) + SampleRate.N(120*time.Millisecond)
	require.Len(t, drain(Streamer(SampleRate, Saved)), want)
}

func TestSilentPlayer(t *testing.T) {
	var p *Player
	require.False(t, p.Enabled())
	p.Play(Grab)

	p = &Player{rate: SampleRate}
	require.False(t, p.Enabled())
	p.Play(Saved)
}
