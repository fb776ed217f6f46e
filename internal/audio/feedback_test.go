package audio

import (
	"math"
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/faiface/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	out := [][2]float64{}
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(Tone(sr, 440, 100*time.Millisecond, 0.5))
	if len(samples) != 800 {
		t.Errorf("tone has %d samples, want 800", len(samples))
	}
}

func TestToneFadesOut(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(Tone(sr, 440, 100*time.Millisecond, 0.5))
	peak := func(s [][2]float64) float64 {
		m := 0.0
		for _, v := range s {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	head, tail := peak(samples[:100]), peak(samples[700:])
	if head > 0.5 {
		t.Errorf("peak %v above the volume", head)
	}
	if tail >= head {
		t.Errorf("tail peak %v not below head peak %v", tail, head)
	}
	for _, v := range samples {
		if v[0] != v[1] {
			t.Fatal("channels differ")
		}
	}
}

func TestEveryRatingHasATone(t *testing.T) {
	for _, j := range game.Judgements {
		if _, ok := tones[j.Rating]; !ok {
			t.Errorf("no tone for %v", j.Rating)
		}
	}
}

func TestSilent(t *testing.T) {
	var f Feedback = Silent{}
	f.Judged(game.Perfect)
	f.Close()
}
