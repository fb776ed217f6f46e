// Package audio plays short generated tones when notes are hit or missed.
package audio

import (
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Feedback interface {
	Judged(rating game.Rating)
	Close()
}

// Silent is used when muted, when the speaker is unavailable and for remote
// players.
type Silent struct{}

func (Silent) Judged(game.Rating) {}
func (Silent) Close()             {}

type BeepFeedback struct {
	mixer *beep.Mixer
}

func NewBeepFeedback() (*BeepFeedback, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); nil != err {
		return nil, fmt.Errorf("unable to init speaker: %w", err)
	}
	f := &BeepFeedback{mixer: &beep.Mixer{}}
	speaker.Play(f.mixer)
	return f, nil
}

var tones = map[game.Rating]struct {
	freq   float64
	length time.Duration
}{
	game.Perfect: {880, 70 * time.Millisecond},
	game.Great:   {660, 60 * time.Millisecond},
	game.Good:    {523.25, 50 * time.Millisecond},
	game.Miss:    {110, 120 * time.Millisecond},
}

func (f *BeepFeedback) Judged(rating game.Rating) {
	t, ok := tones[rating]
	if !ok {
		return
	}
	speaker.Lock()
	f.mixer.Add(Tone(sampleRate, t.freq, t.length, 0.3))
	speaker.Unlock()
}

func (f *BeepFeedback) Close() {
	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
}

// Tone is a sine at freq that fades out linearly over length.
func Tone(sr beep.SampleRate, freq float64, length time.Duration, volume float64) beep.Streamer {
	total := sr.N(length)
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 1 - float64(pos)/float64(total)
			if env < 0 {
				env = 0
			}
			v := volume * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}
