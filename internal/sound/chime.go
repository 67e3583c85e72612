// Package sound plays the short notification chimes.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/portfolio-rain/internal/notify"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 90 * time.Millisecond
	volume     = 0.2
)

// notes per kind, in Hz.
var chimes = map[notify.Kind][]float64{
	notify.Success: {659.25, 880},
	notify.Error:   {329.63, 220},
	notify.Info:    {523.25},
}

// tone is a sine note with a short linear fade at both ends so it does not
// click.
type tone struct {
	freq  float64
	pos   int
	total int
	fade  int
}

func newTone(freq float64, d time.Duration) *tone {
	total := sampleRate.N(d)
	return &tone{freq: freq, total: total, fade: total / 8}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(sampleRate)) * volume * t.envelope()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

func (t *tone) envelope() float64 {
	if t.fade == 0 {
		return 1
	}
	switch {
	case t.pos < t.fade:
		return float64(t.pos) / float64(t.fade)
	case t.pos >= t.total-t.fade:
		return float64(t.total-t.pos) / float64(t.fade)
	}
	return 1
}

// melody returns the chime for k as one streamer.
func melody(k notify.Kind) beep.Streamer {
	freqs, ok := chimes[k]
	if !ok {
		freqs = chimes[notify.Info]
	}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, newTone(f, noteLength))
	}
	return beep.Seq(notes...)
}

// Chime plays a short tone when a banner is shown.
type Chime struct {
	enabled bool
	log     *zap.Logger
}

// NewChime initialises the speaker when enabled. If the audio device cannot
// be opened the chime stays silent.
func NewChime(enabled bool, log *zap.Logger) *Chime {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Chime{log: log}
	if !enabled {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		log.Warn("audio unavailable, notification sounds disabled", zap.Error(err))
		return c
	}
	c.enabled = true
	return c
}

// Enabled reports whether sounds will play.
func (c *Chime) Enabled() bool { return c.enabled }

// Play queues the chime for k.
func (c *Chime) Play(k notify.Kind) {
	if !c.enabled {
		return
	}
	speaker.Play(melody(k))
}

// Close stops playback.
func (c *Chime) Close() {
	if !c.enabled {
		return
	}
	speaker.Clear()
}
