// Package audio plays the celebration chime through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime notes: a rising major arpeggio.
var chimeNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	noteLength = 90 * time.Millisecond
	fade       = 15 * time.Millisecond
	volume     = 0.4
)

// Chime plays a short jingle when a large merge is celebrated.
// A nil *Chime is silent.
type Chime struct {
	mu          sync.Mutex
	initialized bool
}

// NewChime initializes the speaker. Audio is optional: callers log the
// error and carry on without sound.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Chime{initialized: true}, nil
}

// Play starts the chime and returns immediately.
func (c *Chime) Play() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Play(Jingle(sampleRate))
}

// Close stops playback and releases the speaker.
func (c *Chime) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// Jingle returns the chime as a finite stream.
func Jingle(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, freq := range chimeNotes {
		notes = append(notes, NewTone(freq, noteLength, rate))
	}
	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   math.Log2(volume),
	}
}

// tone is a sine wave with a linear fade in and out.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	fade     int
	rate     beep.SampleRate
}

// NewTone creates a sine tone of the given frequency and length.
func NewTone(freq float64, length time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(length),
		fade:  rate.N(fade),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		val := math.Sin(2*math.Pi*t.phase) * t.gain()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) gain() float64 {
	if t.fade <= 0 {
		return 1
	}
	if t.position < t.fade {
		return float64(t.position) / float64(t.fade)
	}
	if left := t.total - t.position; left < t.fade {
		return float64(left) / float64(t.fade)
	}
	return 1
}

func (t *tone) Err() error { return nil }
