// Package audio plays the short tones that mark the end of a run.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a sound
type Cue int

const (
	Success Cue = iota
	Failure
)

type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Cue][]note{
	Success: {{freq: 660, dur: 90 * time.Millisecond}, {freq: 880, dur: 140 * time.Millisecond}},
	Failure: {{freq: 330, dur: 180 * time.Millisecond}, {freq: 220, dur: 260 * time.Millisecond}},
}

var (
	speakerOnce  sync.Once
	speakerReady bool
)

// Player plays cues unless muted. Audio errors never reach the caller.
type Player struct {
	Muted bool
	Log   logrus.FieldLogger
}

func (p *Player) ensureSpeaker() bool {
	speakerOnce.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			p.Log.WithError(err).Debug("Audio unavailable")
			return
		}
		speakerReady = true
	})
	return speakerReady
}

// Play plays a cue synchronously (blocks until complete)
func (p *Player) Play(cue Cue) {
	if p.Muted {
		return
	}

	streamer, err := tones(cues[cue])
	if err != nil {
		p.Log.WithError(err).Debug("Couldn't build sound")
		return
	}
	if !p.ensureSpeaker() {
		return
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   -3,
	}, beep.Callback(func() {
		close(done)
	})))
	<-done
}

func tones(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return beep.Seq(parts...), nil
}

// Success plays the cue for a finished run
func (p *Player) Success() { p.Play(Success) }

// Failure plays the cue for an aborted run
func (p *Player) Failure() { p.Play(Failure) }
