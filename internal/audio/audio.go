// Package audio plays short cues for game events.
package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/catcher/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cues reacts to game events with sound.
type Cues interface {
	Play(e game.Event)
	Close()
}

// Note is one tone of a cue.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Melody returns the notes played for an event, or nil for silent events.
func Melody(t game.EventType) []Note {
	switch t {
	case game.EventCatch:
		return []Note{{660, 60 * time.Millisecond}}
	case game.EventMiss:
		return []Note{{196, 90 * time.Millisecond}, {147, 120 * time.Millisecond}}
	case game.EventPowerUp:
		return []Note{{523, 60 * time.Millisecond}, {784, 90 * time.Millisecond}}
	case game.EventLevelUp:
		return []Note{{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 140 * time.Millisecond}}
	case game.EventAchievement:
		return []Note{{784, 80 * time.Millisecond}, {988, 160 * time.Millisecond}}
	case game.EventNewBest:
		return []Note{{880, 80 * time.Millisecond}, {1047, 200 * time.Millisecond}}
	case game.EventGameOver:
		return []Note{{392, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {262, 300 * time.Millisecond}}
	}
	return nil
}

// Nop ignores every event.
type Nop struct{}

func (Nop) Play(game.Event) {}
func (Nop) Close()          {}

// Bell rings the terminal bell for events that end or change a run.
// It is used over SSH where the server has no speaker.
type Bell struct {
	W io.Writer
}

func (b Bell) Play(e game.Event) {
	switch e.Type {
	case game.EventMiss, game.EventGameOver, game.EventLevelUp:
		io.WriteString(b.W, "\a")
	}
}

func (Bell) Close() {}

// Beep plays cues through the local sound device.
type Beep struct {
	mixer  *beep.Mixer
	volume float64
	logger *log.Logger
}

// NewBeep initialises the speaker. volume is relative, 0 is unchanged and
// negative values are quieter.
func NewBeep(volume float64, logger *log.Logger) (*Beep, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	b := newBeep(volume, logger)
	speaker.Play(b.mixer)
	return b, nil
}

func newBeep(volume float64, logger *log.Logger) *Beep {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Beep{mixer: &beep.Mixer{}, volume: volume, logger: logger}
}

func (b *Beep) Play(e game.Event) {
	b.play(e.Type, Melody(e.Type))
}

func (b *Beep) play(t game.EventType, notes []Note) {
	s, err := Streamer(notes, b.volume)
	if err != nil {
		b.logger.Warn("sound cue failed", "event", t, "err", err)
		return
	}
	if s == nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

func (b *Beep) Close() {
	speaker.Clear()
}

// Streamer renders notes into a single streamer, or nil for no notes.
func Streamer(notes []Note, volume float64) (beep.Streamer, error) {
	if len(notes) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.Duration), tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}
