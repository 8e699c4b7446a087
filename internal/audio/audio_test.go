package audio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/catcher/internal/game"
)

func TestMelody(t *testing.T) {
	tests := []struct {
		event game.EventType
		notes int
	}{
		{game.EventCatch, 1},
		{game.EventMiss, 2},
		{game.EventLevelUp, 3},
		{game.EventGameOver, 3},
		{game.EventSaveRequested, 0},
		{game.EventCountdownDone, 0},
	}
	for _, tt := range tests {
		if got := len(Melody(tt.event)); got != tt.notes {
			t.Errorf("Melody(%v) has %d notes, want %d", tt.event, got, tt.notes)
		}
	}
}

func TestStreamerLength(t *testing.T) {
	notes := []Note{{440, 10 * time.Millisecond}, {880, 20 * time.Millisecond}}
	s, err := Streamer(notes, -1)
	if err != nil {
		t.Fatal(err)
	}
	want := sampleRate.N(10*time.Millisecond) + sampleRate.N(20*time.Millisecond)

	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total, buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
	if total != want {
		t.Fatalf("streamed %d samples, want %d", total, want)
	}
}

func TestStreamerSilent(t *testing.T) {
	s, err := Streamer(nil, 0)
	if err != nil || s != nil {
		t.Fatalf("Streamer(nil) = %v, %v, want nil, nil", s, err)
	}
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	b := Bell{W: &buf}
	b.Play(game.Event{Type: game.EventCatch})
	b.Play(game.Event{Type: game.EventMiss})
	b.Play(game.Event{Type: game.EventGameOver})
	if buf.String() != "\a\a" {
		t.Fatalf("bell wrote %q, want two bells", buf.String())
	}
}

func TestBeepLogsBadCue(t *testing.T) {
	var out bytes.Buffer
	b := newBeep(0, log.New(&out))

	b.play(game.EventCatch, []Note{{30000, 10 * time.Millisecond}})
	if b.mixer.Len() != 0 {
		t.Fatalf("mixer has %d streamers after a failed cue", b.mixer.Len())
	}
	if !strings.Contains(out.String(), "sound cue failed") {
		t.Fatalf("log = %q, want a warning", out.String())
	}

	b.Play(game.Event{Type: game.EventCatch})
	if b.mixer.Len() != 1 {
		t.Fatalf("mixer has %d streamers, want 1", b.mixer.Len())
	}
	b.Play(game.Event{Type: game.EventSaveRequested})
	if b.mixer.Len() != 1 {
		t.Fatal("silent event added a streamer")
	}
}
