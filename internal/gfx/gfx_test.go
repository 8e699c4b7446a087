package gfx

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/catcher/internal/game"
)

type recordingCues struct {
	events []game.EventType
}

func (r *recordingCues) Play(e game.Event) { r.events = append(r.events, e.Type) }
func (r *recordingCues) Close()            {}

type fakeExporter struct {
	name  string
	score int
	err   error
}

func (f *fakeExporter) Export(name string, score int) (string, error) {
	f.name, f.score = name, score
	return "/tmp/highscore.txt", f.err
}

func newTestGame(exp *fakeExporter) (*Game, *recordingCues) {
	cues := &recordingCues{}
	opts := Options{Cues: cues, Rand: rand.New(rand.NewSource(1))}
	if exp != nil {
		opts.Exporter = exp
	}
	return New(opts), cues
}

func startPlaying(t *testing.T, g *Game, now time.Time) {
	t.Helper()
	g.apply(Controls{Primary: true}, now)
	if g.snap.Mode != game.ModeCountdown {
		t.Fatalf("mode = %v, want countdown", g.snap.Mode)
	}
	g.apply(Controls{Taps: []Point{{300, 300}}}, now)
	if g.snap.Mode != game.ModePlaying {
		t.Fatalf("mode = %v, want playing", g.snap.Mode)
	}
}

func TestStartAndSkipCountdown(t *testing.T) {
	g, cues := newTestGame(nil)
	startPlaying(t, g, time.Now())

	found := false
	for _, e := range cues.events {
		found = found || e == game.EventCountdownDone
	}
	if !found {
		t.Errorf("cues = %v, want a countdown done cue", cues.events)
	}
}

func TestTouchButtonsHoldDirection(t *testing.T) {
	g, _ := newTestGame(nil)
	now := time.Now()
	startPlaying(t, g, now)

	left, right := directionButtons(g.snap.Surface)
	lx, ly := left.Center()
	rx, ry := right.Center()

	start := g.snap.Basket.X
	g.apply(Controls{Taps: []Point{{lx, ly}}, Touches: []Point{{lx, ly}}}, now)
	for i := 0; i < 4; i++ {
		g.apply(Controls{Touches: []Point{{lx, ly}}}, now)
	}
	if g.snap.Mode != game.ModePlaying || g.snap.Paused {
		t.Fatalf("tap on a direction button changed the mode to %v", g.snap.Mode)
	}
	if g.snap.Basket.X >= start {
		t.Errorf("basket x = %v, want less than %v", g.snap.Basket.X, start)
	}

	moved := g.snap.Basket.X
	for i := 0; i < 4; i++ {
		g.apply(Controls{Touches: []Point{{rx, ry}}}, now)
	}
	if g.snap.Basket.X <= moved {
		t.Errorf("basket x = %v, want more than %v", g.snap.Basket.X, moved)
	}
}

func TestPauseAndQuit(t *testing.T) {
	g, _ := newTestGame(nil)
	now := time.Now()
	startPlaying(t, g, now)

	g.apply(Controls{Pause: true}, now)
	if !g.snap.Paused {
		t.Fatal("expected paused")
	}
	g.apply(Controls{Pause: true}, now)
	if g.snap.Paused {
		t.Fatal("expected resumed")
	}

	g.apply(Controls{Quit: true}, now)
	if !g.quit {
		t.Error("quit not recorded")
	}
}

func TestNamingExports(t *testing.T) {
	exp := &fakeExporter{}
	g, _ := newTestGame(exp)
	now := time.Now()
	g.naming = &nameEntry{score: 12}

	g.apply(Controls{Chars: []rune("ab c")}, now)
	if got := string(g.naming.name); got != "ABC" {
		t.Fatalf("name = %q, want ABC", got)
	}
	g.apply(Controls{Chars: []rune("z"), Backspace: true}, now)
	if got := string(g.naming.name); got != "AB" {
		t.Fatalf("name = %q, want AB", got)
	}

	g.apply(Controls{Chars: []rune("x"), Enter: true}, now)
	if g.naming != nil {
		t.Fatal("naming still open")
	}
	if exp.name != "ABX" || exp.score != 12 {
		t.Errorf("exported %q %d, want ABX 12", exp.name, exp.score)
	}
	if g.noticeErr || g.notice == "" || !now.Before(g.noticeUntil) {
		t.Errorf("notice = %q (err %v)", g.notice, g.noticeErr)
	}
}

func TestNamingCancelAndErrors(t *testing.T) {
	exp := &fakeExporter{err: errors.New("disk full")}
	g, _ := newTestGame(exp)
	now := time.Now()

	g.naming = &nameEntry{score: 3}
	g.apply(Controls{Chars: []rune("q"), Escape: true}, now)
	if g.naming != nil || exp.name != "" || g.quit {
		t.Fatalf("escape should only close the prompt: naming=%v exported=%q quit=%v", g.naming, exp.name, g.quit)
	}

	g.naming = &nameEntry{score: 3}
	g.apply(Controls{Enter: true}, now)
	if !g.noticeErr {
		t.Error("expected an error notice")
	}

	g, _ = newTestGame(nil)
	g.naming = &nameEntry{score: 3}
	g.apply(Controls{Enter: true}, now)
	if !g.noticeErr {
		t.Error("expected an error notice without an exporter")
	}
}

func TestLayoutResizesSurface(t *testing.T) {
	g, _ := newTestGame(nil)

	w, h := g.Layout(1600, 800)
	if w != 600 || h != 800 {
		t.Fatalf("layout = %dx%d, want 600x800", w, h)
	}

	w, h = g.Layout(300, 1000)
	if w != 300 || h != 400 {
		t.Fatalf("layout = %dx%d, want 300x400", w, h)
	}
	g.applyLayout()
	if g.snap.Surface != (game.Surface{Width: 300, Height: 400}) {
		t.Errorf("surface = %+v", g.snap.Surface)
	}
	if g.snap.Basket.Y != 400-game.BasketBottom {
		t.Errorf("basket y = %v", g.snap.Basket.Y)
	}

	w, h = g.Layout(0, 0)
	if w != game.DefaultWidth || h != game.DefaultHeight {
		t.Errorf("empty layout = %dx%d", w, h)
	}
}

func TestDirectionButtons(t *testing.T) {
	left, right := directionButtons(game.Surface{Width: 600, Height: 800})
	if left != (game.Rect{X: 10, Y: 720, W: 70, H: 70}) {
		t.Errorf("left = %+v", left)
	}
	if right != (game.Rect{X: 520, Y: 720, W: 70, H: 70}) {
		t.Errorf("right = %+v", right)
	}
}
