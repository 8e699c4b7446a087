package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type memScores struct {
	best    int
	saved   []int
	loadErr error
	saveErr error
}

func (m *memScores) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *memScores) Save(score int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = score
	m.saved = append(m.saved, score)
	return nil
}

var errBroken = errors.New("broken store")

// newPlayingGame returns a seeded game that already skipped the countdown.
func newPlayingGame(t *testing.T, seed int64, scores ScoreStore) *Game {
	t.Helper()
	g := New(Options{Rand: rand.New(rand.NewSource(seed)), Scores: scores})
	g.PointerDown(0, 0, t0)
	g.PointerDown(0, 0, t0)
	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %v, want playing", g.Mode())
	}
	g.Events()
	return g
}

// dropInto places ball i so that it lands in the basket on the next tick.
// Every other ball is parked at the top.
func dropInto(g *Game, i int) {
	s := &g.state
	for j := range s.Balls {
		s.Balls[j].Y = 0
	}
	b := &s.Balls[i]
	b.X = s.Basket.X + s.Basket.Width/2
	b.Y = s.Basket.Y - b.Radius - b.Speed + 1
}

// dropMatching turns ball i into a basket-colored ball and drops it.
func dropMatching(g *Game, i int) {
	g.state.Balls[i].makeNormal(g.state.Basket.Color)
	dropInto(g, i)
}

// dropMismatching turns ball i into a ball of another color and drops it.
func dropMismatching(g *Game, i int) {
	other := Red
	if g.state.Basket.Color == Red {
		other = Blue
	}
	g.state.Balls[i].makeNormal(other)
	dropInto(g, i)
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
