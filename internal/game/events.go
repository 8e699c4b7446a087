package game

// EventType identifies something that happened during a frame.
type EventType int

const (
	EventCatch         EventType = iota // Matching ball caught
	EventMiss                           // Mismatched ball caught, a life was lost
	EventPowerUp                        // Power-up collected
	EventLevelUp                        // Ball pool grew
	EventAchievement                    // Achievement unlocked
	EventGameOver                       // Last life lost
	EventNewBest                        // Best score beaten and stored
	EventSaveRequested                  // Player asked to export the score
	EventCountdownDone                  // Play started
)

func (t EventType) String() string {
	switch t {
	case EventCatch:
		return "catch"
	case EventMiss:
		return "miss"
	case EventPowerUp:
		return "powerup"
	case EventLevelUp:
		return "levelup"
	case EventAchievement:
		return "achievement"
	case EventGameOver:
		return "gameover"
	case EventNewBest:
		return "newbest"
	case EventSaveRequested:
		return "save"
	case EventCountdownDone:
		return "start"
	default:
		return "unknown"
	}
}

// Event is queued by the game for frontends (sound cues, name capture).
type Event struct {
	Type        EventType
	Score       int         // Score at the time of the event
	Power       PowerType   // For EventPowerUp
	Achievement Achievement // For EventAchievement
}

func (g *Game) emit(e Event) {
	e.Score = g.state.Score
	g.events = append(g.events, e)
}

// Events returns the events queued since the last call and clears the queue.
// The returned slice is only valid until the next frame.
func (g *Game) Events() []Event {
	out := g.events
	g.events = g.drained[:0]
	g.drained = out
	return out
}
