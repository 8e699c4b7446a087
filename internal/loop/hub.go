package loop

import (
	"sync"
	"time"
)

// Hub tracks the running sessions of a server so they can all be told to
// shut down.
type Hub struct {
	mu       sync.Mutex
	sessions map[int]chan struct{}
	nextID   int
	closed   bool
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[int]chan struct{})}
}

// Register adds a session. The returned channel is closed when the hub
// shuts down.
func (h *Hub) Register() (id int, shutdown <-chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id = h.nextID
	h.nextID++
	ch := make(chan struct{})
	if h.closed {
		close(ch)
	}
	h.sessions[id] = ch
	return id, ch
}

// Unregister removes a session.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Shutdown notifies every session and waits until all of them have
// unregistered or the timeout passes.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.Lock()
	if !h.closed {
		h.closed = true
		for _, ch := range h.sessions {
			close(ch)
		}
	}
	h.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for h.Count() > 0 {
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
