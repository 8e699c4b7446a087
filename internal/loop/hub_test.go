package loop

import (
	"testing"
	"time"
)

func TestHubShutdownNotifiesSessions(t *testing.T) {
	h := NewHub()
	id1, ch1 := h.Register()
	_, ch2 := h.Register()
	if h.Count() != 2 {
		t.Fatalf("count = %d, want 2", h.Count())
	}

	go func() {
		<-ch1
		h.Unregister(id1)
	}()
	go func() {
		<-ch2
	}()

	start := time.Now()
	h.Shutdown(200 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Fatalf("shutdown returned after %v with a session still registered", elapsed)
	}
	if h.Count() != 1 {
		t.Fatalf("count = %d, want the stuck session left", h.Count())
	}
}

func TestHubShutdownReturnsWhenEmpty(t *testing.T) {
	h := NewHub()
	id, ch := h.Register()
	go func() {
		<-ch
		h.Unregister(id)
	}()

	done := make(chan struct{})
	go func() {
		h.Shutdown(5 * time.Second)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shutdown kept waiting after every session left")
	}
}

func TestHubRegisterAfterShutdown(t *testing.T) {
	h := NewHub()
	h.Shutdown(0)
	_, ch := h.Register()
	select {
	case <-ch:
	default:
		t.Fatal("late session was not told about the shutdown")
	}
}
