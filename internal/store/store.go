// Package store persists the best score and exports named high scores.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// KeyBestScore is the key holding the best score.
const KeyBestScore = "bestScore"

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("store: key not found")

// KV is a small string-keyed store of integers.
type KV interface {
	Get(key string) (int, error)
	Set(key string, value int) error
}

// Memory is an in-process KV.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

func (m *Memory) Get(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Prefixed namespaces every key of an underlying KV, e.g. per SSH user.
type Prefixed struct {
	KV     KV
	Prefix string
}

func (p Prefixed) Get(key string) (int, error) {
	return p.KV.Get(p.Prefix + "/" + key)
}

func (p Prefixed) Set(key string, value int) error {
	return p.KV.Set(p.Prefix+"/"+key, value)
}

// BestScore adapts a KV to the game's score store.
type BestScore struct {
	KV KV
}

// Load returns the stored best score. A missing key is a score of 0.
func (b BestScore) Load() (int, error) {
	v, err := b.KV.Get(KeyBestScore)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load best score: %w", err)
	}
	return v, nil
}

func (b BestScore) Save(score int) error {
	if err := b.KV.Set(KeyBestScore, score); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}
