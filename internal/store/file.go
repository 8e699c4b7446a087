package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// File is a KV kept in a single msgpack-encoded file. It is safe for
// concurrent use by several sessions of one process.
type File struct {
	path string

	mu     sync.Mutex
	values map[string]int
	loaded bool
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(); err != nil {
		return 0, err
	}
	v, ok := f.values[key]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (f *File) Set(key string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(); err != nil {
		// An unreadable file is overwritten.
		f.values = make(map[string]int)
		f.loaded = true
	}
	f.values[key] = value
	return f.flush()
}

// load reads the file once. A missing file is an empty store.
func (f *File) load() error {
	if f.loaded {
		return nil
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		f.values = make(map[string]int)
		f.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", f.path, err)
	}

	values := make(map[string]int)
	if err := msgpack.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode %s: %w", f.path, err)
	}
	f.values = values
	f.loaded = true
	return nil
}

// flush replaces the file via a temporary sibling.
func (f *File) flush() error {
	data, err := msgpack.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
