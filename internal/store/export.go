package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExportFileName is the name of the exported high-score artifact.
const ExportFileName = "highscore.txt"

// Exporter writes a named high score somewhere the player can fetch it.
type Exporter interface {
	Export(name string, score int) (string, error)
}

// FormatEntry renders one high-score line.
func FormatEntry(name string, score int) string {
	return fmt.Sprintf("%s - %d\n", name, score)
}

// DirExporter writes highscore.txt into Dir, replacing any previous export.
type DirExporter struct {
	Dir string
}

// Export writes the entry and returns the path it was written to.
func (e DirExporter) Export(name string, score int) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(e.Dir, ExportFileName)
	if err := os.WriteFile(path, []byte(FormatEntry(name, score)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// UserDir returns the export directory for an SSH user under base. Names are
// reduced to letters, digits, '-' and '_' so they are safe as a path element.
func UserDir(base, user string) string {
	var b strings.Builder
	for _, r := range user {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		name = "anonymous"
	}
	return filepath.Join(base, name)
}
