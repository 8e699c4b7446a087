package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "catcher.toml", `
data_dir = "/srv/catcher"
log_level = "debug"
sound = false

[ssh]
port = "2323"

[web]
port = "9090"
`)
	t.Setenv("WEB_PORT", "7070")
	t.Setenv("CATCHER_SOUND", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/srv/catcher" || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.SSH.Port != "2323" || cfg.SSH.Host != "::" {
		t.Fatalf("ssh = %+v, want port from file and default host", cfg.SSH)
	}
	if cfg.Web.Port != "7070" {
		t.Fatalf("web port = %q, want env override", cfg.Web.Port)
	}
	if !cfg.Sound {
		t.Fatal("sound should be re-enabled by the environment")
	}
}

func TestLoadPathFromEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "other.toml", `seed = 42`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d, want 42", cfg.Seed)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "data_dir = [")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CATCHER_TEST_BOOL", "nope")
	t.Setenv("CATCHER_TEST_INT", "17")

	if !GetEnvBool("CATCHER_TEST_BOOL", true) {
		t.Fatal("malformed bool should keep the fallback")
	}
	if got := GetEnvInt("CATCHER_TEST_INT", 3); got != 17 {
		t.Fatalf("GetEnvInt = %d, want 17", got)
	}
	if got := GetEnv("CATCHER_TEST_UNSET", "x"); got != "x" {
		t.Fatalf("GetEnv = %q, want fallback", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "CATCHER_TEST_DOTENV=from-file\nCATCHER_TEST_KEEP=from-file\n")
	t.Setenv("CATCHER_TEST_DOTENV", "")
	os.Unsetenv("CATCHER_TEST_DOTENV")
	t.Setenv("CATCHER_TEST_KEEP", "from-env")

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("CATCHER_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("dotenv value = %q, want from-file", got)
	}
	if got := os.Getenv("CATCHER_TEST_KEEP"); got != "from-env" {
		t.Fatalf("existing value = %q, want from-env", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "test")
	logger.Info("hidden")
	logger.Warn("shown", "score", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "score=3") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestFileLoggerWithoutPathDiscards(t *testing.T) {
	logger, closer, err := FileLogger("", "info", "")
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	logger.Info("nothing to see")
}
