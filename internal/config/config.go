// Package config loads runtime settings for the catcher frontends.
//
// Settings are layered: built-in defaults, then a TOML file, then a .env
// file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// EnvConfigPath names the variable pointing at the TOML file.
	EnvConfigPath     = "CATCHER_CONFIG"
	DefaultConfigPath = "catcher.toml"
	DefaultDotEnvPath = ".env"
)

// Config holds everything the commands need to start.
type Config struct {
	DataDir   string `toml:"data_dir"`
	ExportDir string `toml:"export_dir"`
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"`
	Sound     bool   `toml:"sound"`
	Seed      int64  `toml:"seed"` // 0 seeds from the clock

	SSH     SSH     `toml:"ssh"`
	Web     Web     `toml:"web"`
	Desktop Desktop `toml:"desktop"`
}

type SSH struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key"`
	IdleMinutes int    `toml:"idle_minutes"`
}

type Web struct {
	Host           string `toml:"host"`
	Port           string `toml:"port"`
	SSHDisplayHost string `toml:"ssh_display_host"`
}

type Desktop struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Fullscreen bool `toml:"fullscreen"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:   "data",
		ExportDir: filepath.Join("data", "exports"),
		LogLevel:  "info",
		Sound:     true,
		SSH: SSH{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
			IdleMinutes: 2,
		},
		Web: Web{
			Host:           "0.0.0.0",
			Port:           "8080",
			SSHDisplayHost: "your-server.com",
		},
		Desktop: Desktop{
			Width:  600,
			Height: 800,
		},
	}
}

// Load builds the configuration from all sources. An empty path means
// CATCHER_CONFIG or catcher.toml. A missing file is not an error.
func Load(path string) (Config, error) {
	if err := LoadDotEnv(DefaultDotEnvPath); err != nil {
		return Config{}, err
	}
	if path == "" {
		path = GetEnv(EnvConfigPath, DefaultConfigPath)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	c.DataDir = GetEnv("CATCHER_DATA_DIR", c.DataDir)
	c.ExportDir = GetEnv("CATCHER_EXPORT_DIR", c.ExportDir)
	c.LogLevel = GetEnv("CATCHER_LOG_LEVEL", c.LogLevel)
	c.LogFile = GetEnv("CATCHER_LOG_FILE", c.LogFile)
	c.Sound = GetEnvBool("CATCHER_SOUND", c.Sound)
	c.Seed = GetEnvInt("CATCHER_SEED", c.Seed)

	c.SSH.Host = GetEnv("SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", c.SSH.HostKeyPath)
	c.SSH.IdleMinutes = int(GetEnvInt("SSH_IDLE_MINUTES", int64(c.SSH.IdleMinutes)))

	c.Web.Host = GetEnv("WEB_HOST", c.Web.Host)
	c.Web.Port = GetEnv("WEB_PORT", c.Web.Port)
	c.Web.SSHDisplayHost = GetEnv("SSH_DISPLAY_HOST", c.Web.SSHDisplayHost)
}

// StorePath is the best-score file inside DataDir.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, "scores.msgpack")
}

// NewRand returns the random source for a game, seeded from Seed or the clock.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
