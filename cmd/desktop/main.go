package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/catcher/internal/audio"
	"github.com/tomz197/catcher/internal/config"
	"github.com/tomz197/catcher/internal/gfx"
	"github.com/tomz197/catcher/internal/store"
	"github.com/tomz197/catcher/internal/theme"
)

func main() {
	cfgPath := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(os.Stderr, cfg.LogLevel, "desktop")
	if cfg.LogFile != "" {
		fileLogger, closeLog, err := config.FileLogger(cfg.LogFile, cfg.LogLevel, "desktop")
		if err != nil {
			logger.Fatal("open log file", "err", err)
		}
		defer closeLog.Close()
		logger = fileLogger
	}

	var cues audio.Cues = audio.Nop{}
	if cfg.Sound {
		if b, err := audio.NewBeep(-1, logger); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			cues = b
		}
	}
	defer cues.Close()

	scores := store.NewFile(cfg.StorePath())
	logger.Info("best score store", "path", scores.Path())

	g := gfx.New(gfx.Options{
		Scores:   store.BestScore{KV: scores},
		Exporter: store.DirExporter{Dir: cfg.ExportDir},
		Cues:     cues,
		Logger:   logger,
		Rand:     cfg.NewRand(),
	})

	ebiten.SetWindowSize(cfg.Desktop.Width, cfg.Desktop.Height)
	ebiten.SetWindowTitle(theme.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Desktop.Fullscreen)

	log.SetDefault(logger)
	logger.Info("starting", "width", cfg.Desktop.Width, "height", cfg.Desktop.Height)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
