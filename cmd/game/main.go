package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/catcher/internal/audio"
	"github.com/tomz197/catcher/internal/config"
	"github.com/tomz197/catcher/internal/loop"
	"github.com/tomz197/catcher/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := config.FileLogger(cfg.LogFile, cfg.LogLevel, "catcher")
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog.Close()

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

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Profile:    termenv.NewOutput(os.Stdout).EnvColorProfile(),
		Scores:     store.BestScore{KV: scores},
		Exporter:   store.DirExporter{Dir: cfg.ExportDir},
		Cues:       cues,
		Logger:     logger,
		Rand:       cfg.NewRand(),
		ExportHint: "written to " + cfg.ExportDir,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
