package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/catcher/internal/config"
	"github.com/tomz197/catcher/internal/store"
)

//go:embed index.html
var htmlPage string

func main() {
	cfgPath := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel, "web")

	addr := net.JoinHostPort(cfg.Web.Host, cfg.Web.Port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, newMux(cfg, logger)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

func newMux(cfg config.Config, logger *log.Logger) *http.ServeMux {
	page := strings.NewReplacer(
		"{{.SSHHost}}", cfg.Web.SSHDisplayHost,
		"{{.SSHPort}}", cfg.SSH.Port,
	).Replace(htmlPage)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	mux.HandleFunc("GET /scores/{user}", func(w http.ResponseWriter, r *http.Request) {
		serveExport(w, r, store.UserDir(cfg.ExportDir, r.PathValue("user")), logger)
	})
	return mux
}

// serveExport sends a player's highscore.txt as a download.
func serveExport(w http.ResponseWriter, r *http.Request, dir string, logger *log.Logger) {
	path := filepath.Join(dir, store.ExportFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "no saved high score", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("read export", "path", path, "err", err)
		http.Error(w, "could not read high score", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+store.ExportFileName+`"`)
	w.Write(data)
}
