package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/catcher/internal/config"
	"github.com/tomz197/catcher/internal/store"
)

func newTestMux(t *testing.T) (*http.ServeMux, config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.ExportDir = t.TempDir()
	cfg.Web.SSHDisplayHost = "catch.example"
	return newMux(cfg, log.New(io.Discard)), cfg
}

func TestIndexPage(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ssh -t catch.example -p 2222") {
		t.Fatalf("page missing ssh command: %s", rec.Body.String())
	}
}

func TestScoreDownload(t *testing.T) {
	mux, cfg := newTestMux(t)
	if _, err := (store.DirExporter{Dir: store.UserDir(cfg.ExportDir, "alice")}).Export("ALI", 42); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scores/alice", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "highscore.txt") {
		t.Fatalf("Content-Disposition = %q", got)
	}
	if rec.Body.String() != "ALI - 42\n" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestScoreDownloadMissing(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scores/nobody", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
