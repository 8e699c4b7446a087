// Package loop runs a color catcher game inside a terminal, locally or over SSH.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/catcher/internal/audio"
	"github.com/tomz197/catcher/internal/draw"
	"github.com/tomz197/catcher/internal/game"
	"github.com/tomz197/catcher/internal/input"
	"github.com/tomz197/catcher/internal/store"
)

// Options configures a terminal session. Zero values pick defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Profile      termenv.Profile
	Scores       game.ScoreStore
	Exporter     store.Exporter
	Cues         audio.Cues
	Logger       *log.Logger
	Rand         game.Rand
	Hub          *Hub
	Username     string
	IdleTimeout  time.Duration // 0 never disconnects idle players
	ExportHint   string        // Shown after a successful export
}

// Session is one player's game in one terminal.
type Session struct {
	opts   Options
	game   *game.Game
	state  sessionState
	canvas *draw.Canvas
	cw     *draw.ChunkWriter
	stream *input.Stream
	writer io.Writer
	logger *log.Logger

	hubID    int
	shutdown <-chan struct{}
}

// NewSession prepares a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Cues == nil {
		opts.Cues = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	s := &Session{
		opts:   opts,
		writer: w,
		cw:     draw.NewChunkWriter(w),
		stream: input.StartStream(r),
		logger: logger,
		game: game.New(game.Options{
			Rand:   opts.Rand,
			Scores: opts.Scores,
			Logger: logger,
		}),
	}
	s.state.running = true
	s.state.lastInput = time.Now()

	if opts.Hub != nil {
		s.hubID, s.shutdown = opts.Hub.Register()
	}

	cols, rows, offCol, offRow := s.renderArea()
	surface := game.Surface{Width: game.DefaultWidth, Height: game.DefaultHeight}
	s.canvas = draw.NewCanvas(cols, rows, surface.Width, surface.Height, opts.Profile)
	s.canvas.SetOffset(offCol, offRow)
	return s
}

// Run starts a session and blocks until the player quits.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	return NewSession(r, w, opts).Run()
}

// Run drives the Input -> Update -> Draw cycle until the session ends.
func (s *Session) Run() error {
	restore := draw.Setup(s.writer)
	defer restore()
	if s.opts.Hub != nil {
		defer s.opts.Hub.Unregister(s.hubID)
	}

	s.logger.Info("session started")
	defer s.logger.Info("session ended", "best", s.game.BestScore())

	for s.state.running {
		frameStart := time.Now()

		s.step(frameStart)

		if err := s.drawFrame(frameStart); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// step runs everything but drawing for one frame.
func (s *Session) step(now time.Time) {
	inp := input.ReadInput(s.stream)
	if s.stream.Closed() {
		s.state.running = false
		return
	}

	s.checkShutdown(now)
	s.checkIdle(inp, now)
	if !s.state.running {
		return
	}

	s.updateScreen()

	switch {
	case s.state.shuttingDown:
		if inp.Quit || inp.Interrupt {
			s.state.running = false
		}
	case s.state.naming != nil:
		s.handleNaming(inp, now)
	default:
		s.handleInput(inp, now)
	}

	s.game.Frame(now)
	s.handleEvents(now)
}

func (s *Session) checkShutdown(now time.Time) {
	if s.state.shuttingDown {
		if !now.Before(s.state.shutdownAt) {
			s.state.running = false
		}
		return
	}
	select {
	case <-s.shutdown:
		s.state.shuttingDown = true
		s.state.shutdownAt = now.Add(shutdownDisplay)
		if s.game.Mode() == game.ModePlaying && !s.game.Paused() {
			s.game.TogglePause()
		}
		s.logger.Info("server shutting down, notifying player")
	default:
	}
}

func (s *Session) checkIdle(inp input.Input, now time.Time) {
	if inp.Any() {
		s.state.lastInput = now
		s.state.inactive = false
		return
	}
	if s.opts.IdleTimeout <= 0 {
		return
	}
	idle := now.Sub(s.state.lastInput)
	switch {
	case idle > s.opts.IdleTimeout:
		s.logger.Info("disconnecting idle player")
		s.state.running = false
	case idle > time.Duration(float64(s.opts.IdleTimeout)*idleWarnShare):
		s.state.inactive = true
	}
}

// handleInput maps keys and clicks onto the game's controls.
func (s *Session) handleInput(inp input.Input, now time.Time) {
	if inp.Quit || inp.Interrupt {
		s.state.running = false
		return
	}

	s.game.SetControls(inp.Left, inp.Right)
	if inp.Pause {
		s.game.TogglePause()
	}

	if inp.Save && s.game.Mode() == game.ModeGameOver {
		x, y := s.state.snap.SaveButton.Center()
		s.game.PointerDown(x, y, now)
	}
	if inp.Primary || inp.Enter {
		// Keyboard starts and restarts from outside the save button.
		s.game.PointerDown(-1, -1, now)
	}
	for _, c := range inp.Clicks {
		if x, y, ok := s.canvas.TerminalToLogical(c.Col, c.Row); ok {
			s.game.PointerDown(x, y, now)
		}
	}
}

func (s *Session) handleNaming(inp input.Input, now time.Time) {
	n := s.state.naming
	s.game.SetControls(false, false)
	for _, r := range inp.Typed {
		n.typeRune(r)
	}
	if inp.Backspace {
		n.backspace()
	}

	switch {
	case inp.Interrupt:
		s.state.running = false
	case inp.Escape:
		s.state.naming = nil
	case inp.Enter:
		s.export(n.String(), n.score, now)
		s.state.naming = nil
	}
}

func (s *Session) export(name string, score int, now time.Time) {
	name = game.NormalizeName(name)
	if s.opts.Exporter == nil {
		s.setNotice("Saving is not available here", true, now)
		return
	}
	path, err := s.opts.Exporter.Export(name, score)
	if err != nil {
		s.logger.Error("export high score", "err", err)
		s.setNotice("Could not save your score", true, now)
		return
	}
	s.logger.Info("exported high score", "name", name, "score", score, "path", path)
	msg := "Saved " + store.ExportFileName
	if s.opts.ExportHint != "" {
		msg += " - " + s.opts.ExportHint
	}
	s.setNotice(msg, false, now)
}

func (s *Session) setNotice(text string, isErr bool, now time.Time) {
	s.state.notice = notice{text: text, until: now.Add(noticeDuration), err: isErr}
}

// handleEvents drains the game's events: cues, logs and the name prompt.
func (s *Session) handleEvents(now time.Time) {
	for _, e := range s.game.Events() {
		s.opts.Cues.Play(e)
		switch e.Type {
		case game.EventSaveRequested:
			s.state.naming = &nameEntry{score: e.Score}
		case game.EventCountdownDone:
			s.stream.Reset()
		case game.EventGameOver:
			s.logger.Info("game over", "score", e.Score)
		case game.EventNewBest:
			s.logger.Info("new best score", "score", e.Score)
		case game.EventAchievement:
			s.logger.Debug("achievement unlocked", "achievement", e.Achievement)
		}
	}
}

// renderArea fits the 3:4 board into the terminal and centres it.
func (s *Session) renderArea() (cols, rows, offCol, offRow int) {
	termWidth, termHeight, err := s.opts.TermSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		termWidth, termHeight = 80, 24
	}
	availCols := min(termWidth, maxTermWidth)
	availRows := min(termHeight, maxTermHeight)

	// Cells are one pixel wide and two pixels tall.
	fit := game.FitSurface(float64(availCols), float64(availRows*2))
	cols = max(int(fit.Width), 1)
	rows = max(int(fit.Height/2), 1)
	return cols, rows, (termWidth - cols) / 2, (termHeight - rows) / 2
}

// updateScreen follows terminal resizes. A real change clears the terminal
// so nothing from the old layout lingers.
func (s *Session) updateScreen() {
	cols, rows, offCol, offRow := s.renderArea()
	if cols != s.canvas.Cols() || rows != s.canvas.Rows() ||
		offCol != s.canvas.OffsetCol() || offRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.cw)
		s.canvas.ForceRedraw()
	}
	s.canvas.Resize(cols, rows)
	s.canvas.SetOffset(offCol, offRow)
}
