package draw

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Panels are laid out as plain text and coloured by the canvas, so the
// renderer must not emit escape codes of its own.
var plain = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}()

var (
	panelStyle = plain.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Align(lipgloss.Center)
	titleStyle = plain.NewStyle().Bold(true)
)

// Panel lays out a title and lines in a rounded box and returns its rows.
func Panel(title string, lines ...string) []string {
	body := lines
	if title != "" {
		body = append([]string{titleStyle.Render(title), ""}, lines...)
	}
	return strings.Split(panelStyle.Render(strings.Join(body, "\n")), "\n")
}

// PanelWidth returns the widest row of a panel in cells.
func PanelWidth(rows []string) int {
	w := 0
	for _, r := range rows {
		w = max(w, lipgloss.Width(r))
	}
	return w
}

// DrawPanel writes panel rows centred horizontally with the first row at row.
func (c *Canvas) DrawPanel(row int, rows []string, fg colorful.Color) {
	col := (c.cols-PanelWidth(rows))/2 + 1
	for i, r := range rows {
		c.Text(col, row+i, r, fg)
	}
}
