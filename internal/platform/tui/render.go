package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// ScreenRenderer turns a cell buffer into styled terminal output. Styles
// are bound to a lipgloss renderer so each SSH session gets the colour
// profile of its own terminal.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewScreenRenderer builds palette styles for r. A nil r uses the
// process-wide default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		styles: make(map[core.Color]lipgloss.Style),
		plain:  r.NewStyle(),
	}
	for _, c := range core.Colors() {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.CompleteColor{
			TrueColor: c.Hex(),
			ANSI256:   c.ANSI256(),
			ANSI:      c.ANSI256(),
		})
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.plain
}

// Render draws s row by row. Each same-coloured run of cells is styled
// once, keeping escape sequences down on wide roads.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
