package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/sweep"
)

const (
	defaultTerminalWidth = 80
	swatchWidth          = 24
)

// terminalWidth returns the width of w when it is a terminal, otherwise
// defaultTerminalWidth.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTerminalWidth
}

// renderPreview draws each swatch as a coloured block labelled in format,
// with text of the swatch's hue picked to stay readable. Blocks wrap to fit
// width.
func renderPreview(p *sweep.Palette, format colour.Format, style colour.AlphaStyle, width int) string {
	if p.Len() == 0 {
		return ""
	}
	perRow := max(1, width/swatchWidth)

	var rows []string
	var blocks []string
	for i, g := range p.All() {
		c := g.Colour().WithAlpha(g.Opacity, style)
		bg := c.Opaque()
		fg := colour.ContrastingText(bg, g.HSL.H)

		block := lipgloss.NewStyle().
			Background(lipgloss.Color(bg.Hex())).
			Foreground(lipgloss.Color(fg.Hex())).
			Width(swatchWidth - 1).
			Padding(1, 0).
			Align(lipgloss.Center).
			MarginRight(1).
			Render(c.Format(format))
		blocks = append(blocks, block)

		if len(blocks) == perRow || i == p.Len()-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
			blocks = nil
		}
	}

	return strings.Join(rows, "\n") + "\n\n"
}
