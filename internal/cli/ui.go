package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LiviuCP/Matrix-sub005/matrix"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - highlighted cells
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for headings above a rendered grid.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	styleCell      = lipgloss.NewStyle().Foreground(colorWhite)
	styleCellHot   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleGridFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

const iconSuccess = "✓"

// cell addresses one grid position.
type cell struct{ row, col int }

// renderGrid draws g inside a frame, highlighting the cells in hot.
// Every value is right-aligned to the widest one.
func renderGrid(g matrix.Grid[int], hot map[cell]bool) (string, error) {
	text := make([][]string, g.Rows())
	width := 1
	for r := range text {
		text[r] = make([]string, g.Cols())
		for c := range text[r] {
			v, err := g.At(r, c)
			if err != nil {
				return "", err
			}
			text[r][c] = fmt.Sprint(v)
			width = max(width, len(text[r][c]))
		}
	}

	lines := make([]string, len(text))
	for r, row := range text {
		parts := make([]string, len(row))
		for c, v := range row {
			padded := fmt.Sprintf("%*s", width, v)
			if hot[cell{r, c}] {
				parts[c] = styleCellHot.Render(padded)
			} else {
				parts[c] = styleCell.Render(padded)
			}
		}
		lines[r] = strings.Join(parts, " ")
	}

	return styleGridFrame.Render(strings.Join(lines, "\n")), nil
}

// printSuccess prints a success line with a checkmark.
func printSuccess(b *strings.Builder, format string, args ...any) {
	b.WriteString(StyleSuccess.Render(iconSuccess))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf(format, args...))
	b.WriteString("\n")
}
