package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Each field cell is drawn two runes wide to look square in a terminal.
const cellWidth = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// cellColors maps the engine's cell values to terminal colors, one per
// tetromino kind.
var cellColors = [8]core.Color{
	core.ColorDefault,       // empty
	core.ColorBrightCyan,    // I
	core.ColorBrightMagenta, // T
	core.ColorBrightBlue,    // J
	core.ColorOrange,        // L
	core.ColorBrightGreen,   // S
	core.ColorBrightRed,     // Z
	core.ColorBrightYellow,  // O
}

// drawGame renders a game snapshot: the bordered field, the preview
// pane, and the score readout.
func drawGame(s *core.Screen, v *tetris.GameView) {
	rows := len(v.Cells)
	cols := 0
	if rows > 0 {
		cols = len(v.Cells[0])
	}

	box := core.NewRect(1, 0, cols*cellWidth+2, rows+2)
	s.DrawBox(box)
	for y, row := range v.Cells {
		for x, val := range row {
			drawCell(s, box.X+1+x*cellWidth, box.Y+1+y, val)
		}
	}

	px := box.Right() + 2
	s.DrawText(px+1, 0, "Next")
	pbox := core.NewRect(px, 1, tetris.PreviewSize*cellWidth+2, tetris.PreviewSize+2)
	s.DrawBox(pbox)
	for y, row := range v.Preview {
		for x, val := range row {
			drawCell(s, pbox.X+1+x*cellWidth, pbox.Y+1+y, val)
		}
	}

	s.DrawText(px, pbox.Bottom()+1, fmt.Sprintf("Score %d", v.Score))
	s.DrawText(px, pbox.Bottom()+2, fmt.Sprintf("Lines %d", v.Lines))
}

func drawCell(s *core.Screen, x, y int, val uint8) {
	if val == 0 || int(val) >= len(cellColors) {
		return
	}
	c := cellColors[val]
	s.SetColored(x, y, '█', c)
	s.SetColored(x+1, y, '█', c)
}

// drawMenu renders a menu overlay centered on the screen. The selected
// item is marked with a pointer.
func drawMenu(s *core.Screen, v *tetris.MenuView) {
	width := 0
	for _, item := range v.Items {
		if n := len(item.Label) + 4; n > width {
			width = n
		}
	}

	box := core.NewRect(
		(s.Width()-width-2)/2,
		(s.Height()-len(v.Items)-2)/2,
		width+2,
		len(v.Items)+2,
	)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	for i, item := range v.Items {
		label := "  " + item.Label
		if i == v.Selected {
			label = "> " + item.Label
		}
		s.DrawText(box.X+2, box.Y+1+i, label)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
