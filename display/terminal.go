package display

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// ASCII colors.
	ansiBlack   = "30"
	ansiRed     = "31"
	ansiGreen   = "32"
	ansiYellow  = "33"
	ansiBlue    = "34"
	ansiMagenta = "35"
	ansiCyan    = "36"
	ansiWhite   = "37"
	ansiGray    = "90"
	ansiOrange  = "38;5;214"

	resetPos   = "\033[H" // Reset cursor position to 0,0
	hideCursor = "\033[2J\033[?25l"
	showCursor = "\033[?25h"
)

var ansiCode = map[Color]string{
	Black:   ansiBlack,
	White:   ansiWhite,
	Red:     ansiRed,
	Green:   ansiGreen,
	Blue:    ansiBlue,
	Yellow:  ansiYellow,
	Cyan:    ansiCyan,
	Magenta: ansiMagenta,
	Orange:  ansiOrange,
	Gray:    ansiGray,
}

// terminal cell granularity: the 320x320 pixel surface maps onto a grid of
// 8x8 pixel cells, each rendered two characters wide to keep the aspect
// roughly square.
const termCell = 8

type termCellState struct {
	r  rune
	fg Color
	bg Color
}

// Terminal is the text-mode stand-in for the Picocalc panel. It keeps a
// character-cell approximation of the framebuffer and repaints the whole
// screen on every Show, the way the real device pushes its full buffer.
type Terminal struct {
	writer io.Writer
	cols   int
	rows   int
	cells  []termCellState
}

// NewTerminal returns a terminal device writing ANSI output to w.
// A nil writer means os.Stdout.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	t := &Terminal{
		writer: w,
		cols:   PanelWidth / termCell,
		rows:   PanelHeight / termCell,
	}
	t.cells = make([]termCellState, t.cols*t.rows)
	t.Clear(Black)
	fmt.Fprint(w, hideCursor)
	return t
}

// Close restores the cursor. The screen contents are left in place.
func (t *Terminal) Close() {
	fmt.Fprint(t.writer, showCursor)
}

func (t *Terminal) Size() (int, int) { return PanelWidth, PanelHeight }

func (t *Terminal) Clear(c Color) {
	for i := range t.cells {
		t.cells[i] = termCellState{r: ' ', fg: White, bg: c}
	}
}

func (t *Terminal) set(col, row int, s termCellState) {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return
	}
	t.cells[row*t.cols+col] = s
}

func (t *Terminal) paint(col, row int, c Color) {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return
	}
	cell := &t.cells[row*t.cols+col]
	cell.r = ' '
	cell.bg = c
}

func (t *Terminal) Pixel(x, y int, c Color) {
	t.paint(x/termCell, y/termCell, c)
}

func (t *Terminal) Line(x1, y1, x2, y2 int, c Color) {
	// Bresenham over pixel coordinates; each step paints the covering cell.
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		t.Pixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		if e2 := 2 * err; e2 >= dy {
			err += dy
			x1 += sx
		} else {
			err += dx
			y1 += sy
		}
	}
}

func (t *Terminal) Rect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	t.Line(x, y, x+w-1, y, c)
	t.Line(x, y+h-1, x+w-1, y+h-1, c)
	t.Line(x, y, x, y+h-1, c)
	t.Line(x+w-1, y, x+w-1, y+h-1, c)
}

func (t *Terminal) FillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := y / termCell; row <= (y+h-1)/termCell; row++ {
		for col := x / termCell; col <= (x+w-1)/termCell; col++ {
			t.paint(col, row, c)
		}
	}
}

func (t *Terminal) Text(s string, x, y int, c Color) {
	col, row := x/termCell, y/termCell
	for i, r := range s {
		if col+i >= t.cols {
			break
		}
		if col+i < 0 || row < 0 || row >= t.rows {
			continue
		}
		cell := &t.cells[row*t.cols+col+i]
		cell.r = r
		cell.fg = c
	}
}

func (t *Terminal) Show() error {
	var b strings.Builder
	b.WriteString(resetPos)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			b.WriteString(renderCell(t.cells[row*t.cols+col]))
		}
		b.WriteString("\r\n")
	}
	_, err := io.WriteString(t.writer, b.String())
	if err != nil {
		return fmt.Errorf("terminal show: %w", err)
	}
	return nil
}

// renderCell produces the two-character ANSI representation of one cell:
// colored text over the default background, or a reverse-video block for
// painted cells.
func renderCell(s termCellState) string {
	if s.r != ' ' {
		return fmt.Sprintf("\x1b[%sm%c \x1b[0m", code(s.fg), s.r)
	}
	if s.bg == Black {
		return "  "
	}
	return fmt.Sprintf("\x1b[7m\x1b[%sm  \x1b[0m", code(s.bg))
}

func code(c Color) string {
	if s, ok := ansiCode[c]; ok {
		return s
	}
	return ansiWhite
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
