package display

import (
	"strings"
	"testing"
)

func TestTerminalFillRect(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(&out)
	out.Reset()

	term.Clear(Black)
	term.FillRect(0, 0, 16, 8, Blue)
	if err := term.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}

	blueCell := "\x1b[7m\x1b[34m  \x1b[0m"
	if got := strings.Count(out.String(), blueCell); got != 2 {
		t.Errorf("wanted 2 blue cells, got %d", got)
	}
}

func TestTerminalText(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(&out)
	out.Reset()

	term.Clear(Black)
	term.Text("Hi", 8, 16, Green)
	if err := term.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}

	lines := strings.Split(out.String(), "\r\n")
	// row 2, starting at cell 1: each cell renders as "<rune> " with color.
	want := "  \x1b[32mH \x1b[0m\x1b[32mi \x1b[0m"
	if !strings.HasPrefix(lines[2], want) {
		t.Errorf("wanted row to start with %q, got %q", want, lines[2])
	}
}

func TestTerminalClearResetsText(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(&out)
	out.Reset()

	term.Text("leftover", 0, 0, White)
	term.Clear(Black)
	if err := term.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}
	if strings.Contains(out.String(), "leftover") {
		t.Error("clear should drop previously drawn text")
	}
}

func TestTerminalOutOfBounds(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(&out)

	// none of these should panic or paint anything.
	term.Pixel(-10, -10, Red)
	term.Pixel(5000, 5000, Red)
	term.FillRect(312, 312, 64, 64, Red)
	term.Text("clipped off the right edge of the display entirely", 280, 0, White)

	out.Reset()
	if err := term.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}
}

func TestRecorderPixelsAndText(t *testing.T) {
	r := NewRecorder(PanelWidth, PanelHeight)
	r.Clear(Black)
	r.FillRect(10, 20, 4, 4, Red)
	r.Text("Score: 40", 60, 10, White)

	if got := r.At(11, 21); got != Red {
		t.Errorf("wanted red pixel, got %#04x", got)
	}
	if got := r.At(9, 20); got != Black {
		t.Errorf("wanted black outside the rect, got %#04x", got)
	}
	if !r.HasText("Score: 40") {
		t.Errorf("wanted recorded text, got %v", r.Texts())
	}

	r.Clear(Black)
	if r.HasText("Score") {
		t.Error("clear should drop recorded text")
	}
}
