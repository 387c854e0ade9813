package ui

import (
	"strings"

	"picopim/display"
	"picopim/keyboard"
)

// InputDialog collects a single line of text. Enter accepts the value, Esc
// cancels.
type InputDialog struct {
	Display  display.Device
	Keyboard keyboard.Input
	Title    string
	Prompt   string
	Value    string
	MaxLen   int
}

func (in *InputDialog) Show() (string, bool) {
	maxLen := in.MaxLen
	if maxLen <= 0 {
		maxLen = 34
	}
	for {
		d := in.Display
		w, _ := d.Size()
		d.Clear(display.Black)
		drawTitleBar(d, in.Title)
		d.Text(in.Prompt, 10, itemTop+10, display.White)
		d.Rect(8, itemTop+36, w-16, 24, display.Gray)
		d.Text(in.Value+"_", 12, itemTop+44, display.Yellow)
		drawStatusBar(d, "Enter: save  Esc: cancel")
		d.Show()

		k, ok := in.Keyboard.Wait(redrawEvery)
		if !ok {
			continue
		}
		switch {
		case k == keyboard.KeyEnter:
			return in.Value, true
		case k == keyboard.KeyEsc:
			return "", false
		case k == keyboard.KeyBackspace:
			if len(in.Value) > 0 {
				in.Value = in.Value[:len(in.Value)-1]
			}
		case k.Printable():
			if len(in.Value) < maxLen {
				in.Value += string(k.Rune())
			}
		}
	}
}

// TextAreaDialog collects multi-line text. Enter inserts a newline, so saving
// is on Tab instead; Esc cancels.
type TextAreaDialog struct {
	Display  display.Device
	Keyboard keyboard.Input
	Title    string
	Value    string
}

func (ta *TextAreaDialog) Show() (string, bool) {
	for {
		d := ta.Display
		w, h := d.Size()
		d.Clear(display.Black)
		drawTitleBar(d, ta.Title)
		d.Rect(8, itemTop-4, w-16, h-itemTop-30, display.Gray)

		y := itemTop + 4
		for _, line := range wrapLines(ta.Value+"_", (w-24)/charW) {
			if y >= statusY-10 {
				break
			}
			d.Text(line, 12, y, display.Yellow)
			y += 12
		}
		drawStatusBar(d, "Tab: save  Esc: cancel")
		d.Show()

		k, ok := ta.Keyboard.Wait(redrawEvery)
		if !ok {
			continue
		}
		switch {
		case k == keyboard.KeyTab:
			return ta.Value, true
		case k == keyboard.KeyEsc:
			return "", false
		case k == keyboard.KeyEnter:
			ta.Value += "\n"
		case k == keyboard.KeyBackspace:
			if len(ta.Value) > 0 {
				ta.Value = ta.Value[:len(ta.Value)-1]
			}
		case k.Printable():
			ta.Value += string(k.Rune())
		}
	}
}

// wrapLines splits text on newlines and hard-wraps each line to width
// characters.
func wrapLines(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for len(line) > width {
			out = append(out, line[:width])
			line = line[width:]
		}
		out = append(out, line)
	}
	return out
}
