// Package ui implements the shared screen furniture of the PIM applications:
// the menu, message boxes, input dialogs and list views. Every widget draws a
// full frame, waits for a key (redrawing periodically so a reconnected screen
// recovers), and reacts to it.
package ui

import (
	"time"

	"picopim/display"
	"picopim/keyboard"
)

// Screen layout shared by all widgets.
const (
	titleBarH = 30
	itemTop   = 40
	itemStep  = 22
	statusY   = display.PanelHeight - 20
	charW     = 8
)

// redrawEvery bounds how long a widget sits on a stale frame while waiting
// for input.
const redrawEvery = 5 * time.Second

func drawTitleBar(d display.Device, title string) {
	w, _ := d.Size()
	d.FillRect(0, 0, w, titleBarH, display.Blue)
	d.Text(title, centerX(w, title), 10, display.White)
}

func drawStatusBar(d display.Device, hint string) {
	d.Text(hint, 10, statusY, display.Gray)
}

func centerX(w int, s string) int {
	x := (w - len(s)*charW) / 2
	if x < 0 {
		return 0
	}
	return x
}

// MessageBox paints a titled message and blocks until any key is pressed.
func MessageBox(d display.Device, kb keyboard.Input, title string, lines ...string) {
	for {
		d.Clear(display.Black)
		drawTitleBar(d, title)
		y := itemTop + 10
		for _, line := range lines {
			d.Text(line, 10, y, display.White)
			y += itemStep
		}
		drawStatusBar(d, "Press any key")
		d.Show()

		if _, ok := kb.Wait(redrawEvery); ok {
			return
		}
	}
}

// Confirm asks a yes/no question. It answers no unless the user moves to Yes
// and confirms; Esc and 'n' always answer no, 'y' always yes.
func Confirm(d display.Device, kb keyboard.Input, question string) bool {
	yes := false
	for {
		w, _ := d.Size()
		d.Clear(display.Black)
		drawTitleBar(d, "Confirm")
		d.Text(question, centerX(w, question), itemTop+20, display.White)

		yesColor, noColor := display.Gray, display.White
		if yes {
			yesColor, noColor = display.White, display.Gray
		}
		d.Text("Yes", w/2-60, itemTop+70, yesColor)
		d.Text("No", w/2+40, itemTop+70, noColor)
		drawStatusBar(d, "Left/Right: choose  Enter: confirm")
		d.Show()

		k, ok := kb.Wait(redrawEvery)
		if !ok {
			continue
		}
		switch k {
		case keyboard.KeyLeft, keyboard.KeyRight:
			yes = !yes
		case keyboard.KeyEnter:
			return yes
		case keyboard.KeyEsc:
			return false
		case keyboard.Key('y'), keyboard.Key('Y'):
			return true
		case keyboard.Key('n'), keyboard.Key('N'):
			return false
		}
	}
}
