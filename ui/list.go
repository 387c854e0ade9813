package ui

import (
	"picopim/display"
	"picopim/keyboard"
)

// ListView shows a scrolling list of records and returns the index the user
// picked. An empty list shows a placeholder and returns no selection.
type ListView struct {
	Display  display.Device
	Keyboard keyboard.Input
	Title    string
	Items    []string
	Hint     string

	selected int
	top      int
}

func (l *ListView) Show() (int, bool) {
	if len(l.Items) == 0 {
		MessageBox(l.Display, l.Keyboard, l.Title, "(empty)")
		return -1, false
	}
	if l.selected >= len(l.Items) {
		l.selected = len(l.Items) - 1
	}
	for {
		l.draw()

		k, ok := l.Keyboard.Wait(redrawEvery)
		if !ok {
			continue
		}
		switch k {
		case keyboard.KeyUp:
			l.move(-1)
		case keyboard.KeyDown:
			l.move(1)
		case keyboard.KeyEnter:
			return l.selected, true
		case keyboard.KeyEsc:
			return -1, false
		}
	}
}

func (l *ListView) move(delta int) {
	l.selected += delta
	if l.selected < 0 {
		l.selected = len(l.Items) - 1
	}
	if l.selected >= len(l.Items) {
		l.selected = 0
	}
	if l.selected < l.top {
		l.top = l.selected
	}
	if l.selected >= l.top+maxVisible {
		l.top = l.selected - maxVisible + 1
	}
}

func (l *ListView) draw() {
	d := l.Display
	w, _ := d.Size()
	d.Clear(display.Black)
	drawTitleBar(d, l.Title)

	end := min(l.top+maxVisible, len(l.Items))
	for row, i := 0, l.top; i < end; row, i = row+1, i+1 {
		y := itemTop + row*itemStep
		label := l.Items[i]
		if maxChars := (w - 20) / charW; len(label) > maxChars {
			label = label[:maxChars]
		}
		if i == l.selected {
			d.FillRect(0, y-2, w, itemStep-2, display.White)
			d.Text(label, 10, y, display.Black)
		} else {
			d.Text(label, 10, y, display.White)
		}
	}

	hint := l.Hint
	if hint == "" {
		hint = "Enter: open  Esc: back"
	}
	drawStatusBar(d, hint)
	d.Show()
}
