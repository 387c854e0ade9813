package ui

import (
	"fmt"

	"picopim/display"
	"picopim/keyboard"
)

// maxVisible is how many menu rows fit between the title and status bars.
const maxVisible = 10

// MenuItem is one selectable menu entry. Run returning false closes the menu
// after the item finishes.
type MenuItem struct {
	Label string
	Run   func() bool
}

// Menu is a scrolling, numbered selection list. Items past the ninth are
// reachable by arrow keys only.
type Menu struct {
	Display  display.Device
	Keyboard keyboard.Input
	Title    string
	Items    []MenuItem

	selected int
	top      int
}

// Show runs the menu loop until an item closes it or Esc is pressed.
func (m *Menu) Show() {
	for {
		m.draw()

		k, ok := m.Keyboard.Wait(redrawEvery)
		if !ok {
			continue
		}
		switch {
		case k == keyboard.KeyUp:
			m.move(-1)
		case k == keyboard.KeyDown:
			m.move(1)
		case k == keyboard.KeyEnter:
			if !m.run(m.selected) {
				return
			}
		case k == keyboard.KeyEsc:
			return
		case k >= '1' && k <= '9':
			if i := int(k - '1'); i < len(m.Items) {
				m.selected = i
				m.scrollIntoView()
				if !m.run(i) {
					return
				}
			}
		}
	}
}

func (m *Menu) run(i int) bool {
	if m.Items[i].Run == nil {
		return true
	}
	return m.Items[i].Run()
}

func (m *Menu) move(delta int) {
	m.selected += delta
	if m.selected < 0 {
		m.selected = len(m.Items) - 1
	}
	if m.selected >= len(m.Items) {
		m.selected = 0
	}
	m.scrollIntoView()
}

func (m *Menu) scrollIntoView() {
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+maxVisible {
		m.top = m.selected - maxVisible + 1
	}
}

func (m *Menu) draw() {
	d := m.Display
	w, _ := d.Size()
	d.Clear(display.Black)
	drawTitleBar(d, m.Title)

	end := min(m.top+maxVisible, len(m.Items))
	for row, i := 0, m.top; i < end; row, i = row+1, i+1 {
		y := itemTop + row*itemStep
		label := fmt.Sprintf("%d. %s", i+1, m.Items[i].Label)
		if i == m.selected {
			d.FillRect(0, y-2, w, itemStep-2, display.White)
			d.Text(label, 10, y, display.Black)
		} else {
			d.Text(label, 10, y, display.White)
		}
	}
	drawStatusBar(d, "Up/Down: move  Enter: select  Esc: back")
	d.Show()
}
