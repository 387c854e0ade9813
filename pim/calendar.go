package pim

import (
	"fmt"
	"strconv"
	"time"

	"picopim/display"
	"picopim/keyboard"
)

// Calendar renders a month grid with today highlighted. Left/Right move by a
// month, Up/Down by a year, Enter jumps back to today.
type Calendar struct {
	year  int
	month int
}

func NewCalendar() *Calendar {
	today := Today()
	return &Calendar{year: today.Year, month: today.Month}
}

func (c *Calendar) Run(d display.Device, kb keyboard.Input) {
	for {
		c.draw(d)

		k, ok := kb.Wait(calendarRedraw)
		if !ok {
			continue
		}
		switch k {
		case keyboard.KeyLeft:
			c.month--
			if c.month < 1 {
				c.month = 12
				c.year--
			}
		case keyboard.KeyRight:
			c.month++
			if c.month > 12 {
				c.month = 1
				c.year++
			}
		case keyboard.KeyUp:
			c.year--
		case keyboard.KeyDown:
			c.year++
		case keyboard.KeyEnter:
			today := Today()
			c.year, c.month = today.Year, today.Month
		case keyboard.KeyEsc:
			return
		}
	}
}

const calendarRedraw = 5 * time.Second

// month grid geometry on the 320px panel.
const (
	calCellW  = 44
	calCellH  = 30
	calGridX  = 6
	calGridY  = 70
	calHeadY  = 48
	calTitleY = 10
)

var weekdayHeads = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

func (c *Calendar) draw(d display.Device) {
	w, _ := d.Size()
	d.Clear(display.Black)
	d.FillRect(0, 0, w, 30, display.Blue)
	title := fmt.Sprintf("%s %d", MonthName(c.month), c.year)
	d.Text(title, (w-len(title)*8)/2, calTitleY, display.White)

	for i, head := range weekdayHeads {
		d.Text(head, calGridX+i*calCellW+6, calHeadY, display.Cyan)
	}

	today := Today()
	first := FirstWeekday(c.year, c.month)
	days := DaysInMonth(c.year, c.month)
	for day := 1; day <= days; day++ {
		slot := first + day - 1
		x := calGridX + (slot%7)*calCellW
		y := calGridY + (slot/7)*calCellH
		label := strconv.Itoa(day)
		if c.year == today.Year && c.month == today.Month && day == today.Day {
			d.FillRect(x, y-4, calCellW-4, calCellH-6, display.White)
			d.Text(label, x+6, y, display.Black)
		} else {
			d.Text(label, x+6, y, display.White)
		}
	}

	d.Text("Arrows: navigate  Enter: today  Esc: back", 10, 300, display.Gray)
}
