//go:build tinygo

package display

import (
	"image/color"
	"machine"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers/st7789"
)

// Panel drives the Picocalc's ST7365P controller, which speaks the ST7789
// command set. Shape primitives go straight to the driver; text goes through
// a line-oriented text buffer bound to the same display.
type Panel struct {
	device st7789.Device
	text   *textbuf.Buffer
}

func probePanel() (Device, error) {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 40000000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
	})
	device := st7789.New(machine.SPI0,
		machine.GP21, // reset
		machine.GP20, // data/command
		machine.GP17, // chip select
		machine.NoPin)
	device.Configure(st7789.Config{
		Width:  PanelWidth,
		Height: PanelHeight,
	})

	text, err := textbuf.New(&device, textbuf.FontSize6x8)
	if err != nil {
		return nil, err
	}
	return &Panel{device: device, text: text}, nil
}

func (p *Panel) Size() (int, int) { return PanelWidth, PanelHeight }

func (p *Panel) Clear(c Color) {
	p.text.Clear()
	p.device.FillScreen(rgba(c))
}

func (p *Panel) Pixel(x, y int, c Color) {
	p.device.SetPixel(int16(x), int16(y), rgba(c))
}

func (p *Panel) Line(x1, y1, x2, y2 int, c Color) {
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
		p.Pixel(x1, y1, c)
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

func (p *Panel) Rect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	p.Line(x, y, x+w-1, y, c)
	p.Line(x, y+h-1, x+w-1, y+h-1, c)
	p.Line(x, y, x, y+h-1, c)
	p.Line(x+w-1, y, x+w-1, y+h-1, c)
}

func (p *Panel) FillRect(x, y, w, h int, c Color) {
	_ = p.device.FillRectangle(int16(x), int16(y), int16(w), int16(h), rgba(c))
}

func (p *Panel) Text(s string, x, y int, _ Color) {
	_ = p.text.SetLine(int16(y/8), s)
}

func (p *Panel) Show() error {
	return p.text.Display()
}

// rgba expands an RGB565 value for the driver.
func rgba(c Color) color.RGBA {
	return color.RGBA{
		R: uint8((c >> 11) << 3),
		G: uint8(((c >> 5) & 0x3F) << 2),
		B: uint8((c & 0x1F) << 3),
		A: 0xFF,
	}
}
