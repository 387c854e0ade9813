// Package display defines the render surface the PIM apps and games draw on,
// and picks a concrete backend for the hardware at hand: the Picocalc panel
// when running under TinyGo, an ANSI terminal stand-in otherwise, and an
// off-screen recorder as the last resort.
package display

// Color is an RGB565 pixel value, the format the Picocalc panel takes.
type Color uint16

const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Yellow  Color = 0xFFE0
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Orange  Color = 0xFC00
	Gray    Color = 0x8410
)

// Device is the render surface. Drawing operations mutate an internal buffer;
// nothing reaches the screen until Show is called. Coordinates are pixels with
// the origin at the top left.
type Device interface {
	Size() (w, h int)
	Clear(c Color)
	Pixel(x, y int, c Color)
	Line(x1, y1, x2, y2 int, c Color)
	Rect(x, y, w, h int, c Color)
	FillRect(x, y, w, h int, c Color)
	Text(s string, x, y int, c Color)
	Show() error
}

// panel dimensions of the reference hardware.
const (
	PanelWidth  = 320
	PanelHeight = 320
)
