package display

import "strings"

// TextOp is one Text call captured by the Recorder.
type TextOp struct {
	S    string
	X, Y int
	C    Color
}

// Recorder is an off-screen Device. It keeps a real pixel buffer for the
// shape primitives and a log of text draws, which is what the widget and
// game-render tests assert against. It also serves as the headless fallback
// when neither panel nor terminal is available.
type Recorder struct {
	w, h   int
	pixels []Color
	texts  []TextOp
	frames int
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{
		w:      w,
		h:      h,
		pixels: make([]Color, w*h),
	}
}

func (r *Recorder) Size() (int, int) { return r.w, r.h }

func (r *Recorder) Clear(c Color) {
	for i := range r.pixels {
		r.pixels[i] = c
	}
	r.texts = r.texts[:0]
}

func (r *Recorder) Pixel(x, y int, c Color) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	r.pixels[y*r.w+x] = c
}

func (r *Recorder) Line(x1, y1, x2, y2 int, c Color) {
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
		r.Pixel(x1, y1, c)
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

func (r *Recorder) Rect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.Line(x, y, x+w-1, y, c)
	r.Line(x, y+h-1, x+w-1, y+h-1, c)
	r.Line(x, y, x, y+h-1, c)
	r.Line(x+w-1, y, x+w-1, y+h-1, c)
}

func (r *Recorder) FillRect(x, y, w, h int, c Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			r.Pixel(xx, yy, c)
		}
	}
}

func (r *Recorder) Text(s string, x, y int, c Color) {
	r.texts = append(r.texts, TextOp{S: s, X: x, Y: y, C: c})
}

func (r *Recorder) Show() error {
	r.frames++
	return nil
}

// At returns the pixel at (x, y), Black when out of bounds.
func (r *Recorder) At(x, y int) Color {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return Black
	}
	return r.pixels[y*r.w+x]
}

// Texts returns the text draws since the last Clear.
func (r *Recorder) Texts() []TextOp { return r.texts }

// HasText reports whether any text drawn since the last Clear contains s.
func (r *Recorder) HasText(s string) bool {
	for _, op := range r.texts {
		if strings.Contains(op.S, s) {
			return true
		}
	}
	return false
}

// Frames returns the number of Show calls.
func (r *Recorder) Frames() int { return r.frames }
