package tetris

import (
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"picopim/display"
	"picopim/keyboard"
	"picopim/ticks"
	"picopim/ui"
)

// board geometry on the 320px panel.
const (
	blockSize = 12
	boardX    = 100
	boardY    = 35
)

var shapeColors = [numShapes]display.Color{
	ShapeI: display.Cyan,
	ShapeO: display.Yellow,
	ShapeT: display.Magenta,
	ShapeS: display.Green,
	ShapeZ: display.Red,
	ShapeJ: display.Blue,
	ShapeL: display.Orange,
}

// Options configures a play session. Display and Keyboard are required;
// everything else has a default.
type Options struct {
	Display  display.Device
	Keyboard keyboard.Input
	Clock    ticks.Clock
	Logger   *slog.Logger
	Rand     *rand.Rand

	// OnGameOver is invoked once per finished game with the final score.
	OnGameOver func(score int)
}

// Session drives one game on a display: poll a key, apply gravity when the
// interval has elapsed, draw. Single goroutine, nothing blocks.
type Session struct {
	game       *Game
	d          display.Device
	kb         keyboard.Input
	clock      ticks.Clock
	logger     *slog.Logger
	onGameOver func(int)

	lastDrop uint32
	reported bool
	quit     bool
}

func NewSession(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = ticks.System()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		game:       New(opts.Rand),
		d:          opts.Display,
		kb:         opts.Keyboard,
		clock:      opts.Clock,
		logger:     opts.Logger,
		onGameOver: opts.OnGameOver,
		lastDrop:   opts.Clock.NowMS(),
	}
}

// Run shows the intro and loops until the player quits.
func (s *Session) Run() {
	ui.MessageBox(s.d, s.kb, "Tetris",
		"Left/Right: move",
		"Up: rotate",
		"Down: soft drop",
		"Space: hard drop",
		"Esc: quit")

	s.lastDrop = s.clock.NowMS()
	for !s.quit {
		s.tick()
		time.Sleep(10 * time.Millisecond)
	}
}

// tick runs one loop iteration: one key, gravity if due, one frame.
func (s *Session) tick() {
	if k, ok := s.kb.Poll(); ok {
		s.handleKey(k)
	}
	if s.quit {
		return
	}

	now := s.clock.NowMS()
	if !s.game.GameOver && ticks.Diff(now, s.lastDrop) >= int32(s.game.DropInterval()) {
		s.game.Advance()
		s.lastDrop = now
	}

	if s.game.GameOver && !s.reported {
		s.reported = true
		s.logger.Info("tetris game over",
			slog.Int("score", s.game.Score),
			slog.Int("level", s.game.Level),
			slog.Int("lines", s.game.LinesClear))
		if s.onGameOver != nil {
			s.onGameOver(s.game.Score)
		}
	}

	s.draw()
}

func (s *Session) handleKey(k keyboard.Key) {
	if s.game.GameOver {
		switch k {
		case keyboard.KeyEnter:
			s.game.Reset()
			s.reported = false
			s.lastDrop = s.clock.NowMS()
		case keyboard.KeyEsc:
			s.quit = true
		}
		return
	}

	switch k {
	case keyboard.KeyLeft:
		s.game.MoveLeft()
	case keyboard.KeyRight:
		s.game.MoveRight()
	case keyboard.KeyUp:
		s.game.Rotate()
	case keyboard.KeyDown:
		s.game.SoftDrop()
	case keyboard.KeySpace:
		s.game.HardDrop()
	case keyboard.KeyEsc:
		s.quit = true
	}
}

func (s *Session) draw() {
	d := s.d
	d.Clear(display.Black)

	d.Rect(boardX-2, boardY-2, Width*blockSize+4, Height*blockSize+4, display.Gray)

	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if c := s.game.At(row, col); c != 0 {
				s.block(row, col, shapeColors[c.Shape()])
			}
		}
	}
	for _, cell := range s.game.PieceCells() {
		if cell[0] >= 0 {
			s.block(cell[0], cell[1], shapeColors[s.game.PieceShape()])
		}
	}

	d.Text("Score", 10, boardY+10, display.White)
	d.Text(strconv.Itoa(s.game.Score), 10, boardY+24, display.Yellow)
	d.Text("Level", 10, boardY+50, display.White)
	d.Text(strconv.Itoa(s.game.Level), 10, boardY+64, display.Yellow)
	d.Text("Lines", 10, boardY+90, display.White)
	d.Text(strconv.Itoa(s.game.LinesClear), 10, boardY+104, display.Yellow)

	if s.game.GameOver {
		d.FillRect(boardX+4, boardY+80, Width*blockSize-8, 60, display.Black)
		d.Rect(boardX+4, boardY+80, Width*blockSize-8, 60, display.White)
		d.Text("GAME OVER", boardX+18, boardY+96, display.Red)
		d.Text("Enter: retry", boardX+8, boardY+116, display.White)
	}

	d.Show()
}

func (s *Session) block(row, col int, c display.Color) {
	s.d.FillRect(boardX+col*blockSize, boardY+row*blockSize, blockSize-1, blockSize-1, c)
}
