package snake

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

// board geometry: 16px cells below a 40px header.
const (
	cellSize = 16
	headerH  = 40
)

// Options configures a play session. Display and Keyboard are required.
type Options struct {
	Display  display.Device
	Keyboard keyboard.Input
	Clock    ticks.Clock
	Logger   *slog.Logger
	Rand     *rand.Rand

	// OnGameOver is invoked once per finished game with the final score.
	OnGameOver func(score int)
}

// Session drives one game on a display with the same poll/step/draw loop as
// the tetris session.
type Session struct {
	game       *Game
	d          display.Device
	kb         keyboard.Input
	clock      ticks.Clock
	logger     *slog.Logger
	onGameOver func(int)

	lastStep uint32
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
	w, h := opts.Display.Size()
	return &Session{
		game:       New(w/cellSize, (h-headerH)/cellSize, opts.Rand),
		d:          opts.Display,
		kb:         opts.Keyboard,
		clock:      opts.Clock,
		logger:     opts.Logger,
		onGameOver: opts.OnGameOver,
		lastStep:   opts.Clock.NowMS(),
	}
}

// Run shows the intro and loops until the player quits.
func (s *Session) Run() {
	ui.MessageBox(s.d, s.kb, "Snake",
		"Arrows: steer",
		"Esc: quit")

	s.lastStep = s.clock.NowMS()
	for !s.quit {
		s.tick()
		time.Sleep(10 * time.Millisecond)
	}
}

func (s *Session) tick() {
	if k, ok := s.kb.Poll(); ok {
		s.handleKey(k)
	}
	if s.quit {
		return
	}

	now := s.clock.NowMS()
	if !s.game.GameOver && ticks.Diff(now, s.lastStep) >= int32(s.game.SpeedMS()) {
		s.game.Step()
		s.lastStep = now
	}

	if s.game.GameOver && !s.reported {
		s.reported = true
		s.logger.Info("snake game over", slog.Int("score", s.game.Score))
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
			s.lastStep = s.clock.NowMS()
		case keyboard.KeyEsc:
			s.quit = true
		}
		return
	}

	switch k {
	case keyboard.KeyUp:
		s.game.SetDirection(Up)
	case keyboard.KeyDown:
		s.game.SetDirection(Down)
	case keyboard.KeyLeft:
		s.game.SetDirection(Left)
	case keyboard.KeyRight:
		s.game.SetDirection(Right)
	case keyboard.KeyEsc:
		s.quit = true
	}
}

func (s *Session) draw() {
	d := s.d
	w, _ := d.Size()
	d.Clear(display.Black)

	d.Text("Snake", 10, 14, display.Green)
	d.Text("Score: "+strconv.Itoa(s.game.Score), w-120, 14, display.White)
	d.Line(0, headerH-2, w-1, headerH-2, display.Gray)

	fx, fy := s.game.Food()
	s.cell(fx, fy, display.Red)
	s.game.Cells(func(x, y int, head bool) {
		c := display.Green
		if head {
			c = display.Yellow
		}
		s.cell(x, y, c)
	})

	if s.game.GameOver {
		mid := w / 2
		d.FillRect(mid-70, 130, 140, 60, display.Black)
		d.Rect(mid-70, 130, 140, 60, display.White)
		d.Text("GAME OVER", mid-36, 146, display.Red)
		d.Text("Enter: retry", mid-48, 166, display.White)
	}

	d.Show()
}

func (s *Session) cell(x, y int, c display.Color) {
	s.d.FillRect(x*cellSize+1, y*cellSize+headerH+1, cellSize-2, cellSize-2, c)
}
