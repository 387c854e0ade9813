package snake

import (
	"math/rand/v2"
	"testing"

	"picopim/display"
	"picopim/keyboard"
	"picopim/ticks"
)

func newTestGame() *Game {
	return New(20, 17, rand.New(rand.NewPCG(1, 2)))
}

func TestStepMovesHead(t *testing.T) {
	g := newTestGame()
	g.food = point{0, 0} // out of the way
	hx, hy := g.body[0].x, g.body[0].y

	g.Step()

	if g.body[0] != (point{hx + 1, hy}) {
		t.Errorf("wanted head at (%d,%d), got %v", hx+1, hy, g.body[0])
	}
	if g.Len() != 3 {
		t.Errorf("length must stay 3 without food, got %d", g.Len())
	}
}

func TestEatGrowsScoresAndSpeedsUp(t *testing.T) {
	g := newTestGame()
	head := g.body[0]
	g.food = point{head.x + 1, head.y}

	g.Step()

	if g.Len() != 4 {
		t.Errorf("eating should grow the snake, length %d", g.Len())
	}
	if g.Score != 10 {
		t.Errorf("wanted score 10, got %d", g.Score)
	}
	if g.SpeedMS() != startSpeedMS-speedUpMS {
		t.Errorf("wanted interval %d, got %d", startSpeedMS-speedUpMS, g.SpeedMS())
	}
	if g.food == (point{head.x + 1, head.y}) {
		t.Error("food should respawn after being eaten")
	}
}

func TestSpeedFloor(t *testing.T) {
	g := newTestGame()
	g.speedMS = minSpeedMS

	head := g.body[0]
	g.food = point{head.x + 1, head.y}
	g.Step()

	if g.SpeedMS() != minSpeedMS {
		t.Errorf("interval must not drop below %d, got %d", minSpeedMS, g.SpeedMS())
	}
}

func TestCannotReverse(t *testing.T) {
	g := newTestGame() // heading Right
	g.SetDirection(Left)
	if g.dir != Right {
		t.Error("reversing onto the body must be ignored")
	}

	g.SetDirection(Up)
	if g.dir != Up {
		t.Error("a perpendicular turn should be accepted")
	}
	g.SetDirection(Down)
	if g.dir != Up {
		t.Error("reversing after a turn must be ignored")
	}
}

func TestWallEndsGame(t *testing.T) {
	g := newTestGame()
	g.food = point{0, 0}
	g.SetDirection(Down)

	for i := 0; i < g.Height+1; i++ {
		g.Step()
	}

	if !g.GameOver {
		t.Error("running into the wall should end the game")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame()
	g.food = point{0, 0}
	// long enough to close a loop
	head := g.body[0]
	g.body = []point{head, {head.x - 1, head.y}, {head.x - 2, head.y}, {head.x - 3, head.y}, {head.x - 4, head.y}}

	g.SetDirection(Up)
	g.Step()
	g.SetDirection(Left)
	g.Step()
	g.SetDirection(Down)
	g.Step() // back onto the body

	if !g.GameOver {
		t.Error("running into the body should end the game")
	}
}

func TestFoodAvoidsBody(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 50; i++ {
		g.spawnFood()
		for _, b := range g.body {
			if b == g.food {
				t.Fatalf("food spawned on the body at %v", g.food)
			}
		}
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g := newTestGame()
	g.Score = 70
	g.speedMS = 100
	g.GameOver = true

	g.Reset()

	if g.GameOver || g.Score != 0 || g.SpeedMS() != startSpeedMS || g.Len() != 3 {
		t.Errorf("reset should restore the starting state, got %+v", g)
	}
}

func TestSessionStepFollowsClock(t *testing.T) {
	clock := &ticks.Manual{}
	rec := display.NewRecorder(display.PanelWidth, display.PanelHeight)
	s := NewSession(Options{
		Display:  rec,
		Keyboard: keyboard.NewSim(),
		Clock:    clock,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	})
	s.game.food = point{0, 0}
	start := s.game.body[0]

	s.tick()
	if s.game.body[0] != start {
		t.Fatal("the snake must not move before the interval elapses")
	}

	clock.Advance(s.game.SpeedMS())
	s.tick()
	if s.game.body[0] == start {
		t.Error("the snake should step once the interval elapses")
	}
}

func TestSessionGameOverCallback(t *testing.T) {
	var calls []int
	kb := keyboard.NewSim()
	rec := display.NewRecorder(display.PanelWidth, display.PanelHeight)
	s := NewSession(Options{
		Display:    rec,
		Keyboard:   kb,
		Clock:      &ticks.Manual{},
		Rand:       rand.New(rand.NewPCG(1, 2)),
		OnGameOver: func(score int) { calls = append(calls, score) },
	})
	s.game.Score = 120
	s.game.GameOver = true

	s.tick()
	s.tick()

	if len(calls) != 1 || calls[0] != 120 {
		t.Fatalf("wanted one callback with 120, got %v", calls)
	}
	if !rec.HasText("GAME OVER") {
		t.Error("the game-over overlay should be drawn")
	}

	kb.Push(keyboard.KeyEnter)
	s.tick()
	if s.game.GameOver || s.reported {
		t.Error("Enter should restart and re-arm the callback")
	}
}
