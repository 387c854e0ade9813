// Package snake contains the logic of the grid snake game: movement, growth,
// food placement, speed ramp and collision. Callers drive it from their own
// tick loop, same as the tetris engine.
package snake

import (
	"math/rand/v2"
)

// Direction of travel.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

type point struct {
	x, y int
}

// Step timing in milliseconds: start, floor, and the speed-up per food.
const (
	startSpeedMS = 200
	minSpeedMS   = 50
	speedUpMS    = 5
)

const pointsPerFood = 10

// Game is the complete snake state on a Width x Height cell grid. The body
// is head-first; the head is body[0].
type Game struct {
	Width  int
	Height int

	body []point
	dir  Direction
	food point
	rng  *rand.Rand

	Score    int
	speedMS  uint32
	GameOver bool
}

// New creates a game on the given grid. A nil rng gets a randomly seeded
// generator.
func New(width, height int, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Game{Width: width, Height: height, rng: rng}
	g.Reset()
	return g
}

// Reset starts a fresh game: a three-segment snake heading right from the
// center, full speed interval, new food.
func (g *Game) Reset() {
	cx, cy := g.Width/2, g.Height/2
	g.body = []point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.dir = Right
	g.Score = 0
	g.speedMS = startSpeedMS
	g.GameOver = false
	g.spawnFood()
}

// Len returns the body length.
func (g *Game) Len() int { return len(g.body) }

// SpeedMS returns the current step interval in milliseconds.
func (g *Game) SpeedMS() uint32 { return g.speedMS }

// Cells calls fn for every body cell, head first.
func (g *Game) Cells(fn func(x, y int, head bool)) {
	for i, p := range g.body {
		fn(p.x, p.y, i == 0)
	}
}

// Food returns the food cell.
func (g *Game) Food() (x, y int) { return g.food.x, g.food.y }

// SetDirection turns the snake. Reversing onto the body is ignored.
func (g *Game) SetDirection(d Direction) {
	if g.GameOver || d == g.dir.opposite() {
		return
	}
	g.dir = d
}

// Step advances the snake one cell. Hitting a wall or the body ends the
// game; eating grows the snake, scores and shortens the step interval.
func (g *Game) Step() {
	if g.GameOver {
		return
	}

	head := g.body[0]
	switch g.dir {
	case Up:
		head.y--
	case Down:
		head.y++
	case Left:
		head.x--
	case Right:
		head.x++
	}

	if head.x < 0 || head.x >= g.Width || head.y < 0 || head.y >= g.Height {
		g.GameOver = true
		return
	}
	for _, p := range g.body {
		if p == head {
			g.GameOver = true
			return
		}
	}

	g.body = append([]point{head}, g.body...)
	if head == g.food {
		g.Score += pointsPerFood
		if g.speedMS > minSpeedMS+speedUpMS-1 {
			g.speedMS -= speedUpMS
		}
		g.spawnFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}
}

// spawnFood places food on a uniformly drawn free cell.
func (g *Game) spawnFood() {
	for {
		p := point{x: g.rng.IntN(g.Width), y: g.rng.IntN(g.Height)}
		free := true
		for _, b := range g.body {
			if b == p {
				free = false
				break
			}
		}
		if free {
			g.food = p
			return
		}
	}
}
