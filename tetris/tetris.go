// Package tetris contains the logic of the game: grid, piece movement and
// rotation, locking, line clearing, scoring and leveling. The engine is
// single-threaded; callers drive it from their own tick loop.
package tetris

import (
	"math/rand/v2"
)

// Playfield dimensions.
const (
	Width  = 10
	Height = 20
)

// Cell is one playfield cell: 0 when empty, otherwise the locked piece's
// Shape plus one.
type Cell uint8

// Shape returns the shape locked into a non-empty cell.
func (c Cell) Shape() Shape { return Shape(c - 1) }

// piece is the falling tetromino. Its anchor may sit above the grid (negative
// row) right after spawn; those cells are staged, not yet visible.
type piece struct {
	shape Shape
	rot   int
	row   int
	col   int
}

// lineScores is the base award for clearing K rows at once, multiplied by the
// level at the time of the clear.
var lineScores = [5]int{0, 40, 100, 300, 1200}

// Game is the complete game state. The grid holds locked cells only; the
// falling piece is never written into it until it locks.
type Game struct {
	grid    []Cell
	scratch []Cell
	current piece
	rng     *rand.Rand

	Score      int
	Level      int
	LinesClear int
	GameOver   bool
}

// New creates a game with the first piece spawned. A nil rng gets a randomly
// seeded generator; tests pass their own for reproducible draws.
func New(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Game{
		grid:    make([]Cell, Width*Height),
		scratch: make([]Cell, Width*Height),
		rng:     rng,
		Level:   1,
	}
	g.spawn()
	return g
}

// Reset reinitializes every field for a fresh game, keeping the generator.
func (g *Game) Reset() {
	for i := range g.grid {
		g.grid[i] = 0
	}
	g.Score = 0
	g.Level = 1
	g.LinesClear = 0
	g.GameOver = false
	g.spawn()
}

// At returns the locked cell at (row, col).
func (g *Game) At(row, col int) Cell {
	return g.grid[row*Width+col]
}

// PieceShape returns the falling piece's shape.
func (g *Game) PieceShape() Shape { return g.current.shape }

// PieceCells returns the absolute (row, col) cells of the falling piece.
// Rows may be negative right after spawn.
func (g *Game) PieceCells() [4][2]int {
	var cells [4][2]int
	for i, off := range shapeOffsets[g.current.shape][g.current.rot] {
		cells[i] = [2]int{g.current.row + off.row, g.current.col + off.col}
	}
	return cells
}

// fits reports whether the candidate placement is legal: every cell inside
// the column bounds and above the floor, and every on-grid cell empty. Rows
// above the grid are legal staging space.
func (g *Game) fits(p piece) bool {
	for _, off := range shapeOffsets[p.shape][p.rot] {
		row := p.row + off.row
		col := p.col + off.col
		if col < 0 || col >= Width || row >= Height {
			return false
		}
		if row >= 0 && g.grid[row*Width+col] != 0 {
			return false
		}
	}
	return true
}

// MoveLeft shifts the piece one column left. An edge bump is a silent no-op.
func (g *Game) MoveLeft() {
	if g.GameOver {
		return
	}
	c := g.current
	c.col--
	if g.fits(c) {
		g.current = c
	}
}

// MoveRight shifts the piece one column right.
func (g *Game) MoveRight() {
	if g.GameOver {
		return
	}
	c := g.current
	c.col++
	if g.fits(c) {
		g.current = c
	}
}

// Rotate turns the piece clockwise. The rotation is all-or-nothing: if the
// turned placement collides, nothing changes. No wall kicks. O never turns.
func (g *Game) Rotate() {
	if g.GameOver || g.current.shape == ShapeO {
		return
	}
	c := g.current
	c.rot = (c.rot + 1) % 4
	if g.fits(c) {
		g.current = c
	}
}

// Advance applies one gravity step and reports whether the piece is still
// falling. A blocked step locks the piece; that is the only lock trigger.
func (g *Game) Advance() bool {
	if g.GameOver {
		return false
	}
	return g.down()
}

// SoftDrop is the player-driven gravity step. A successful step scores one
// point.
func (g *Game) SoftDrop() {
	if g.GameOver {
		return
	}
	if g.down() {
		g.Score++
	}
}

// HardDrop sends the piece to the floor and locks it, scoring two points per
// row descended.
func (g *Game) HardDrop() {
	if g.GameOver {
		return
	}
	for g.down() {
		g.Score += 2
	}
}

func (g *Game) down() bool {
	c := g.current
	c.row++
	if g.fits(c) {
		g.current = c
		return true
	}
	g.lock()
	return false
}

func (g *Game) lock() {
	for _, off := range shapeOffsets[g.current.shape][g.current.rot] {
		row := g.current.row + off.row
		if row < 0 {
			continue
		}
		g.grid[row*Width+off.col+g.current.col] = Cell(g.current.shape) + 1
	}
	g.clearLines()
	g.spawn()
}

// clearLines compacts the non-full rows into the scratch buffer bottom-up,
// pads the top with empty rows and swaps the buffers.
func (g *Game) clearLines() {
	cleared := 0
	dst := Height - 1
	for src := Height - 1; src >= 0; src-- {
		if g.fullRow(src) {
			cleared++
			continue
		}
		copy(g.scratch[dst*Width:(dst+1)*Width], g.grid[src*Width:(src+1)*Width])
		dst--
	}
	if cleared == 0 {
		return
	}
	for row := 0; row <= dst; row++ {
		for col := 0; col < Width; col++ {
			g.scratch[row*Width+col] = 0
		}
	}
	g.grid, g.scratch = g.scratch, g.grid

	g.Score += lineScores[min(cleared, 4)] * g.Level
	g.LinesClear += cleared
	g.Level = 1 + g.LinesClear/10
}

func (g *Game) fullRow(row int) bool {
	for col := 0; col < Width; col++ {
		if g.grid[row*Width+col] == 0 {
			return false
		}
	}
	return true
}

// spawn draws the next shape uniformly and places it top-center. A colliding
// spawn ends the game; only Reset leaves that state.
func (g *Game) spawn() {
	shape := Shape(g.rng.IntN(int(numShapes)))
	p := piece{
		shape: shape,
		col:   (Width - shapeSizes[shape]) / 2,
	}
	g.current = p
	if !g.fits(p) {
		g.GameOver = true
	}
}

// DropInterval returns the gravity interval in milliseconds for the current
// level: 800ms at level 1, 50ms faster per level, floored at 100ms.
func (g *Game) DropInterval() uint32 {
	ms := 800 - 50*(g.Level-1)
	if ms < 100 {
		ms = 100
	}
	return uint32(ms)
}
