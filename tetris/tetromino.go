package tetris

// Shape is one of the seven tetromino kinds. The set is closed; rotation
// states are precomputed per kind, never derived at play time.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	numShapes
)

var shapeNames = [numShapes]string{"I", "O", "T", "S", "Z", "J", "L"}

func (s Shape) String() string {
	if s >= numShapes {
		return "?"
	}
	return shapeNames[s]
}

// cellOffset is one occupied cell relative to the piece anchor, which sits at
// the top-left corner of the shape's bounding matrix.
type cellOffset struct {
	row, col int
}

/*
Base matrices, rotation state 0. The anchor is the matrix's top-left corner:

	I  . . . .    O  O O    T  . O .    S  . O O
	   O O O O       O O       O O O       O O .
	   . . . .       . .       . . .       . . .
	   . . . .

	Z  O O .      J  O . .    L  . . O
	   . O O         O O O       O O O
	   . . .         . . .       . . .
*/
var baseGrids = [numShapes][][]bool{
	ShapeI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	ShapeO: {
		{true, true},
		{true, true},
	},
	ShapeT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	ShapeS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	ShapeZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	ShapeJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	ShapeL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
}

// shapeOffsets holds the occupied-cell offsets for every shape and rotation
// state. All four states are stored even for symmetric shapes, so the
// rotation index is always taken modulo 4.
var shapeOffsets [numShapes][4][]cellOffset

// shapeSizes is the side length of each shape's bounding matrix, used to
// center the spawn anchor.
var shapeSizes [numShapes]int

func init() {
	for s := ShapeI; s < numShapes; s++ {
		grid := baseGrids[s]
		shapeSizes[s] = len(grid)
		for rot := 0; rot < 4; rot++ {
			shapeOffsets[s][rot] = gridOffsets(grid)
			grid = rotateCW(grid)
		}
	}
}

func gridOffsets(grid [][]bool) []cellOffset {
	var offs []cellOffset
	for r, row := range grid {
		for c, filled := range row {
			if filled {
				offs = append(offs, cellOffset{row: r, col: c})
			}
		}
	}
	return offs
}

func rotateCW(grid [][]bool) [][]bool {
	n := len(grid)
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
	}
	for r := range grid {
		for c := range grid[r] {
			out[c][n-1-r] = grid[r][c]
		}
	}
	return out
}
