// Package core implements the Tetris rules engine: shape catalog, piece
// sequencer, board, collision, rotation kicks, line clearing and scoring.
// It has no platform dependencies; the game wrapper drives it.
package core

// Kind identifies a tetromino archetype. The zero value is Empty and is also
// the value stored in unoccupied board cells.
type Kind uint8

const (
	Empty Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of playable kinds.
const KindCount = 7

// ShapeSize is the edge length of every rotation grid.
const ShapeSize = 4

// Rotations is the number of rotation states per kind.
const Rotations = 4

// Shape is a 4x4 occupancy grid indexed [row][col].
type Shape [ShapeSize][ShapeSize]bool

// Filled reports whether local cell (x, y) is occupied.
// Coordinates outside the grid are never filled.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || x >= ShapeSize || y < 0 || y >= ShapeSize {
		return false
	}
	return s[y][x]
}

// kindInfo holds the static data for one kind.
type kindInfo struct {
	name      string
	hex       string
	rotations [Rotations]Shape
}

// catalog is indexed directly by Kind; index 0 is unused.
var catalog = [KindCount + 1]kindInfo{
	KindI: {
		name: "I",
		hex:  "#00f0f0",
		rotations: [Rotations]Shape{
			shape("....", "####", "....", "...."),
			shape("..#.", "..#.", "..#.", "..#."),
			shape("....", "....", "####", "...."),
			shape(".#..", ".#..", ".#..", ".#.."),
		},
	},
	KindJ: {
		name: "J",
		hex:  "#0000f0",
		rotations: [Rotations]Shape{
			shape("#...", "###.", "....", "...."),
			shape(".##.", ".#..", ".#..", "...."),
			shape("....", "###.", "..#.", "...."),
			shape(".#..", ".#..", "##..", "...."),
		},
	},
	KindL: {
		name: "L",
		hex:  "#f0a000",
		rotations: [Rotations]Shape{
			shape("..#.", "###.", "....", "...."),
			shape(".#..", ".#..", ".##.", "...."),
			shape("....", "###.", "#...", "...."),
			shape("##..", ".#..", ".#..", "...."),
		},
	},
	KindO: {
		name: "O",
		hex:  "#f0f000",
		rotations: [Rotations]Shape{
			shape(".##.", ".##.", "....", "...."),
			shape(".##.", ".##.", "....", "...."),
			shape(".##.", ".##.", "....", "...."),
			shape(".##.", ".##.", "....", "...."),
		},
	},
	KindS: {
		name: "S",
		hex:  "#00f000",
		rotations: [Rotations]Shape{
			shape(".##.", "##..", "....", "...."),
			shape(".#..", ".##.", "..#.", "...."),
			shape("....", ".##.", "##..", "...."),
			shape("#...", "##..", ".#..", "...."),
		},
	},
	KindT: {
		name: "T",
		hex:  "#a000f0",
		rotations: [Rotations]Shape{
			shape(".#..", "###.", "....", "...."),
			shape(".#..", ".##.", ".#..", "...."),
			shape("....", "###.", ".#..", "...."),
			shape(".#..", "##..", ".#..", "...."),
		},
	},
	KindZ: {
		name: "Z",
		hex:  "#f00000",
		rotations: [Rotations]Shape{
			shape("##..", ".##.", "....", "...."),
			shape("..#.", ".##.", ".#..", "...."),
			shape("....", "##..", ".##.", "...."),
			shape(".#..", "##..", "#...", "...."),
		},
	},
}

// shape builds a grid from four rows of '#' (filled) and '.' (empty).
func shape(rows ...string) Shape {
	var s Shape
	for y, row := range rows {
		for x, c := range row {
			s[y][x] = c == '#'
		}
	}
	return s
}

// Kinds returns all playable kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// String returns the single-letter name, or "." for Empty.
func (k Kind) String() string {
	if !k.Valid() {
		return "."
	}
	return catalog[k].name
}

// Hex returns the classic display colour as "#rrggbb".
// Empty and invalid kinds return an empty string.
func (k Kind) Hex() string {
	if !k.Valid() {
		return ""
	}
	return catalog[k].hex
}

// ShapeOf returns the occupancy grid for kind at rotation.
// Rotation is taken mod 4. An invalid kind yields the O grid; the engine
// never asks for one.
func ShapeOf(k Kind, rotation int) Shape {
	r := normalizeRotation(rotation)
	if !k.Valid() {
		return catalog[KindO].rotations[0]
	}
	return catalog[k].rotations[r]
}

// PieceCell reports 1 if local cell (x, y) of kind at rotation is filled.
// Invalid kinds and out-of-grid coordinates return 0.
func PieceCell(k Kind, rotation, x, y int) int {
	if !k.Valid() {
		return 0
	}
	if ShapeOf(k, rotation).Filled(x, y) {
		return 1
	}
	return 0
}

func normalizeRotation(r int) int {
	r %= Rotations
	if r < 0 {
		r += Rotations
	}
	return r
}
