package core

// Point is a board or grid coordinate.
type Point struct {
	X, Y int
}

// Piece is the falling tetromino: its kind, rotation index and the board
// position of its 4x4 grid's top-left corner. Y may be negative while the
// piece is still above the visible board.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Shape returns the occupancy grid for the piece's current rotation.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rotation)
}

// Cells returns the board coordinates of the piece's occupied cells.
func (p Piece) Cells() []Point {
	s := p.Shape()
	cells := make([]Point, 0, 4)
	for row := range ShapeSize {
		for col := range ShapeSize {
			if s[row][col] {
				cells = append(cells, Point{X: p.X + col, Y: p.Y + row})
			}
		}
	}
	return cells
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// spawnPoint returns the anchor a freshly spawned kind starts at.
// The I piece starts one row higher and the O piece one column right so
// both appear centred.
func spawnPoint(k Kind) Point {
	switch k {
	case KindI:
		return Point{X: 3, Y: -1}
	case KindO:
		return Point{X: 4, Y: 0}
	default:
		return Point{X: 3, Y: 0}
	}
}

// kicks are the anchor corrections tried, in order, when an in-place
// rotation collides. One table serves every kind and transition.
var kicks = [...]Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// Kicks returns a copy of the rotation kick table.
func Kicks() []Point {
	out := make([]Point, len(kicks))
	copy(out, kicks[:])
	return out
}
