package core

import "strings"

// Board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
	boardSize   = BoardWidth * BoardHeight
)

// Board is the playfield: a flat row-major grid of placed kinds.
// The zero value is an empty board.
type Board struct {
	cells [boardSize]Kind
}

// InBounds reports whether (x, y) addresses a visible cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// Cell returns the kind stored at (x, y).
// Out-of-bounds coordinates return Empty.
func (b *Board) Cell(x, y int) Kind {
	if !InBounds(x, y) {
		return Empty
	}
	return b.cells[y*BoardWidth+x]
}

// Set stores k at (x, y). Out-of-bounds writes and invalid kinds other than
// Empty are ignored; the return value reports whether the write happened.
func (b *Board) Set(x, y int, k Kind) bool {
	if !InBounds(x, y) {
		return false
	}
	if k != Empty && !k.Valid() {
		return false
	}
	b.cells[y*BoardWidth+x] = k
	return true
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = [boardSize]Kind{}
}

// RowFull reports whether every cell in row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= BoardHeight {
		return false
	}
	row := b.cells[y*BoardWidth : (y+1)*BoardWidth]
	for _, k := range row {
		if k == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row and returns how many were removed.
// Rows are scanned bottom to top. When a row is removed, everything above
// shifts down by one, the top row is emptied and the same index is checked
// again since new content has moved into it.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := BoardHeight - 1; y >= 0; {
		if !b.RowFull(y) {
			y--
			continue
		}
		cleared++
		b.collapseRow(y)
	}
	return cleared
}

// collapseRow shifts rows [0, y) down by one and empties the top row.
func (b *Board) collapseRow(y int) {
	copy(b.cells[BoardWidth:(y+1)*BoardWidth], b.cells[:y*BoardWidth])
	for x := 0; x < BoardWidth; x++ {
		b.cells[x] = Empty
	}
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, k := range b.cells {
		if k != Empty {
			n++
		}
	}
	return n
}

// Rows returns a copy of the board as nested rows.
func (b *Board) Rows() [BoardHeight][BoardWidth]Kind {
	var rows [BoardHeight][BoardWidth]Kind
	for y := range BoardHeight {
		copy(rows[y][:], b.cells[y*BoardWidth:(y+1)*BoardWidth])
	}
	return rows
}

// String renders the board one row per line, using kind letters and '.'
// for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(boardSize + BoardHeight)
	for y := range BoardHeight {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range BoardWidth {
			sb.WriteString(b.Cell(x, y).String())
		}
	}
	return sb.String()
}
