package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func fillRow(b *core.Board, y int, k core.Kind) {
	for x := range core.BoardWidth {
		b.Set(x, y, k)
	}
}

func TestBoardCellOutOfRange(t *testing.T) {
	var b core.Board
	fillRow(&b, 0, core.KindT)

	tests := []struct {
		x, y int
	}{
		{-1, 0},
		{core.BoardWidth, 0},
		{0, -1},
		{0, core.BoardHeight},
		{-100, -100},
	}

	for _, tc := range tests {
		if got := b.Cell(tc.x, tc.y); got != core.Empty {
			t.Errorf("Cell(%d, %d) = %v, want Empty", tc.x, tc.y, got)
		}
	}
}

func TestBoardSet(t *testing.T) {
	var b core.Board

	if !b.Set(2, 3, core.KindS) {
		t.Fatal("Set(2, 3) in bounds should succeed")
	}
	if got := b.Cell(2, 3); got != core.KindS {
		t.Errorf("Cell(2, 3) = %v, want S", got)
	}
	if b.Set(core.BoardWidth, 0, core.KindS) {
		t.Error("Set out of bounds should fail")
	}
	if b.Set(0, 0, core.Kind(42)) {
		t.Error("Set with invalid kind should fail")
	}
	if !b.Set(2, 3, core.Empty) {
		t.Error("Set Empty should succeed")
	}
	if b.FilledCount() != 0 {
		t.Errorf("FilledCount() = %d, want 0", b.FilledCount())
	}
}

func TestClearLinesNone(t *testing.T) {
	var b core.Board
	for x := 0; x < core.BoardWidth-1; x++ {
		b.Set(x, core.BoardHeight-1, core.KindJ)
	}

	if n := b.ClearLines(); n != 0 {
		t.Errorf("ClearLines() = %d, want 0", n)
	}
	if b.FilledCount() != core.BoardWidth-1 {
		t.Errorf("FilledCount() = %d, want %d", b.FilledCount(), core.BoardWidth-1)
	}
}

func TestClearLinesShiftsContentDown(t *testing.T) {
	var b core.Board
	fillRow(&b, 18, core.KindI)
	fillRow(&b, 19, core.KindI)
	b.Set(0, 17, core.KindT)

	if n := b.ClearLines(); n != 2 {
		t.Fatalf("ClearLines() = %d, want 2", n)
	}
	if got := b.Cell(0, 19); got != core.KindT {
		t.Errorf("Cell(0, 19) = %v, want T", got)
	}
	if b.FilledCount() != 1 {
		t.Errorf("FilledCount() = %d, want 1", b.FilledCount())
	}
}

func TestClearLinesWithGap(t *testing.T) {
	var b core.Board
	fillRow(&b, 19, core.KindL)
	b.Set(3, 18, core.KindO)
	fillRow(&b, 17, core.KindL)
	b.Set(5, 16, core.KindZ)

	if n := b.ClearLines(); n != 2 {
		t.Fatalf("ClearLines() = %d, want 2", n)
	}
	if got := b.Cell(3, 19); got != core.KindO {
		t.Errorf("Cell(3, 19) = %v, want O", got)
	}
	if got := b.Cell(5, 18); got != core.KindZ {
		t.Errorf("Cell(5, 18) = %v, want Z", got)
	}
	if b.FilledCount() != 2 {
		t.Errorf("FilledCount() = %d, want 2", b.FilledCount())
	}
}

func TestClearLinesTetris(t *testing.T) {
	var b core.Board
	for y := 16; y < core.BoardHeight; y++ {
		fillRow(&b, y, core.KindI)
	}

	if n := b.ClearLines(); n != 4 {
		t.Errorf("ClearLines() = %d, want 4", n)
	}
	if b.FilledCount() != 0 {
		t.Errorf("FilledCount() = %d, want 0", b.FilledCount())
	}
}

func TestBoardString(t *testing.T) {
	var b core.Board
	b.Set(0, 19, core.KindI)
	b.Set(9, 19, core.KindZ)

	lines := strings.Split(b.String(), "\n")
	if len(lines) != core.BoardHeight {
		t.Fatalf("String() has %d lines, want %d", len(lines), core.BoardHeight)
	}
	if lines[0] != ".........." {
		t.Errorf("top row = %q, want empty", lines[0])
	}
	if lines[19] != "I........Z" {
		t.Errorf("bottom row = %q, want %q", lines[19], "I........Z")
	}
}

func TestRowsIsCopy(t *testing.T) {
	var b core.Board
	rows := b.Rows()
	rows[0][0] = core.KindT

	if b.Cell(0, 0) != core.Empty {
		t.Error("modifying Rows() result changed the board")
	}
}
