// Package core provides the platform types shared by games and the
// terminal front end. It has no UI dependencies so game logic stays
// testable without a terminal.
package core

// Rect is an area of the screen in cells. X and Y are the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the w by h area whose top-left corner is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the area.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the area.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on each side, e.g. to get the inside of a box.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// Centered places a w by h area in the middle of a screenW by screenH
// screen. The corner never goes negative, so on a small screen the area
// hangs off the right and bottom instead of the top-left.
func Centered(screenW, screenH, w, h int) Rect {
	return Rect{X: max(0, (screenW-w)/2), Y: max(0, (screenH-h)/2), W: w, H: h}
}

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}
