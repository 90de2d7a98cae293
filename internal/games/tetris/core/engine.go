package core

import "time"

// Phase is the engine's position in the spawn/fall/lock/clear cycle.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Scoring and timing constants.
const (
	LinesPerLevel = 10
	HardDropBonus = 2

	baseDropDelay = 1000
	dropDelayStep = 50
	minDropDelay  = 100
)

// lineScores is indexed by rows cleared in a single lock; the award is
// multiplied by the level in effect before the clear.
var lineScores = [...]int{0, 100, 300, 500, 800}

// Engine holds one complete game session. It is not safe for concurrent
// use: every call runs to completion, including the lock, clear and spawn
// cascade, and callers must serialise access.
type Engine struct {
	board Board
	piece Piece
	next  Kind
	rng   Sequencer

	score int
	level int
	lines int
	phase Phase

	lastCleared  int
	piecesLocked int
}

// NewEngine creates an engine seeded with seed and starts a new game.
func NewEngine(seed int32) *Engine {
	e := &Engine{rng: Sequencer{seed: seed}}
	e.Reset()
	return e
}

// Reset starts a new game: empty board, score 0, level 1, no lines and a
// freshly spawned piece. The sequencer keeps running from its current
// state; use Reseed to replay from a known seed.
func (e *Engine) Reset() {
	e.board.Clear()
	e.score = 0
	e.level = 1
	e.lines = 0
	e.lastCleared = 0
	e.piecesLocked = 0
	e.phase = PhaseSpawning
	e.next = e.rng.NextKind()
	e.spawn()
}

// Reseed restarts the sequencer from seed and starts a new game.
func (e *Engine) Reseed(seed int32) {
	e.rng = Sequencer{seed: seed}
	e.Reset()
}

// spawn promotes the queued kind to the active piece and queues another.
// A piece that collides where it spawns ends the game.
func (e *Engine) spawn() {
	e.phase = PhaseSpawning

	kind := e.next
	e.next = e.rng.NextKind()

	at := spawnPoint(kind)
	e.piece = Piece{Kind: kind, X: at.X, Y: at.Y}

	if e.collides(e.piece) {
		e.phase = PhaseGameOver
		return
	}
	e.phase = PhaseFalling
}

// collides reports whether p overlaps a wall, the floor or a placed cell.
// Cells above the board only collide with the side walls.
func (e *Engine) collides(p Piece) bool {
	if !p.Kind.Valid() {
		return true
	}

	s := p.Shape()
	for row := range ShapeSize {
		for col := range ShapeSize {
			if !s[row][col] {
				continue
			}
			bx, by := p.X+col, p.Y+row
			if bx < 0 || bx >= BoardWidth || by >= BoardHeight {
				return true
			}
			if by >= 0 && e.board.Cell(bx, by) != Empty {
				return true
			}
		}
	}
	return false
}

// Collides reports whether the active kind would collide at anchor (x, y)
// with the given rotation.
func (e *Engine) Collides(x, y, rotation int) bool {
	return e.collides(Piece{
		Kind:     e.piece.Kind,
		Rotation: normalizeRotation(rotation),
		X:        x,
		Y:        y,
	})
}

// falling reports whether the engine accepts piece commands.
func (e *Engine) falling() bool {
	return e.phase == PhaseFalling && e.piece.Kind.Valid()
}

// lock merges the active piece into the board, clears full rows, scores
// them and spawns the next piece, strictly in that order.
func (e *Engine) lock() {
	e.phase = PhaseLocking
	for _, c := range e.piece.Cells() {
		if c.Y < 0 {
			continue
		}
		e.board.Set(c.X, c.Y, e.piece.Kind)
	}
	e.piecesLocked++

	e.phase = PhaseClearing
	e.lastCleared = e.board.ClearLines()
	e.award(e.lastCleared)

	e.spawn()
}

// award adds line-clear points at the current level, then recomputes the
// level from the new line total.
func (e *Engine) award(cleared int) {
	if cleared <= 0 {
		return
	}
	e.lines += cleared
	if cleared < len(lineScores) {
		e.score += lineScores[cleared] * e.level
	}
	e.level = 1 + e.lines/LinesPerLevel
}

// shift moves the active piece by (dx, dy) if the target is free.
func (e *Engine) shift(dx, dy int) bool {
	moved := e.piece.Moved(dx, dy)
	if e.collides(moved) {
		return false
	}
	e.piece = moved
	return true
}

// MoveLeft shifts the piece one column left if possible.
func (e *Engine) MoveLeft() bool {
	if !e.falling() {
		return false
	}
	return e.shift(-1, 0)
}

// MoveRight shifts the piece one column right if possible.
func (e *Engine) MoveRight() bool {
	if !e.falling() {
		return false
	}
	return e.shift(1, 0)
}

// MoveDown drops the piece one row. It returns true if the piece moved and
// false if it locked instead (or the game is over).
func (e *Engine) MoveDown() bool {
	if !e.falling() {
		return false
	}
	if e.shift(0, 1) {
		return true
	}
	e.lock()
	return false
}

// Rotate turns the piece clockwise. If the rotated piece collides in place,
// each kick offset is tried in order and the first free one is taken.
// When every candidate collides nothing changes.
func (e *Engine) Rotate() bool {
	if !e.falling() {
		return false
	}

	rotated := e.piece
	rotated.Rotation = (e.piece.Rotation + 1) % Rotations

	if !e.collides(rotated) {
		e.piece = rotated
		return true
	}

	for _, k := range kicks {
		candidate := rotated.Moved(k.X, k.Y)
		if !e.collides(candidate) {
			e.piece = candidate
			return true
		}
	}
	return false
}

// HardDrop drops the piece until it locks, scoring HardDropBonus per row
// travelled. It returns the number of rows travelled.
func (e *Engine) HardDrop() int {
	if !e.falling() {
		return 0
	}
	rows := 0
	for e.MoveDown() {
		e.score += HardDropBonus
		rows++
	}
	return rows
}

// GhostY returns the row the active piece would rest on if dropped.
// It never changes engine state.
func (e *Engine) GhostY() int {
	ghost := e.piece
	for !e.collides(ghost.Moved(0, 1)) {
		ghost.Y++
	}
	return ghost.Y
}

// DropDelay returns the recommended gravity interval in milliseconds for
// the current level. The engine itself never acts on it.
func (e *Engine) DropDelay() int {
	level := e.level
	if level < 1 {
		level = 1
	}
	return max(minDropDelay, baseDropDelay-(level-1)*dropDelayStep)
}

// DropInterval is DropDelay as a duration.
func (e *Engine) DropInterval() time.Duration {
	return time.Duration(e.DropDelay()) * time.Millisecond
}

// Width returns the board width.
func (e *Engine) Width() int { return BoardWidth }

// Height returns the board height.
func (e *Engine) Height() int { return BoardHeight }

// Cell returns the placed kind at (x, y); Empty when out of bounds.
func (e *Engine) Cell(x, y int) Kind { return e.board.Cell(x, y) }

// Board returns a copy of the playfield.
func (e *Engine) Board() Board { return e.board }

// Piece returns the active piece.
func (e *Engine) Piece() Piece { return e.piece }

// Next returns the queued kind shown in the preview.
func (e *Engine) Next() Kind { return e.next }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// GameOver reports whether the last spawn topped out.
func (e *Engine) GameOver() bool { return e.phase == PhaseGameOver }

// Phase returns the current phase. Between calls it is always Falling or
// GameOver; the other phases only exist inside a lock cascade.
func (e *Engine) Phase() Phase { return e.phase }

// LastCleared returns the number of rows removed by the most recent lock.
func (e *Engine) LastCleared() int { return e.lastCleared }

// PiecesLocked returns how many pieces have been merged into the board.
func (e *Engine) PiecesLocked() int { return e.piecesLocked }

// Seed returns the sequencer's current state.
func (e *Engine) Seed() int32 { return e.rng.Seed() }
