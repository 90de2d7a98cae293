package core

import "time"

// AutoDrop applies gravity from a caller-supplied clock. The engine has no
// notion of time; AutoDrop calls MoveDown whenever more than one drop
// interval has passed since the previous automatic drop.
type AutoDrop struct {
	last time.Duration

	// Scale, if set, adjusts the engine's recommended interval before it
	// is compared against elapsed time.
	Scale func(time.Duration) time.Duration
}

// Reset restarts the interval at now.
func (a *AutoDrop) Reset(now time.Duration) {
	a.last = now
}

// Interval returns the gravity interval currently in effect for e.
func (a *AutoDrop) Interval(e *Engine) time.Duration {
	interval := e.DropInterval()
	if a.Scale != nil {
		interval = a.Scale(interval)
	}
	return interval
}

// Update drops the piece one row if the interval has elapsed at now.
// It reports whether a drop step was attempted.
func (a *AutoDrop) Update(e *Engine, now time.Duration) bool {
	if e.GameOver() {
		return false
	}
	if now-a.last <= a.Interval(e) {
		return false
	}
	e.MoveDown()
	a.last = now
	return true
}
