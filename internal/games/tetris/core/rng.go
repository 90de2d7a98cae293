package core

// DefaultSeed is used when a game is started without an explicit seed.
const DefaultSeed int32 = 12345

// LCG constants.
const (
	lcgMultiplier int32 = 1103515245
	lcgIncrement  int32 = 12345
	lcgModulus    int64 = 2147483648
)

// Sequencer is a linear congruential generator that picks piece kinds.
// The same initial seed and the same call sequence always produce the
// same kinds, which makes games replayable.
type Sequencer struct {
	seed int32
}

// NewSequencer creates a sequencer starting from seed.
func NewSequencer(seed int32) *Sequencer {
	return &Sequencer{seed: seed}
}

// Next advances the generator and returns the new state.
// Multiply and add wrap at 32 bits; the remainder keeps the sign.
func (s *Sequencer) Next() int32 {
	v := s.seed*lcgMultiplier + lcgIncrement
	s.seed = int32(int64(v) % lcgModulus)
	return s.seed
}

// NextKind draws the next piece kind, uniformly mapped onto 1..7.
func (s *Sequencer) NextKind() Kind {
	v := s.Next()
	if v < 0 {
		v = -v
	}
	return Kind(v%KindCount + 1)
}

// Seed returns the current generator state.
func (s *Sequencer) Seed() int32 {
	return s.seed
}
