// Package genrand provides the seeded pseudo-random stream behind the
// synthetic dataset generators.
//
// The stream is a fixed 64-bit linear congruential generator (Knuth's MMIX
// constants) instead of math/rand so the emitted sequence never shifts under
// a Go release and can be replicated bit-for-bit by any implementation of
// the same recurrence. Every exported draw advances the state exactly once;
// the generators depend on that to keep their draw order stable.
package genrand

const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// Seed derives the integer seed for a job identifier: multiplier times the
// sum of the identifier's unicode code points. Pure and total; the empty
// string yields 0. Endpoints pass distinct multipliers so two streams for
// the same identifier stay decorrelated.
func Seed(identifier string, multiplier int64) int64 {
	var sum int64
	for _, r := range identifier {
		sum += int64(r)
	}
	return multiplier * sum
}

// Stream is a deterministic uniform source. Two streams built with equal
// seeds and drawn from in the same order produce identical values across
// calls and process restarts.
type Stream struct {
	state uint64
}

func NewStream(seed int64) *Stream {
	return &Stream{state: uint64(seed)}
}

func (s *Stream) next() uint64 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	return s.state
}

// Float64 draws a uniform value in [0, 1), using the top 53 bits of the
// state since the low bits of an LCG cycle quickly.
func (s *Stream) Float64() float64 {
	return float64(s.next()>>11) / (1 << 53)
}

// IntRange draws a uniform integer in [lo, hi], inclusive on both ends.
func (s *Stream) IntRange(lo, hi int) int {
	return lo + int(s.Float64()*float64(hi-lo+1))
}

// Choice draws a uniform element of opts. Panics on an empty slice, same as
// indexing would; callers pass fixed non-empty catalogs.
func (s *Stream) Choice(opts []string) string {
	return opts[int(s.Float64()*float64(len(opts)))]
}
