package sim

import "math/rand/v2"

// rngSource wraps math/rand/v2.Rand with the small surface sim needs. A State
// is constructed with one of these so tests can seed it for reproducible runs
// (§8 "Movement determinism").
type rngSource struct {
	r *rand.Rand
}

func newRNG(seed1, seed2 uint64) *rngSource {
	return &rngSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *rngSource) Float64Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

func (s *rngSource) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *rngSource) color() *rand.Rand {
	return s.r
}
