package seeder

import (
	"math"
	"math/rand"
	"time"
)

// rng returns the noise source for a generator run. Passing data.seed gives a
// reproducible run; the default stays unseeded so repeated invocations keep
// producing fresh-looking fixture data.
func (p Params) rng() *rand.Rand {
	if p.Seed != nil {
		return rand.New(rand.NewSource(*p.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// jitter returns a multiplier uniform in [1-band, 1+band]
func jitter(r *rand.Rand, band float64) float64 {
	return 1 + (r.Float64()*2-1)*band
}

// between returns a uniform float in [lo, hi)
func between(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intBetween returns a uniform int in [lo, hi]
func intBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// chance rolls a probability in [0,1]
func chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// pick returns a uniformly random element
func pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// round4 trims a fractional percentage to 4 decimal places
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
