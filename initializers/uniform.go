package initializers

import (
	"math/rand"
)

// Source is the part of *rand.Rand used by the RNGs of this package. Anything that gives uniformly
// distributed values in [0, 1) will do.
type Source interface {
	Float64() float64
}

const (
	defaultLower float64 = -1
	defaultUpper float64 = 1
)

type uniform struct {
	src          Source
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread over [lower, upper), drawn from src.
// The bounds default to [-1, 1), and can be set by Bounds.
//
// The result of Uniform implements logicnet.RNG.
func Uniform(src Source) *uniform {
	return &uniform{src, defaultLower, defaultUpper}
}

// Seeded returns a Uniform RNG backed by its own *rand.Rand, seeded with the given value. Two RNGs
// with the same seed give the same sequence.
func Seeded(seed int64) *uniform {
	return Uniform(rand.New(rand.NewSource(seed)))
}

// Bounds sets the range of a Uniform RNG, returning it. If lower > upper, they are swapped.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Gen is the implementation of logicnet.RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	return u.src.Float64()*(u.upper-u.lower) + u.lower
}
