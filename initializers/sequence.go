package initializers

// Sequence returns an RNG that gives the provided values in order, and then starts again from the
// beginning. It is useful for building a Unit or Network with known initial weights. Sequence will
// panic if given no values.
func Sequence(values ...float64) *sequence {
	if len(values) == 0 {
		panic("initializers: Sequence given no values")
	}

	vs := make([]float64, len(values))
	copy(vs, values)
	return &sequence{values: vs}
}

type sequence struct {
	values []float64
	next   int
}

// Gen is the implementation of logicnet.RNG for Sequence.
func (s *sequence) Gen() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
