package gates

import (
	ln "github.com/sharnoff/logicnet"
)

// the inputs of every two-input truth table, in the order they are trained and printed
var pairs = [4][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

func table(f func(a, b bool) bool) ln.Dataset {
	d := make(ln.Dataset, len(pairs))
	for i, p := range pairs {
		d[i] = ln.Datum{Inputs: []float64{p[0], p[1]}}
		if f(p[0] == 1, p[1] == 1) {
			d[i].Output = 1
		}
	}

	return d
}

// AndData returns the truth table of AND. Each call returns a new Dataset.
func AndData() ln.Dataset {
	return table(func(a, b bool) bool { return a && b })
}

// OrData returns the truth table of OR.
func OrData() ln.Dataset {
	return table(func(a, b bool) bool { return a || b })
}

// XorData returns the truth table of XOR.
func XorData() ln.Dataset {
	return table(func(a, b bool) bool { return a != b })
}
