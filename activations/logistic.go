package activations

import (
	"math"
)

type logistic int8

// Logistic returns the logistic (sigmoid) function, 1 / (1 + e^-x), which maps any sum into
// (0, 1). Its derivative is given in terms of its output: y * (1 - y).
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Value(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Deriv expects y to already be the output of Value
func (t logistic) Deriv(y float64) float64 {
	return y * (1 - y)
}
