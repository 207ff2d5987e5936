package logicnet

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"math"
)

// Round rounds an output to the nearest integer, with halves rounded up. For the outputs of a
// logistic Activation, this is always 0 or 1.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// SquaredError returns the squared difference between an output and its target. Cost is the mean
// of this over a Dataset.
func SquaredError(output, target float64) float64 {
	return (output - target) * (output - target)
}

// Cost returns the mean squared error of the Learner over the Dataset, alongside the fraction of
// the Dataset for which Round(output) equals the expected output. An empty Dataset has zero cost
// and zero correct.
//
// Cost activates the Learner once for each Datum, in order.
func Cost(l Learner, data Dataset) (cost, correct float64, err error) {
	if len(data) == 0 {
		return 0, 0, nil
	}

	outs := make([]float64, len(data))
	targets := make([]float64, len(data))
	for i := range data {
		if outs[i], err = l.Activate(data[i].Inputs); err != nil {
			return 0, 0, errors.Wrapf(err, "Getting output for Datum %d failed", i)
		}
		targets[i] = data[i].Output

		if Round(outs[i]) == targets[i] {
			correct++
		}
	}

	diffs := floats.SubTo(make([]float64, len(data)), outs, targets)
	cost = floats.Dot(diffs, diffs) / float64(len(data))
	correct /= float64(len(data))
	return cost, correct, nil
}

// Every returns a function that satisfies TrainArgs.SendStatus, sending a status every 'frequency'
// epochs. If frequency is not positive, no status is ever sent.
//
// this function is self-explanatory from viewing the source
func Every(frequency int) func(int) bool {
	if frequency <= 0 {
		return func(epoch int) bool { return false }
	}

	return func(epoch int) bool {
		return epoch%frequency == 0
	}
}
