package logicnet

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"math"
)

// Unit is a single neuron: a weighted sum of its inputs plus a bias, passed through an Activation.
// A Unit can be trained directly against a Dataset, or used as part of a Network, which adjusts it
// during backpropagation.
//
// A Unit is not safe for concurrent use; Activate caches the output it returns.
type Unit struct {
	weights []float64
	bias    float64

	learningRate float64
	act          Activation

	// the value most recently returned by Activate
	output float64
}

// NewUnit creates a Unit with the given number of inputs, with its weights and then its bias drawn
// from rng. The learning rate is fixed for the lifetime of the Unit.
//
// If any of the arguments are invalid, the returned error will satisfy
// errors.Is(err, ErrInvalidConfiguration).
func NewUnit(inputs int, act Activation, learningRate float64, rng RNG) (*Unit, error) {
	if inputs < 1 {
		return nil, configErrorf("Unit must have at least one input (%d)", inputs)
	} else if act == nil {
		return nil, errors.WithStack(NilArgError{"Activation"})
	} else if rng == nil {
		return nil, errors.WithStack(NilArgError{"RNG"})
	} else if err := checkRate(learningRate); err != nil {
		return nil, err
	}

	u := &Unit{
		weights:      make([]float64, inputs),
		learningRate: learningRate,
		act:          act,
	}

	for i := range u.weights {
		u.weights[i] = rng.Gen()
	}
	u.bias = rng.Gen()

	return u, nil
}

func checkRate(learningRate float64) error {
	if math.IsNaN(learningRate) || math.IsInf(learningRate, 0) {
		return configErrorf("Learning rate is invalid (%v)", learningRate)
	} else if learningRate <= 0 {
		return configErrorf("Learning rate must be > 0 (%v)", learningRate)
	}

	return nil
}

// Activate returns the output of the Unit for the given inputs, and stores it as the Unit's
// Output. If the number of inputs is wrong, a SizeMismatchError is returned and nothing is
// computed.
func (u *Unit) Activate(inputs []float64) (float64, error) {
	if len(inputs) != len(u.weights) {
		return 0, sizeError(len(u.weights), len(inputs), "inputs")
	}

	u.output = u.act.Value(u.bias + floats.Dot(inputs, u.weights))
	return u.output, nil
}

// Adjust moves the weights and bias of the Unit in the direction of the gradient, scaled by the
// learning rate:
//	weights[i] += inputs[i] * gradient * learningRate
//	bias       += gradient * learningRate
//
// The inputs should be the same as those that produced the gradient.
func (u *Unit) Adjust(inputs []float64, gradient float64) error {
	if len(inputs) != len(u.weights) {
		return sizeError(len(u.weights), len(inputs), "inputs")
	}

	floats.AddScaled(u.weights, gradient*u.learningRate, inputs)
	u.bias += gradient * u.learningRate
	return nil
}

func (u *Unit) step(d Datum) error {
	computed, err := u.Activate(d.Inputs)
	if err != nil {
		return err
	}

	return u.Adjust(d.Inputs, Adjustment(d.Output, computed, u.act))
}

// Train trains the Unit on each Datum of the Dataset in order, repeated for the given number of
// epochs. The whole Dataset is checked before any training is done.
func (u *Unit) Train(data Dataset, epochs int) error {
	return fit(u, TrainArgs{Data: data, Epochs: epochs})
}

// Fit is Train, with the status reporting given by args.
func (u *Unit) Fit(args TrainArgs) error {
	return fit(u, args)
}

// Inputs returns the number of inputs the Unit expects.
func (u *Unit) Inputs() int {
	return len(u.weights)
}

// Weights returns a copy of the current weights of the Unit, one for each input.
func (u *Unit) Weights() []float64 {
	ws := make([]float64, len(u.weights))
	copy(ws, u.weights)
	return ws
}

// Bias returns the current bias of the Unit.
func (u *Unit) Bias() float64 {
	return u.bias
}

// Output returns the value most recently returned by Activate, or 0 if it has not been called.
func (u *Unit) Output() float64 {
	return u.output
}

// LearningRate returns the learning rate the Unit was created with.
func (u *Unit) LearningRate() float64 {
	return u.learningRate
}

// Activation returns the Activation of the Unit.
func (u *Unit) Activation() Activation {
	return u.act
}

// SetWeights replaces the weights and bias of the Unit. The given slice is copied.
func (u *Unit) SetWeights(weights []float64, bias float64) error {
	if len(weights) != len(u.weights) {
		return sizeError(len(u.weights), len(weights), "weights")
	}

	copy(u.weights, weights)
	u.bias = bias
	return nil
}
