// Package gates provides logic gates that are learned, rather than computed: each gate is a
// logicnet Unit or Network trained on the truth table of its function, with outputs rounded to 0
// or 1.
//
// Gates are built explicitly, from an RNG that the caller controls:
//
//		g, err := gates.Xor(initializers.Seeded(1))
//		if err != nil {
//			return err
//		}
//
//		out, err := g.Activate([]float64{1, 0}) // 1, most of the time
//
// XOR is not linearly separable, so it needs a hidden layer; AND and OR use a single Unit. Like any
// network trained from random weights, a gate may fail to learn its function for some starting
// weights. Check with Gate.Correct.
package gates

import (
	"github.com/pkg/errors"
	ln "github.com/sharnoff/logicnet"
	"github.com/sharnoff/logicnet/activations"
)

// Spec describes how to build a Gate: its truth table, the shape of its model, and how to train it.
type Spec struct {
	// short name used to select the gate, e.g. "xor"
	Name string

	// name for printing, e.g. "XOR"
	Title string

	Data func() ln.Dataset

	// Hidden is the number of hidden Units. If zero, the gate is a single Unit.
	Hidden int

	// name of the Activation, as registered in package activations
	Activation string

	Epochs       int
	LearningRate float64

	// StatusEvery is the number of epochs between each Result sent to the update function given to
	// Build. If zero, no Results are sent.
	StatusEvery int
}

const defaultLearningRate float64 = 0.1

var specs = []Spec{
	{Name: "and", Title: "AND", Data: AndData, Activation: "logistic", Epochs: 1000, LearningRate: defaultLearningRate},
	{Name: "or", Title: "OR", Data: OrData, Activation: "logistic", Epochs: 1000, LearningRate: defaultLearningRate},
	{Name: "xor", Title: "XOR", Data: XorData, Hidden: 2, Activation: "logistic", Epochs: 50000, LearningRate: defaultLearningRate},
}

// Names returns the names of every gate that can be given to Lookup, in the order they are
// conventionally shown.
func Names() []string {
	names := make([]string, len(specs))
	for i := range specs {
		names[i] = specs[i].Name
	}

	return names
}

// Lookup returns the default Spec for the gate with the given name.
func Lookup(name string) (Spec, error) {
	for _, s := range specs {
		if s.Name == name {
			return s, nil
		}
	}

	return Spec{}, errors.Errorf("Gate %q does not exist (available: %v)", name, Names())
}

// model is what a Gate holds: *logicnet.Unit or *logicnet.Network
type model interface {
	ln.Learner
	Fit(ln.TrainArgs) error
}

// Build creates the model described by the Spec and trains it, returning the finished Gate. If
// update is not nil, it is given a Result every s.StatusEvery epochs.
func (s Spec) Build(rng ln.RNG, update func(ln.Result)) (*Gate, error) {
	if s.Data == nil {
		return nil, errors.Errorf("Gate %q has no data", s.Name)
	}

	act, err := activations.Get(s.Activation)
	if err != nil {
		return nil, errors.Wrapf(err, "Building gate %q failed", s.Name)
	}

	var m model
	if s.Hidden == 0 {
		m, err = ln.NewUnit(2, act, s.LearningRate, rng)
	} else {
		m, err = ln.NewNetwork(2, s.Hidden, act, s.LearningRate, rng)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "Building gate %q failed", s.Name)
	}

	args := ln.TrainArgs{
		Data:       s.Data(),
		Epochs:     s.Epochs,
		SendStatus: ln.Every(s.StatusEvery),
		Update:     update,
	}

	if err = m.Fit(args); err != nil {
		return nil, errors.Wrapf(err, "Training gate %q failed", s.Name)
	}

	return &Gate{spec: s, model: m}, nil
}

func build(name string, rng ln.RNG) (*Gate, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return s.Build(rng, nil)
}

// And returns a trained AND gate: a single Unit, trained for 1000 epochs with a learning rate of
// 0.1.
func And(rng ln.RNG) (*Gate, error) {
	return build("and", rng)
}

// Or returns a trained OR gate, built in the same way as And.
func Or(rng ln.RNG) (*Gate, error) {
	return build("or", rng)
}

// Xor returns a trained XOR gate: a Network with two hidden Units, trained for 50000 epochs with a
// learning rate of 0.1.
func Xor(rng ln.RNG) (*Gate, error) {
	return build("xor", rng)
}
