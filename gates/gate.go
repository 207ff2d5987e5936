package gates

import (
	"github.com/pkg/errors"
	ln "github.com/sharnoff/logicnet"
)

// Gate is a trained logic gate. Its Activate method gives 0 or 1.
//
// A Gate is not safe for concurrent use, as its model caches its outputs.
type Gate struct {
	spec  Spec
	model model
}

// Name returns the short name of the gate, e.g. "and".
func (g *Gate) Name() string {
	return g.spec.Name
}

// Title returns the printable name of the gate, e.g. "AND".
func (g *Gate) Title() string {
	return g.spec.Title
}

// Spec returns the Spec the gate was built from.
func (g *Gate) Spec() Spec {
	return g.spec
}

// Model returns the trained Learner behind the gate: a *logicnet.Unit or a *logicnet.Network.
func (g *Gate) Model() ln.Learner {
	return g.model
}

// Activate returns the output of the gate for the given inputs, rounded to 0 or 1.
func (g *Gate) Activate(inputs []float64) (int, error) {
	out, err := g.model.Activate(inputs)
	if err != nil {
		return 0, errors.Wrapf(err, "Activating gate %q failed", g.spec.Name)
	}

	return int(ln.Round(out)), nil
}

// Row is a single line of a truth table
type Row struct {
	Inputs []float64
	Output int
}

// Table returns the output of the gate for each line of its truth table, in order.
func (g *Gate) Table() ([]Row, error) {
	data := g.spec.Data()
	rows := make([]Row, len(data))
	for i := range data {
		out, err := g.Activate(data[i].Inputs)
		if err != nil {
			return nil, err
		}

		rows[i] = Row{Inputs: data[i].Inputs, Output: out}
	}

	return rows, nil
}

// Correct returns whether or not the gate gives the expected output for every line of its truth
// table.
func (g *Gate) Correct() (bool, error) {
	_, correct, err := ln.Cost(g.model, g.spec.Data())
	if err != nil {
		return false, errors.Wrapf(err, "Checking gate %q failed", g.spec.Name)
	}

	return correct == 1, nil
}
