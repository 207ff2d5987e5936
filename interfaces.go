package logicnet

// Activation is the nonlinearity applied to the weighted sum of a Unit.
//
// Deriv is NOT given the same value as Value. It is given the output of Value, so that for any x:
//
//		a.Deriv(a.Value(x)) == d/dx a.Value(x)
//
// This only works for functions whose derivative can be written in terms of their own output, like
// the logistic function (y * (1 - y)) or tanh (1 - y²). A function without that property (ReLU, for
// example) cannot be given to a Unit through this interface.
type Activation interface {
	// TypeString returns the name the Activation is registered under, e.g. "logistic"
	TypeString() string

	// the value of the function at the given weighted sum
	Value(float64) float64
	// Value(x float64) float64

	// the derivative of the function, at the point where it produced the given output
	Deriv(float64) float64
	// Deriv(y float64) float64
}

// RNG is the source of the initial weights and biases of a Unit. Gen is called once per weight, in
// order, and then once for the bias.
type RNG interface {
	Gen() float64
}

// Learner is anything that can be trained on a Dataset and then activated. Both *Unit and *Network
// are Learners.
type Learner interface {
	// gives the output for the given inputs, which must have the configured length
	Activate([]float64) (float64, error)
	// Activate(inputs []float64) (float64, error)

	// trains on each Datum of the Dataset in order, for the given number of epochs
	Train(Dataset, int) error
	// Train(data Dataset, epochs int) error
}

// trainee is implemented by the Learners of this package; it is what fit operates on.
type trainee interface {
	Learner

	Inputs() int

	// a single forward and backward pass on one Datum, which has already been checked
	step(Datum) error
}
