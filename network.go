package logicnet

import (
	"github.com/pkg/errors"
)

// HiddenGradients determines which weights of the output Unit are used when backpropagating into
// the hidden Units of a Network.
type HiddenGradients int8

const (
	// PostUpdateWeights adjusts the output Unit first, and then computes the gradients of the hidden
	// Units from its already-adjusted weights. This is the default.
	PostUpdateWeights HiddenGradients = iota

	// PreUpdateWeights computes the gradients of the hidden Units from the weights of the output
	// Unit as they were during the forward pass, which is the textbook form of backpropagation.
	PreUpdateWeights
)

func (h HiddenGradients) String() string {
	switch h {
	case PostUpdateWeights:
		return "post-update"
	case PreUpdateWeights:
		return "pre-update"
	default:
		return "unknown"
	}
}

// NetworkOption configures optional behavior of a Network, at construction
type NetworkOption func(*Network)

// WithHiddenGradients sets the weight ordering used during backpropagation. See HiddenGradients.
func WithHiddenGradients(h HiddenGradients) NetworkOption {
	return func(net *Network) {
		net.order = h
	}
}

// Network is a feed-forward network with a single hidden layer of Units and a single output Unit.
// Every Unit of the Network uses the same Activation and learning rate.
//
// Like Unit, a Network is not safe for concurrent use.
type Network struct {
	hidden []*Unit
	output *Unit

	// used for the derivatives during backpropagation
	act Activation

	order HiddenGradients

	// buffers reused by every forward and backward pass. hiddenOuts has one value per hidden Unit,
	// as does outWeights -- only used for PreUpdateWeights
	hiddenOuts []float64
	outWeights []float64
}

// NewNetwork creates a Network that takes the given number of inputs, with the given number of
// hidden Units. Each hidden Unit has that many inputs; the output Unit has one input per hidden
// Unit. Weights are drawn from rng: each hidden Unit in order, then the output Unit.
//
// If any of the arguments are invalid, the returned error will satisfy
// errors.Is(err, ErrInvalidConfiguration).
func NewNetwork(inputs, hidden int, act Activation, learningRate float64, rng RNG, opts ...NetworkOption) (*Network, error) {
	if hidden < 1 {
		return nil, configErrorf("Network must have at least one hidden Unit (%d)", hidden)
	}

	net := &Network{
		hidden:     make([]*Unit, hidden),
		act:        act,
		hiddenOuts: make([]float64, hidden),
		outWeights: make([]float64, hidden),
	}

	for _, opt := range opts {
		opt(net)
	}

	if net.order != PostUpdateWeights && net.order != PreUpdateWeights {
		return nil, configErrorf("Hidden gradient ordering is unknown (%d)", net.order)
	}

	var err error
	for i := range net.hidden {
		if net.hidden[i], err = NewUnit(inputs, act, learningRate, rng); err != nil {
			return nil, errors.Wrapf(err, "Creating hidden Unit %d failed", i)
		}
	}

	if net.output, err = NewUnit(hidden, act, learningRate, rng); err != nil {
		return nil, errors.Wrapf(err, "Creating output Unit failed")
	}

	return net, nil
}

// Activate feeds the inputs through the hidden Units and then the output Unit, returning the
// output of the Network. If the number of inputs is wrong, a SizeMismatchError is returned and
// nothing is computed.
func (net *Network) Activate(inputs []float64) (float64, error) {
	if err := net.forward(inputs); err != nil {
		return 0, err
	}

	return net.output.Output(), nil
}

func (net *Network) forward(inputs []float64) error {
	if len(inputs) != net.Inputs() {
		return sizeError(net.Inputs(), len(inputs), "inputs")
	}

	var err error
	for i, u := range net.hidden {
		if net.hiddenOuts[i], err = u.Activate(inputs); err != nil {
			return errors.Wrapf(err, "Evaluating hidden Unit %d failed", i)
		}
	}

	if _, err = net.output.Activate(net.hiddenOuts); err != nil {
		return errors.Wrapf(err, "Evaluating output Unit failed")
	}

	return nil
}

// step does a forward pass, then adjusts the output Unit, then each hidden Unit
func (net *Network) step(d Datum) error {
	if err := net.forward(d.Inputs); err != nil {
		return err
	}

	adjust := Adjustment(d.Output, net.output.Output(), net.act)

	// with PostUpdateWeights, this aliases the output Unit's weights, so the loop below sees them
	// after the output has been adjusted
	weights := net.output.weights
	if net.order == PreUpdateWeights {
		copy(net.outWeights, weights)
		weights = net.outWeights
	}

	if err := net.output.Adjust(net.hiddenOuts, adjust); err != nil {
		return errors.Wrapf(err, "Adjusting output Unit failed")
	}

	for i, u := range net.hidden {
		gradient := net.act.Deriv(u.Output()) * weights[i] * adjust
		if err := u.Adjust(d.Inputs, gradient); err != nil {
			return errors.Wrapf(err, "Adjusting hidden Unit %d failed", i)
		}
	}

	return nil
}

// Train trains the Network on each Datum of the Dataset in order, repeated for the given number of
// epochs. Each Datum is a separate update; there is no batching. The whole Dataset is checked
// before any training is done.
func (net *Network) Train(data Dataset, epochs int) error {
	return fit(net, TrainArgs{Data: data, Epochs: epochs})
}

// Fit is Train, with the status reporting given by args.
func (net *Network) Fit(args TrainArgs) error {
	return fit(net, args)
}

// Inputs returns the number of inputs the Network expects.
func (net *Network) Inputs() int {
	return net.hidden[0].Inputs()
}

// Hidden returns the number of hidden Units in the Network.
func (net *Network) Hidden() int {
	return len(net.hidden)
}

// HiddenUnit returns the hidden Unit at the given index. It will panic if the index is out of
// range.
//
// The returned Unit belongs to the Network; adjusting it changes the Network.
func (net *Network) HiddenUnit(i int) *Unit {
	return net.hidden[i]
}

// OutputUnit returns the output Unit of the Network. As with HiddenUnit, it is not a copy.
func (net *Network) OutputUnit() *Unit {
	return net.output
}

// HiddenGradients returns the weight ordering used during backpropagation.
func (net *Network) HiddenGradients() HiddenGradients {
	return net.order
}
