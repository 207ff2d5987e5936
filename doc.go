// Package logicnet provides a small framework for training single neurons and two-layer
// feed-forward networks with gradient descent. It is built to learn boolean functions like XOR, but
// any function of a few real inputs to a single output in (0, 1) can be used.
//
// Units
//
// The basic building block is the Unit: a weighted sum of its inputs plus a bias, passed through
// an Activation. Units are created with an explicit source of random initial weights:
//
//		rng := initializers.Seeded(1)
//		u, err := logicnet.NewUnit(2, activations.Logistic(), 0.1, rng)
//		if err != nil {
//			return err
//		}
//
// For brevity, the subpackages activations and initializers are used as-is; logicnet itself
// contains no implementations of either. The default Activation, activations.Logistic(), is the
// only one provided. The Activation interface describes a peculiarity of how derivatives are
// taken: they are given the OUTPUT of the function, not its input.
//
// Networks
//
// A Network is a single hidden layer of Units, all feeding into one output Unit:
//
//		net, err := logicnet.NewNetwork(2, 2, activations.Logistic(), 0.1, rng)
//
// By default, backpropagation adjusts the output Unit before computing the gradients of the hidden
// Units, so that the hidden Units see the already-adjusted output weights. The textbook ordering
// can be selected with WithHiddenGradients(PreUpdateWeights).
//
// Training
//
// Both Units and Networks are Learners. Training is done with a Dataset, an ordered list of Datum,
// for a number of epochs:
//
//		data := logicnet.Dataset{
//			{Inputs: []float64{0, 0}, Output: 0},
//			{Inputs: []float64{0, 1}, Output: 1},
//			{Inputs: []float64{1, 0}, Output: 1},
//			{Inputs: []float64{1, 1}, Output: 0},
//		}
//
//		if err := net.Train(data, 50000); err != nil {
//			return err
//		}
//
// Every Datum is a separate update, in the order given. Progress can be reported with Fit and
// TrainArgs, which send back a Result every so often.
//
// Errors
//
// Inputs of the wrong length are rejected with an error satisfying
// errors.Is(err, ErrInvalidInputShape). Impossible configurations (no inputs, a learning rate that
// is not positive, no hidden Units) are rejected at construction with an error satisfying
// errors.Is(err, ErrInvalidConfiguration).
package logicnet
