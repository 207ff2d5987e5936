package logicnet

import (
	"github.com/pkg/errors"
)

// Datum is a single training sample: the inputs given to a Learner, and the output it is expected
// to produce for them.
type Datum struct {
	// Inputs must have the same length as the number of inputs of the Learner.
	Inputs []float64

	Output float64
}

// Dataset is an ordered list of Datum. Training always goes through a Dataset in order, so the
// same Dataset and the same initial weights will always give the same results.
type Dataset []Datum

// Fits indicates whether or not every Datum in the Dataset has the given number of inputs,
// allowing it to be used for training or testing a Learner with that many inputs.
func (d Dataset) Fits(inputs int) bool {
	return d.check(inputs) == nil
}

func (d Dataset) check(inputs int) error {
	for i := range d {
		if len(d[i].Inputs) != inputs {
			return errors.Wrapf(SizeMismatchError{inputs, len(d[i].Inputs), "inputs"}, "Datum %d does not fit", i)
		}
	}

	return nil
}

// A wrapper for sending back the progress of training
type Result struct {
	// The epoch that has just finished, starting from 1
	Epoch int

	// Mean squared error over the Dataset, at the end of the epoch
	Cost float64

	// The fraction of the Dataset for which the rounded output equals the expected output
	// 0 → 1
	Correct float64
}

type TrainArgs struct {
	Data Dataset

	// The number of times to go through Data. Zero is allowed, and does nothing.
	Epochs int

	// SendStatus indicates whether or not to evaluate the Learner and send a Result through Update
	// after the given epoch. SendStatus can be left nil to represent an unconditional false.
	SendStatus func(int) bool

	// Update is how status updates are returned. If SendStatus is nil, Update can also be left
	// nil.
	Update func(Result)
}

func fit(l trainee, args TrainArgs) error {
	// handle error cases and set defaults
	{
		if args.Epochs < 0 {
			return configErrorf("Number of epochs must be >= 0 (%d)", args.Epochs)
		}

		if err := args.Data.check(l.Inputs()); err != nil {
			return err
		}

		if args.SendStatus == nil {
			args.SendStatus = func(int) bool { return false }
		}

		if args.Update == nil {
			args.Update = func(Result) {}
		}
	}

	for epoch := 1; epoch <= args.Epochs; epoch++ {
		for i := range args.Data {
			if err := l.step(args.Data[i]); err != nil {
				return errors.Wrapf(err, "Training on Datum %d failed in epoch %d", i, epoch)
			}
		}

		if args.SendStatus(epoch) {
			cost, correct, err := Cost(l, args.Data)
			if err != nil {
				return errors.Wrapf(err, "Getting status after epoch %d failed", epoch)
			}

			args.Update(Result{Epoch: epoch, Cost: cost, Correct: correct})
		}
	}

	return nil
}
