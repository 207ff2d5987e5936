package logicnet

import (
	"fmt"
	"github.com/pkg/errors"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and are meant to be compared with
// errors.Is, as most of the errors returned by this package have been wrapped.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	// ErrInvalidInputShape is matched by every error caused by a sequence of inputs whose length
	// does not equal the number of inputs of the Unit or Network it was given to.
	ErrInvalidInputShape = Error{"Input has the wrong shape"}

	// ErrInvalidConfiguration is matched by every error caused by constructing (or training) a
	// Unit or Network with impossible parameters.
	ErrInvalidConfiguration = Error{"Configuration is invalid"}

	ErrRegisterNilReturn = Error{"Function return is nil"}
)

// SizeMismatchError documents a sequence of values that does not have the length it is required
// to have. It always satisfies errors.Is(err, ErrInvalidInputShape).
type SizeMismatchError struct {
	Expected, Got int

	// what the sequence was, for printing
	Name string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size of %s does not match (expected %d, got %d)", err.Name, err.Expected, err.Got)
}

func (err SizeMismatchError) Is(target error) bool {
	return target == ErrInvalidInputShape
}

// ConfigError documents a parameter that makes construction impossible. It always satisfies
// errors.Is(err, ErrInvalidConfiguration).
type ConfigError struct{ string }

func (err ConfigError) Error() string {
	return err.string
}

func (err ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
// Like ConfigError, it satisfies errors.Is(err, ErrInvalidConfiguration).
type NilArgError struct{ Name string }

func (err NilArgError) Error() string {
	return err.Name + " is nil"
}

func (err NilArgError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func configErrorf(format string, args ...interface{}) error {
	return errors.WithStack(ConfigError{fmt.Sprintf(format, args...)})
}

func sizeError(expected, got int, name string) error {
	return errors.WithStack(SizeMismatchError{expected, got, name})
}
