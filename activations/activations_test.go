package activations

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"

	ln "github.com/sharnoff/logicnet"
)

func TestLogisticValue(t *testing.T) {
	a := Logistic()
	cases := []struct{ x, y float64 }{
		{0, 0.5},
		{math.Log(3), 0.75},
		{-math.Log(3), 0.25},
	}

	for _, c := range cases {
		if y := a.Value(c.x); math.Abs(y-c.y) > 1e-12 {
			t.Fatalf("Value(%v) = %v, expected %v", c.x, y, c.y)
		}
	}

	if y := a.Value(1000); y != 1 {
		t.Fatalf("Value(1000) = %v", y)
	}
	if y := a.Value(-1000); y != 0 {
		t.Fatalf("Value(-1000) = %v", y)
	}
}

// Deriv is given outputs, not sums; checks it against a numerical derivative of Value
func TestLogisticDeriv(t *testing.T) {
	a := Logistic()
	for _, x := range []float64{-4, -1.5, -0.25, 0, 0.3, 1, 2.5, 5} {
		numeric := fd.Derivative(a.Value, x, &fd.Settings{Formula: fd.Central})
		if got := a.Deriv(a.Value(x)); math.Abs(got-numeric) > 1e-6 {
			t.Fatalf("Deriv at x=%v: got %v, numerical %v", x, got, numeric)
		}
	}
}

func TestGet(t *testing.T) {
	a, err := Get("logistic")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.TypeString() != "logistic" {
		t.Fatalf("got %q", a.TypeString())
	}

	if _, err := Get("relu"); err == nil {
		t.Fatalf("expected error for unregistered Activation")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	found := false
	for i, n := range names {
		if n == "logistic" {
			found = true
		}
		if i > 0 && names[i-1] >= n {
			t.Fatalf("names are not sorted: %v", names)
		}
	}
	if !found {
		t.Fatalf("logistic not in %v", names)
	}
}

func TestRegisterRejects(t *testing.T) {
	if err := Register(nil); !errors.Is(err, ln.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}

	if err := Register(func() ln.Activation { return nil }); !errors.Is(err, ln.ErrRegisterNilReturn) {
		t.Fatalf("expected ErrRegisterNilReturn, got %v", err)
	}

	if err := Register(func() ln.Activation { return Logistic() }); err == nil {
		t.Fatalf("expected error registering logistic twice")
	}
}
