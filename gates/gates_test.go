package gates

import (
	"testing"

	ln "github.com/sharnoff/logicnet"
	"github.com/sharnoff/logicnet/initializers"
)

// starting weights for the XOR Network that are known to converge
var xorInit = []float64{0.5, -0.5, 0.25, -0.75, 0.75, 0.125, 0.625, -0.375, 0.875}

func checkGate(t *testing.T, g *Gate, want []int) {
	t.Helper()
	rows, err := g.Table()
	if err != nil {
		t.Fatalf("%s: Table: %v", g.Name(), err)
	}

	for i, r := range rows {
		if r.Output != want[i] {
			t.Fatalf("%s: %v gave %d, expected %d", g.Name(), r.Inputs, r.Output, want[i])
		}
	}

	if ok, err := g.Correct(); err != nil || !ok {
		t.Fatalf("%s: Correct() = %v, %v", g.Name(), ok, err)
	}
}

func TestData(t *testing.T) {
	cases := []struct {
		data ln.Dataset
		want []float64
	}{
		{AndData(), []float64{0, 0, 0, 1}},
		{OrData(), []float64{0, 1, 1, 1}},
		{XorData(), []float64{0, 1, 1, 0}},
	}

	for _, c := range cases {
		for i, d := range c.data {
			if d.Inputs[0] != pairs[i][0] || d.Inputs[1] != pairs[i][1] || d.Output != c.want[i] {
				t.Fatalf("row %d is %v", i, d)
			}
		}
	}

	// each call gives a separate Dataset
	a, b := AndData(), AndData()
	a[0].Inputs[0] = 5
	if b[0].Inputs[0] != 0 {
		t.Fatalf("Datasets share inputs")
	}
}

func TestAndOr(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		and, err := And(initializers.Seeded(seed))
		if err != nil {
			t.Fatalf("And: %v", err)
		}
		checkGate(t, and, []int{0, 0, 0, 1})

		or, err := Or(initializers.Seeded(seed))
		if err != nil {
			t.Fatalf("Or: %v", err)
		}
		checkGate(t, or, []int{0, 1, 1, 1})

		if _, ok := and.Model().(*ln.Unit); !ok {
			t.Fatalf("expected AND to be a single Unit, got %T", and.Model())
		}
	}
}

func TestXor(t *testing.T) {
	g, err := Xor(initializers.Sequence(xorInit...))
	if err != nil {
		t.Fatalf("Xor: %v", err)
	}
	checkGate(t, g, []int{0, 1, 1, 0})

	net, ok := g.Model().(*ln.Network)
	if !ok {
		t.Fatalf("expected XOR to be a Network, got %T", g.Model())
	}
	if net.Hidden() != 2 {
		t.Fatalf("expected 2 hidden Units, got %d", net.Hidden())
	}
	if g.Title() != "XOR" {
		t.Fatalf("unexpected title %q", g.Title())
	}

	def, err := Lookup("xor")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if s := g.Spec(); s.Epochs != def.Epochs || s.LearningRate != def.LearningRate || s.Hidden != def.Hidden {
		t.Fatalf("gate built from %+v, expected the defaults %+v", s, def)
	}
}

func TestActivateRejectsWrongShape(t *testing.T) {
	g, err := And(initializers.Seeded(1))
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	if _, err := g.Activate([]float64{1}); err == nil {
		t.Fatalf("expected error for a single input")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if s.Name != name {
			t.Fatalf("Lookup(%q) gave %q", name, s.Name)
		}
	}

	if _, err := Lookup("nand"); err == nil {
		t.Fatalf("expected error for unknown gate")
	}
}

func TestBuildSendsStatus(t *testing.T) {
	s, err := Lookup("or")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	s.StatusEvery = 250

	var epochs []int
	_, err = s.Build(initializers.Seeded(1), func(r ln.Result) { epochs = append(epochs, r.Epoch) })
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(epochs) != 4 || epochs[0] != 250 || epochs[3] != 1000 {
		t.Fatalf("unexpected status epochs %v", epochs)
	}
}

func TestBuildRejectsBadSpec(t *testing.T) {
	s, _ := Lookup("and")

	bad := s
	bad.Activation = "step"
	if _, err := bad.Build(initializers.Seeded(1), nil); err == nil {
		t.Fatalf("expected error for unknown Activation")
	}

	bad = s
	bad.LearningRate = 0
	if _, err := bad.Build(initializers.Seeded(1), nil); err == nil {
		t.Fatalf("expected error for zero learning rate")
	}

	bad = s
	bad.Data = nil
	if _, err := bad.Build(initializers.Seeded(1), nil); err == nil {
		t.Fatalf("expected error for missing Data")
	}
}
