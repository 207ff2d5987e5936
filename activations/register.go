package activations

import (
	"github.com/pkg/errors"
	ln "github.com/sharnoff/logicnet"
	"sort"
)

var registry map[string]func() ln.Activation

func init() {
	registry = make(map[string]func() ln.Activation)

	list := []func() ln.Activation{
		func() ln.Activation { return Logistic() },
	}

	for _, f := range list {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}

// Register adds an Activation to the set that can be retrieved by Get, under the name given by its
// TypeString. Names must be unique.
func Register(f func() ln.Activation) error {
	if f == nil {
		return errors.WithStack(ln.NilArgError{Name: "Constructor"})
	}

	a := f()
	if a == nil {
		return errors.WithStack(ln.ErrRegisterNilReturn)
	}

	name := a.TypeString()
	if _, ok := registry[name]; ok {
		return errors.Errorf("Activation %q is already registered", name)
	}

	registry[name] = f
	return nil
}

// Get returns a new instance of the Activation registered under the given name.
func Get(name string) (ln.Activation, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("Activation %q is not registered (available: %v)", name, Names())
	}

	return f(), nil
}

// Names returns the names of every registered Activation, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}
