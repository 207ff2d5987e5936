package config

import (
	"io/fs"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/sharnoff/logicnet/gates"
)

// Environment variables read by Load
const (
	EnvGates        = "LOGICNET_GATES"
	EnvSeed         = "LOGICNET_SEED"
	EnvWorkers      = "LOGICNET_WORKERS"
	EnvEpochs       = "LOGICNET_EPOCHS"
	EnvLearningRate = "LOGICNET_LEARNING_RATE"
	EnvStatusEvery  = "LOGICNET_STATUS_EVERY"
)

// Config captures the runtime knobs for training and printing the gates.
type Config struct {
	// names of the gates to train, in the order they are printed
	Gates []string

	// Seed for the RNG of the first gate; gate i uses Seed+i. Zero means a seed should be chosen
	// by the caller.
	Seed int64

	// number of gates trained at the same time
	Workers int

	// Epochs and LearningRate replace the defaults of every gate, if non-zero.
	Epochs       int
	LearningRate float64

	// epochs between each logged training status. Zero disables status logging.
	StatusEvery int
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Gates        string
	Seed         int64
	Workers      int
	Epochs       int
	LearningRate float64
	StatusEvery  int
}

// Default returns the Config used when nothing else is given: every gate, with one worker per
// CPU.
func Default() *Config {
	return &Config{
		Gates:   gates.Names(),
		Workers: runtime.NumCPU(),
	}
}

// Load reads the .env file at envPath (if it exists) into the environment, and returns the Default
// Config updated with any LOGICNET_* variables. Variables already set in the environment take
// precedence over the file. An empty envPath skips the file.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "Loading env file %q failed", envPath)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvGates); ok {
		c.Gates = splitList(v)
	}
	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		c.Seed = seed
	}
	if v, ok := get(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvWorkers)
		}
		c.Workers = n
	}
	if v, ok := get(EnvEpochs); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvEpochs)
		}
		c.Epochs = n
	}
	if v, ok := get(EnvLearningRate); ok {
		lr, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvLearningRate)
		}
		c.LearningRate = lr
	}
	if v, ok := get(EnvStatusEvery); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvStatusEvery)
		}
		c.StatusEvery = n
	}

	return nil
}

func splitList(s string) []string {
	var list []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			list = append(list, part)
		}
	}

	return list
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Gates != "" {
		c.Gates = splitList(o.Gates)
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.StatusEvery > 0 {
		c.StatusEvery = o.StatusEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Gates) == 0 {
		return errors.New("at least one gate must be given")
	}

	seen := make(map[string]bool, len(c.Gates))
	for _, name := range c.Gates {
		if _, err := gates.Lookup(name); err != nil {
			return err
		} else if seen[name] {
			return errors.Errorf("gate %q given more than once", name)
		}
		seen[name] = true
	}

	if c.Workers <= 0 {
		return errors.Errorf("workers must be > 0 (got %d)", c.Workers)
	}
	if c.Epochs < 0 {
		return errors.Errorf("epochs must be >= 0 (got %d)", c.Epochs)
	}
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate < 0 {
		return errors.Errorf("learning rate must be >= 0 (got %v)", c.LearningRate)
	}
	if c.StatusEvery < 0 {
		return errors.Errorf("status interval must be >= 0 (got %d)", c.StatusEvery)
	}
	return nil
}

// Specs returns the Spec of each configured gate, in order, with the overrides of c applied.
func (c *Config) Specs() ([]gates.Spec, error) {
	specs := make([]gates.Spec, len(c.Gates))
	for i, name := range c.Gates {
		s, err := gates.Lookup(name)
		if err != nil {
			return nil, err
		}

		if c.Epochs > 0 {
			s.Epochs = c.Epochs
		}
		if c.LearningRate > 0 {
			s.LearningRate = c.LearningRate
		}
		s.StatusEvery = c.StatusEvery

		specs[i] = s
	}

	return specs, nil
}
