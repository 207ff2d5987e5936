package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"

	ln "github.com/sharnoff/logicnet"
	"github.com/sharnoff/logicnet/gates"
	"github.com/sharnoff/logicnet/initializers"
	"github.com/sharnoff/logicnet/internal/config"
)

func main() {
	envPath := flag.String("env", ".env", "Path to an optional .env file")
	gateList := flag.String("gates", "", "Comma separated gates to train ("+strings.Join(gates.Names(), ",")+")")
	seed := flag.Int64("seed", 0, "PRNG seed (0 picks one from the clock)")
	workers := flag.Int("workers", 0, "Number of gates trained at once")
	epochs := flag.Int("epochs", 0, "Override the number of training epochs of every gate")
	learningRate := flag.Float64("lr", 0, "Override the learning rate of every gate")
	statusEvery := flag.Int("status", 0, "Log the training cost every N epochs")

	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cfg.ApplyOverrides(config.Overrides{
		Gates:        *gateList,
		Seed:         *seed,
		Workers:      *workers,
		Epochs:       *epochs,
		LearningRate: *learningRate,
		StatusEvery:  *statusEvery,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Printf("seed=%d workers=%d gates=%s", cfg.Seed, cfg.Workers, strings.Join(cfg.Gates, ","))

	trained, err := train(cfg)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	for i, g := range trained {
		if i != 0 {
			if _, err := fmt.Fprintln(os.Stdout); err != nil {
				log.Fatalf("printing output failed: %v", err)
			}
		}

		if err := writeTable(os.Stdout, g); err != nil {
			log.Fatalf("printing %s gate failed: %v", g.Title(), err)
		}
	}
}

// train builds every configured gate. Each gate has its own RNG and model, so they are trained
// concurrently; the returned gates are in the configured order.
func train(cfg *config.Config) ([]*gates.Gate, error) {
	specs, err := cfg.Specs()
	if err != nil {
		return nil, err
	}

	trained := make([]*gates.Gate, len(specs))
	p := pool.New().WithErrors().WithMaxGoroutines(cfg.Workers)
	for i, spec := range specs {
		i, spec := i, spec
		p.Go(func() error {
			rng := initializers.Seeded(cfg.Seed + int64(i))

			start := time.Now()
			g, err := spec.Build(rng, func(r ln.Result) {
				log.Printf("gate=%s epoch=%d cost=%.6f correct=%.2f", spec.Name, r.Epoch, r.Cost, r.Correct)
			})
			if err != nil {
				return errors.Wrapf(err, "gate %s", spec.Name)
			}

			correct, err := g.Correct()
			if err != nil {
				return err
			}
			if !correct {
				log.Printf("gate=%s did not learn its truth table; try another seed", spec.Name)
			}

			log.Printf("gate=%s epochs=%d lr=%v elapsed=%s", spec.Name, spec.Epochs, spec.LearningRate, time.Since(start))
			trained[i] = g
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return trained, nil
}
