package odds

import (
	"fmt"
	"io"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/lost-woods/handodds/src/rng"
)

// SimOptions controls a Monte Carlo run. Trials are split as evenly as
// possible across Batches.
type SimOptions struct {
	Trials  int
	Batches int
	Health  *rng.Health
}

// Estimate is the outcome of a simulated run.
type Estimate struct {
	P         float64 `json:"probability"`
	StdDev    float64 `json:"batch_std_dev"`
	StdErr    float64 `json:"std_err"`
	Successes int     `json:"successes"`
	Trials    int     `json:"trials"`
	Batches   int     `json:"batches"`
}

// Simulate estimates the same probability as Threshold by dealing hands from
// the entropy reader r. It is a cross-check for the exact engine, not a
// replacement.
func Simulate(r io.Reader, n, h int, counts []int, pred Predicate, opts SimOptions) (Estimate, error) {
	if err := validateDeck(n, h, false); err != nil {
		return Estimate{}, err
	}
	if pred == nil {
		return Estimate{}, ErrNilPredicate
	}
	if _, err := hands(n, h); err != nil {
		return Estimate{}, err
	}
	// dealing needs a deck of exactly n cards
	if err := CheckPartition(n, counts); err != nil {
		return Estimate{}, err
	}
	if opts.Trials <= 0 || opts.Batches <= 0 || opts.Batches > opts.Trials {
		return Estimate{}, ErrInvalidSimulation
	}

	cats := withOther(n, counts)
	deck := rng.NewDeck(cats)
	draw := make([]int, len(cats))

	rates := make([]float64, 0, opts.Batches)
	successes := 0
	for b := 0; b < opts.Batches; b++ {
		size := opts.Trials / opts.Batches
		if b < opts.Trials%opts.Batches {
			size++
		}

		hits := 0
		for t := 0; t < size; t++ {
			clear(draw)
			if err := rng.DrawHand(r, opts.Health, deck, h, draw); err != nil {
				return Estimate{}, fmt.Errorf("deal hand: %w", err)
			}
			if pred(draw) {
				hits++
			}
		}
		successes += hits
		rates = append(rates, float64(hits)/float64(size))
	}

	sd, err := stats.StandardDeviation(rates)
	if err != nil {
		return Estimate{}, fmt.Errorf("summarise batches: %w", err)
	}

	return Estimate{
		P:         float64(successes) / float64(opts.Trials),
		StdDev:    sd,
		StdErr:    sd / math.Sqrt(float64(opts.Batches)),
		Successes: successes,
		Trials:    opts.Trials,
		Batches:   opts.Batches,
	}, nil
}
