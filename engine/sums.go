package engine

// ============================================================================
// SUMS — Variable-Sum Aggregator
// ============================================================================
// For each k in 1..K, draws a fresh repetitions×k block of i.i.d. base
// values and sums each row. A SumSeries is never derived from a smaller one;
// reusing draws across k would autocorrelate the series.
// ============================================================================

import (
	"fmt"
	"log"
	"math"

	"golang.org/x/exp/rand"

	"github.com/statlab-org/statlab/dist"
)

// Convergence thresholds on the normality-deviation metrics.
const (
	skewnessBound = 0.5
	kurtosisBound = 0.5
	combinedBound = 1.0
)

// RunSums builds one SumSeries per variable count k = 1..K and reports where
// each deviation metric first dropped below its threshold.
func RunSums(spec dist.Spec, opts ...Option) (*SumResult, error) {
	cfg := applyOptions(opts)
	if cfg.maxVariables < 1 {
		return nil, fmt.Errorf("max variables %d: need at least 1", cfg.maxVariables)
	}
	if cfg.repetitions < 2 {
		return nil, fmt.Errorf("repetitions %d: %w", cfg.repetitions, ErrInsufficientSample)
	}

	log.Printf("statlab: sum run family=%s maxVars=%d reps=%d seed=%d",
		spec.Family(), cfg.maxVariables, cfg.repetitions, cfg.seed)

	rng := rand.New(rand.NewSource(cfg.seed))
	sampler := spec.Sampler(rng)

	res := &SumResult{
		Family:       string(spec.Family()),
		Params:       spec.Params(),
		MaxVariables: cfg.maxVariables,
		Repetitions:  cfg.repetitions,
		Seed:         cfg.seed,
		Series:       make([]SumSummary, 0, cfg.maxVariables),
	}

	for k := 1; k <= cfg.maxVariables; k++ {
		sums := make([]float64, cfg.repetitions)
		for r := range sums {
			var total float64
			for j := 0; j < k; j++ {
				total += sampler.Rand()
			}
			sums[r] = total
		}

		summary, err := Summarize(sums)
		if err != nil {
			return nil, fmt.Errorf("sum series k=%d: %w", k, err)
		}
		if cfg.normalityTest {
			summary.Normality = AndersonDarling(sums)
		}

		res.Series = append(res.Series, SumSummary{
			K:            k,
			Summary:      summary,
			ExpectedMean: float64(k) * spec.Mean(),
			ExpectedSD:   math.Sqrt(float64(k)) * spec.StdDev(),
			Values:       sums,
		})
	}

	res.Convergence = convergence(res.Series)
	return res, nil
}

// convergence scans the series in k order for the first crossings.
// A Threshold stays Reached=false when no k in range qualifies.
func convergence(series []SumSummary) Convergence {
	var c Convergence
	for _, s := range series {
		skew := math.Abs(s.Summary.Skewness)
		kurt := math.Abs(s.Summary.Kurtosis - 3)
		if !c.Skewness.Reached && skew < skewnessBound {
			c.Skewness = Threshold{K: s.K, Reached: true}
		}
		if !c.Kurtosis.Reached && kurt < kurtosisBound {
			c.Kurtosis = Threshold{K: s.K, Reached: true}
		}
		if !c.Combined.Reached && skew+kurt < combinedBound {
			c.Combined = Threshold{K: s.K, Reached: true}
		}
	}
	return c
}
