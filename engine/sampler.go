package engine

// ============================================================================
// SAMPLER — Sampling distribution of the mean
// ============================================================================
// Pipeline:
//   1. Draw a population of i.i.d. base-distribution values
//   2. Resample with replacement, repetition times, sample-size values each
//   3. Record each resample's mean and SD (n-1 divisor)
//   4. Summarize the means; attach expected mean and SE for comparison
//
// All randomness comes from one source seeded with the configured seed, so
// the run is reproducible. Each resample draws fresh indices — no resample
// depends on a prior one.
// ============================================================================

import (
	"fmt"
	"log"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/statlab-org/statlab/dist"
)

// RunSampling draws a population from spec and builds the empirical sampling
// distribution of the mean.
func RunSampling(spec dist.Spec, opts ...Option) (*SamplingResult, error) {
	cfg := applyOptions(opts)
	if cfg.sampleSize < 2 {
		return nil, fmt.Errorf("sample size %d: %w", cfg.sampleSize, ErrInsufficientSample)
	}
	if cfg.populationSize < cfg.sampleSize {
		return nil, fmt.Errorf("population size %d smaller than sample size %d",
			cfg.populationSize, cfg.sampleSize)
	}
	if cfg.repetitions < 2 {
		return nil, fmt.Errorf("repetitions %d: %w", cfg.repetitions, ErrInsufficientSample)
	}

	log.Printf("statlab: sampling run family=%s population=%d sample=%d reps=%d seed=%d",
		spec.Family(), cfg.populationSize, cfg.sampleSize, cfg.repetitions, cfg.seed)

	rng := rand.New(rand.NewSource(cfg.seed))
	sampler := spec.Sampler(rng)

	population := make([]float64, cfg.populationSize)
	for i := range population {
		population[i] = sampler.Rand()
	}

	means := make([]float64, cfg.repetitions)
	sds := make([]float64, cfg.repetitions)
	buf := make([]float64, cfg.sampleSize)
	for r := range means {
		for i := range buf {
			buf[i] = population[rng.Intn(len(population))]
		}
		means[r] = stat.Mean(buf, nil)
		sds[r] = stat.StdDev(buf, nil)
	}

	popSummary, err := Summarize(population)
	if err != nil {
		return nil, fmt.Errorf("population summary: %w", err)
	}
	meanSummary, err := Summarize(means)
	if err != nil {
		return nil, fmt.Errorf("sample-means summary: %w", err)
	}
	if cfg.normalityTest {
		popSummary.Normality = AndersonDarling(population)
		meanSummary.Normality = AndersonDarling(means)
	}

	return &SamplingResult{
		Family:         string(spec.Family()),
		Params:         spec.Params(),
		PopulationSize: cfg.populationSize,
		SampleSize:     cfg.sampleSize,
		Repetitions:    cfg.repetitions,
		Seed:           cfg.seed,
		Population:     popSummary,
		MeanSummary:    meanSummary,
		ExpectedMean:   spec.Mean(),
		ExpectedSE:     spec.StdDev() / math.Sqrt(float64(cfg.sampleSize)),
		Means:          means,
		SampleSDs:      sds,
	}, nil
}
