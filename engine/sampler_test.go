package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/statlab-org/statlab/dist"
)

// ============================================================================
// SAMPLER TESTS
// ============================================================================
// The central limit property is checked numerically: for an exponential
// population with rate 0.5, sample size 30, the sample means should center
// on 2.0 with standard error near (1/0.5)/sqrt(30) ≈ 0.365.
// ============================================================================

func TestRunSamplingShape(t *testing.T) {
	spec := dist.New("exponential", map[string]float64{"rate": 0.5})

	res, err := RunSampling(spec,
		WithPopulationSize(5000),
		WithSampleSize(25),
		WithRepetitions(400),
		WithSeed(9),
	)
	if err != nil {
		t.Fatalf("RunSampling: %v", err)
	}

	if len(res.Means) != 400 || len(res.SampleSDs) != 400 {
		t.Errorf("got %d means, %d SDs, want 400 each", len(res.Means), len(res.SampleSDs))
	}
	if res.Population.N != 5000 {
		t.Errorf("population N = %d, want 5000", res.Population.N)
	}
	if res.MeanSummary.N != 400 {
		t.Errorf("mean summary N = %d, want 400", res.MeanSummary.N)
	}
	if res.Family != "exponential" || res.Params["rate"] != 0.5 {
		t.Errorf("spec echo wrong: family=%s params=%v", res.Family, res.Params)
	}
}

func TestRunSamplingCentralLimit(t *testing.T) {
	spec := dist.New("exponential", map[string]float64{"rate": 0.5})

	res, err := RunSampling(spec,
		WithPopulationSize(10000),
		WithSampleSize(30),
		WithRepetitions(10000),
		WithSeed(123),
	)
	if err != nil {
		t.Fatalf("RunSampling: %v", err)
	}

	if math.Abs(res.ExpectedMean-2.0) > 1e-12 {
		t.Errorf("expected mean = %g, want 2.0", res.ExpectedMean)
	}
	if want := 2.0 / math.Sqrt(30); math.Abs(res.ExpectedSE-want) > 1e-12 {
		t.Errorf("expected SE = %g, want %g", res.ExpectedSE, want)
	}

	// Observed values track theory within sampling tolerance.
	if math.Abs(res.MeanSummary.Mean-2.0) > 0.1 {
		t.Errorf("mean of sample means = %g, want ≈ 2.0", res.MeanSummary.Mean)
	}
	if math.Abs(res.MeanSummary.StdDev-0.365) > 0.05 {
		t.Errorf("SE of sample means = %g, want ≈ 0.365", res.MeanSummary.StdDev)
	}

	// The means are far less skewed than the exponential population.
	if math.Abs(res.MeanSummary.Skewness) >= math.Abs(res.Population.Skewness) {
		t.Errorf("means skewness %g not below population skewness %g",
			res.MeanSummary.Skewness, res.Population.Skewness)
	}
}

func TestRunSamplingDeterministic(t *testing.T) {
	spec := dist.New("exponential", map[string]float64{"rate": 0.5})
	opts := []Option{
		WithPopulationSize(2000),
		WithSampleSize(30),
		WithRepetitions(500),
		WithSeed(123),
	}

	a, err := RunSampling(spec, opts...)
	if err != nil {
		t.Fatalf("RunSampling: %v", err)
	}
	b, err := RunSampling(spec, opts...)
	if err != nil {
		t.Fatalf("RunSampling: %v", err)
	}

	for i := range a.Means {
		if a.Means[i] != b.Means[i] {
			t.Fatalf("means diverge at repetition %d: %g vs %g", i, a.Means[i], b.Means[i])
		}
	}
	if a.Population.Mean != b.Population.Mean {
		t.Error("population summaries differ across identical seeds")
	}
}

func TestRunSamplingRejectsBadConfig(t *testing.T) {
	spec := dist.New("normal", nil)

	if _, err := RunSampling(spec, WithSampleSize(1)); !errors.Is(err, ErrInsufficientSample) {
		t.Errorf("sample size 1: err = %v, want ErrInsufficientSample", err)
	}
	if _, err := RunSampling(spec, WithRepetitions(1)); !errors.Is(err, ErrInsufficientSample) {
		t.Errorf("1 repetition: err = %v, want ErrInsufficientSample", err)
	}
	if _, err := RunSampling(spec, WithPopulationSize(10), WithSampleSize(30)); err == nil {
		t.Error("population smaller than sample accepted")
	}
}
