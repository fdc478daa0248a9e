package engine

import (
	"math"
	"testing"

	"github.com/statlab-org/statlab/dist"
)

// ============================================================================
// SUM SERIES TESTS
// ============================================================================
// Exponential(rate=0.5) row sums have theoretical mean k*2 and SD sqrt(k)*2.
// Skewness falls as 2/sqrt(k), so k=10 must be visibly less skewed than k=1.
// ============================================================================

func TestRunSumsTheoreticalMoments(t *testing.T) {
	spec := dist.New("exponential", map[string]float64{"rate": 0.5})

	res, err := RunSums(spec,
		WithMaxVariables(10),
		WithRepetitions(10000),
		WithSeed(11),
	)
	if err != nil {
		t.Fatalf("RunSums: %v", err)
	}
	if len(res.Series) != 10 {
		t.Fatalf("got %d series, want 10", len(res.Series))
	}

	for _, k := range []int{1, 2, 5, 10} {
		s := res.Series[k-1]
		if s.K != k {
			t.Fatalf("series order broken: index %d holds k=%d", k-1, s.K)
		}
		if len(s.Values) != 10000 {
			t.Errorf("k=%d: %d values, want 10000", k, len(s.Values))
		}

		wantMean := float64(k) * 2
		wantSD := math.Sqrt(float64(k)) * 2
		if s.ExpectedMean != wantMean || math.Abs(s.ExpectedSD-wantSD) > 1e-12 {
			t.Errorf("k=%d: expected moments (%g, %g), want (%g, %g)",
				k, s.ExpectedMean, s.ExpectedSD, wantMean, wantSD)
		}

		// Observed within ~5% of theory at R=10000.
		if math.Abs(s.Summary.Mean-wantMean) > 0.05*wantMean+0.05 {
			t.Errorf("k=%d: observed mean %g, want ≈ %g", k, s.Summary.Mean, wantMean)
		}
		if math.Abs(s.Summary.StdDev-wantSD) > 0.05*wantSD+0.05 {
			t.Errorf("k=%d: observed SD %g, want ≈ %g", k, s.Summary.StdDev, wantSD)
		}
	}

	// Deviation metrics shrink with k.
	skew1 := math.Abs(res.Series[0].Summary.Skewness)
	skew10 := math.Abs(res.Series[9].Summary.Skewness)
	if skew10 >= skew1 {
		t.Errorf("skewness at k=10 (%g) not below k=1 (%g)", skew10, skew1)
	}
	kurt1 := math.Abs(res.Series[0].Summary.Kurtosis - 3)
	kurt10 := math.Abs(res.Series[9].Summary.Kurtosis - 3)
	if kurt10 >= kurt1 {
		t.Errorf("kurtosis deviation at k=10 (%g) not below k=1 (%g)", kurt10, kurt1)
	}
}

func TestRunSumsConvergenceReached(t *testing.T) {
	// A normal base is normal at every k; all thresholds clear at k=1.
	spec := dist.New("normal", nil)

	res, err := RunSums(spec, WithMaxVariables(3), WithRepetitions(10000), WithSeed(5))
	if err != nil {
		t.Fatalf("RunSums: %v", err)
	}

	c := res.Convergence
	if !c.Skewness.Reached || c.Skewness.K != 1 {
		t.Errorf("skewness threshold = %+v, want reached at k=1", c.Skewness)
	}
	if !c.Kurtosis.Reached || c.Kurtosis.K != 1 {
		t.Errorf("kurtosis threshold = %+v, want reached at k=1", c.Kurtosis)
	}
	if !c.Combined.Reached || c.Combined.K != 1 {
		t.Errorf("combined threshold = %+v, want reached at k=1", c.Combined)
	}
}

func TestRunSumsConvergenceNotReached(t *testing.T) {
	// Exponential sums at k ≤ 3 keep skewness ≈ 2/sqrt(k) ≥ 1.15 and excess
	// kurtosis ≈ 6/k ≥ 2 — nowhere near the thresholds. Must report
	// not-reached, not fail.
	spec := dist.New("exponential", map[string]float64{"rate": 0.5})

	res, err := RunSums(spec, WithMaxVariables(3), WithRepetitions(10000), WithSeed(2))
	if err != nil {
		t.Fatalf("RunSums: %v", err)
	}

	c := res.Convergence
	if c.Skewness.Reached || c.Kurtosis.Reached || c.Combined.Reached {
		t.Errorf("convergence = %+v, want nothing reached within k ≤ 3", c)
	}
}

func TestRunSumsNormalityBounds(t *testing.T) {
	spec := dist.New("normal", nil)

	// Within test bounds: field present.
	res, err := RunSums(spec, WithMaxVariables(1), WithRepetitions(100), WithSeed(3))
	if err != nil {
		t.Fatalf("RunSums: %v", err)
	}
	if res.Series[0].Summary.Normality == nil {
		t.Error("normality test absent for in-bounds series length")
	}

	// Outside test bounds (n > 5000): field absent, never fabricated.
	res, err = RunSums(spec, WithMaxVariables(1), WithRepetitions(6000), WithSeed(3))
	if err != nil {
		t.Fatalf("RunSums: %v", err)
	}
	if res.Series[0].Summary.Normality != nil {
		t.Error("normality test fabricated for out-of-bounds series length")
	}

	// Disabled by option: absent regardless of length.
	res, err = RunSums(spec, WithMaxVariables(1), WithRepetitions(100),
		WithSeed(3), WithNormalityTest(false))
	if err != nil {
		t.Fatalf("RunSums: %v", err)
	}
	if res.Series[0].Summary.Normality != nil {
		t.Error("normality test present despite WithNormalityTest(false)")
	}
}

func TestRunSumsDeterministic(t *testing.T) {
	spec := dist.New("gamma", map[string]float64{"shape": 2, "rate": 1})
	opts := []Option{WithMaxVariables(4), WithRepetitions(500), WithSeed(77)}

	a, err := RunSums(spec, opts...)
	if err != nil {
		t.Fatalf("RunSums: %v", err)
	}
	b, err := RunSums(spec, opts...)
	if err != nil {
		t.Fatalf("RunSums: %v", err)
	}

	for k := range a.Series {
		for i := range a.Series[k].Values {
			if a.Series[k].Values[i] != b.Series[k].Values[i] {
				t.Fatalf("k=%d diverges at row %d", k+1, i)
			}
		}
	}
}
