package render

import (
	"strings"
	"testing"

	"github.com/statlab-org/statlab/dist"
	"github.com/statlab-org/statlab/engine"
)

// ============================================================================
// FIGURE + TABLE + TEXT TESTS
// ============================================================================
// Fixtures run the engine once with a small, fixed configuration.

func samplingFixture(t *testing.T) *engine.SamplingResult {
	t.Helper()
	res, err := engine.RunSampling(dist.New("exponential", map[string]float64{"rate": 0.5}),
		engine.WithPopulationSize(1000),
		engine.WithSampleSize(10),
		engine.WithRepetitions(200),
		engine.WithSeed(1),
	)
	if err != nil {
		t.Fatalf("RunSampling fixture: %v", err)
	}
	return res
}

func sumFixture(t *testing.T) *engine.SumResult {
	t.Helper()
	res, err := engine.RunSums(dist.New("exponential", map[string]float64{"rate": 0.5}),
		engine.WithMaxVariables(5),
		engine.WithRepetitions(10000),
		engine.WithSeed(1),
	)
	if err != nil {
		t.Fatalf("RunSums fixture: %v", err)
	}
	return res
}

func TestSamplingFigureKinds(t *testing.T) {
	res := samplingFixture(t)

	for _, kind := range []ChartKind{Histogram, Density, QQ, Scatter} {
		c := SamplingFigure(kind, res)
		if c == nil {
			t.Errorf("%s: nil chart", kind)
			continue
		}
		if c.ChartType != string(kind) {
			t.Errorf("%s: chart type %s", kind, c.ChartType)
		}
		if !strings.Contains(c.Title, "exponential") {
			t.Errorf("%s: title %q lacks family", kind, c.Title)
		}
	}

	if SamplingFigure(Line, res) != nil {
		t.Error("line figure is undefined for a sampling run")
	}
	if SamplingFigure(Histogram, nil) != nil {
		t.Error("nil result should produce nil")
	}
}

func TestSumFigureKinds(t *testing.T) {
	res := sumFixture(t)

	// k <= 0 selects the largest k.
	c := SumFigure(Histogram, res, 0)
	if c == nil || !strings.Contains(c.Title, "Sum of 5") {
		t.Fatalf("default-k histogram = %+v", c)
	}

	c = SumFigure(QQ, res, 2)
	if c == nil || !strings.Contains(c.Title, "Sum of 2") {
		t.Fatalf("k=2 qq = %+v", c)
	}

	if SumFigure(Histogram, res, 99) != nil {
		t.Error("out-of-range k should produce nil")
	}

	line := SumFigure(Line, res, 0)
	if line == nil || len(line.Series) != 2 {
		t.Fatalf("convergence line = %+v", line)
	}
	for _, s := range line.Series {
		if len(s.Data) != 5 {
			t.Errorf("series %s has %d points, want 5", s.Name, len(s.Data))
		}
	}
}

func TestSamplingTable(t *testing.T) {
	res := samplingFixture(t)

	tbl := SamplingTable(res)
	if tbl == nil {
		t.Fatal("nil table")
	}
	if len(tbl.Columns) != 3 {
		t.Errorf("got %d columns, want 3", len(tbl.Columns))
	}
	if len(tbl.Rows) < 5 {
		t.Errorf("got %d rows, want at least 5", len(tbl.Rows))
	}
	for _, row := range tbl.Rows {
		if len(row) != len(tbl.Columns) {
			t.Errorf("row %v width != %d columns", row, len(tbl.Columns))
		}
	}
}

func TestSumTable(t *testing.T) {
	res := sumFixture(t)

	tbl := SumTable(res)
	if tbl == nil {
		t.Fatal("nil table")
	}
	if len(tbl.Rows) != 5 {
		t.Errorf("got %d rows, want one per k", len(tbl.Rows))
	}
	if tbl.Summary == nil {
		t.Fatal("missing convergence summary")
	}
	// Exponential at k ≤ 5 stays above every threshold.
	for key, v := range tbl.Summary.Values {
		if v != "not reached" {
			t.Errorf("threshold %s = %q, want \"not reached\"", key, v)
		}
	}
}

func TestTextBuilders(t *testing.T) {
	sampling := SamplingText(samplingFixture(t))
	for _, want := range []string{"exponential", "resamples", "expected"} {
		if !strings.Contains(sampling, want) {
			t.Errorf("sampling text missing %q:\n%s", want, sampling)
		}
	}

	sums := SumsText(sumFixture(t))
	for _, want := range []string{"exponential", "not reached", "k=5"} {
		if !strings.Contains(sums, want) {
			t.Errorf("sums text missing %q:\n%s", want, sums)
		}
	}

	if SamplingText(nil) != "No result." || SumsText(nil) != "No result." {
		t.Error("nil results should read as no result")
	}
}
