package render

// ============================================================================
// FIGURES — Demonstration results → charts
// ============================================================================
// Thin dispatch from engine results to the chart builders. Titles carry the
// family name so rendered figures are self-describing in the documents.
// ============================================================================

import (
	"fmt"
	"math"

	"github.com/statlab-org/statlab/engine"
)

// SamplingFigure charts the sampling distribution of the mean.
// Line has no meaning for a single run and returns nil.
func SamplingFigure(kind ChartKind, res *engine.SamplingResult) *ChartConfig {
	if res == nil {
		return nil
	}
	title := fmt.Sprintf("Sampling distribution of the mean — %s, n=%d, R=%d",
		res.Family, res.SampleSize, res.Repetitions)

	switch kind {
	case Histogram:
		return BuildHistogram(title, res.Means, 0)
	case Density:
		return BuildDensity(title, res.Means)
	case QQ:
		return BuildQQ(title, res.Means)
	case Scatter:
		return BuildScatter(
			fmt.Sprintf("Resample mean vs SD — %s, n=%d", res.Family, res.SampleSize),
			"Resample mean", "Resample SD", res.Means, res.SampleSDs)
	default:
		return nil
	}
}

// SumFigure charts one SumSeries (k-th variable count) from a sum run, or
// the convergence metrics across all k for Line.
func SumFigure(kind ChartKind, res *engine.SumResult, k int) *ChartConfig {
	if res == nil {
		return nil
	}
	if kind == Line {
		return ConvergenceLine(res)
	}

	series := findSeries(res, k)
	if series == nil {
		return nil
	}
	title := fmt.Sprintf("Sum of %d %s variable(s), R=%d", series.K, res.Family, res.Repetitions)

	switch kind {
	case Histogram:
		return BuildHistogram(title, series.Values, 0)
	case Density:
		return BuildDensity(title, series.Values)
	case QQ:
		return BuildQQ(title, series.Values)
	default:
		return nil
	}
}

// ConvergenceLine plots |skewness| and |kurtosis-3| against k.
func ConvergenceLine(res *engine.SumResult) *ChartConfig {
	if res == nil || len(res.Series) == 0 {
		return nil
	}

	ks := make([]float64, len(res.Series))
	skew := make([]float64, len(res.Series))
	kurt := make([]float64, len(res.Series))
	for i, s := range res.Series {
		ks[i] = float64(s.K)
		skew[i] = math.Abs(s.Summary.Skewness)
		kurt[i] = math.Abs(s.Summary.Kurtosis - 3)
	}

	c := BuildLine(
		fmt.Sprintf("Normality deviation vs variable count — %s", res.Family),
		"Variables summed (k)", ks,
		map[string][]float64{
			"|Skewness|":     skew,
			"|Kurtosis - 3|": kurt,
		})
	if c != nil {
		c.YAxis = "Deviation"
	}
	return c
}

// findSeries resolves k; k <= 0 means the largest available.
func findSeries(res *engine.SumResult, k int) *engine.SumSummary {
	if len(res.Series) == 0 {
		return nil
	}
	if k <= 0 {
		return &res.Series[len(res.Series)-1]
	}
	for i := range res.Series {
		if res.Series[i].K == k {
			return &res.Series[i]
		}
	}
	return nil
}
