package render

// ============================================================================
// TEXT BUILDER — Human-readable run summaries
// ============================================================================

import (
	"fmt"
	"strings"

	"github.com/statlab-org/statlab/engine"
)

// SamplingText builds a one-paragraph description of a sampling run.
func SamplingText(res *engine.SamplingResult) string {
	if res == nil {
		return "No result."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Drew a population of %d %s values (mean %.4g, SD %.4g), then %d resamples of size %d.\n",
		res.PopulationSize, res.Family,
		res.Population.Mean, res.Population.StdDev,
		res.Repetitions, res.SampleSize)
	fmt.Fprintf(&b, "Sample means: mean %.4g (expected %.4g), SE %.4g (expected %.4g), skewness %.3f, kurtosis %.3f.",
		res.MeanSummary.Mean, res.ExpectedMean,
		res.MeanSummary.StdDev, res.ExpectedSE,
		res.MeanSummary.Skewness, res.MeanSummary.Kurtosis)
	if t := res.MeanSummary.Normality; t != nil {
		fmt.Fprintf(&b, "\nNormality test: statistic %.4g, p-value %.4g.", t.Statistic, t.PValue)
	}
	return b.String()
}

// SumsText builds a one-paragraph description of a sum run.
func SumsText(res *engine.SumResult) string {
	if res == nil {
		return "No result."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Summed 1..%d independent %s draws, %d repetitions per count.\n",
		res.MaxVariables, res.Family, res.Repetitions)

	if last := len(res.Series) - 1; last >= 0 {
		s := res.Series[last]
		fmt.Fprintf(&b, "At k=%d: mean %.4g (expected %.4g), SD %.4g (expected %.4g), skewness %.3f, kurtosis %.3f.\n",
			s.K, s.Summary.Mean, s.ExpectedMean, s.Summary.StdDev, s.ExpectedSD,
			s.Summary.Skewness, s.Summary.Kurtosis)
	}

	fmt.Fprintf(&b, "|skewness| < 0.5 %s; |kurtosis-3| < 0.5 %s; combined < 1.0 %s.",
		thresholdPhrase(res.Convergence.Skewness, res.MaxVariables),
		thresholdPhrase(res.Convergence.Kurtosis, res.MaxVariables),
		thresholdPhrase(res.Convergence.Combined, res.MaxVariables))
	return b.String()
}

func thresholdPhrase(t engine.Threshold, maxK int) string {
	if !t.Reached {
		return fmt.Sprintf("not reached within k ≤ %d", maxK)
	}
	return fmt.Sprintf("first at k=%d", t.K)
}
