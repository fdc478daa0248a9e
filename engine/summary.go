package engine

// ============================================================================
// SUMMARY — Descriptive Statistics Reporter
// ============================================================================
// Pure function: numeric sequence → NormalitySummary. Mean and standard
// deviation use the unbiased (n-1) divisor; skewness and kurtosis are the
// standardized third/fourth moment estimators from gonum.
// ============================================================================

import (
	"errors"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientSample is returned when a dispersion statistic is requested
// for fewer than 2 observations. A standard deviation over a single value
// would divide by zero; refusing is the only honest answer.
var ErrInsufficientSample = errors.New("engine: need at least 2 observations")

// Summarize computes a NormalitySummary for xs. The Normality field is left
// absent; callers attach it via AndersonDarling when wanted.
func Summarize(xs []float64) (NormalitySummary, error) {
	if len(xs) < 2 {
		return NormalitySummary{N: len(xs)}, ErrInsufficientSample
	}

	samp := stats.Sample{Xs: append([]float64(nil), xs...)}
	samp.Sort()

	return NormalitySummary{
		N:        len(xs),
		Mean:     stat.Mean(xs, nil),
		StdDev:   stat.StdDev(xs, nil),
		Skewness: stat.Skew(xs, nil),
		Kurtosis: stat.ExKurtosis(xs, nil) + 3,
		Q25:      samp.Quantile(0.25),
		Median:   samp.Quantile(0.5),
		Q75:      samp.Quantile(0.75),
	}, nil
}
