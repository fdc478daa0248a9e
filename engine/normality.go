package engine

// ============================================================================
// NORMALITY — Anderson–Darling goodness-of-fit test
// ============================================================================
// Case 3 (mean and variance estimated from the data), with the Stephens
// small-sample correction and p-value approximation. Outside the valid
// sample-size bounds the result is nil — an absent field, never a fabricated
// value.
// ============================================================================

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bounds where the p-value approximation is trustworthy.
const (
	minNormalityN = 8
	maxNormalityN = 5000
)

// AndersonDarling tests xs against the normal distribution. It returns nil
// when len(xs) is outside [8, 5000] or the data has zero dispersion.
func AndersonDarling(xs []float64) *NormalityTest {
	n := len(xs)
	if n < minNormalityN || n > maxNormalityN {
		return nil
	}

	mean := stat.Mean(xs, nil)
	sd := stat.StdDev(xs, nil)
	if sd == 0 {
		return nil
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	nf := float64(n)
	var sum float64
	for i, x := range sorted {
		lo := clampProb(distuv.UnitNormal.CDF((x - mean) / sd))
		hi := clampProb(distuv.UnitNormal.CDF((sorted[n-1-i] - mean) / sd))
		sum += (2*float64(i) + 1) * (math.Log(lo) + math.Log(1-hi))
	}

	a2 := -nf - sum/nf
	a2 *= 1 + 0.75/nf + 2.25/(nf*nf)

	return &NormalityTest{Statistic: a2, PValue: adPValue(a2)}
}

// adPValue is the Stephens piecewise approximation for the corrected
// statistic.
func adPValue(a float64) float64 {
	var p float64
	switch {
	case a >= 0.6:
		p = math.Exp(1.2937 - 5.709*a + 0.0186*a*a)
	case a > 0.34:
		p = math.Exp(0.9177 - 4.279*a - 1.38*a*a)
	case a > 0.2:
		p = 1 - math.Exp(-8.318+42.796*a-59.938*a*a)
	default:
		p = 1 - math.Exp(-13.436+101.14*a-223.73*a*a)
	}
	return math.Min(math.Max(p, 0), 1)
}

// clampProb keeps CDF values away from 0 and 1 so the logs stay finite for
// extreme tail observations.
func clampProb(p float64) float64 {
	const eps = 1e-15
	return math.Min(math.Max(p, eps), 1-eps)
}
