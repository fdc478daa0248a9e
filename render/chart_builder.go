package render

// ============================================================================
// CHART BUILDER — Produces ChartConfig from numeric value tables
// ============================================================================
// The renderer does no statistics beyond binning and formatting: a
// ChartConfig is render-ready JSON for the document-rendering collaborator
// (any standard plotting frontend). Empty input yields nil, mirroring
// "not enough data to chart" downstream.
// ============================================================================

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ChartKind selects the figure type.
type ChartKind string

const (
	Histogram ChartKind = "histogram"
	Density   ChartKind = "density"
	Scatter   ChartKind = "scatter"
	QQ        ChartKind = "qq"
	Line      ChartKind = "line"
)

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string   `json:"chartType"`
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Series     []Series `json:"series"`
	ShowLegend bool     `json:"showLegend"`
	ShowGrid   bool     `json:"showGrid"`
}

// Series is a named data series in a chart.
type Series struct {
	Name string  `json:"name"`
	Data []Point `json:"data"`
}

// Point is a single data point. Label is set for binned (histogram) points.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// Points per curve in density and reference-line charts.
const curveResolution = 128

// ============================================================================
// HISTOGRAM
// ============================================================================

// BuildHistogram bins values into a bar-style series. bins <= 0 selects the
// Sturges rule. Returns nil for empty input.
func BuildHistogram(title string, values []float64, bins int) *ChartConfig {
	if len(values) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = sturges(len(values))
	}

	min, max := bounds(values)
	if min == max {
		// Degenerate data: a single bin holds everything.
		return &ChartConfig{
			ChartType: string(Histogram),
			Title:     title,
			XAxis:     "Value",
			YAxis:     "Count",
			ShowGrid:  true,
			Series: []Series{{
				Name: "Count",
				Data: []Point{{X: min, Y: float64(len(values)), Label: fmt.Sprintf("%.4g", min)}},
			}},
		}
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		i := int((v - min) / width)
		if i >= bins { // max lands in the last bin
			i = bins - 1
		}
		counts[i]++
	}

	points := make([]Point, bins)
	for i, c := range counts {
		lo := min + float64(i)*width
		points[i] = Point{
			X:     lo + width/2,
			Y:     float64(c),
			Label: fmt.Sprintf("%.4g–%.4g", lo, lo+width),
		}
	}

	return &ChartConfig{
		ChartType: string(Histogram),
		Title:     title,
		XAxis:     "Value",
		YAxis:     "Count",
		ShowGrid:  true,
		Series:    []Series{{Name: "Count", Data: points}},
	}
}

// ============================================================================
// DENSITY OVERLAY
// ============================================================================

// BuildDensity overlays a kernel density estimate of values with the normal
// curve fitted to the same mean and SD. Returns nil for fewer than 2 values.
func BuildDensity(title string, values []float64) *ChartConfig {
	if len(values) < 2 {
		return nil
	}

	samp := stats.Sample{Xs: append([]float64(nil), values...)}
	samp.Sort()
	kde := &stats.KDE{Sample: samp}

	mean := stat.Mean(values, nil)
	sd := stat.StdDev(values, nil)
	fit := distuv.Normal{Mu: mean, Sigma: sd}

	min, max := bounds(values)
	// Pad so both curves reach their tails.
	lo, hi := min-sd, max+sd
	step := (hi - lo) / float64(curveResolution-1)

	empirical := make([]Point, curveResolution)
	normal := make([]Point, curveResolution)
	for i := 0; i < curveResolution; i++ {
		x := lo + float64(i)*step
		empirical[i] = Point{X: x, Y: kde.PDF(x)}
		normal[i] = Point{X: x, Y: fit.Prob(x)}
	}

	return &ChartConfig{
		ChartType:  string(Density),
		Title:      title,
		XAxis:      "Value",
		YAxis:      "Density",
		ShowLegend: true,
		ShowGrid:   true,
		Series: []Series{
			{Name: "Empirical density", Data: empirical},
			{Name: "Normal fit", Data: normal},
		},
	}
}

// ============================================================================
// QUANTILE–QUANTILE
// ============================================================================

// BuildQQ plots standardized sample quantiles against standard normal
// quantiles, with the y=x reference line. Returns nil for fewer than 2 values.
func BuildQQ(title string, values []float64) *ChartConfig {
	n := len(values)
	if n < 2 {
		return nil
	}

	mean := stat.Mean(values, nil)
	sd := stat.StdDev(values, nil)
	if sd == 0 {
		return nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	points := make([]Point, n)
	for i, v := range sorted {
		p := (float64(i) + 0.5) / float64(n)
		points[i] = Point{
			X: distuv.UnitNormal.Quantile(p),
			Y: (v - mean) / sd,
		}
	}

	lo, hi := points[0].X, points[n-1].X
	reference := []Point{{X: lo, Y: lo}, {X: hi, Y: hi}}

	return &ChartConfig{
		ChartType:  string(QQ),
		Title:      title,
		XAxis:      "Theoretical quantiles",
		YAxis:      "Sample quantiles",
		ShowLegend: true,
		ShowGrid:   true,
		Series: []Series{
			{Name: "Sample", Data: points},
			{Name: "Reference", Data: reference},
		},
	}
}

// ============================================================================
// SCATTER
// ============================================================================

// BuildScatter pairs two equal-length columns. Returns nil on length
// mismatch or empty input.
func BuildScatter(title, xName, yName string, xs, ys []float64) *ChartConfig {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil
	}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	return &ChartConfig{
		ChartType: string(Scatter),
		Title:     title,
		XAxis:     xName,
		YAxis:     yName,
		ShowGrid:  true,
		Series:    []Series{{Name: yName, Data: points}},
	}
}

// ============================================================================
// MULTI-SERIES LINE
// ============================================================================

// BuildLine turns labeled numeric columns over a shared x column into a
// multi-series line chart. Returns nil when no column matches the x length.
func BuildLine(title, xName string, xs []float64, columns map[string][]float64) *ChartConfig {
	if len(xs) == 0 {
		return nil
	}

	names := make([]string, 0, len(columns))
	for name, ys := range columns {
		if len(ys) == len(xs) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	series := make([]Series, 0, len(names))
	for _, name := range names {
		ys := columns[name]
		points := make([]Point, len(xs))
		for i := range xs {
			points[i] = Point{X: xs[i], Y: ys[i]}
		}
		series = append(series, Series{Name: name, Data: points})
	}

	return &ChartConfig{
		ChartType:  string(Line),
		Title:      title,
		XAxis:      xName,
		YAxis:      "Value",
		ShowLegend: true,
		ShowGrid:   true,
		Series:     series,
	}
}

// ============================================================================
// HELPERS
// ============================================================================

// sturges is the default bin-count rule: ceil(log2(n)) + 1.
func sturges(n int) int {
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

func bounds(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
