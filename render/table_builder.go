package render

// ============================================================================
// TABLE BUILDER — Produces TableData from demonstration results
// ============================================================================

import (
	"fmt"

	"github.com/statlab-org/statlab/engine"
)

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary is a footer note for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// SamplingTable lays out observed-vs-expected rows for a sampling run.
func SamplingTable(res *engine.SamplingResult) *TableData {
	if res == nil {
		return nil
	}

	columns := []Column{
		{Key: "statistic", Label: "Statistic", Type: "text", Align: "left"},
		{Key: "observed", Label: "Observed", Type: "number", Align: "right"},
		{Key: "expected", Label: "Expected", Type: "number", Align: "right"},
	}

	rows := [][]string{
		{"Population mean", fmtNum(res.Population.Mean), fmtNum(res.ExpectedMean)},
		{"Mean of sample means", fmtNum(res.MeanSummary.Mean), fmtNum(res.ExpectedMean)},
		{"SE of sample means", fmtNum(res.MeanSummary.StdDev), fmtNum(res.ExpectedSE)},
		{"Skewness of sample means", fmtNum(res.MeanSummary.Skewness), "0"},
		{"Kurtosis of sample means", fmtNum(res.MeanSummary.Kurtosis), "3"},
	}
	if t := res.MeanSummary.Normality; t != nil {
		rows = append(rows, []string{"Normality p-value", fmtNum(t.PValue), "—"})
	}

	return &TableData{
		Title:   fmt.Sprintf("Sampling run — %s, n=%d, R=%d", res.Family, res.SampleSize, res.Repetitions),
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("Population of %d draws, seed %d", res.PopulationSize, res.Seed),
		},
	}
}

// SumTable lays out one row per variable count k.
func SumTable(res *engine.SumResult) *TableData {
	if res == nil {
		return nil
	}

	columns := []Column{
		{Key: "k", Label: "K", Type: "number", Align: "center"},
		{Key: "mean", Label: "Mean", Type: "number", Align: "right"},
		{Key: "expectedMean", Label: "Expected mean", Type: "number", Align: "right"},
		{Key: "sd", Label: "SD", Type: "number", Align: "right"},
		{Key: "expectedSD", Label: "Expected SD", Type: "number", Align: "right"},
		{Key: "skewness", Label: "Skewness", Type: "number", Align: "right"},
		{Key: "kurtosis", Label: "Kurtosis", Type: "number", Align: "right"},
		{Key: "pValue", Label: "Normality p", Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(res.Series))
	for _, s := range res.Series {
		p := "—" // untested
		if s.Summary.Normality != nil {
			p = fmtNum(s.Summary.Normality.PValue)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.K),
			fmtNum(s.Summary.Mean),
			fmtNum(s.ExpectedMean),
			fmtNum(s.Summary.StdDev),
			fmtNum(s.ExpectedSD),
			fmtNum(s.Summary.Skewness),
			fmtNum(s.Summary.Kurtosis),
			p,
		})
	}

	return &TableData{
		Title:   fmt.Sprintf("Sums of %s variables, R=%d", res.Family, res.Repetitions),
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: "First k below threshold",
			Values: map[string]string{
				"skewness": thresholdLabel(res.Convergence.Skewness),
				"kurtosis": thresholdLabel(res.Convergence.Kurtosis),
				"combined": thresholdLabel(res.Convergence.Combined),
			},
		},
	}
}

func thresholdLabel(t engine.Threshold) string {
	if !t.Reached {
		return "not reached"
	}
	return fmt.Sprintf("k=%d", t.K)
}

// fmtNum formats with enough precision for summary tables.
func fmtNum(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
