package helpers

// ============================================================================
// CSV HELPER — Writes charts and tables as CSV
// ============================================================================
// The document-rendering collaborator (or a spreadsheet) consumes figures as
// CSV. Charts become one column per series over a shared X column; tables
// map directly.
// ============================================================================

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/statlab-org/statlab/render"
)

// ChartCSV renders a ChartConfig as CSV bytes: an X column followed by one
// column per series. Series of differing lengths are padded with blanks.
func ChartCSV(c *render.ChartConfig) ([]byte, error) {
	if c == nil || len(c.Series) == 0 {
		return nil, fmt.Errorf("no chart data to export")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	xLabel := c.XAxis
	if xLabel == "" {
		xLabel = "X"
	}
	header := []string{xLabel}
	for _, s := range c.Series {
		header = append(header, s.Name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	longest := 0
	for _, s := range c.Series {
		if len(s.Data) > longest {
			longest = len(s.Data)
		}
	}

	for i := 0; i < longest; i++ {
		row := make([]string, 0, len(header))

		// X comes from the first series that still has a point here.
		x := ""
		for _, s := range c.Series {
			if i < len(s.Data) {
				if s.Data[i].Label != "" {
					x = s.Data[i].Label
				} else {
					x = fmtNum(s.Data[i].X)
				}
				break
			}
		}
		row = append(row, x)

		for _, s := range c.Series {
			if i < len(s.Data) {
				row = append(row, fmtNum(s.Data[i].Y))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// TableCSV renders a TableData as CSV bytes.
func TableCSV(t *render.TableData) ([]byte, error) {
	if t == nil || len(t.Columns) == 0 {
		return nil, fmt.Errorf("no table data to export")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Label
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// fmtNum keeps CSV numbers compact: whole numbers drop decimals.
func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.6g", v)
}
