package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/statlab-org/statlab/dist"
	"github.com/statlab-org/statlab/engine"
	"github.com/statlab-org/statlab/helpers"
	"github.com/statlab-org/statlab/render"
)

// ============================================================================
// STATLAB CLI — Run statistical demonstrations
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	demo := flag.String("demo", "sampling", "Demonstration: sampling, sums, or both")
	family := flag.String("family", "exponential", "Distribution family (see -families)")
	paramStr := flag.String("params", "", "Parameter overrides, e.g. \"rate=0.5\" or \"mean=1,sd=2\"")
	popSize := flag.Int("pop", 10000, "Population size (sampling demo)")
	sampleSize := flag.Int("n", 30, "Sample size per resample (sampling demo)")
	reps := flag.Int("reps", 10000, "Repetitions")
	maxVars := flag.Int("k", 10, "Maximum variable count (sums demo)")
	seed := flag.Uint64("seed", 1, "Random seed (same seed + parameters = same results)")
	chartKind := flag.String("chart", "histogram", "Chart kind: histogram, density, scatter, qq, line")
	format := flag.String("format", "json", "Output format: json, pretty, text, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	noTest := flag.Bool("no-test", false, "Skip the normality test")
	listFamilies := flag.Bool("families", false, "List supported families and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `statlab — statistical demonstration toolkit

Usage:
  statlab -demo sampling -family exponential -params "rate=0.5" -n 30 -reps 10000
  statlab -demo sums -family exponential -k 10 -chart line -format csv -out sums.csv
  statlab -demo both -seed 123 -format text

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  json      Full JSON output (default)
  pretty    Pretty-printed JSON
  text      Human-readable summary only
  csv       Chart data as CSV (ready for Sheets/plotting)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("statlab %s\n", version)
		os.Exit(0)
	}
	if *listFamilies {
		fmt.Println(strings.Join(dist.Families(), "\n"))
		os.Exit(0)
	}

	params, err := parseParams(*paramStr)
	if err != nil {
		fatalf("Bad -params: %v", err)
	}
	spec := dist.New(*family, params)

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	kind := render.ChartKind(*chartKind)
	opts := []engine.Option{
		engine.WithPopulationSize(*popSize),
		engine.WithSampleSize(*sampleSize),
		engine.WithRepetitions(*reps),
		engine.WithMaxVariables(*maxVars),
		engine.WithSeed(*seed),
		engine.WithNormalityTest(!*noTest),
	}

	// ── Run demonstrations ────────────────────────────────────────────────
	// Each demonstration runs independently: one failure is reported and the
	// others still complete.
	var outputs []demoOutput
	failures := 0

	runSampling := *demo == "sampling" || *demo == "both"
	runSums := *demo == "sums" || *demo == "both"
	if !runSampling && !runSums {
		fatalf("Unknown -demo %q (want sampling, sums, or both)", *demo)
	}

	if runSampling {
		out := demoOutput{Demo: "sampling"}
		res, err := engine.RunSampling(spec, opts...)
		if err != nil {
			log.Printf("statlab: sampling demo failed: %v", err)
			out.Error = err.Error()
			failures++
		} else {
			out.Sampling = res
			out.Chart = render.SamplingFigure(kind, res)
			out.Table = render.SamplingTable(res)
			out.Text = render.SamplingText(res)
		}
		outputs = append(outputs, out)
	}

	if runSums {
		out := demoOutput{Demo: "sums"}
		res, err := engine.RunSums(spec, opts...)
		if err != nil {
			log.Printf("statlab: sums demo failed: %v", err)
			out.Error = err.Error()
			failures++
		} else {
			out.Sums = res
			out.Chart = render.SumFigure(kind, res, 0)
			out.Table = render.SumTable(res)
			out.Text = render.SumsText(res)
		}
		outputs = append(outputs, out)
	}

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "csv":
		for _, out := range outputs {
			if out.Chart == nil {
				continue
			}
			data, err := helpers.ChartCSV(out.Chart)
			if err != nil {
				log.Printf("statlab: csv export failed for %s: %v", out.Demo, err)
				continue
			}
			writer.Write(data)
		}
	case "text":
		lines := make([]string, 0, len(outputs))
		for _, out := range outputs {
			if out.Error != "" {
				lines = append(lines, fmt.Sprintf("%s: error: %s", out.Demo, out.Error))
				continue
			}
			lines = append(lines, out.Text)
		}
		fmt.Fprintln(writer, strings.Join(lines, "\n\n"))
	default:
		writeJSON(writer, outputs, *format)
	}

	if *outFile != "" {
		log.Printf("statlab: output written to %s", *outFile)
	}
	if failures == len(outputs) {
		os.Exit(1)
	}
}

// ============================================================================
// OUTPUT TYPES
// ============================================================================

type demoOutput struct {
	Demo     string                 `json:"demo"`
	Error    string                 `json:"error,omitempty"`
	Sampling *engine.SamplingResult `json:"sampling,omitempty"`
	Sums     *engine.SumResult      `json:"sums,omitempty"`
	Chart    *render.ChartConfig    `json:"chart,omitempty"`
	Table    *render.TableData      `json:"table,omitempty"`
	Text     string                 `json:"text,omitempty"`
}

// ============================================================================
// HELPERS
// ============================================================================

// parseParams turns "rate=0.5,sd=2" into a parameter map.
func parseParams(s string) (map[string]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	params := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("expected name=value, got %q", pair)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", key, err)
		}
		params[strings.TrimSpace(key)] = f
	}
	return params, nil
}

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
