package engine

// ============================================================================
// ENGINE TYPES — Demonstration results
// ============================================================================
// Results are render-ready: plain numeric fields plus JSON tags, consumed by
// the render package and the document-rendering collaborator. Raw value
// vectors are kept in memory for chart building but excluded from JSON.
// ============================================================================

// NormalitySummary describes the shape of a numeric sequence.
// Kurtosis is the Pearson form (a normal distribution scores 3).
type NormalitySummary struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"stdDev"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`

	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`

	// Normality is present only when the sequence length falls within the
	// test's valid bounds. Absent means "untested", never "passed".
	Normality *NormalityTest `json:"normality,omitempty"`
}

// NormalityTest is a goodness-of-fit result against the normal distribution.
type NormalityTest struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"pValue"`
}

// ============================================================================
// SAMPLING RESULT — Distribution Sampler output
// ============================================================================

// SamplingResult is the output of RunSampling: a population summary plus the
// empirical sampling distribution of the mean.
type SamplingResult struct {
	Family string             `json:"family"`
	Params map[string]float64 `json:"params"`

	PopulationSize int    `json:"populationSize"`
	SampleSize     int    `json:"sampleSize"`
	Repetitions    int    `json:"repetitions"`
	Seed           uint64 `json:"seed"`

	Population  NormalitySummary `json:"population"`
	MeanSummary NormalitySummary `json:"meanSummary"`

	// Theoretical targets: population mean and standard error sigma/sqrt(n).
	ExpectedMean float64 `json:"expectedMean"`
	ExpectedSE   float64 `json:"expectedSE"`

	// Per-resample statistics, one entry per repetition.
	Means     []float64 `json:"-"`
	SampleSDs []float64 `json:"-"`
}

// ============================================================================
// SUM RESULT — Variable-Sum Aggregator output
// ============================================================================

// SumResult is the output of RunSums: one summarized SumSeries per variable
// count k, plus where each normality-deviation metric first crossed its
// threshold.
type SumResult struct {
	Family string             `json:"family"`
	Params map[string]float64 `json:"params"`

	MaxVariables int    `json:"maxVariables"`
	Repetitions  int    `json:"repetitions"`
	Seed         uint64 `json:"seed"`

	Series      []SumSummary `json:"series"`
	Convergence Convergence  `json:"convergence"`
}

// SumSummary describes the row sums of k independent base draws.
type SumSummary struct {
	K       int              `json:"k"`
	Summary NormalitySummary `json:"summary"`

	// Theoretical targets: k*mu and sqrt(k)*sigma.
	ExpectedMean float64 `json:"expectedMean"`
	ExpectedSD   float64 `json:"expectedSD"`

	Values []float64 `json:"-"`
}

// Threshold records the smallest k at which a metric crossed its bound.
// Reached=false means no k within range qualified.
type Threshold struct {
	K       int  `json:"k,omitempty"`
	Reached bool `json:"reached"`
}

// Convergence reports normality-deviation thresholds across k = 1..K:
// |skewness| < 0.5, |kurtosis-3| < 0.5, and their sum < 1.0.
type Convergence struct {
	Skewness Threshold `json:"skewness"`
	Kurtosis Threshold `json:"kurtosis"`
	Combined Threshold `json:"combined"`
}
