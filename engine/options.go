package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for RunSampling / RunSums
// ============================================================================

// Option configures a demonstration run via functional options pattern.
type Option func(*config)

type config struct {
	populationSize int
	sampleSize     int
	repetitions    int
	maxVariables   int
	seed           uint64
	normalityTest  bool
}

// WithPopulationSize sets how many base draws form the population.
func WithPopulationSize(n int) Option {
	return func(c *config) { c.populationSize = n }
}

// WithSampleSize sets the size of each resample drawn from the population.
func WithSampleSize(n int) Option {
	return func(c *config) { c.sampleSize = n }
}

// WithRepetitions sets how many resamples (or row sums) are drawn.
func WithRepetitions(r int) Option {
	return func(c *config) { c.repetitions = r }
}

// WithMaxVariables sets the largest variable count K for RunSums.
func WithMaxVariables(k int) Option {
	return func(c *config) { c.maxVariables = k }
}

// WithSeed sets the base random seed. Runs with the same seed and
// parameters produce identical results.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithNormalityTest toggles the goodness-of-fit test on summaries.
// Even when enabled, the test is skipped outside its valid sample sizes.
func WithNormalityTest(enabled bool) Option {
	return func(c *config) { c.normalityTest = enabled }
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		populationSize: 10000,
		sampleSize:     30,
		repetitions:    1000,
		maxVariables:   10,
		seed:           1,
		normalityTest:  true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
