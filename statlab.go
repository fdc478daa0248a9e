// Package statlab is a small statistical demonstration toolkit.
// It powers explainer documents about sampling distributions and the
// central limit theorem.
//
// Usage:
//
//	import (
//	    "github.com/statlab-org/statlab/dist"
//	    "github.com/statlab-org/statlab/engine"
//	)
//
//	spec := dist.New("exponential", map[string]float64{"rate": 0.5})
//	result, err := engine.RunSampling(spec,
//	    engine.WithSampleSize(30),
//	    engine.WithRepetitions(10000),
//	    engine.WithSeed(123),
//	)
//
// The engine draws synthetic data from a parametric family, summarizes it
// (mean, SD, skewness, kurtosis, optional normality test), and hands
// render-ready chart and table configs to a document-rendering collaborator.
// All randomness flows from a single seeded source, so a run is fully
// reproducible given the same seed and parameters. The engine never calls
// any external service — all computation is local.
package statlab
