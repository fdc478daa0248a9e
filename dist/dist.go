package dist

// ============================================================================
// DIST — Parametric distribution families
// ============================================================================
// A Spec pairs a family with a fully-resolved parameter set. Parameters are
// coalesced against documented defaults exactly once, at construction; a Spec
// never changes afterwards.
//
// Sampling is delegated to gonum's distuv distributions. Callers get a
// Sampler bound to an explicit rand.Source, so every draw sequence is
// reproducible from a seed.
// ============================================================================

import (
	"log"
	"sort"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Family identifies a supported distribution family.
type Family string

const (
	Exponential Family = "exponential"
	Normal      Family = "normal"
	Uniform     Family = "uniform"
	Gamma       Family = "gamma"
	Beta        Family = "beta"
	LogNormal   Family = "lognormal"
	ChiSquared  Family = "chi_squared"
	Weibull     Family = "weibull"
)

// DefaultFamily is used when a family name is not recognized.
// A demonstration keeps running on a standard normal base rather than failing.
const DefaultFamily = Normal

// Sampler draws one value at a time. gonum distuv distributions satisfy it,
// so any univariate distribution can back a demonstration.
type Sampler interface {
	Rand() float64
}

// Spec is an immutable distribution selection with resolved parameters.
type Spec interface {
	Family() Family
	// Params returns the resolved named parameters (defaults applied).
	Params() map[string]float64
	// Mean and StdDev are the theoretical moments, used for
	// expected-vs-observed comparisons.
	Mean() float64
	StdDev() float64
	// Sampler binds the distribution to a random source.
	Sampler(src rand.Source) Sampler
}

// ============================================================================
// CONSTRUCTION
// ============================================================================

// ParseFamily resolves a family name. The boolean reports whether the name
// was recognized.
func ParseFamily(name string) (Family, bool) {
	f := Family(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case Exponential, Normal, Uniform, Gamma, Beta, LogNormal, ChiSquared, Weibull:
		return f, true
	}
	return DefaultFamily, false
}

// Families lists all supported family names, sorted.
func Families() []string {
	names := []string{
		string(Exponential), string(Normal), string(Uniform), string(Gamma),
		string(Beta), string(LogNormal), string(ChiSquared), string(Weibull),
	}
	sort.Strings(names)
	return names
}

// New builds a Spec for the named family. Parameters missing from overrides
// take their documented defaults; nil means all defaults. Unrecognized names
// fall back to DefaultFamily (logged, not an error) so one bad selection
// never aborts a run.
//
// Defaults per family:
//
//	exponential  rate=1
//	normal       mean=0 sd=1
//	uniform      min=0 max=1
//	gamma        shape=2 rate=1
//	beta         alpha=2 beta=2
//	lognormal    mu=0 sigma=0.5
//	chi_squared  df=3
//	weibull      shape=1.5 scale=1
func New(name string, overrides map[string]float64) Spec {
	family, ok := ParseFamily(name)
	if !ok {
		log.Printf("statlab: unknown distribution family %q, using %s", name, DefaultFamily)
	}
	p := params(overrides)

	switch family {
	case Exponential:
		return exponential{impl: distuv.Exponential{Rate: p.pos("rate", 1)}}
	case Uniform:
		min, max := p.get("min", 0), p.get("max", 1)
		if min >= max {
			min, max = 0, 1
		}
		return uniform{impl: distuv.Uniform{Min: min, Max: max}}
	case Gamma:
		return gamma{impl: distuv.Gamma{Alpha: p.pos("shape", 2), Beta: p.pos("rate", 1)}}
	case Beta:
		return beta{impl: distuv.Beta{Alpha: p.pos("alpha", 2), Beta: p.pos("beta", 2)}}
	case LogNormal:
		return logNormal{impl: distuv.LogNormal{Mu: p.get("mu", 0), Sigma: p.pos("sigma", 0.5)}}
	case ChiSquared:
		return chiSquared{impl: distuv.ChiSquared{K: p.pos("df", 3)}}
	case Weibull:
		return weibull{impl: distuv.Weibull{K: p.pos("shape", 1.5), Lambda: p.pos("scale", 1)}}
	default:
		return normal{impl: distuv.Normal{Mu: p.get("mean", 0), Sigma: p.pos("sd", 1)}}
	}
}

// Draw returns exactly n i.i.d. draws from spec. Two calls with the same
// spec, n, and seed produce identical values.
func Draw(spec Spec, n int, seed uint64) []float64 {
	s := spec.Sampler(rand.NewSource(seed))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.Rand()
	}
	return xs
}

// params wraps the override map with default coalescing.
type params map[string]float64

func (p params) get(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// pos is get restricted to strictly positive values; invalid overrides
// revert to the default instead of producing an unusable distribution.
func (p params) pos(key string, def float64) float64 {
	if v, ok := p[key]; ok && v > 0 {
		return v
	}
	return def
}

// ============================================================================
// FAMILY VARIANTS
// ============================================================================
// Each variant holds its distuv implementation without a source; Sampler()
// stamps the source onto a copy, keeping the Spec itself immutable.

type exponential struct{ impl distuv.Exponential }

func (d exponential) Family() Family  { return Exponential }
func (d exponential) Mean() float64   { return d.impl.Mean() }
func (d exponential) StdDev() float64 { return d.impl.StdDev() }
func (d exponential) Params() map[string]float64 {
	return map[string]float64{"rate": d.impl.Rate}
}
func (d exponential) Sampler(src rand.Source) Sampler {
	impl := d.impl
	impl.Src = src
	return impl
}

type normal struct{ impl distuv.Normal }

func (d normal) Family() Family  { return Normal }
func (d normal) Mean() float64   { return d.impl.Mean() }
func (d normal) StdDev() float64 { return d.impl.StdDev() }
func (d normal) Params() map[string]float64 {
	return map[string]float64{"mean": d.impl.Mu, "sd": d.impl.Sigma}
}
func (d normal) Sampler(src rand.Source) Sampler {
	impl := d.impl
	impl.Src = src
	return impl
}

type uniform struct{ impl distuv.Uniform }

func (d uniform) Family() Family  { return Uniform }
func (d uniform) Mean() float64   { return d.impl.Mean() }
func (d uniform) StdDev() float64 { return d.impl.StdDev() }
func (d uniform) Params() map[string]float64 {
	return map[string]float64{"min": d.impl.Min, "max": d.impl.Max}
}
func (d uniform) Sampler(src rand.Source) Sampler {
	impl := d.impl
	impl.Src = src
	return impl
}

type gamma struct{ impl distuv.Gamma }

func (d gamma) Family() Family  { return Gamma }
func (d gamma) Mean() float64   { return d.impl.Mean() }
func (d gamma) StdDev() float64 { return d.impl.StdDev() }
func (d gamma) Params() map[string]float64 {
	return map[string]float64{"shape": d.impl.Alpha, "rate": d.impl.Beta}
}
func (d gamma) Sampler(src rand.Source) Sampler {
	impl := d.impl
	impl.Src = src
	return impl
}

type beta struct{ impl distuv.Beta }

func (d beta) Family() Family  { return Beta }
func (d beta) Mean() float64   { return d.impl.Mean() }
func (d beta) StdDev() float64 { return d.impl.StdDev() }
func (d beta) Params() map[string]float64 {
	return map[string]float64{"alpha": d.impl.Alpha, "beta": d.impl.Beta}
}
func (d beta) Sampler(src rand.Source) Sampler {
	impl := d.impl
	impl.Src = src
	return impl
}

type logNormal struct{ impl distuv.LogNormal }

func (d logNormal) Family() Family  { return LogNormal }
func (d logNormal) Mean() float64   { return d.impl.Mean() }
func (d logNormal) StdDev() float64 { return d.impl.StdDev() }
func (d logNormal) Params() map[string]float64 {
	return map[string]float64{"mu": d.impl.Mu, "sigma": d.impl.Sigma}
}
func (d logNormal) Sampler(src rand.Source) Sampler {
	impl := d.impl
	impl.Src = src
	return impl
}

type chiSquared struct{ impl distuv.ChiSquared }

func (d chiSquared) Family() Family  { return ChiSquared }
func (d chiSquared) Mean() float64   { return d.impl.Mean() }
func (d chiSquared) StdDev() float64 { return d.impl.StdDev() }
func (d chiSquared) Params() map[string]float64 {
	return map[string]float64{"df": d.impl.K}
}
func (d chiSquared) Sampler(src rand.Source) Sampler {
	impl := d.impl
	impl.Src = src
	return impl
}

type weibull struct{ impl distuv.Weibull }

func (d weibull) Family() Family  { return Weibull }
func (d weibull) Mean() float64   { return d.impl.Mean() }
func (d weibull) StdDev() float64 { return d.impl.StdDev() }
func (d weibull) Params() map[string]float64 {
	return map[string]float64{"shape": d.impl.K, "scale": d.impl.Lambda}
}
func (d weibull) Sampler(src rand.Source) Sampler {
	impl := d.impl
	impl.Src = src
	return impl
}
