// SPDX-License-Identifier: MIT

// Package centrality: functional configuration shared by PageRank and HITS.
//
// Defaults are part of the public contract:
//
//	PageRank: alpha=0.85, personalization=nil, max_iter=100, tol=1e-6,
//	          nstart=nil, weight="weight", dangling=nil
//	HITS:     max_iter=100, tol=1e-6, nstart=nil, normalized=true
//
// Option setters never panic. The resolved Options are validated once per
// call (struct tags, go-playground/validator) and any violation is surfaced
// as ErrOptionViolation before the graph is touched.
package centrality

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults (single source of truth).
const (
	// DefaultAlpha is the PageRank damping factor.
	DefaultAlpha = 0.85

	// DefaultMaxIter bounds the number of power iterations.
	DefaultMaxIter = 100

	// DefaultTol is the L1 convergence tolerance (PageRank compares against N*tol).
	DefaultTol = 1.0e-6

	// DefaultWeight is the edge attribute name recorded for PageRank.
	DefaultWeight = "weight"

	// DefaultNormalized makes HITS scale hubs and authorities to sum to 1.
	DefaultNormalized = true
)

// Option mutates Options. The same Option type configures PageRank and HITS;
// settings an algorithm does not read are ignored by it.
type Option func(*Options)

// Options holds the effective configuration of one call.
type Options struct {
	// Alpha is the damping factor, in [0, 1].
	Alpha float64 `validate:"finite,gte=0,lte=1"`

	// MaxIter is the iteration bound, ≥ 0.
	MaxIter int `validate:"gte=0"`

	// Tol is the convergence tolerance, finite and ≥ 0.
	Tol float64 `validate:"finite,gte=0"`

	// Weight names the edge attribute the adjacency matrix was built from.
	// It is recorded for interface compatibility only: the engines read the
	// matrix as already weighted. Build the matrix with the same key, e.g.
	// digraph.Graph.Snapshot(opts.Weight).
	Weight string

	// Normalized makes HITS divide hubs and authorities by their sums.
	Normalized bool

	// OnIteration, if non-nil, is called after every power iteration with the
	// zero-based iteration index and the L1 residual of that step.
	OnIteration func(iteration int, residual float64)

	// Node-keyed mappings, stored untyped and resolved against the graph's
	// node type K at call time (see mappingFor).
	personalization any
	nstart          any
	dangling        any
}

// DefaultOptions returns the contract defaults.
func DefaultOptions() Options {
	return Options{
		Alpha:      DefaultAlpha,
		MaxIter:    DefaultMaxIter,
		Tol:        DefaultTol,
		Weight:     DefaultWeight,
		Normalized: DefaultNormalized,
	}
}

// WithAlpha sets the PageRank damping factor (probability of following an edge).
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithMaxIter sets the iteration bound. With 0 PageRank performs no iteration
// and reports non-convergence for any non-empty graph.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithTol sets the convergence tolerance.
func WithTol(tol float64) Option {
	return func(o *Options) { o.Tol = tol }
}

// WithWeight records the edge attribute name. See Options.Weight.
func WithWeight(key string) Option {
	return func(o *Options) { o.Weight = key }
}

// WithNormalized toggles HITS normalization.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithOnIteration installs a per-iteration progress hook.
func WithOnIteration(fn func(iteration int, residual float64)) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// WithPersonalization sets the PageRank teleport distribution.
// Weights must be non-negative; nodes absent from m weigh 0. A nil map restores the uniform default.
func WithPersonalization[K comparable](m map[K]float64) Option {
	return func(o *Options) { o.personalization = m }
}

// WithNStart sets the starting vector. Weights must be non-negative;
// nodes absent from m weigh 0.
func WithNStart[K comparable](m map[K]float64) Option {
	return func(o *Options) { o.nstart = m }
}

// WithDangling sets where PageRank sends the mass of zero-out-degree nodes.
// Without it the personalization vector is used. Weights must be non-negative.
func WithDangling[K comparable](m map[K]float64) Option {
	return func(o *Options) { o.dangling = m }
}

// validate is the package validator; "finite" rejects NaN and ±Inf.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(fmt.Sprintf("centrality: register finite validation: %v", err))
	}

	return v
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := validate.Struct(&o); err != nil {
		return o, formatValidationError(err)
	}

	return o, nil
}

// formatValidationError flattens validator output into one ErrOptionViolation.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s must be %s (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrOptionViolation, strings.Join(parts, "; "))
}

// mappingFor resolves a stored node-keyed mapping against node type K.
// It returns (nil, nil) when the mapping is absent (never set, or a nil map).
// Weights must be finite and non-negative.
func mappingFor[K comparable](name string, stored any) (map[K]float64, error) {
	if stored == nil {
		return nil, nil
	}
	m, ok := stored.(map[K]float64)
	if !ok {
		var zero K
		return nil, fmt.Errorf("%w: %s is %s, graph nodes are %s",
			ErrOptionViolation, name, reflect.TypeOf(stored), reflect.TypeOf(&zero).Elem())
	}
	if m == nil {
		return nil, nil
	}
	for k, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s[%v] is not finite", ErrOptionViolation, name, k)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: %s[%v]=%g is negative", ErrOptionViolation, name, k, v)
		}
	}

	return m, nil
}
