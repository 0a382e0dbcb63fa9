// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/jacobi/internal/logging"
	"github.com/katalvlaran/jacobi/restriction"
)

// Options configures a Solver.
//
// ExtraVectors: restriction vectors beyond the minimal separating set
// (default 0: an under-determined system fails fast).
// Cache: memo table; nil disables memoisation in Expansions.
// Metrics: optional Prometheus instrumentation.
// Logger: optional structured tracing.
// Selector: options forwarded to restriction.FindCompleteSet.
type Options struct {
	ExtraVectors int
	Cache        *Cache
	Metrics      *Metrics
	Logger       *logging.Logger
	Selector     []restriction.Option
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns a Solver configuration with a private cache.
func DefaultOptions() Options {
	return Options{Cache: NewCache()}
}

// WithExtraVectors asks for n restriction vectors beyond the minimal set.
// Panics if n < 0.
func WithExtraVectors(n int) Option {
	if n < 0 {
		panic("solver: WithExtraVectors(n): n must be non-negative")
	}

	return func(o *Options) { o.ExtraVectors = n }
}

// WithCache shares c between solvers; nil disables memoisation.
func WithCache(c *Cache) Option {
	return func(o *Options) { o.Cache = c }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithLogger enables structured tracing.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSelectorOptions forwards options to the restriction-vector search.
func WithSelectorOptions(opts ...restriction.Option) Option {
	return func(o *Options) { o.Selector = append(o.Selector, opts...) }
}
