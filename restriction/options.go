// SPDX-License-Identifier: MIT

package restriction

import (
	"github.com/katalvlaran/jacobi/internal/logging"
)

// Defaults of the restriction-vector search.
const (
	// DefaultInitialNorm is the first norm window: vectors of norm < 5.
	DefaultInitialNorm int64 = 5

	// DefaultNormIncrement widens the window once it is exhausted.
	DefaultNormIncrement int64 = 5

	// DefaultMaxNorm caps the search; generic vectors of this norm separate
	// every lattice this module is used with.
	DefaultMaxNorm int64 = 200
)

// Options configures FindCompleteSet.
//
// InitialNorm: exclusive norm bound of the first enumeration window (> 0).
// NormIncrement: growth of the window when it runs dry (> 0).
// MaxNorm: exclusive cap; reaching it yields ErrSearchExhausted (≥ InitialNorm).
// Logger: optional tracing of accepted vectors.
type Options struct {
	InitialNorm   int64
	NormIncrement int64
	MaxNorm       int64
	Logger        *logging.Logger
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns the search configuration of the restriction method.
func DefaultOptions() Options {
	return Options{
		InitialNorm:   DefaultInitialNorm,
		NormIncrement: DefaultNormIncrement,
		MaxNorm:       DefaultMaxNorm,
	}
}

// WithInitialNorm sets the first norm window.
func WithInitialNorm(n int64) Option {
	return func(o *Options) { o.InitialNorm = n }
}

// WithNormIncrement sets how far the window grows when exhausted.
func WithNormIncrement(n int64) Option {
	return func(o *Options) { o.NormIncrement = n }
}

// WithMaxNorm sets the search cap.
func WithMaxNorm(n int64) Option {
	return func(o *Options) { o.MaxNorm = n }
}

// WithLogger enables debug tracing.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func (o Options) validate() error {
	if o.InitialNorm <= 0 || o.NormIncrement <= 0 || o.MaxNorm < o.InitialNorm {
		return ErrBadNormWindow
	}

	return nil
}
