// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names used across the
// restriction pipeline, so every stage logs lattices, bounds and
// dimensions under the same keys.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Field keys shared by all packages.
const (
	KeyLattice   = "lattice"
	KeyBound     = "bound"
	KeyWeight    = "weight"
	KeyDimension = "dimension"
	KeyVectors   = "vectors"
	KeyRows      = "rows"
	KeyCols      = "cols"
	KeyStage     = "stage"
)

// Logger wraps slog.Logger with pipeline-specific helpers.
type Logger struct {
	*slog.Logger
}

// New wraps handler. A nil handler discards all output.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = discardHandler{}
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewText returns a human-readable logger writing to w (stderr if nil).
func NewText(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}

	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSON returns a JSON logger writing to w (stderr if nil).
func NewJSON(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}

	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// discardHandler mirrors slog.DiscardHandler (Go 1.24+) for older toolchains.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Noop returns a logger that drops everything.
func Noop() *Logger { return New(nil) }

// OrNoop returns l, or a no-op logger when l is nil.
func OrNoop(l *Logger) *Logger {
	if l == nil {
		return Noop()
	}

	return l
}

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// WithLattice tags records with the lattice key.
func (l *Logger) WithLattice(key string) *Logger {
	return &Logger{Logger: l.Logger.With(KeyLattice, key)}
}

// WithStage tags records with a pipeline stage name.
func (l *Logger) WithStage(stage string) *Logger {
	return &Logger{Logger: l.Logger.With(KeyStage, stage)}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels;
// anything else is info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
