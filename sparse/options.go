// SPDX-License-Identifier: MIT

// Package sparse: functional configuration carried by every Matrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions helper that applies them over the defaults.
//
// Notes:
//   - Results of Transpose/Add/Multiply inherit the receiver's Options, so a
//     logger injected once follows the whole computation chain.
//   - The default logger discards everything; the package never writes to
//     the process-wide slog default on its own.
package sparse

import (
	"log/slog"
	"runtime"
)

// DefaultWorkers is the worker count used by MultiplyParallel when neither the
// call nor WithWorkers names one. Zero means runtime.GOMAXPROCS(0).
const DefaultWorkers = 0

const (
	panicNilLogger      = "sparse: WithLogger: logger must be non-nil"
	panicWorkersInvalid = "sparse: WithWorkers: workers must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds per-matrix settings. Fields are unexported; use WithX.
type Options struct {
	logger  *slog.Logger // debug trace of accumulation merges
	workers int          // default MultiplyParallel fan-out (0 = GOMAXPROCS)
}

// defaultOptions returns the zero-configuration settings.
func defaultOptions() Options {
	return Options{
		logger:  slog.New(slog.DiscardHandler),
		workers: DefaultWorkers,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger routes the package's debug trace to l.
// Add logs every position match it folds into an existing entry.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithWorkers sets the default worker count for MultiplyParallel.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// resolveWorkers picks the effective fan-out: explicit > option > GOMAXPROCS.
func (o Options) resolveWorkers(explicit int) int {
	if explicit > 0 {
		return explicit
	}
	if o.workers > 0 {
		return o.workers
	}

	return runtime.GOMAXPROCS(0)
}
