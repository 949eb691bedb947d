// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and numeric
// policy. This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Consumers:
//   - NewFromRows / NewFromData read validateNaNInf.
//   - Inverse reads singularTol.
//   - EqualApprox reads eps.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by EqualApprox.
	DefaultEpsilon = 1e-9

	// DefaultSingularTolerance is the |det| threshold at or below which Inverse
	// reports ErrSingular. Zero means "exactly zero only".
	DefaultSingularTolerance = 0.0

	// DefaultValidateNaNInf toggles finite-only validation for grid ingestion
	// and Set on the resulting matrices. Off by default: any IEEE-754 value is
	// a legal entry.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid     = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularTolInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	singularTol    float64 // >= 0; DefaultSingularTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the resolved EqualApprox tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// SingularTolerance returns the resolved Inverse singularity threshold.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// ValidateNaNInf reports whether finite-only ingestion is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the absolute tolerance used by EqualApprox.
// Panics when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularTolerance sets the threshold used by Inverse: a matrix whose
// |det| <= tol is reported as ErrSingular.
// Panics when tol is NaN, ±Inf or negative.
// Complexity: O(1).
func WithSingularTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithValidateNaNInf enables finite-only validation on ingestion.
// Matrices built under this policy also reject NaN/±Inf in Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-only validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins. Pure; O(len(opts)).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		singularTol:    DefaultSingularTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// This is the canonical internal entry for every ...Option consumer.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
