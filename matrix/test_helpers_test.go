// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/smallmat/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels down the materialize-through-At path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from a literal grid or fails the test.
func MustFromRows(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(grid)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", grid, err)
	}

	return m
}

// IdentityDense returns an n×n identity or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m(i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RandomFill fills m with seeded values in [-1, 1).
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// RandDense returns a seeded r×c matrix with entries in [-1, 1).
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// CompareExact fails unless got has the shape of want and identical entries.
func CompareExact(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape: got %dx%d, want %dx%d", got.Rows(), got.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = range want {
		for j = range want[i] {
			if v := MustAt(t, got, i, j); v != want[i][j] {
				t.Fatalf("[%d,%d]: got %v, want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareApprox is CompareExact with an absolute tolerance.
func CompareApprox(t testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape: got %dx%d, want %dx%d", got.Rows(), got.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = range want {
		for j = range want[i] {
			if v := MustAt(t, got, i, j); math.Abs(v-want[i][j]) > tol {
				t.Fatalf("[%d,%d]: got %v, want %v (tol %g)", i, j, v, want[i][j], tol)
			}
		}
	}
}
