// Package matrix_test contains unit tests for Equal, AllClose and EqualApprox.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/smallmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	ok, err := matrix.Equal(a, a.Clone())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.Equal(a, MustFromRows(t, [][]float64{{1, 2, 3, 4}}))
	require.NoError(t, err)
	require.False(t, ok, "different shapes are unequal, not an error")

	ok, err = matrix.Equal(a, MustFromRows(t, [][]float64{{1, 2}, {3, 4.0000001}}))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	inf, nan := math.Inf(1), math.NaN()
	tests := []struct {
		name       string
		a, b       [][]float64
		rtol, atol float64
		want       bool
	}{
		{"exact", [][]float64{{1, 2}}, [][]float64{{1, 2}}, 0, 0, true},
		{"within atol", [][]float64{{1}}, [][]float64{{1 + 1e-10}}, 0, 1e-9, true},
		{"outside atol", [][]float64{{1}}, [][]float64{{1 + 1e-6}}, 0, 1e-9, false},
		{"within rtol", [][]float64{{1000}}, [][]float64{{1000.5}}, 1e-3, 0, true},
		{"negative tol normalized", [][]float64{{1}}, [][]float64{{1.1}}, 0, -0.2, true},
		{"same inf", [][]float64{{inf}}, [][]float64{{inf}}, 0, 0, true},
		{"opposite inf", [][]float64{{inf}}, [][]float64{{-inf}}, 1, 1, false},
		{"nan", [][]float64{{nan}}, [][]float64{{nan}}, 1, 1, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.AllClose(MustFromRows(t, tc.a), MustFromRows(t, tc.b), tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := matrix.AllClose(MustDense(t, 1, 2), MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(MustDense(t, 1, 1), MustDense(t, 1, 1), nan, 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestEqualApprox(t *testing.T) {
	x, y := 0.1, 0.2 // runtime sum; constant folding would make it exact
	a := MustFromRows(t, [][]float64{{x + y}})
	b := MustFromRows(t, [][]float64{{0.3}})

	ok, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.EqualApprox(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.EqualApprox(a, b, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.False(t, ok)
}
