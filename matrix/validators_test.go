// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/smallmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateClosedForm checks the documented order: nil → square → size.
func TestValidateClosedForm(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateClosedForm(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateClosedForm(MustDense(t, 3, 4)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateClosedForm(MustDense(t, 3, 3)), matrix.ErrUnsupportedSize)
	require.NoError(t, matrix.ValidateClosedForm(MustDense(t, 1, 1)))
	require.NoError(t, matrix.ValidateClosedForm(MustDense(t, 2, 2)))

	// a foreign 0×0 implementation is rejected as a shape error
	require.ErrorIs(t, matrix.ValidateClosedForm(empty{}), matrix.ErrInvalidDimensions)
}

// empty is a degenerate 0×0 Matrix that Dense constructors never produce.
type empty struct{}

func (empty) Rows() int { return 0 }
func (empty) Cols() int { return 0 }
func (empty) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (empty) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (e empty) Clone() matrix.Matrix { return e }

// TestDet_DegenerateForeignMatrix ensures size-0 input fails instead of indexing.
func TestDet_DegenerateForeignMatrix(t *testing.T) {
	_, err := matrix.Det(empty{})
	require.ErrorIs(t, err, matrix.ErrShape)
	_, err = matrix.Inverse(empty{})
	require.ErrorIs(t, err, matrix.ErrShape)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

func TestValidateGrid(t *testing.T) {
	r, c, err := matrix.ValidateGrid([][]float64{{1, 2}, {3, 4}, {5, 6}}, false)
	require.NoError(t, err)
	require.Equal(t, [2]int{3, 2}, [2]int{r, c})

	_, _, err = matrix.ValidateGrid([][]float64{{1, 2}, {3, 4, 5}}, false)
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, _, err = matrix.ValidateGrid([][]float64{{1, math.NaN()}}, true)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "cell (0,1)")
}
