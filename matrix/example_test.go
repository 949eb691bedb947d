package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smallmat/matrix"
)

// ExampleInverse inverts a 2×2 matrix and multiplies back to the identity.
func ExampleInverse() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})

	det, _ := matrix.Det(a)
	tr, _ := matrix.Trace(a)
	fmt.Println("det:", det, "trace:", tr)

	inv, _ := matrix.Inverse(a)
	fmt.Print(inv)

	p, _ := matrix.Mul(a, inv)
	ok, _ := matrix.EqualApprox(p, mustIdentity(2))
	fmt.Println("a·a⁻¹ ≈ I:", ok)

	// Output:
	// det: -2 trace: 5
	// -2 1
	// 1.5 -0.5
	// a·a⁻¹ ≈ I: true
}

// ExampleScalarMul doubles the 2×2 identity.
func ExampleScalarMul() {
	i2, _ := matrix.Identity(2)
	twice, _ := matrix.ScalarMul(2, i2)
	fmt.Print(twice)

	// Output:
	// 2 0
	// 0 2
}

// ExampleDet_unsupported shows the error surface for sizes without a closed form.
func ExampleDet_unsupported() {
	i3, _ := matrix.Identity(3)
	_, err := matrix.Det(i3)
	fmt.Println(errors.Is(err, matrix.ErrUnsupportedSize))

	a, _ := matrix.Zeroes(2, 3)
	_, err = matrix.Add(a, i3)
	fmt.Println(errors.Is(err, matrix.ErrShape))

	// Output:
	// true
	// true
}

func mustIdentity(n int) *matrix.Dense {
	m, err := matrix.Identity(n)
	if err != nil {
		panic(err)
	}

	return m
}
