// Package matrix offers a small dense-matrix arithmetic toolkit.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 grid with bounds-checked At/Set/Row access.
//   - Constructors: NewZeros/Zeroes, NewIdentity/Identity, NewFromRows, NewFromData.
//   - Element-wise kernels: Add, Sub, Neg, Scale (and ScalarMul for α*m).
//   - Linear algebra: Mul, Transpose, Trace for any compatible shape, and the
//     closed-form Det and Inverse for 1×1 and 2×2 matrices.
//   - Comparison (Equal, AllClose, EqualApprox) and gonum bridges
//     (ToGonum, FromGonum, AsGonum).
//
// Every kernel validates first and then writes into freshly allocated storage;
// operands are never mutated, so a *Dense that nobody calls Set on can be
// shared across goroutines. Failures are sentinel errors (see errors.go);
// every shape failure matches ErrShape via errors.Is.
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(a)     // -2
//	inv, _ := matrix.Inverse(a)
//	p, _ := matrix.Mul(a, inv) // ≈ I₂
package matrix
