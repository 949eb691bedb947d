// Package smallmat is a compact dense-matrix arithmetic library for
// small, fixed-size problems.
//
// What is in smallmat?
//
//	A pure-Go, allocation-per-result toolkit built around one type:
//		• Dense: row-major float64 grid with bounds-checked access
//		• Element-wise ops: Add, Sub, Neg, Scale
//		• Linear algebra: Mul, Transpose, Trace
//		• Closed forms: Det and Inverse for 1×1 and 2×2
//		• gonum bridges for everything bigger
//
// Why choose smallmat?
//
//   - Small surface – a dozen pure functions over one type
//   - Fail-fast – sentinel errors, matched with errors.Is, never panics on input
//   - No aliasing – every result owns fresh storage; operands stay untouched
//
// Everything lives in one subpackage:
//
//	matrix/   — Dense, constructors, kernels, comparison, gonum interop
//
// Quick example:
//
//	| 1 2 |⁻¹   | -2    1   |
//	| 3 4 |   = |  1.5 -0.5 |
//
//	go get github.com/katalvlaran/smallmat/matrix
package smallmat
