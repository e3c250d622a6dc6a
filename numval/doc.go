// Package numval implements exact-first numeric values for symbolic
// computation: rationals with square-root radicals and imaginary parts,
// in a machine flavor and an arbitrary-precision flavor behind one
// operation set.
//
// 🚀 What is a numeric value here?
//
//	Every Value is  decimal · (num/den) · √radical + im·i.
//	Exact values keep decimal = 1 and live entirely in the rational and
//	radical components; inexact values collapse into the decimal. The
//	invariant "decimal ≠ 1 ⇒ inexact" drives all exactness bookkeeping,
//	so 1/4 + 1/4 is exactly 1/2 while 0.1 stays a float.
//
// ✨ Key features:
//   - two flavors, one Value interface: Int/Rat/Float/Imag (machine) and
//     BigInt/BigRat/BigFloat (arbitrary precision, 128-bit decimals)
//   - machine results promote to the big flavor instead of overflowing
//   - radical algebra: √8 normalizes to 2√2, √(n/d) stays exact
//   - NaN, ±Infinity and ComplexInfinity are ordinary values with defined
//     arithmetic, never panics or errors
//   - Sum accumulates by kind so exact parts survive float cancellation:
//     Sum(0.1, −0.1, 1/4) = [1/4] exactly
//
// ⚙️ Usage:
//
//	import "github.com/solwyrm/kanon/numval"
//
//	half := numval.Rat(1, 2)
//	root := numval.Int(8).Sqrt()      // 2*sqrt(2), exact
//	mix  := half.Mul(root)            // sqrt(2), exact
//	out  := numval.Sum([]numval.Value{
//	    numval.Float(0.1), numval.Float(0.1).Neg(), numval.Rat(1, 4),
//	})                                // [1/4], exact
//
// Equality comes in two strengths: Equal is numeric (1/2 equals 0.5),
// Same is canonical (1/2 is not Same as 0.5). Cmp is a deterministic
// sort key for canonical ordering, not an arithmetic comparison.
//
// See example_test.go for runnable scenarios.
package numval
