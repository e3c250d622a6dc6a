// Package numval defines the numeric value model shared by both
// precision flavors: Kind, the Value operation set, and constructors.
package numval

import "math/big"

// Kind classifies a Value. Indeterminate and infinite forms are ordinary
// values of their own Kind, never errors or panics: arithmetic on them
// follows the combination rules documented on each operation.
//
//   - KindFinite      — an ordinary finite value (exact or inexact).
//   - KindNaN         — indeterminate (0/0, ∞−∞, 0·∞, …).
//   - KindPosInf      — real +∞.
//   - KindNegInf      — real −∞.
//   - KindComplexInf  — infinite magnitude with no direction (x/0 for x≠0).
type Kind int

const (
	// KindFinite marks ordinary finite values.
	KindFinite Kind = iota

	// KindNaN marks the indeterminate value.
	KindNaN

	// KindPosInf marks real positive infinity.
	KindPosInf

	// KindNegInf marks real negative infinity.
	KindNegInf

	// KindComplexInf marks complex (unsigned) infinity.
	KindComplexInf
)

// String returns a short human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "Finite"
	case KindNaN:
		return "NaN"
	case KindPosInf:
		return "PositiveInfinity"
	case KindNegInf:
		return "NegativeInfinity"
	case KindComplexInf:
		return "ComplexInfinity"
	default:
		return "Unknown"
	}
}

// Value is a numeric value of the form
//
//	decimal · (num/den) · √radical  +  im·i
//
// where decimal is exactly 1 for exact values, num/den is a reduced
// rational, radical ≥ 1 is an integer radicand, and im is the imaginary
// component. Two flavors implement the same operation set:
//
//   - the machine flavor (float64 decimal, int64 rational and radical),
//     constructed by Int, Rat, Float and Imag;
//   - the arbitrary-precision flavor (big.Float decimal, big.Rat rational,
//     big.Int radical), constructed by BigInt, BigRat and BigFloat.
//
// Exactness bookkeeping:
//
//   - decimal ≠ 1 ⇒ the value is inexact. Inexact magnitudes live entirely
//     in the decimal component (rational and radical collapse to 1).
//   - IsExact additionally requires the imaginary component to be integral
//     or zero; the real components keep their exact form independently of im.
//   - Inexactness is infectious: any operation with an inexact operand
//     produces an inexact result, except where an exact absorbing element
//     (exact 0 in multiplication) annihilates it.
//   - Machine decimals that land exactly on an integer normalize to exact
//     integers, mirroring the underlying representation (a float64 holding
//     2.0 is indistinguishable from 2).
//
// Machine-flavor operations whose exact intermediate results exceed the
// int64 range promote the result to the arbitrary-precision flavor instead
// of overflowing; exactness is never silently corrupted.
//
// Values are immutable; every operation returns a fresh Value.
type Value interface {
	// Kind reports the value class (finite, NaN, infinities).
	Kind() Kind

	// IsBig reports whether the value is carried by the
	// arbitrary-precision flavor.
	IsBig() bool

	// IsExact reports whether the value is exact: decimal = 1 and an
	// integral-or-zero imaginary component.
	IsExact() bool

	// IsZero reports whether the value is exactly zero (real and imaginary).
	IsZero() bool

	// IsOne reports whether the value is exactly 1.
	IsOne() bool

	// IsNegOne reports whether the value is exactly −1.
	IsNegOne() bool

	// IsInteger reports whether the value is an exact integer.
	IsInteger() bool

	// Sign returns the sign of the real component: −1, 0 or +1.
	// NaN and ComplexInfinity report 0.
	Sign() int

	// Neg returns the additive inverse.
	Neg() Value

	// Inv returns the multiplicative inverse. Inv of zero is
	// ComplexInfinity; Inv of any infinity is exact zero.
	Inv() Value

	// Abs returns the magnitude. For complex values the modulus is
	// computed in floating point.
	Abs() Value

	// Sqrt returns the principal square root. Negative exact reals yield
	// imaginary values (exact when the root is integral); exact roots of
	// non-negative rationals stay exact via the radical component.
	Sqrt() Value

	// Add returns the sum. Exact operands whose radical parts cannot be
	// combined into a single radical term degrade to an inexact decimal;
	// use Sum to accumulate mixed kinds without losing exactness.
	Add(Value) Value

	// Sub returns the difference.
	Sub(Value) Value

	// Mul returns the product. Radicands multiply and square factors are
	// extracted, so exact·exact stays exact.
	Mul(Value) Value

	// Div returns the quotient. x/0 is ComplexInfinity for x ≠ 0 and NaN
	// for x = 0.
	Div(Value) Value

	// Pow returns the exponentiation. Exact integer exponents keep
	// exactness; half-integer exponents route through Sqrt; anything else
	// evaluates in floating point.
	Pow(exp Value) Value

	// GCD returns the greatest common divisor, defined on exact rationals
	// as gcd of numerators over lcm of denominators. Any inexact, radical,
	// imaginary or special operand yields NaN.
	GCD(Value) Value

	// Float64 returns the real component as a float64 approximation.
	Float64() float64

	// Im returns the imaginary component.
	Im() float64

	// AsRational returns the value as an exact rational, when it is one
	// (exact, no radical, no imaginary component).
	AsRational() (*big.Rat, bool)

	// AsInt64 returns the value as an int64, when it is an exact integer
	// in range.
	AsInt64() (int64, bool)

	// Equal reports numeric equality: 1/2 equals 0.5, NaN equals nothing
	// (itself included).
	Equal(Value) bool

	// Same reports canonical-form equality: kind, exactness and all
	// components must coincide, so 1/2 is not Same as 0.5, and NaN is
	// Same as NaN.
	Same(Value) bool

	// Cmp orders values for canonical sortation. The order is total and
	// deterministic: NegativeInfinity < finite (by real part, then
	// imaginary) < PositiveInfinity < ComplexInfinity < NaN. It is a
	// sort key, not an arithmetic comparison.
	Cmp(Value) int

	// String renders a diagnostic form such as 3, -1/2, 3/2*sqrt(5),
	// 0.1, 2i or ComplexInfinity.
	String() string
}

// Predeclared special values (machine flavor).
var (
	// NaN is the indeterminate value.
	NaN Value = machval{kind: KindNaN}

	// PosInfinity is real +∞.
	PosInfinity Value = machval{kind: KindPosInf}

	// NegInfinity is real −∞.
	NegInfinity Value = machval{kind: KindNegInf}

	// ComplexInfinity is the unsigned infinite magnitude.
	ComplexInfinity Value = machval{kind: KindComplexInf}
)

// maxSafeInt is the largest magnitude a float64 represents exactly;
// integral decimals beyond it are not normalized to exact integers.
const maxSafeInt = int64(1) << 53

// bigPrec is the mantissa precision, in bits, of arbitrary-precision
// decimal components.
const bigPrec = 128
