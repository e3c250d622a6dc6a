package numval_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/solwyrm/kanon/numval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstructors_Exactness verifies which constructors produce exact
// values and which produce inexact decimals.
func TestConstructors_Exactness(t *testing.T) {
	assert.True(t, numval.Int(3).IsExact(), "integers are exact")
	assert.True(t, numval.Rat(1, 2).IsExact(), "rationals are exact")
	assert.False(t, numval.Float(0.1).IsExact(), "non-integral floats are inexact")
	assert.True(t, numval.Float(2).IsExact(), "integral floats normalize to exact integers")
	assert.True(t, numval.Float(2).IsInteger(), "integral floats are integers")
	assert.True(t, numval.Imag(2).IsExact(), "integral imaginary components are exact")
	assert.False(t, numval.Imag(0.5).IsExact(), "fractional imaginary components are inexact")
}

// TestRat_CanonicalForm checks rational reduction and the zero-denominator
// value semantics: x/0 is ComplexInfinity, 0/0 is NaN, never an error.
func TestRat_CanonicalForm(t *testing.T) {
	assert.True(t, numval.Rat(2, 4).Same(numval.Rat(1, 2)), "rationals reduce")
	assert.True(t, numval.Rat(1, -2).Same(numval.Rat(-1, 2)), "sign moves to the numerator")
	assert.Equal(t, numval.KindComplexInf, numval.Rat(1, 0).Kind(), "x/0 is ComplexInfinity")
	assert.Equal(t, numval.KindNaN, numval.Rat(0, 0).Kind(), "0/0 is NaN")
}

// TestEqual_VersusSame contrasts numeric equality with canonical-form
// equality across exactness and flavors.
func TestEqual_VersusSame(t *testing.T) {
	assert.True(t, numval.Rat(1, 2).Equal(numval.Float(0.5)), "1/2 equals 0.5 numerically")
	assert.False(t, numval.Rat(1, 2).Same(numval.Float(0.5)), "1/2 is not canonically 0.5")
	assert.False(t, numval.NaN.Equal(numval.NaN), "NaN equals nothing")
	assert.True(t, numval.NaN.Same(numval.NaN), "NaN is canonically NaN")
	assert.True(t, numval.Int(2).Same(numval.BigInt(big.NewInt(2))), "Same ignores flavor")
}

// TestAdd_ExactRationals verifies exact rational accumulation and the
// infectious inexactness rule.
func TestAdd_ExactRationals(t *testing.T) {
	half := numval.Rat(1, 4).Add(numval.Rat(1, 4))
	assert.True(t, half.Same(numval.Rat(1, 2)), "1/4 + 1/4 = 1/2 exactly")

	mixed := numval.Rat(1, 4).Add(numval.Float(0.1))
	assert.False(t, mixed.IsExact(), "exact + inexact is inexact")
	assert.InDelta(t, 0.35, mixed.Float64(), 1e-12)
}

// TestRadical_Algebra checks square-factor extraction, same-radical sums
// and radical products.
func TestRadical_Algebra(t *testing.T) {
	root8 := numval.Int(8).Sqrt()
	require.True(t, root8.IsExact(), "sqrt(8) stays exact")
	assert.Equal(t, "2*sqrt(2)", root8.String(), "sqrt(8) normalizes to 2*sqrt(2)")

	sum := numval.Int(2).Sqrt().Add(root8)
	assert.Equal(t, "3*sqrt(2)", sum.String(), "sqrt(2) + 2*sqrt(2) = 3*sqrt(2)")
	assert.True(t, sum.IsExact())

	prod := numval.Int(2).Sqrt().Mul(numval.Int(2).Sqrt())
	assert.True(t, prod.Same(numval.Int(2)), "sqrt(2)·sqrt(2) = 2 exactly")

	mixedRad := numval.Int(2).Sqrt().Add(numval.Int(3).Sqrt())
	assert.False(t, mixedRad.IsExact(), "distinct radicals degrade to a decimal in binary Add")

	half := numval.Rat(1, 2).Sqrt()
	assert.Equal(t, "1/2*sqrt(2)", half.String(), "sqrt(1/2) = sqrt(2)/2 exactly")
	assert.True(t, half.IsExact())
}

// TestSqrt_NegativeValues verifies imaginary results for negative
// radicands: exact when the root is integral.
func TestSqrt_NegativeValues(t *testing.T) {
	i2 := numval.Int(-4).Sqrt()
	assert.True(t, i2.IsExact(), "sqrt(-4) = 2i is exact")
	assert.Equal(t, 0.0, i2.Float64(), "sqrt(-4) has no real part")
	assert.Equal(t, 2.0, i2.Im())
	assert.Equal(t, "2i", i2.String())

	ir2 := numval.Int(-2).Sqrt()
	assert.False(t, ir2.IsExact(), "sqrt(-2) carries a fractional imaginary part")
	assert.InDelta(t, math.Sqrt2, ir2.Im(), 1e-12)
}

// TestSpecialValues_Arithmetic walks the indeterminate-form grid: every
// outcome is a value, never a panic.
func TestSpecialValues_Arithmetic(t *testing.T) {
	assert.Equal(t, numval.KindNaN, numval.PosInfinity.Add(numval.NegInfinity).Kind(), "∞ + −∞")
	assert.Equal(t, numval.KindPosInf, numval.PosInfinity.Add(numval.Int(5)).Kind(), "∞ + finite")
	assert.Equal(t, numval.KindNaN, numval.PosInfinity.Mul(numval.Int(0)).Kind(), "∞ · 0")
	assert.Equal(t, numval.KindNegInf, numval.PosInfinity.Mul(numval.Int(-2)).Kind(), "∞ · negative")
	assert.Equal(t, numval.KindPosInf, numval.NegInfinity.Mul(numval.NegInfinity).Kind(), "−∞ · −∞")
	assert.Equal(t, numval.KindComplexInf, numval.Int(1).Div(numval.Int(0)).Kind(), "1/0")
	assert.Equal(t, numval.KindNaN, numval.Int(0).Div(numval.Int(0)).Kind(), "0/0")
	assert.Equal(t, numval.KindComplexInf, numval.ComplexInfinity.Mul(numval.Int(3)).Kind(), "∞̃ · finite")
	assert.Equal(t, numval.KindNaN, numval.ComplexInfinity.Add(numval.PosInfinity).Kind(), "∞̃ + ∞")
	assert.Equal(t, numval.KindComplexInf, numval.ComplexInfinity.Add(numval.Int(7)).Kind(), "∞̃ + finite")
	assert.Equal(t, numval.KindNaN, numval.NaN.Mul(numval.Int(2)).Kind(), "NaN absorbs")
	assert.True(t, numval.PosInfinity.Inv().IsZero(), "1/∞ = 0")
}

// TestPow_ExactPaths verifies integer and half-integer exponents keep
// exactness, and everything else degrades to floats.
func TestPow_ExactPaths(t *testing.T) {
	assert.True(t, numval.Int(2).Pow(numval.Int(10)).Same(numval.Int(1024)), "2^10")
	assert.True(t, numval.Rat(2, 3).Pow(numval.Int(-2)).Same(numval.Rat(9, 4)), "(2/3)^-2 = 9/4")
	assert.Equal(t, "sqrt(2)", numval.Int(2).Pow(numval.Rat(1, 2)).String(), "2^(1/2)")
	assert.True(t, numval.Int(4).Pow(numval.Rat(3, 2)).Same(numval.Int(8)), "4^(3/2) = 8")
	assert.False(t, numval.Int(2).Pow(numval.Float(0.3)).IsExact(), "float exponents are inexact")
	assert.Equal(t, numval.KindNaN, numval.Int(0).Pow(numval.Int(0)).Kind(), "0^0 is NaN")
	assert.Equal(t, numval.KindComplexInf, numval.Int(0).Pow(numval.Int(-1)).Kind(), "0^-1")
	assert.Equal(t, numval.KindNaN, numval.PosInfinity.Pow(numval.Int(0)).Kind(), "∞^0 is NaN")
}

// TestGCD_RationalDomain verifies the rational gcd and its NaN domain
// boundary for inexact operands.
func TestGCD_RationalDomain(t *testing.T) {
	assert.True(t, numval.Int(12).GCD(numval.Int(18)).Same(numval.Int(6)))
	assert.True(t, numval.Rat(1, 2).GCD(numval.Rat(1, 3)).Same(numval.Rat(1, 6)))
	assert.True(t, numval.Int(0).GCD(numval.Int(7)).Same(numval.Int(7)), "gcd(0, x) = |x|")
	assert.Equal(t, numval.KindNaN, numval.Float(2.5).GCD(numval.Int(5)).Kind(), "inexact operands have no gcd")
	assert.Equal(t, numval.KindNaN, numval.Int(2).Sqrt().GCD(numval.Int(2)).Kind(), "radicals have no gcd")
}

// TestImaginary_Arithmetic verifies gaussian-integer products stay exact.
func TestImaginary_Arithmetic(t *testing.T) {
	assert.True(t, numval.Imag(2).Mul(numval.Imag(3)).Same(numval.Int(-6)), "2i·3i = −6")
	assert.True(t, numval.Imag(1).Mul(numval.Imag(1)).Same(numval.Int(-1)), "i² = −1")

	p := numval.Complex(1, 2).Mul(numval.Complex(3, -1))
	assert.Equal(t, 5.0, p.Float64(), "(1+2i)(3−i) = 5+5i")
	assert.Equal(t, 5.0, p.Im())
	assert.True(t, p.IsExact())

	assert.True(t, numval.Complex(3, 4).Abs().Same(numval.Int(5)), "|3+4i| = 5")
}

// TestMachine_PromotesToBigOnOverflow verifies that exact machine results
// beyond int64 promote to the arbitrary-precision flavor instead of
// overflowing.
func TestMachine_PromotesToBigOnOverflow(t *testing.T) {
	huge := numval.Int(math.MaxInt64 / 2).Mul(numval.Int(8))
	require.True(t, huge.IsBig(), "overflowing products promote")
	assert.True(t, huge.IsExact(), "promotion keeps exactness")

	want := new(big.Int).Mul(big.NewInt(math.MaxInt64/2), big.NewInt(8))
	assert.True(t, huge.Same(numval.BigInt(want)))
}

// TestBigFlavor_Arithmetic verifies the arbitrary-precision flavor and
// mixed-flavor promotion.
func TestBigFlavor_Arithmetic(t *testing.T) {
	a := numval.BigRat(big.NewRat(1, 3))
	b := numval.BigRat(big.NewRat(1, 6))
	sum := a.Add(b)
	assert.True(t, sum.IsBig())
	assert.True(t, sum.Same(numval.BigRat(big.NewRat(1, 2))))

	mixed := numval.Rat(1, 3).Add(b)
	assert.True(t, mixed.IsBig(), "machine + big promotes")
	assert.True(t, mixed.Equal(numval.Rat(1, 2)))

	root := numval.BigInt(big.NewInt(8)).Sqrt()
	assert.Equal(t, "2*sqrt(2)", root.String())
	assert.True(t, root.IsExact())
}

// TestCmp_CanonicalOrder verifies the deterministic sort order used for
// canonical sortation.
func TestCmp_CanonicalOrder(t *testing.T) {
	ordered := []numval.Value{
		numval.NegInfinity,
		numval.Int(-5),
		numval.Rat(1, 2),
		numval.Float(0.5), // exact sorts before inexact at equal magnitude
		numval.Int(3),
		numval.PosInfinity,
		numval.ComplexInfinity,
		numval.NaN,
	}
	for i := 0; i < len(ordered)-1; i++ {
		assert.Negative(t, ordered[i].Cmp(ordered[i+1]),
			"expected %s < %s", ordered[i], ordered[i+1])
	}
}

// TestString_Rendering spot-checks the diagnostic forms.
func TestString_Rendering(t *testing.T) {
	assert.Equal(t, "-1/2", numval.Rat(-1, 2).String())
	assert.Equal(t, "i", numval.Imag(1).String())
	assert.Equal(t, "-i", numval.Imag(-1).String())
	assert.Equal(t, "1-2i", numval.Complex(1, -2).String())
	assert.Equal(t, "NaN", numval.NaN.String())
	assert.Equal(t, "-Infinity", numval.NegInfinity.String())
	assert.Equal(t, "0", numval.Int(0).String())
}

// TestInv_ExactForms verifies exact inverses through the radical identity
// 1/√r = √r/r.
func TestInv_ExactForms(t *testing.T) {
	assert.True(t, numval.Rat(2, 3).Inv().Same(numval.Rat(3, 2)))

	inv := numval.Int(8).Sqrt().Inv()
	require.True(t, inv.IsExact())
	assert.Equal(t, "1/4*sqrt(2)", inv.String(), "1/(2√2) = √2/4")
	assert.InDelta(t, 1/(2*math.Sqrt2), inv.Float64(), 1e-12)

	assert.Equal(t, numval.KindComplexInf, numval.Int(0).Inv().Kind(), "1/0")
}
