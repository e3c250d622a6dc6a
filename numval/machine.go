package numval

import (
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
)

// machval is the machine-precision flavor: float64 decimal, int64 rational
// and radical, float64 imaginary component.
//
// Canonical forms (maintained by machNorm):
//   - special:       kind ≠ KindFinite, numeric fields zeroed;
//   - finite exact:  dec = 1, num/den reduced with den ≥ 1, rad ≥ 1 with
//     square factors extracted, and num = 0 ⇒ den = rad = 1;
//   - finite inexact: num = den = rad = 1 and the whole real magnitude in
//     dec, never integral (integral decimals normalize to exact integers).
type machval struct {
	kind Kind
	dec  float64
	num  int64
	den  int64
	rad  int64
	im   float64
}

// Int returns the exact machine integer n.
func Int(n int64) Value {
	return machNorm(1, n, 1, 1, 0)
}

// Rat returns the exact machine rational num/den. A zero denominator
// follows the division rules: 0/0 is NaN, x/0 is ComplexInfinity.
func Rat(num, den int64) Value {
	return machNorm(1, num, den, 1, 0)
}

// Float returns the machine value of f. Integral f (within float64's exact
// range) constructs an exact integer; NaN and infinities map to their
// special values; everything else is an inexact decimal.
func Float(f float64) Value {
	return machNorm(f, 1, 1, 1, 0)
}

// Imag returns the purely imaginary machine value f·i.
func Imag(f float64) Value {
	return machNorm(1, 0, 1, 1, f)
}

// Complex returns the machine value re + im·i.
func Complex(re, im float64) Value {
	return machNorm(re, 1, 1, 1, im)
}

// Decimal returns v evaluated to its machine decimal approximation. The
// special values and nil pass through unchanged; integral results come
// back as exact integers, the machine flavor's normal form.
func Decimal(v Value) Value {
	if v == nil || v.Kind() != KindFinite {
		return v
	}
	return Complex(v.Float64(), v.Im())
}

// machNorm normalizes raw components dec·(num/den)·√rad + im·i into a
// canonical Value, promoting to the arbitrary-precision flavor when int64
// would overflow. rad must be ≥ 0.
func machNorm(dec float64, num, den, rad int64, im float64) Value {
	// Float specials first: they dominate every finite component.
	if math.IsNaN(dec) || math.IsNaN(im) {
		return NaN
	}
	if math.IsInf(im, 0) {
		return ComplexInfinity
	}
	if math.IsInf(dec, 0) {
		if im != 0 {
			return ComplexInfinity
		}
		if (dec > 0) == (num > 0) {
			return PosInfinity
		}
		return NegInfinity
	}
	if den == 0 {
		if num == 0 {
			return NaN
		}
		return ComplexInfinity
	}
	if num == math.MinInt64 || den == math.MinInt64 || rad == math.MinInt64 {
		// Negation of MinInt64 overflows; hand the edge to the big flavor.
		return bigNormParts(dec, num, den, rad, im)
	}
	if den < 0 {
		num, den = -num, -den
	}
	if rad == 0 {
		num = 0
	}
	if num == 0 || dec == 0 {
		// The real part vanishes exactly; only im survives.
		return machval{kind: KindFinite, dec: 1, num: 0, den: 1, rad: 1, im: im}
	}
	if g := gcd64(num, den); g > 1 {
		num /= g
		den /= g
	}
	if rad > 1 {
		outside, inside, ok := extractSquares(rad)
		if !ok {
			return bigNormParts(dec, num, den, rad, im)
		}
		if outside > 1 {
			var o bool
			if num, o = mulChecked(num, outside); !o {
				return bigNormParts(dec, num, den, rad, im)
			}
		}
		rad = inside
	} else {
		rad = 1
	}
	if dec == 1 {
		return machval{kind: KindFinite, dec: 1, num: num, den: den, rad: rad, im: im}
	}
	// Inexact: collapse the whole real magnitude into the decimal.
	f := dec * (float64(num) / float64(den))
	if rad > 1 {
		f *= math.Sqrt(float64(rad))
	}
	return machFloat(f, im)
}

// machFloat builds the canonical value for a collapsed real float f plus im.
func machFloat(f, im float64) Value {
	if math.IsNaN(f) {
		return NaN
	}
	if math.IsInf(f, 0) {
		if im != 0 {
			return ComplexInfinity
		}
		if f > 0 {
			return PosInfinity
		}
		return NegInfinity
	}
	if f == math.Trunc(f) && math.Abs(f) <= float64(maxSafeInt) {
		return machval{kind: KindFinite, dec: 1, num: int64(f), den: 1, rad: 1, im: im}
	}
	return machval{kind: KindFinite, dec: f, num: 1, den: 1, rad: 1, im: im}
}

// realFloat approximates the real component.
func (m machval) realFloat() float64 {
	f := m.dec * (float64(m.num) / float64(m.den))
	if m.rad > 1 {
		f *= math.Sqrt(float64(m.rad))
	}
	return f
}

// big converts m to the arbitrary-precision flavor.
func (m machval) big() *bigval {
	switch m.kind {
	case KindFinite:
	default:
		return &bigval{kind: m.kind}
	}
	b := &bigval{kind: KindFinite, rat: new(big.Rat).SetFrac64(m.num, m.den), rad: big.NewInt(m.rad), im: m.im}
	if m.dec != 1 {
		b.dec = big.NewFloat(m.dec).SetPrec(bigPrec)
	}
	return b
}

func imIntegral(im float64) bool {
	return im == math.Trunc(im)
}

func (m machval) Kind() Kind  { return m.kind }
func (m machval) IsBig() bool { return false }

func (m machval) IsExact() bool {
	return m.kind == KindFinite && m.dec == 1 && imIntegral(m.im)
}

func (m machval) IsZero() bool {
	return m.kind == KindFinite && m.dec == 1 && m.num == 0 && m.im == 0
}

func (m machval) IsOne() bool {
	return m.kind == KindFinite && m.dec == 1 && m.num == 1 && m.den == 1 && m.rad == 1 && m.im == 0
}

func (m machval) IsNegOne() bool {
	return m.kind == KindFinite && m.dec == 1 && m.num == -1 && m.den == 1 && m.rad == 1 && m.im == 0
}

func (m machval) IsInteger() bool {
	return m.kind == KindFinite && m.dec == 1 && m.den == 1 && m.rad == 1 && m.im == 0
}

func (m machval) Sign() int {
	switch m.kind {
	case KindPosInf:
		return 1
	case KindNegInf:
		return -1
	case KindNaN, KindComplexInf:
		return 0
	}
	s := 0
	switch {
	case m.num > 0:
		s = 1
	case m.num < 0:
		s = -1
	}
	if m.dec < 0 {
		s = -s
	}
	return s
}

func (m machval) Neg() Value {
	switch m.kind {
	case KindNaN, KindComplexInf:
		return m
	case KindPosInf:
		return NegInfinity
	case KindNegInf:
		return PosInfinity
	}
	if m.dec == 1 {
		return machval{kind: KindFinite, dec: 1, num: -m.num, den: m.den, rad: m.rad, im: -m.im}
	}
	return machval{kind: KindFinite, dec: -m.dec, num: 1, den: 1, rad: 1, im: -m.im}
}

func (m machval) Inv() Value {
	switch m.kind {
	case KindNaN:
		return NaN
	case KindPosInf, KindNegInf, KindComplexInf:
		return Int(0)
	}
	if m.IsZero() {
		return ComplexInfinity
	}
	if m.dec == 1 && m.im == 0 {
		// 1/(n/d·√r) = d/(n·r)·√r.
		nr, ok := mulChecked(m.num, m.rad)
		if !ok {
			return m.big().Inv()
		}
		return machNorm(1, m.den, nr, m.rad, 0)
	}
	if m.dec == 1 && m.num == 0 {
		// 1/(k·i) = −(1/k)·i.
		return machNorm(1, 0, 1, 1, -1/m.im)
	}
	c := 1 / complex(m.realFloat(), m.im)
	return machFloat(real(c), imag(c))
}

func (m machval) Abs() Value {
	switch m.kind {
	case KindNaN:
		return NaN
	case KindPosInf, KindNegInf, KindComplexInf:
		return PosInfinity
	}
	switch {
	case m.im == 0:
		if m.Sign() < 0 {
			return m.Neg()
		}
		return m
	case m.num == 0 && m.dec == 1:
		return machFloat(math.Abs(m.im), 0)
	default:
		return machFloat(math.Hypot(m.realFloat(), m.im), 0)
	}
}

func (m machval) Sqrt() Value {
	switch m.kind {
	case KindNaN:
		return NaN
	case KindPosInf:
		return PosInfinity
	case KindNegInf, KindComplexInf:
		return ComplexInfinity
	}
	switch {
	case m.IsZero():
		return Int(0)
	case m.dec == 1 && m.im == 0 && m.num > 0 && m.rad == 1:
		// √(n/d) = √(n·d)/d, exact via the radical component.
		p, ok := mulChecked(m.num, m.den)
		if !ok {
			return m.big().Sqrt()
		}
		outside, inside, ok := extractSquares(p)
		if !ok {
			return m.big().Sqrt()
		}
		return machNorm(1, outside, m.den, inside, 0)
	case m.dec == 1 && m.im == 0 && m.num < 0:
		// √x = i·√|x| for negative reals; exact when the root is integral.
		r := m.Neg().Sqrt()
		return machNorm(1, 0, 1, 1, r.Float64())
	case m.im == 0 && m.dec != 1 && m.dec > 0:
		return machFloat(math.Sqrt(m.dec), 0)
	default:
		c := cmplx.Sqrt(complex(m.realFloat(), m.im))
		return machFloat(real(c), imag(c))
	}
}

func (m machval) Add(o Value) Value {
	if o.IsBig() {
		return m.big().Add(o)
	}
	b := o.(machval)
	if v, done := addSpecial(m.kind, b.kind); done {
		return v
	}
	im := m.im + b.im
	switch {
	case m.dec == 1 && b.dec == 1:
		if m.num == 0 {
			return machNorm(1, b.num, b.den, b.rad, im)
		}
		if b.num == 0 {
			return machNorm(1, m.num, m.den, m.rad, im)
		}
		if m.rad == b.rad {
			// n1/d1·√r + n2/d2·√r = (n1·d2 + n2·d1)/(d1·d2)·√r.
			x, ok1 := mulChecked(m.num, b.den)
			y, ok2 := mulChecked(b.num, m.den)
			s, ok3 := addChecked(x, y)
			d, ok4 := mulChecked(m.den, b.den)
			if ok1 && ok2 && ok3 && ok4 {
				return machNorm(1, s, d, m.rad, im)
			}
			return m.big().Add(b.big())
		}
		// Distinct radicals cannot share one radical term; the sum
		// degrades to a decimal. Sum keeps such kinds apart instead.
		return machFloat(m.realFloat()+b.realFloat(), im)
	default:
		return machFloat(m.realFloat()+b.realFloat(), im)
	}
}

// addSpecial resolves sums where either operand is non-finite.
func addSpecial(a, b Kind) (Value, bool) {
	if a == KindNaN || b == KindNaN {
		return NaN, true
	}
	if a == KindComplexInf || b == KindComplexInf {
		// ∞̃ plus any infinity is indeterminate; plus a finite stays ∞̃.
		if a != KindFinite && b != KindFinite {
			return NaN, true
		}
		return ComplexInfinity, true
	}
	switch {
	case a == KindPosInf && b == KindNegInf, a == KindNegInf && b == KindPosInf:
		return NaN, true
	case a == KindPosInf || b == KindPosInf:
		return PosInfinity, true
	case a == KindNegInf || b == KindNegInf:
		return NegInfinity, true
	}
	return nil, false
}

func (m machval) Sub(o Value) Value { return m.Add(o.Neg()) }

func (m machval) Mul(o Value) Value {
	if o.IsBig() {
		return m.big().Mul(o)
	}
	b := o.(machval)
	if v, done := mulSpecial(m, b); done {
		return v
	}
	if m.IsZero() || b.IsZero() {
		return Int(0)
	}
	switch {
	case m.im == 0 && b.im == 0 && m.dec == 1 && b.dec == 1:
		n, ok1 := mulChecked(m.num, b.num)
		d, ok2 := mulChecked(m.den, b.den)
		r, ok3 := mulChecked(m.rad, b.rad)
		if ok1 && ok2 && ok3 {
			return machNorm(1, n, d, r, 0)
		}
		return m.big().Mul(b.big())
	case m.im == 0 && b.im == 0:
		return machFloat(m.realFloat()*b.realFloat(), 0)
	case m.IsExact() && b.IsExact() && m.den == 1 && b.den == 1 && m.rad == 1 && b.rad == 1 &&
		gaussSmall(m.num, m.im) && gaussSmall(b.num, b.im):
		// Gaussian integers: (a + p·i)(c + q·i) = (ac − pq) + (aq + cp)·i.
		// Magnitudes are bounded so every intermediate stays exact.
		re := m.num*b.num - int64(m.im)*int64(b.im)
		im := float64(m.num*int64(b.im) + b.num*int64(m.im))
		return machNorm(1, re, 1, 1, im)
	default:
		c := complex(m.realFloat(), m.im) * complex(b.realFloat(), b.im)
		return machFloat(real(c), imag(c))
	}
}

// gaussBound caps gaussian-integer components so their cross products stay
// within float64's exact integer range.
const gaussBound = int64(1) << 26

func gaussSmall(n int64, im float64) bool {
	return n <= gaussBound && n >= -gaussBound && math.Abs(im) <= float64(gaussBound)
}

// mulSpecial resolves products where either operand is non-finite.
func mulSpecial(a, b Value) (Value, bool) {
	if a.Kind() == KindNaN || b.Kind() == KindNaN {
		return NaN, true
	}
	if a.Kind() == KindComplexInf || b.Kind() == KindComplexInf {
		if a.IsZero() || b.IsZero() {
			return NaN, true
		}
		return ComplexInfinity, true
	}
	if a.Kind() == KindFinite && b.Kind() == KindFinite {
		return nil, false
	}
	// At least one signed infinity.
	if a.IsZero() || b.IsZero() {
		return NaN, true
	}
	if a.Im() != 0 || b.Im() != 0 {
		return ComplexInfinity, true
	}
	sa, sb := a.Sign(), b.Sign()
	if sa*sb > 0 {
		return PosInfinity, true
	}
	return NegInfinity, true
}

func (m machval) Div(o Value) Value { return m.Mul(o.Inv()) }

func (m machval) Pow(exp Value) Value {
	return powValue(m, exp)
}

// powValue implements Pow for both flavors; base must be machval or *bigval.
func powValue(base, exp Value) Value {
	if base.Kind() == KindNaN || exp.Kind() == KindNaN {
		return NaN
	}
	if exp.IsZero() {
		if base.IsZero() || base.Kind() != KindFinite {
			return NaN
		}
		return oneOf(base)
	}
	if exp.IsOne() {
		return base
	}
	if v, done := powSpecialBase(base, exp); done {
		return v
	}
	if base.IsZero() {
		switch {
		case exp.Sign() > 0:
			return base
		case exp.Sign() < 0:
			return ComplexInfinity
		default:
			return NaN
		}
	}
	if exp.Kind() == KindFinite {
		if er, ok := exp.AsRational(); ok {
			if er.IsInt() {
				if n := er.Num(); n.IsInt64() && n.Int64() <= 1<<30 && n.Int64() >= -(1<<30) {
					return intPow(base, n.Int64())
				}
			} else if er.Denom().Cmp(twoInt) == 0 {
				// b^(p/2) = √(b^p).
				if p := er.Num(); p.IsInt64() && p.Int64() <= 1<<20 && p.Int64() >= -(1<<20) {
					return intPow(base, p.Int64()).Sqrt()
				}
			}
		}
	}
	return floatPow(base, exp)
}

var twoInt = big.NewInt(2)

// powSpecialBase resolves exponentiation of non-finite bases.
func powSpecialBase(base, exp Value) (Value, bool) {
	switch base.Kind() {
	case KindPosInf:
		switch {
		case exp.Sign() > 0:
			return PosInfinity, true
		case exp.Sign() < 0:
			return Int(0), true
		default:
			return NaN, true
		}
	case KindNegInf:
		if exp.Sign() < 0 {
			return Int(0), true
		}
		if n, ok := exp.AsInt64(); ok {
			if n%2 == 0 {
				return PosInfinity, true
			}
			return NegInfinity, true
		}
		return ComplexInfinity, true
	case KindComplexInf:
		switch {
		case exp.Sign() > 0:
			return ComplexInfinity, true
		case exp.Sign() < 0:
			return Int(0), true
		default:
			return NaN, true
		}
	}
	return nil, false
}

// oneOf returns the multiplicative identity in v's flavor.
func oneOf(v Value) Value {
	if v.IsBig() {
		return BigInt(big.NewInt(1))
	}
	return Int(1)
}

// intPow raises base to an integer power by repeated squaring.
func intPow(base Value, n int64) Value {
	if n < 0 {
		return intPow(base.Inv(), -n)
	}
	result := oneOf(base)
	sq := base
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(sq)
		}
		n >>= 1
		if n > 0 {
			sq = sq.Mul(sq)
		}
	}
	return result
}

// floatPow evaluates base^exp in floating point, routing negative or
// complex bases (and complex exponents) through complex arithmetic.
func floatPow(base, exp Value) Value {
	if base.Im() == 0 && exp.Im() == 0 && base.Float64() >= 0 {
		return machFloat(math.Pow(base.Float64(), exp.Float64()), 0)
	}
	c := cmplx.Pow(complex(base.Float64(), base.Im()), complex(exp.Float64(), exp.Im()))
	return machFloat(real(c), imag(c))
}

func (m machval) GCD(o Value) Value {
	a, aok := m.AsRational()
	b, bok := o.AsRational()
	if !aok || !bok {
		return NaN
	}
	return ratGCD(a, b, m.IsBig() || o.IsBig())
}

// ratGCD returns gcd(numerators)/lcm(denominators), the rational gcd.
func ratGCD(a, b *big.Rat, wantBig bool) Value {
	if a.Sign() == 0 && b.Sign() == 0 {
		return Int(0)
	}
	n := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.Num()), new(big.Int).Abs(b.Num()))
	da, db := a.Denom(), b.Denom()
	g := new(big.Int).GCD(nil, nil, da, db)
	l := new(big.Int).Div(new(big.Int).Mul(da, db), g)
	r := new(big.Rat).SetFrac(n, l)
	if wantBig {
		return bigNorm(nil, r, nil, 0)
	}
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		return machNorm(1, r.Num().Int64(), r.Denom().Int64(), 1, 0)
	}
	return bigNorm(nil, r, nil, 0)
}

func (m machval) Float64() float64 {
	switch m.kind {
	case KindNaN:
		return math.NaN()
	case KindPosInf, KindComplexInf:
		return math.Inf(1)
	case KindNegInf:
		return math.Inf(-1)
	}
	return m.realFloat()
}

func (m machval) Im() float64 {
	if m.kind != KindFinite {
		return 0
	}
	return m.im
}

func (m machval) AsRational() (*big.Rat, bool) {
	if m.kind != KindFinite || m.dec != 1 || m.rad != 1 || m.im != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac64(m.num, m.den), true
}

func (m machval) AsInt64() (int64, bool) {
	if !m.IsInteger() {
		return 0, false
	}
	return m.num, true
}

func (m machval) Equal(o Value) bool {
	if m.kind == KindNaN || o.Kind() == KindNaN {
		return false
	}
	if m.kind != KindFinite || o.Kind() != KindFinite {
		return m.kind == o.Kind()
	}
	if o.IsBig() {
		return o.Equal(m)
	}
	b := o.(machval)
	if m.dec == 1 && b.dec == 1 {
		if m.rad != b.rad {
			return false
		}
		x, ok1 := mulChecked(m.num, b.den)
		y, ok2 := mulChecked(b.num, m.den)
		if ok1 && ok2 {
			return x == y && m.im == b.im
		}
		return m.big().Equal(b.big())
	}
	return m.realFloat() == b.realFloat() && m.im == b.im
}

func (m machval) Same(o Value) bool {
	if m.kind != o.Kind() {
		return false
	}
	if m.kind != KindFinite {
		return true
	}
	if o.IsBig() {
		return o.Same(m)
	}
	b := o.(machval)
	if (m.dec == 1) != (b.dec == 1) {
		return false
	}
	if m.dec == 1 {
		return m.num == b.num && m.den == b.den && m.rad == b.rad &&
			math.Float64bits(m.im) == math.Float64bits(b.im)
	}
	return math.Float64bits(m.dec) == math.Float64bits(b.dec) &&
		math.Float64bits(m.im) == math.Float64bits(b.im)
}

// kindRank orders value classes for canonical sortation.
func kindRank(k Kind) int {
	switch k {
	case KindNegInf:
		return 0
	case KindFinite:
		return 1
	case KindPosInf:
		return 2
	case KindComplexInf:
		return 3
	default:
		return 4
	}
}

func (m machval) Cmp(o Value) int {
	if ra, rb := kindRank(m.kind), kindRank(o.Kind()); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if m.kind != KindFinite {
		return 0
	}
	if o.IsBig() {
		return -o.Cmp(m)
	}
	b := o.(machval)
	if m.dec == 1 && b.dec == 1 && m.rad == b.rad {
		x, ok1 := mulChecked(m.num, b.den)
		y, ok2 := mulChecked(b.num, m.den)
		if !ok1 || !ok2 {
			return m.big().Cmp(b.big())
		}
		if c := cmp64(x, y); c != 0 {
			return c
		}
		return cmpFloat(m.im, b.im)
	}
	if c := cmpFloat(m.realFloat(), b.realFloat()); c != 0 {
		return c
	}
	if c := cmpFloat(m.im, b.im); c != 0 {
		return c
	}
	// Equal magnitudes: exact sorts before inexact for determinism.
	return cmpBool(m.dec != 1, b.dec != 1)
}

func cmp64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	default:
		return 0
	}
}

func (m machval) String() string {
	switch m.kind {
	case KindNaN:
		return "NaN"
	case KindPosInf:
		return "Infinity"
	case KindNegInf:
		return "-Infinity"
	case KindComplexInf:
		return "ComplexInfinity"
	}
	var re string
	switch {
	case m.dec != 1:
		re = strconv.FormatFloat(m.dec, 'g', -1, 64)
	case m.num == 0:
		re = "0"
	case m.rad == 1 && m.den == 1:
		re = strconv.FormatInt(m.num, 10)
	case m.rad == 1:
		re = strconv.FormatInt(m.num, 10) + "/" + strconv.FormatInt(m.den, 10)
	default:
		s := "sqrt(" + strconv.FormatInt(m.rad, 10) + ")"
		switch {
		case m.num == 1 && m.den == 1:
			re = s
		case m.num == -1 && m.den == 1:
			re = "-" + s
		case m.den == 1:
			re = strconv.FormatInt(m.num, 10) + "*" + s
		default:
			re = strconv.FormatInt(m.num, 10) + "/" + strconv.FormatInt(m.den, 10) + "*" + s
		}
	}
	return withImag(re, m.num == 0 && m.dec == 1, m.im)
}

// withImag appends the imaginary component to a rendered real part.
func withImag(re string, realZero bool, im float64) string {
	if im == 0 {
		return re
	}
	var imag string
	if imIntegral(im) && math.Abs(im) <= float64(maxSafeInt) {
		imag = strconv.FormatInt(int64(im), 10)
	} else {
		imag = strconv.FormatFloat(im, 'g', -1, 64)
	}
	switch {
	case realZero && imag == "1":
		return "i"
	case realZero && imag == "-1":
		return "-i"
	case realZero:
		return imag + "i"
	case im > 0:
		return re + "+" + imag + "i"
	default:
		return re + imag + "i"
	}
}
