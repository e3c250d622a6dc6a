package numval

import (
	"math"
	"math/big"
	"math/cmplx"
)

// bigval is the arbitrary-precision flavor: big.Float decimal (bigPrec
// mantissa bits), big.Rat rational, big.Int radical. The imaginary
// component stays a float64 in both flavors.
//
// Canonical forms mirror the machine flavor:
//   - special:       kind ≠ KindFinite;
//   - finite exact:  dec = nil, rat reduced, rad ≥ 1 square-extracted,
//     rat = 0 ⇒ rad = 1;
//   - finite inexact: rat = 1, rad = 1, non-integral decimal in dec.
//
// bigval never mutates its components; operations allocate fresh ones.
type bigval struct {
	kind Kind
	dec  *big.Float
	rat  *big.Rat
	rad  *big.Int
	im   float64
}

// BigInt returns the exact arbitrary-precision integer n.
func BigInt(n *big.Int) Value {
	return bigNorm(nil, new(big.Rat).SetInt(n), nil, 0)
}

// BigRat returns the exact arbitrary-precision rational r.
func BigRat(r *big.Rat) Value {
	return bigNorm(nil, new(big.Rat).Set(r), nil, 0)
}

// BigFloat returns the arbitrary-precision value of f. Integral f
// constructs an exact integer; infinities map to their special values;
// everything else is an inexact decimal.
func BigFloat(f *big.Float) Value {
	d := new(big.Float).SetPrec(bigPrec).Set(f)
	return bigNorm(d, nil, nil, 0)
}

// toBig converts any Value to the arbitrary-precision flavor.
func toBig(v Value) *bigval {
	if v.IsBig() {
		return v.(*bigval)
	}
	return v.(machval).big()
}

// bigNormParts normalizes machine components that overflowed int64.
func bigNormParts(dec float64, num, den, rad int64, im float64) Value {
	var d *big.Float
	if dec != 1 {
		d = big.NewFloat(dec).SetPrec(bigPrec)
	}
	if den == 0 {
		if num == 0 {
			return NaN
		}
		return ComplexInfinity
	}
	return bigNorm(d, new(big.Rat).SetFrac64(num, den), big.NewInt(rad), im)
}

// bigNorm normalizes raw components dec·rat·√rad + im·i into a canonical
// Value. A nil dec means an exact decimal of 1; nil rat and rad default
// to 1. rad must be ≥ 0.
func bigNorm(dec *big.Float, rat *big.Rat, rad *big.Int, im float64) Value {
	if math.IsNaN(im) {
		return NaN
	}
	if math.IsInf(im, 0) {
		return ComplexInfinity
	}
	if rat == nil {
		rat = new(big.Rat).SetInt64(1)
	}
	if rad == nil {
		rad = big.NewInt(1)
	}
	if dec != nil {
		if dec.IsInf() {
			if im != 0 {
				return ComplexInfinity
			}
			if (dec.Sign() > 0) == (rat.Sign() >= 0) {
				return PosInfinity
			}
			return NegInfinity
		}
		if dec.Cmp(bigOneFloat) == 0 {
			dec = nil
		} else if dec.Sign() == 0 {
			rat = new(big.Rat)
		}
	}
	if rad.Sign() == 0 {
		rat = new(big.Rat)
	}
	if rat.Sign() == 0 {
		return &bigval{kind: KindFinite, rat: new(big.Rat), rad: big.NewInt(1), im: im}
	}
	if rad.Cmp(oneInt) > 0 {
		outside, inside := extractSquaresBig(rad)
		if outside.Cmp(oneInt) > 0 {
			rat = new(big.Rat).Mul(rat, new(big.Rat).SetInt(outside))
		}
		rad = inside
	} else {
		rad = big.NewInt(1)
	}
	if dec == nil {
		return &bigval{kind: KindFinite, rat: rat, rad: rad, im: im}
	}
	// Inexact: collapse everything into one decimal at bigPrec.
	f := new(big.Float).SetPrec(bigPrec).Set(dec)
	f.Mul(f, new(big.Float).SetPrec(bigPrec).SetRat(rat))
	if rad.Cmp(oneInt) > 0 {
		s := new(big.Float).SetPrec(bigPrec).SetInt(rad)
		f.Mul(f, s.Sqrt(s))
	}
	return bigFloatNorm(f, im)
}

// bigFloatNorm builds the canonical value for a collapsed decimal f plus im.
func bigFloatNorm(f *big.Float, im float64) Value {
	if f.IsInf() {
		if im != 0 {
			return ComplexInfinity
		}
		if f.Sign() > 0 {
			return PosInfinity
		}
		return NegInfinity
	}
	if f.IsInt() {
		n, _ := f.Int(nil)
		return &bigval{kind: KindFinite, rat: new(big.Rat).SetInt(n), rad: big.NewInt(1), im: im}
	}
	return &bigval{kind: KindFinite, dec: f, rat: new(big.Rat).SetInt64(1), rad: big.NewInt(1), im: im}
}

var bigOneFloat = big.NewFloat(1)

// realBig approximates the real component at bigPrec.
func (b *bigval) realBig() *big.Float {
	f := new(big.Float).SetPrec(bigPrec)
	if b.dec != nil {
		f.Set(b.dec)
	} else {
		f.SetInt64(1)
	}
	f.Mul(f, new(big.Float).SetPrec(bigPrec).SetRat(b.rat))
	if b.rad.Cmp(oneInt) > 0 {
		s := new(big.Float).SetPrec(bigPrec).SetInt(b.rad)
		f.Mul(f, s.Sqrt(s))
	}
	return f
}

func (b *bigval) Kind() Kind  { return b.kind }
func (b *bigval) IsBig() bool { return true }

func (b *bigval) IsExact() bool {
	return b.kind == KindFinite && b.dec == nil && imIntegral(b.im)
}

func (b *bigval) IsZero() bool {
	return b.kind == KindFinite && b.dec == nil && b.rat.Sign() == 0 && b.im == 0
}

func (b *bigval) IsOne() bool {
	return b.kind == KindFinite && b.dec == nil && b.im == 0 &&
		b.rad.Cmp(oneInt) == 0 && b.rat.Cmp(bigOneRat) == 0
}

func (b *bigval) IsNegOne() bool {
	return b.kind == KindFinite && b.dec == nil && b.im == 0 &&
		b.rad.Cmp(oneInt) == 0 && b.rat.Cmp(bigNegOneRat) == 0
}

func (b *bigval) IsInteger() bool {
	return b.kind == KindFinite && b.dec == nil && b.im == 0 &&
		b.rad.Cmp(oneInt) == 0 && b.rat.IsInt()
}

var (
	bigOneRat    = big.NewRat(1, 1)
	bigNegOneRat = big.NewRat(-1, 1)
)

func (b *bigval) Sign() int {
	switch b.kind {
	case KindPosInf:
		return 1
	case KindNegInf:
		return -1
	case KindNaN, KindComplexInf:
		return 0
	}
	s := b.rat.Sign()
	if b.dec != nil && b.dec.Sign() < 0 {
		s = -s
	}
	return s
}

func (b *bigval) Neg() Value {
	switch b.kind {
	case KindNaN, KindComplexInf:
		return b
	case KindPosInf:
		return NegInfinity
	case KindNegInf:
		return PosInfinity
	}
	if b.dec == nil {
		return &bigval{kind: KindFinite, rat: new(big.Rat).Neg(b.rat), rad: b.rad, im: -b.im}
	}
	return &bigval{kind: KindFinite, dec: new(big.Float).Neg(b.dec), rat: b.rat, rad: b.rad, im: -b.im}
}

func (b *bigval) Inv() Value {
	switch b.kind {
	case KindNaN:
		return NaN
	case KindPosInf, KindNegInf, KindComplexInf:
		return BigInt(big.NewInt(0))
	}
	if b.IsZero() {
		return ComplexInfinity
	}
	if b.dec == nil && b.im == 0 {
		// 1/(p/q·√r) = q/(p·r)·√r.
		pr := new(big.Rat).Mul(b.rat, new(big.Rat).SetInt(b.rad))
		return bigNorm(nil, new(big.Rat).Inv(pr), new(big.Int).Set(b.rad), 0)
	}
	if b.dec == nil && b.rat.Sign() == 0 {
		return bigNorm(nil, new(big.Rat), nil, -1/b.im)
	}
	if b.im == 0 {
		f := new(big.Float).SetPrec(bigPrec).SetInt64(1)
		return bigFloatNorm(f.Quo(f, b.realBig()), 0)
	}
	c := 1 / complex(b.Float64(), b.im)
	return bigFloatNorm(big.NewFloat(real(c)).SetPrec(bigPrec), imag(c))
}

func (b *bigval) Abs() Value {
	switch b.kind {
	case KindNaN:
		return NaN
	case KindPosInf, KindNegInf, KindComplexInf:
		return PosInfinity
	}
	switch {
	case b.im == 0:
		if b.Sign() < 0 {
			return b.Neg()
		}
		return b
	case b.rat.Sign() == 0 && b.dec == nil:
		return bigFloatNorm(new(big.Float).SetPrec(bigPrec).SetFloat64(math.Abs(b.im)), 0)
	default:
		re, _ := b.realBig().Float64()
		return bigFloatNorm(big.NewFloat(math.Hypot(re, b.im)).SetPrec(bigPrec), 0)
	}
}

func (b *bigval) Sqrt() Value {
	switch b.kind {
	case KindNaN:
		return NaN
	case KindPosInf:
		return PosInfinity
	case KindNegInf, KindComplexInf:
		return ComplexInfinity
	}
	switch {
	case b.IsZero():
		return BigInt(big.NewInt(0))
	case b.dec == nil && b.im == 0 && b.rat.Sign() > 0 && b.rad.Cmp(oneInt) == 0:
		// √(p/q) = √(p·q)/q.
		pq := new(big.Int).Mul(b.rat.Num(), b.rat.Denom())
		outside, inside := extractSquaresBig(pq)
		r := new(big.Rat).SetFrac(outside, new(big.Int).Set(b.rat.Denom()))
		return bigNorm(nil, r, inside, 0)
	case b.dec == nil && b.im == 0 && b.rat.Sign() < 0:
		r := b.Neg().Sqrt()
		return bigNorm(nil, new(big.Rat), nil, r.Float64())
	case b.im == 0 && b.dec != nil && b.dec.Sign() > 0:
		f := new(big.Float).SetPrec(bigPrec).Set(b.dec)
		return bigFloatNorm(f.Sqrt(f), 0)
	default:
		c := cmplx.Sqrt(complex(b.Float64(), b.im))
		return bigFloatNorm(big.NewFloat(real(c)).SetPrec(bigPrec), imag(c))
	}
}

func (b *bigval) Add(o Value) Value {
	ob := toBig(o)
	if v, done := addSpecial(b.kind, ob.kind); done {
		return v
	}
	im := b.im + ob.im
	switch {
	case b.dec == nil && ob.dec == nil:
		if b.rat.Sign() == 0 {
			return bigNorm(nil, new(big.Rat).Set(ob.rat), new(big.Int).Set(ob.rad), im)
		}
		if ob.rat.Sign() == 0 {
			return bigNorm(nil, new(big.Rat).Set(b.rat), new(big.Int).Set(b.rad), im)
		}
		if b.rad.Cmp(ob.rad) == 0 {
			return bigNorm(nil, new(big.Rat).Add(b.rat, ob.rat), new(big.Int).Set(b.rad), im)
		}
		return bigFloatNorm(new(big.Float).SetPrec(bigPrec).Add(b.realBig(), ob.realBig()), im)
	default:
		return bigFloatNorm(new(big.Float).SetPrec(bigPrec).Add(b.realBig(), ob.realBig()), im)
	}
}

func (b *bigval) Sub(o Value) Value { return b.Add(o.Neg()) }

func (b *bigval) Mul(o Value) Value {
	ob := toBig(o)
	if v, done := mulSpecial(b, ob); done {
		return v
	}
	if b.IsZero() || ob.IsZero() {
		return BigInt(big.NewInt(0))
	}
	switch {
	case b.im == 0 && ob.im == 0 && b.dec == nil && ob.dec == nil:
		return bigNorm(nil, new(big.Rat).Mul(b.rat, ob.rat), new(big.Int).Mul(b.rad, ob.rad), 0)
	case b.im == 0 && ob.im == 0:
		return bigFloatNorm(new(big.Float).SetPrec(bigPrec).Mul(b.realBig(), ob.realBig()), 0)
	case b.IsExact() && ob.IsExact() && b.rat.IsInt() && ob.rat.IsInt() &&
		b.rad.Cmp(oneInt) == 0 && ob.rad.Cmp(oneInt) == 0 &&
		b.rat.Num().IsInt64() && ob.rat.Num().IsInt64() &&
		gaussSmall(b.rat.Num().Int64(), b.im) && gaussSmall(ob.rat.Num().Int64(), ob.im):
		// Gaussian integers: (a + p·i)(c + q·i) = (ac − pq) + (aq + cp)·i.
		a, c := b.rat.Num().Int64(), ob.rat.Num().Int64()
		p, q := int64(b.im), int64(ob.im)
		return bigNorm(nil, new(big.Rat).SetInt64(a*c-p*q), nil, float64(a*q+c*p))
	default:
		c := complex(b.Float64(), b.im) * complex(ob.Float64(), ob.im)
		return bigFloatNorm(big.NewFloat(real(c)).SetPrec(bigPrec), imag(c))
	}
}

func (b *bigval) Div(o Value) Value { return b.Mul(o.Inv()) }

func (b *bigval) Pow(exp Value) Value { return powValue(b, exp) }

func (b *bigval) GCD(o Value) Value {
	x, xok := b.AsRational()
	y, yok := o.AsRational()
	if !xok || !yok {
		return NaN
	}
	return ratGCD(x, y, true)
}

func (b *bigval) Float64() float64 {
	switch b.kind {
	case KindNaN:
		return math.NaN()
	case KindPosInf, KindComplexInf:
		return math.Inf(1)
	case KindNegInf:
		return math.Inf(-1)
	}
	f, _ := b.realBig().Float64()
	return f
}

func (b *bigval) Im() float64 {
	if b.kind != KindFinite {
		return 0
	}
	return b.im
}

func (b *bigval) AsRational() (*big.Rat, bool) {
	if b.kind != KindFinite || b.dec != nil || b.rad.Cmp(oneInt) != 0 || b.im != 0 {
		return nil, false
	}
	return new(big.Rat).Set(b.rat), true
}

func (b *bigval) AsInt64() (int64, bool) {
	if !b.IsInteger() || !b.rat.Num().IsInt64() {
		return 0, false
	}
	return b.rat.Num().Int64(), true
}

func (b *bigval) Equal(o Value) bool {
	if b.kind == KindNaN || o.Kind() == KindNaN {
		return false
	}
	if b.kind != KindFinite || o.Kind() != KindFinite {
		return b.kind == o.Kind()
	}
	ob := toBig(o)
	if b.dec == nil && ob.dec == nil {
		return b.rad.Cmp(ob.rad) == 0 && b.rat.Cmp(ob.rat) == 0 && b.im == ob.im
	}
	return b.realBig().Cmp(ob.realBig()) == 0 && b.im == ob.im
}

func (b *bigval) Same(o Value) bool {
	if b.kind != o.Kind() {
		return false
	}
	if b.kind != KindFinite {
		return true
	}
	ob := toBig(o)
	if (b.dec == nil) != (ob.dec == nil) {
		return false
	}
	if math.Float64bits(b.im) != math.Float64bits(ob.im) {
		return false
	}
	if b.dec == nil {
		return b.rat.Cmp(ob.rat) == 0 && b.rad.Cmp(ob.rad) == 0
	}
	return b.dec.Cmp(ob.dec) == 0
}

func (b *bigval) Cmp(o Value) int {
	if ra, rb := kindRank(b.kind), kindRank(o.Kind()); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if b.kind != KindFinite {
		return 0
	}
	ob := toBig(o)
	if b.dec == nil && ob.dec == nil && b.rad.Cmp(ob.rad) == 0 {
		if c := b.rat.Cmp(ob.rat); c != 0 {
			return c
		}
		return cmpFloat(b.im, ob.im)
	}
	if c := b.realBig().Cmp(ob.realBig()); c != 0 {
		return c
	}
	if c := cmpFloat(b.im, ob.im); c != 0 {
		return c
	}
	return cmpBool(b.dec != nil, ob.dec != nil)
}

func (b *bigval) String() string {
	switch b.kind {
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
	case b.dec != nil:
		re = b.dec.Text('g', -1)
	case b.rat.Sign() == 0:
		re = "0"
	case b.rad.Cmp(oneInt) == 0:
		re = b.rat.RatString()
	default:
		s := "sqrt(" + b.rad.String() + ")"
		switch {
		case b.rat.Cmp(bigOneRat) == 0:
			re = s
		case b.rat.Cmp(bigNegOneRat) == 0:
			re = "-" + s
		default:
			re = b.rat.RatString() + "*" + s
		}
	}
	return withImag(re, b.rat.Sign() == 0 && b.dec == nil, b.im)
}
