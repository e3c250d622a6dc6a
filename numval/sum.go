package numval

import (
	"math"
	"math/big"
)

// Sum accumulates values without letting floating-point noise corrupt the
// exact parts. Naive repeated Add would collapse mixed kinds into decimals;
// Sum instead partitions its inputs and sums each partition exactly:
//
//   - plain rationals accumulate in exact rational arithmetic;
//   - rational·√radical terms accumulate per radicand;
//   - inexact decimals accumulate separately (the only floating partial);
//   - imaginary components accumulate on their own.
//
// Partitions that cannot unify survive as separate additive components, in
// deterministic order: rational, radical terms by first appearance, the
// decimal partial, the imaginary partial. Partials that cancel to zero are
// dropped; an empty result means the sum is exactly zero. The payoff:
// Sum(0.1, −0.1, 1/4) is exactly [1/4].
//
// Any NaN input yields [NaN]. ComplexInfinity combined with any other
// infinity is indeterminate ([NaN]), as are mixed +∞ and −∞; a lone
// infinity kind dominates every finite input.
//
// Results stay in the machine flavor unless any input carries the
// arbitrary-precision flavor or a machine partial overflows int64.
func Sum(values []Value) []Value {
	// Special values first: they decide the whole sum.
	var ciCount, posInf, negInf int
	for _, v := range values {
		switch v.Kind() {
		case KindNaN:
			return []Value{NaN}
		case KindComplexInf:
			ciCount++
		case KindPosInf:
			posInf++
		case KindNegInf:
			negInf++
		}
	}
	switch {
	case ciCount > 0 && (ciCount > 1 || posInf > 0 || negInf > 0):
		return []Value{NaN}
	case ciCount > 0:
		return []Value{ComplexInfinity}
	case posInf > 0 && negInf > 0:
		return []Value{NaN}
	case posInf > 0:
		return []Value{PosInfinity}
	case negInf > 0:
		return []Value{NegInfinity}
	}

	type radTerm struct {
		rad   *big.Int
		coeff *big.Rat
	}
	rational := new(big.Rat)
	var radOrder []*radTerm
	radIndex := make(map[string]*radTerm)
	addRad := func(rad *big.Int, coeff *big.Rat) {
		key := rad.String()
		rt, ok := radIndex[key]
		if !ok {
			rt = &radTerm{rad: new(big.Int).Set(rad), coeff: new(big.Rat)}
			radIndex[key] = rt
			radOrder = append(radOrder, rt)
		}
		rt.coeff.Add(rt.coeff, coeff)
	}
	dec := new(big.Float).SetPrec(bigPrec)
	decSeen := false
	var im float64
	anyBig := false

	for _, v := range values {
		switch x := v.(type) {
		case machval:
			im += x.im
			switch {
			case x.num == 0:
			case x.dec == 1 && x.rad == 1:
				rational.Add(rational, new(big.Rat).SetFrac64(x.num, x.den))
			case x.dec == 1:
				addRad(big.NewInt(x.rad), new(big.Rat).SetFrac64(x.num, x.den))
			default:
				dec.Add(dec, new(big.Float).SetPrec(bigPrec).SetFloat64(x.dec))
				decSeen = true
			}
		case *bigval:
			anyBig = true
			im += x.im
			switch {
			case x.dec == nil && x.rat.Sign() == 0:
			case x.dec == nil && x.rad.Cmp(oneInt) == 0:
				rational.Add(rational, x.rat)
			case x.dec == nil:
				addRad(x.rad, x.rat)
			default:
				dec.Add(dec, x.dec)
				decSeen = true
			}
		}
	}

	var out []Value
	if rational.Sign() != 0 {
		out = append(out, ratValue(rational, anyBig))
	}
	for _, rt := range radOrder {
		if rt.coeff.Sign() == 0 {
			continue
		}
		out = append(out, radValue(rt.coeff, rt.rad, anyBig))
	}
	if decSeen && dec.Sign() != 0 {
		if anyBig {
			out = append(out, bigFloatNorm(dec, 0))
		} else {
			f, _ := dec.Float64()
			out = append(out, machFloat(f, 0))
		}
	}
	if im != 0 {
		out = append(out, imagValue(im, anyBig))
	}
	return out
}

// ratValue wraps an exact rational partial in the requested flavor.
func ratValue(r *big.Rat, wantBig bool) Value {
	if !wantBig && r.Num().IsInt64() && r.Denom().IsInt64() {
		return machNorm(1, r.Num().Int64(), r.Denom().Int64(), 1, 0)
	}
	return bigNorm(nil, new(big.Rat).Set(r), nil, 0)
}

// radValue wraps an exact coeff·√rad partial in the requested flavor.
func radValue(coeff *big.Rat, rad *big.Int, wantBig bool) Value {
	if !wantBig && coeff.Num().IsInt64() && coeff.Denom().IsInt64() && rad.IsInt64() {
		return machNorm(1, coeff.Num().Int64(), coeff.Denom().Int64(), rad.Int64(), 0)
	}
	return bigNorm(nil, new(big.Rat).Set(coeff), new(big.Int).Set(rad), 0)
}

// imagValue wraps an imaginary partial in the requested flavor.
func imagValue(im float64, wantBig bool) Value {
	if math.IsNaN(im) {
		return NaN
	}
	if math.IsInf(im, 0) {
		return ComplexInfinity
	}
	if wantBig {
		return bigNorm(nil, new(big.Rat), nil, im)
	}
	return machNorm(1, 0, 1, 1, im)
}
