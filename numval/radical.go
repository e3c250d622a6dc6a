package numval

import (
	"math"
	"math/big"
)

// Integer helpers shared by both flavors: overflow-checked int64
// arithmetic, gcd, and square-factor extraction for radicands.

// radTrialBound caps trial division during square-factor extraction.
// Square factors whose prime root exceeds the bound are still caught by
// the perfect-square test on the remainder; composite leftovers above the
// bound may keep a square factor, which only costs canonical tightness,
// never correctness.
const radTrialBound = 1 << 14

// addChecked returns a+b and reports whether the sum stayed in range.
func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

// mulChecked returns a*b and reports whether the product stayed in range.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	return p, true
}

// gcd64 returns the non-negative greatest common divisor of a and b.
// gcd64(0, 0) is 0.
func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// maxSqrt64 is ⌊√MaxInt64⌋; squaring anything larger overflows.
const maxSqrt64 = int64(3037000499)

// sqrtFloor returns ⌊√n⌋ for n ≥ 0, corrected for float rounding.
func sqrtFloor(n int64) int64 {
	if n < 0 {
		return 0
	}
	s := int64(math.Sqrt(float64(n)))
	if s > maxSqrt64 {
		s = maxSqrt64
	}
	for s > 0 && s*s > n {
		s--
	}
	for s < maxSqrt64 && (s+1)*(s+1) <= n {
		s++
	}
	return s
}

// extractSquares splits n ≥ 1 into (outside, inside) with
// n = outside² · inside, extracting every square factor found by trial
// division up to radTrialBound plus a perfect-square test on the
// remainder. Reports ok=false when the running outside would overflow
// (callers then redo the reduction in the big flavor).
func extractSquares(n int64) (outside, inside int64, ok bool) {
	outside, inside = 1, n
	if n <= 1 {
		return 1, n, true
	}
	for d := int64(2); d <= radTrialBound && d*d <= inside; d++ {
		dd := d * d
		for inside%dd == 0 {
			inside /= dd
			var o bool
			if outside, o = mulChecked(outside, d); !o {
				return 0, 0, false
			}
		}
	}
	if s := sqrtFloor(inside); s > 1 && s*s == inside {
		var o bool
		if outside, o = mulChecked(outside, s); !o {
			return 0, 0, false
		}
		inside = 1
	}
	return outside, inside, true
}

// extractSquaresBig is extractSquares over big integers; it cannot fail.
// n must be ≥ 1 and is not modified.
func extractSquaresBig(n *big.Int) (outside, inside *big.Int) {
	outside = big.NewInt(1)
	inside = new(big.Int).Set(n)
	if inside.Cmp(oneInt) <= 0 {
		return outside, inside
	}
	d := big.NewInt(2)
	dd := new(big.Int)
	rem := new(big.Int)
	q := new(big.Int)
	for d.Int64() <= radTrialBound {
		dd.Mul(d, d)
		if dd.Cmp(inside) > 0 {
			break
		}
		for {
			q.QuoRem(inside, dd, rem)
			if rem.Sign() != 0 {
				break
			}
			inside.Set(q)
			outside.Mul(outside, d)
		}
		d.Add(d, oneInt)
	}
	s := new(big.Int).Sqrt(inside)
	if s.Cmp(oneInt) > 0 {
		if q.Mul(s, s); q.Cmp(inside) == 0 {
			outside.Mul(outside, s)
			inside.SetInt64(1)
		}
	}
	return outside, inside
}

var oneInt = big.NewInt(1)
