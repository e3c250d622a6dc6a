package collect

import (
	"math/big"
	"sort"

	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/numval"
)

// Product is the result of collecting factors: a running numeric
// coefficient plus (base, rational exponent) entries merged by
// structural equality. Construct with NewProduct; the collector is
// immutable afterwards.
type Product struct {
	opts    Options
	coeff   numval.Value
	factors []factorEntry
}

type factorEntry struct {
	base expr.Expr
	exp  *big.Rat
}

// NewProduct collects N factor expressions into canonical product form.
//
// Description:
//
//	Nested Multiply nodes flatten, Negate factors fold their sign into
//	the coefficient, numeric literals fold through the exact kernel
//	(zero kills the product, infinities follow the kernel's grid), and
//	the remaining factors decompose into (base, rational exponent)
//	pairs. A power of a product distributes across its operands, a power
//	of a quotient splits into numerator and inverted denominator, and a
//	Sqrt factor contributes exponent 1/2. Like bases accumulate
//	exponents by exact rational addition.
//
// Algorithm Outline:
//
//	1. Recursively decompose each factor, scaling the running exponent:
//	   Multiply distributes it, Divide negates it for the denominator,
//	   Power multiplies it by a rational exponent literal, Sqrt halves
//	   it. Negate folds (-1)^exponent into the coefficient for integer
//	   exponents.
//	2. Numeric bases fold base^exponent into the coefficient.
//	3. Symbolic bases merge into the factor list by Same, adding
//	   exponents; entries that cancel to exponent zero vanish at
//	   assembly.
//	4. Assembly orders factors by degree bucket (exponent exactly 1,
//	   positive integers, positive fractionals, negative integers,
//	   negative fractionals), tie-broken by exponent value, then by the
//	   configured comparator on bases.
//
// Complexity: O(n·m) merging plus O(k log k) assembly, where n is the
// decomposed factor count, m the distinct-base count, k the output
// arity.
//
// Errors: none. Indeterminate coefficient combinations resolve to NaN
// or ComplexInfinity values.
func NewProduct(factorList []expr.Expr, opts ...Option) *Product {
	p := &Product{opts: buildOptions(opts), coeff: numval.Int(1)}
	for _, f := range factorList {
		p.add(f, ratOne)
	}
	return p
}

func (p *Product) add(e expr.Expr, exp *big.Rat) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *expr.Number:
		p.foldLiteral(n.Value(), exp)
		return
	case *expr.Function:
		switch {
		case n.Op() == expr.OpMultiply:
			for _, op := range n.Operands() {
				p.add(op, exp)
			}
			return
		case n.Op() == expr.OpNegate && n.Arity() == 1 && exp.IsInt():
			if exp.Num().Bit(0) == 1 {
				p.coeff = p.coeff.Neg()
			}
			p.add(n.Operand(0), exp)
			return
		case n.Op() == expr.OpDivide && n.Arity() == 2:
			p.add(n.Operand(0), exp)
			p.add(n.Operand(1), new(big.Rat).Neg(exp))
			return
		case n.Op() == expr.OpSqrt && n.Arity() == 1:
			p.add(n.Operand(0), new(big.Rat).Mul(exp, ratHalf))
			return
		case n.Op() == expr.OpPower && n.Arity() == 2:
			if r, ok := exactRat(n.Operand(1)); ok {
				p.add(n.Operand(0), new(big.Rat).Mul(exp, r))
				return
			}
		}
	}
	p.merge(e, exp)
}

// foldLiteral folds base^exp into the running coefficient through the
// kernel, so zeros and infinities resolve by its grid rather than by
// scan order.
func (p *Product) foldLiteral(v numval.Value, exp *big.Rat) {
	if exp.Cmp(ratOne) != 0 {
		v = v.Pow(ratNum(exp))
	}
	p.coeff = p.coeff.Mul(v)
}

func (p *Product) merge(base expr.Expr, exp *big.Rat) {
	for i := range p.factors {
		if p.factors[i].base.Same(base) {
			p.factors[i].exp = new(big.Rat).Add(p.factors[i].exp, exp)
			return
		}
	}
	p.factors = append(p.factors, factorEntry{base: base, exp: new(big.Rat).Set(exp)})
}

// AsExpression assembles the canonical product under the configured
// mode. ModeExpression keeps negative exponents inline; ModeRational
// assembles the Divide form; ModeNumeric collapses the coefficient.
func (p *Product) AsExpression() expr.Expr {
	if p.opts.Mode == ModeRational {
		return p.AsRationalExpression()
	}
	return p.assembleFlat(p.opts.Mode)
}

// N assembles the numerically evaluated product: the coefficient
// collapses to its decimal evaluation, symbolic factors stay symbolic.
func (p *Product) N() expr.Expr {
	return p.assembleFlat(ModeNumeric)
}

// AsNumeratorDenominator partitions the grouped factors by exponent
// sign and returns both sides of the fraction bar, each assembled with
// positive exponents. The coefficient follows the configured mode:
// ModeRational splits an exact rational across the bar, ModeNumeric
// collapses it into the numerator, ModeExpression keeps it whole in the
// numerator.
func (p *Product) AsNumeratorDenominator() (expr.Expr, expr.Expr) {
	if abs, ok := p.absorbing(); ok {
		return abs, expr.One
	}

	coeff := p.coeff
	if p.opts.Mode == ModeNumeric {
		coeff = numval.Decimal(coeff)
	}
	var numLit, denLit numval.Value
	numLit = coeff
	if p.opts.Mode == ModeRational {
		if r, ok := coeff.AsRational(); ok {
			numLit = ratNum(new(big.Rat).SetFrac(r.Num(), big.NewInt(1)))
			denLit = ratNum(new(big.Rat).SetFrac(r.Denom(), big.NewInt(1)))
		}
	}

	var numOps, denOps []expr.Expr
	for _, f := range p.sorted() {
		if f.exp.Sign() >= 0 {
			numOps = append(numOps, renderFactor(f.base, f.exp))
		} else {
			denOps = append(denOps, renderFactor(f.base, new(big.Rat).Neg(f.exp)))
		}
	}
	return assembleSide(numLit, numOps), assembleSide(denLit, denOps)
}

// AsRationalExpression assembles numerator over denominator, omitting
// the Divide node when the denominator is the identity.
func (p *Product) AsRationalExpression() expr.Expr {
	num, den := p.AsNumeratorDenominator()
	if den.Same(expr.One) {
		return num
	}
	return expr.Div(num, den)
}

func (p *Product) absorbing() (expr.Expr, bool) {
	switch p.coeff.Kind() {
	case numval.KindNaN:
		return expr.NaN, true
	case numval.KindComplexInf:
		// Directionless infinity absorbs every factor; a signed infinity
		// keeps them, their sign still matters.
		return expr.ComplexInfinity, true
	}
	if p.coeff.IsZero() {
		return expr.Zero, true
	}
	return nil, false
}

func (p *Product) assembleFlat(mode Mode) expr.Expr {
	if abs, ok := p.absorbing(); ok {
		return abs
	}
	coeff := p.coeff
	if mode == ModeNumeric {
		coeff = numval.Decimal(coeff)
	}
	ops := make([]expr.Expr, 0, len(p.factors))
	for _, f := range p.sorted() {
		ops = append(ops, renderFactor(f.base, f.exp))
	}
	return assembleSide(coeff, ops)
}

// sorted returns the surviving factors in degree-bucket order; entries
// whose exponents cancelled to zero are dropped.
func (p *Product) sorted() []factorEntry {
	out := make([]factorEntry, 0, len(p.factors))
	for _, f := range p.factors {
		if f.exp.Sign() != 0 {
			out = append(out, f)
		}
	}
	cmp := p.opts.Comparator
	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := degreeBucket(out[i].exp), degreeBucket(out[j].exp)
		if bi != bj {
			return bi < bj
		}
		if c := out[i].exp.Cmp(out[j].exp); c != 0 {
			return c < 0
		}
		return cmp(out[i].base, out[j].base) < 0
	})
	return out
}

// degreeBucket ranks exponents: exactly 1, positive integers, positive
// fractionals, negative integers, negative fractionals.
func degreeBucket(exp *big.Rat) int {
	switch {
	case exp.Cmp(ratOne) == 0:
		return 0
	case exp.Sign() > 0 && exp.IsInt():
		return 1
	case exp.Sign() > 0:
		return 2
	case exp.IsInt():
		return 3
	default:
		return 4
	}
}

func renderFactor(base expr.Expr, exp *big.Rat) expr.Expr {
	if exp.Cmp(ratOne) == 0 {
		return base
	}
	return expr.Pow(base, expr.Num(ratNum(exp)))
}

// assembleSide rebuilds literal·factors with the canonical 1/-1
// special cases shared with the term collector.
func assembleSide(lit numval.Value, factors []expr.Expr) expr.Expr {
	if lit == nil {
		lit = numval.Int(1)
	}
	switch len(factors) {
	case 0:
		return expr.Num(lit)
	case 1:
		return renderScaled(lit, factors[0])
	}
	switch {
	case lit.IsOne():
		return expr.Fn(expr.OpMultiply, factors...)
	case lit.IsNegOne():
		return expr.Neg(expr.Fn(expr.OpMultiply, factors...))
	}
	ops := make([]expr.Expr, 0, len(factors)+1)
	ops = append(ops, expr.Num(lit))
	ops = append(ops, factors...)
	return expr.Fn(expr.OpMultiply, ops...)
}
