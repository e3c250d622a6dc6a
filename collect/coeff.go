package collect

import (
	"math/big"

	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/numval"
)

// splitCoefficient splits an operand into its numeric coefficient and
// symbolic base. Bare literals report the multiplicative identity as
// their base, which is how callers recognize purely numeric operands.
//
//	3        → (3, 1)
//	x        → (1, x)
//	Negate(x) → (-1, x)
//	Multiply(2, x, y) → (2, Multiply(x, y))
func splitCoefficient(e expr.Expr) (numval.Value, expr.Expr) {
	switch n := e.(type) {
	case *expr.Number:
		return n.Value(), expr.One
	case *expr.Function:
		switch {
		case n.Op() == expr.OpNegate && n.Arity() == 1:
			c, base := splitCoefficient(n.Operand(0))
			return c.Neg(), base
		case n.Op() == expr.OpMultiply:
			coeff := numval.Int(1)
			rest := make([]expr.Expr, 0, n.Arity())
			for _, op := range n.Operands() {
				switch f := op.(type) {
				case *expr.Number:
					coeff = coeff.Mul(f.Value())
				case *expr.Function:
					if f.Op() == expr.OpNegate && f.Arity() == 1 {
						coeff = coeff.Neg()
						rest = append(rest, f.Operand(0))
						continue
					}
					rest = append(rest, op)
				default:
					rest = append(rest, op)
				}
			}
			switch len(rest) {
			case 0:
				return coeff, expr.One
			case 1:
				return coeff, rest[0]
			default:
				return coeff, expr.Fn(expr.OpMultiply, rest...)
			}
		}
	}
	return numval.Int(1), e
}

// renderScaled rebuilds coefficient·base with the canonical special
// cases: 1·b is b, -1·b is Negate(b), and a Multiply base splices its
// operands behind the literal instead of nesting.
func renderScaled(coeff numval.Value, base expr.Expr) expr.Expr {
	if base.Same(expr.One) {
		return expr.Num(coeff)
	}
	switch {
	case coeff.IsZero():
		return expr.Zero
	case coeff.IsOne():
		return base
	case coeff.IsNegOne():
		return expr.Neg(base)
	}
	if f, ok := expr.FunctionOf(base, expr.OpMultiply); ok {
		ops := make([]expr.Expr, 0, f.Arity()+1)
		ops = append(ops, expr.Num(coeff))
		ops = append(ops, f.Operands()...)
		return expr.Fn(expr.OpMultiply, ops...)
	}
	return expr.Mul(expr.Num(coeff), base)
}

// ratNum wraps a big.Rat as the smallest numeric value that holds it
// exactly.
func ratNum(r *big.Rat) numval.Value {
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		return numval.Rat(r.Num().Int64(), r.Denom().Int64())
	}
	return numval.BigRat(r)
}

// exactRat extracts the operand's exact rational value, when it is a
// finite exact rational literal (no radical, no imaginary part).
func exactRat(e expr.Expr) (*big.Rat, bool) {
	v, ok := expr.NumberOf(e)
	if !ok {
		return nil, false
	}
	return v.AsRational()
}

var (
	ratOne  = big.NewRat(1, 1)
	ratHalf = big.NewRat(1, 2)
)
