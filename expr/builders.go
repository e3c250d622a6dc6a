package expr

import "github.com/solwyrm/kanon/numval"

// Shared literal leaves. Nodes are immutable, so the same pointer can
// appear in any number of trees.
var (
	// Zero is the exact integer 0, the Add identity.
	Zero = Int(0)

	// One is the exact integer 1, the Multiply identity.
	One = Int(1)

	// NegOne is the exact integer -1.
	NegOne = Int(-1)

	// NaN is the indeterminate numeric leaf.
	NaN = Num(numval.NaN)

	// PositiveInfinity is the +Infinity leaf.
	PositiveInfinity = Num(numval.PosInfinity)

	// NegativeInfinity is the -Infinity leaf.
	NegativeInfinity = Num(numval.NegInfinity)

	// ComplexInfinity is the directionless infinity leaf.
	ComplexInfinity = Num(numval.ComplexInfinity)
)

// Add builds an n-ary Add node. Operands are kept verbatim; collectors
// and the rewriter canonicalize, builders never do.
func Add(operands ...Expr) *Function { return Fn(OpAdd, operands...) }

// Mul builds an n-ary Multiply node.
func Mul(operands ...Expr) *Function { return Fn(OpMultiply, operands...) }

// Neg builds a Negate node.
func Neg(x Expr) *Function { return Fn(OpNegate, x) }

// Pow builds a Power node.
func Pow(base, exponent Expr) *Function { return Fn(OpPower, base, exponent) }

// Div builds a Divide node.
func Div(numerator, denominator Expr) *Function {
	return Fn(OpDivide, numerator, denominator)
}

// Sqrt builds a Sqrt node.
func Sqrt(x Expr) *Function { return Fn(OpSqrt, x) }

// Seq builds a Sequence node, the ordered splice bound by sequence
// wildcards. Substituting a Sequence into a Function flattens it into
// the surrounding operand list.
func Seq(operands ...Expr) *Function { return Fn(OpSequence, operands...) }

// NumberOf returns the numeric value of a literal leaf. The second
// result is false when e is not a *Number.
func NumberOf(e Expr) (numval.Value, bool) {
	n, ok := e.(*Number)
	if !ok {
		return nil, false
	}
	return n.Value(), true
}

// SequenceOf returns the elements of a Sequence node. The second result
// is false when e is not a Sequence; the returned slice is shared with
// the node and must be treated as read-only.
func SequenceOf(e Expr) ([]Expr, bool) {
	f, ok := e.(*Function)
	if !ok || f.Op() != OpSequence {
		return nil, false
	}
	return f.Operands(), true
}

// FunctionOf returns e as a *Function when it applies the given
// operator.
func FunctionOf(e Expr, op string) (*Function, bool) {
	f, ok := e.(*Function)
	if !ok || f.Op() != op {
		return nil, false
	}
	return f, true
}
