// Package expr defines the closed expression model: kinds, the sealed
// Expr interface, and the operator table shared by every consumer.
package expr

// Kind discriminates the three expression variants. The set is closed:
// every Expr is exactly one of Number, Symbol or Function, so a switch
// over Kind (or a type switch over the three node types) is exhaustive.
type Kind uint8

const (
	// KindNumber marks numeric literals.
	KindNumber Kind = iota

	// KindSymbol marks named atoms.
	KindSymbol

	// KindFunction marks operator applications with ordered operands.
	KindFunction
)

// String returns a short human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindSymbol:
		return "Symbol"
	case KindFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Expr is a symbolic expression node. Implementations are limited to
// *Number, *Symbol and *Function; the unexported method seals the set so
// consumers can match exhaustively.
//
// Nodes are immutable after construction. Symbols carry only their name
// and no definition back-references, so expression trees cannot form
// cycles.
type Expr interface {
	// Kind reports the variant.
	Kind() Kind

	// Same reports structural equality: same variant, same canonical
	// content, operand-wise for functions. Numbers compare by canonical
	// form (exactness included), so Int(1)/2 is not Same as 0.5.
	Same(Expr) bool

	// String renders the function-call diagnostic form, e.g. Add(x, 3).
	String() string

	isExpr()
}

// Canonical operator names. Operators are plain strings so hosts can add
// their own; the names below are the ones this module gives semantics to.
const (
	// OpAdd is n-ary addition.
	OpAdd = "Add"

	// OpMultiply is n-ary multiplication.
	OpMultiply = "Multiply"

	// OpNegate is unary additive inverse.
	OpNegate = "Negate"

	// OpPower is binary exponentiation: Power(base, exponent).
	OpPower = "Power"

	// OpDivide is binary division: Divide(numerator, denominator).
	OpDivide = "Divide"

	// OpSqrt is unary principal square root.
	OpSqrt = "Sqrt"

	// OpSequence carries an ordered splice of expressions; it is the
	// binding form for sequence wildcards and flattens into its parent's
	// operand list on substitution.
	OpSequence = "Sequence"
)

// IsCommutative reports whether the operator's operand order is
// semantically irrelevant.
func IsCommutative(op string) bool {
	return op == OpAdd || op == OpMultiply
}

// IsAssociative reports whether nested applications of the operator
// flatten into one operand list.
func IsAssociative(op string) bool {
	return op == OpAdd || op == OpMultiply
}

// Identity returns the operator's identity element, for the operators
// that have one (0 for Add, 1 for Multiply).
func Identity(op string) (Expr, bool) {
	switch op {
	case OpAdd:
		return Zero, true
	case OpMultiply:
		return One, true
	default:
		return nil, false
	}
}
