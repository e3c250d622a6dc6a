// Package expr provides the immutable symbolic expression model shared
// by the collectors, the pattern matcher and the rule engine.
//
// An expression is exactly one of three variants (the set is sealed):
//
//   - *Number   — a numeric literal wrapping numval.Value; exact
//     rationals, radical multiples, Gaussian integers, decimal
//     approximations, and the special values NaN, ±Infinity and
//     ComplexInfinity are all ordinary leaves
//   - *Symbol   — a named atom with no binding ("x", "phi", ...)
//   - *Function — an operator name applied to an ordered operand list
//
// Why a sealed set?
//
//   - Exhaustive matching — a type switch over the three node types
//     covers every expression, no defensive default arms.
//   - No cycles — symbols carry no definition back-references, so trees
//     are finite and traversals need no visited set.
//   - Cheap sharing — nodes are immutable after construction; the same
//     pointer may appear in any number of trees (Zero, One, NaN, ...).
//
// Operators are plain strings. The canonical set understood by the rest
// of the module:
//
//	OpAdd       n-ary, commutative, associative, identity 0
//	OpMultiply  n-ary, commutative, associative, identity 1
//	OpNegate    unary
//	OpPower     Power(base, exponent)
//	OpDivide    Divide(numerator, denominator)
//	OpSqrt      unary principal root
//	OpSequence  ordered splice; flattens into the parent operand list
//
// Construction:
//
//	x := expr.Sym("x")
//	e := expr.Add(expr.Mul(expr.Int(2), x), expr.Rat(1, 2))
//	e.String() // "Add(Multiply(2, x), 1/2)"
//
// Builders never canonicalize: Add(x) stays a one-operand Add node. The
// collect package owns flattening, merging and sortation.
//
// Equality and order:
//
//	Same(a, b)    structural: variant, canonical content, operand-wise.
//	              Numbers compare canonically, so Rat(1,2) is not Same
//	              as Float(0.5) even though they are numerically equal.
//	Compare(a, b) deterministic total order: numbers < symbols <
//	              functions; numbers by numval.Cmp, symbols by name,
//	              functions by operator, operands, arity.
package expr
