package expr

import (
	"strings"

	"github.com/solwyrm/kanon/numval"
)

// Number is a numeric literal wrapping a numval.Value. The value may be
// exact (integers, rationals, radicals, Gaussian integers), a decimal
// approximation, or one of the special values NaN, ±Infinity and
// ComplexInfinity: all of them are ordinary leaves, never panics.
type Number struct {
	val numval.Value
}

// Num wraps a numeric value as an expression leaf. A nil value is
// normalized to exact zero.
func Num(v numval.Value) *Number {
	if v == nil {
		v = numval.Int(0)
	}
	return &Number{val: v}
}

// Int returns the exact integer literal n.
func Int(n int64) *Number { return &Number{val: numval.Int(n)} }

// Rat returns the exact rational literal num/den.
func Rat(num, den int64) *Number { return &Number{val: numval.Rat(num, den)} }

// Float returns the literal for f. Integral floats normalize to exact
// integers, mirroring the numeric kernel.
func Float(f float64) *Number { return &Number{val: numval.Float(f)} }

// Value returns the wrapped numeric value.
func (n *Number) Value() numval.Value { return n.val }

// Kind reports KindNumber.
func (n *Number) Kind() Kind { return KindNumber }

// Same reports canonical numeric equality with another node.
func (n *Number) Same(other Expr) bool {
	o, ok := other.(*Number)
	return ok && n.val.Same(o.val)
}

// String renders the canonical numeric form.
func (n *Number) String() string { return n.val.String() }

func (n *Number) isExpr() {}

// Symbol is a named atom. Two symbols are interchangeable exactly when
// their names are equal; a symbol carries no binding or definition.
type Symbol struct {
	name string
}

// Sym returns the symbol with the given name.
func Sym(name string) *Symbol { return &Symbol{name: name} }

// Name returns the symbol's name.
func (s *Symbol) Name() string { return s.name }

// Kind reports KindSymbol.
func (s *Symbol) Kind() Kind { return KindSymbol }

// Same reports name equality with another node.
func (s *Symbol) Same(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && s.name == o.name
}

// String returns the symbol's name.
func (s *Symbol) String() string { return s.name }

func (s *Symbol) isExpr() {}

// Function is an operator applied to an ordered operand list. The
// operator is a plain string; the canonical names live in the Op*
// constants, and hosts may introduce their own.
type Function struct {
	op       string
	operands []Expr
}

// Fn applies op to the given operands. The operand slice is copied, so
// later mutation of the argument does not alias into the node. Nil
// operands are dropped.
func Fn(op string, operands ...Expr) *Function {
	ops := make([]Expr, 0, len(operands))
	for _, o := range operands {
		if o != nil {
			ops = append(ops, o)
		}
	}
	return &Function{op: op, operands: ops}
}

// Op returns the operator name.
func (f *Function) Op() string { return f.op }

// Operands returns the operand list. The returned slice is shared with
// the node and must be treated as read-only.
func (f *Function) Operands() []Expr { return f.operands }

// Operand returns the i-th operand.
func (f *Function) Operand(i int) Expr { return f.operands[i] }

// Arity returns the number of operands.
func (f *Function) Arity() int { return len(f.operands) }

// Kind reports KindFunction.
func (f *Function) Kind() Kind { return KindFunction }

// Same reports equal operator and pairwise-Same operands.
func (f *Function) Same(other Expr) bool {
	o, ok := other.(*Function)
	if !ok || f.op != o.op || len(f.operands) != len(o.operands) {
		return false
	}
	for i, e := range f.operands {
		if !e.Same(o.operands[i]) {
			return false
		}
	}
	return true
}

// String renders the node as Op(arg1, arg2, ...).
func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString(f.op)
	sb.WriteByte('(')
	for i, o := range f.operands {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(o.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (f *Function) isExpr() {}
