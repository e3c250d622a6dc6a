package pattern

import "github.com/solwyrm/kanon/expr"

// Substitution maps wildcard names to their bound expressions. Single
// wildcards bind the matched node; sequence wildcards bind a
// Sequence(...) node carrying the matched operands in order.
type Substitution map[string]expr.Expr

// Get returns the binding for a wildcard name.
func (s Substitution) Get(name string) (expr.Expr, bool) {
	v, ok := s[name]
	return v, ok
}

// Apply instantiates a template: every bound wildcard symbol is
// replaced by its binding, and Sequence values splice into the
// surrounding operand list. Unbound wildcards and everything else pass
// through unchanged; subtrees without bindings are shared, not copied.
func (s Substitution) Apply(template expr.Expr) expr.Expr {
	if template == nil {
		return nil
	}
	switch n := template.(type) {
	case *expr.Symbol:
		if kind, name := Classify(n); kind != KindLiteral && name != "" {
			if v, ok := s[name]; ok {
				return v
			}
		}
		return n
	case *expr.Function:
		changed := false
		ops := make([]expr.Expr, 0, n.Arity())
		for _, op := range n.Operands() {
			inst := s.Apply(op)
			if seq, ok := expr.SequenceOf(inst); ok && n.Op() != expr.OpSequence {
				changed = true
				ops = append(ops, seq...)
				continue
			}
			if inst != op {
				changed = true
			}
			ops = append(ops, inst)
		}
		if !changed {
			return n
		}
		return expr.Fn(n.Op(), ops...)
	default:
		return template
	}
}
