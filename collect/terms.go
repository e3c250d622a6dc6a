package collect

import (
	"sort"

	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/numval"
)

// Terms is the result of collecting addends: merged coefficient/base
// pairs plus the deferred numeric side list, ready for assembly under
// any literal policy. Construct with NewTerms; the collector is
// immutable afterwards.
type Terms struct {
	opts      Options
	absorbing expr.Expr
	posInf    int
	negInf    int
	entries   []termEntry
	numeric   []numval.Value
}

type termEntry struct {
	coeff numval.Value
	base  expr.Expr
}

// NewTerms collects N addend expressions into canonical sum form.
//
// Description:
//
//	Nested Add and Negate wrappers are flattened into a single signed
//	operand stream. Each operand splits into (coefficient, base); bare
//	literals defer into a numeric side list that is later folded through
//	numval.Sum, so exact parts survive float cancellation. Operands with
//	a structurally equal base merge by adding coefficients.
//
// Algorithm Outline:
//
//	1. Scan operands. A NaN or ComplexInfinity operand short-circuits
//	   the whole collection to that value. Signed infinities are
//	   counted; both signs present resolve to NaN at assembly, a single
//	   sign dominates every finite term.
//	2. Flatten Add/Negate recursively, tracking the sign.
//	3. Split (coefficient, base). Identity bases defer to the numeric
//	   side list; other bases merge into the entry list by Same.
//	4. Assembly folds the side list exactly, drops cancelled entries,
//	   renders coefficient·base with the 1/-1 special cases, and orders
//	   the result with the configured comparator.
//
// Complexity: O(n·m) merging plus O(k log k) assembly, where n is the
// flattened operand count, m the distinct-base count, k the output
// arity.
//
// Errors: none. Indeterminate combinations become absorbing values.
func NewTerms(addends []expr.Expr, opts ...Option) *Terms {
	t := &Terms{opts: buildOptions(opts)}
	for _, a := range addends {
		if t.absorbing != nil {
			break
		}
		t.scan(a, false)
	}
	return t
}

func (t *Terms) scan(e expr.Expr, negated bool) {
	if t.absorbing != nil || e == nil {
		return
	}
	if f, ok := e.(*expr.Function); ok {
		switch {
		case f.Op() == expr.OpAdd:
			for _, op := range f.Operands() {
				if t.absorbing != nil {
					return
				}
				t.scan(op, negated)
			}
			return
		case f.Op() == expr.OpNegate && f.Arity() == 1:
			t.scan(f.Operand(0), !negated)
			return
		}
	}

	coeff, base := splitCoefficient(e)
	if negated {
		coeff = coeff.Neg()
	}
	switch coeff.Kind() {
	case numval.KindNaN:
		t.absorbing = expr.NaN
		return
	case numval.KindComplexInf:
		t.absorbing = expr.ComplexInfinity
		return
	case numval.KindPosInf:
		t.posInf++
		return
	case numval.KindNegInf:
		t.negInf++
		return
	}

	if base.Same(expr.One) {
		t.numeric = append(t.numeric, coeff)
		return
	}
	for i := range t.entries {
		if t.entries[i].base.Same(base) {
			t.entries[i].coeff = t.entries[i].coeff.Add(coeff)
			return
		}
	}
	t.entries = append(t.entries, termEntry{coeff: coeff, base: base})
}

// AsExpression assembles the canonical sum under the configured mode.
// ModeRational has no additive meaning and assembles like
// ModeExpression.
func (t *Terms) AsExpression() expr.Expr {
	return t.assemble(t.opts.Mode)
}

// N assembles the numerically evaluated sum: coefficients and the
// folded numeric side collapse to their decimal evaluation, symbolic
// bases stay symbolic.
func (t *Terms) N() expr.Expr {
	return t.assemble(ModeNumeric)
}

func (t *Terms) assemble(mode Mode) expr.Expr {
	if t.absorbing != nil {
		return t.absorbing
	}
	switch {
	case t.posInf > 0 && t.negInf > 0:
		return expr.NaN
	case t.posInf > 0:
		return expr.PositiveInfinity
	case t.negInf > 0:
		return expr.NegativeInfinity
	}

	rendered := make([]expr.Expr, 0, len(t.entries)+2)
	for _, en := range t.entries {
		coeff := en.coeff
		if mode == ModeNumeric {
			coeff = numval.Decimal(coeff)
		}
		if coeff.IsZero() {
			continue
		}
		rendered = append(rendered, renderScaled(coeff, en.base))
	}

	if mode == ModeNumeric {
		if len(t.numeric) > 0 {
			acc := numval.Int(0)
			for _, v := range t.numeric {
				acc = acc.Add(v)
			}
			acc = numval.Decimal(acc)
			if !acc.IsZero() {
				rendered = append(rendered, expr.Num(acc))
			}
		}
	} else {
		for _, v := range numval.Sum(t.numeric) {
			rendered = append(rendered, expr.Num(v))
		}
	}

	switch len(rendered) {
	case 0:
		return expr.Zero
	case 1:
		return rendered[0]
	}
	cmp := t.opts.Comparator
	sort.SliceStable(rendered, func(i, j int) bool {
		return cmp(rendered[i], rendered[j]) < 0
	})
	return expr.Fn(expr.OpAdd, rendered...)
}
