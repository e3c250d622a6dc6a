package rewrite

import (
	"fmt"

	"github.com/solwyrm/kanon/collect"
	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/pattern"
)

// Replace applies the rule set to e until no rule fires or limit
// applications have been made.
//
// Description:
//
//	Each iteration scans the rules in compiled order and applies the
//	first one that matches and passes its condition, exactly once, then
//	feeds the result back. With Recursive set the scan walks
//	subexpressions bottom-up, innermost first, so leaf rewrites surface
//	before their parents are retried. Outcome reports how the loop
//	ended; Steps records every intermediate value with the rule that
//	produced it.
//
// Algorithm Outline:
//
//	1. Scanning: try each rule against the current node (bottom-up over
//	   the whole tree when Recursive).
//	2. Matched: run the rule's condition over the bindings; on false,
//	   resume scanning with the next rule.
//	3. Substituting: instantiate the Template or invoke the Func.
//	4. Canonicalizing: when the option is set, rebuild the result and
//	   every rebuilt ancestor through the collectors.
//	5. Feed the result back into step 1 until nothing fires
//	   (FixedPoint), the application budget runs out (LimitReached), or
//	   Once stops the loop after the first hit.
//
// Complexity: O(limit · r · c) time for r rules and per-node match cost
// c; O(limit) space for the provenance trail.
//
// Errors:
//   - ErrNilRuleSet if rs is nil.
//   - ErrBadIterationLimit if limit < 1. The limit is a mandatory
//     parameter: identity-variation rules can re-fire on their own
//     output, and the budget is the engine's only termination
//     guarantee.
func Replace(e expr.Expr, rs *RuleSet, limit int, opts ...Option) (Result, error) {
	if rs == nil {
		return Result{}, ErrNilRuleSet
	}
	if limit < 1 {
		return Result{}, ErrBadIterationLimit
	}
	if e == nil {
		return Result{Outcome: NoMatch}, nil
	}
	g := &engine{rs: rs, opts: buildOptions(opts), fired: make(map[int]bool)}
	cur := e
	for n := 0; n < limit; n++ {
		next, because, hit := g.pass(cur)
		if !hit {
			out := FixedPoint
			if n == 0 {
				out = NoMatch
			}
			return Result{Value: cur, Outcome: out, Steps: g.steps}, nil
		}
		cur = next
		g.steps = append(g.steps, Step{Value: cur, Because: because})
		if g.opts.Verbose {
			fmt.Printf("Replace: step %d %s: %s\n", len(g.steps), because, cur)
		}
		if g.opts.Once {
			return Result{Value: cur, Outcome: LimitReached, Steps: g.steps}, nil
		}
	}
	return Result{Value: cur, Outcome: LimitReached, Steps: g.steps}, nil
}

type engine struct {
	rs    *RuleSet
	opts  Options
	steps []Step
	fired map[int]bool // indexes of Once rules that already fired
}

// pass performs at most one rule application and returns the rewritten
// root.
func (g *engine) pass(e expr.Expr) (expr.Expr, string, bool) {
	if g.opts.Recursive {
		return g.passDeep(e)
	}
	return g.applyRules(e)
}

// passDeep visits operands before their parent, so the innermost hit
// wins; every ancestor on the return path is rebuilt and, when the
// option is set, re-collected.
func (g *engine) passDeep(e expr.Expr) (expr.Expr, string, bool) {
	if f, ok := e.(*expr.Function); ok {
		for i, op := range f.Operands() {
			next, because, hit := g.passDeep(op)
			if !hit {
				continue
			}
			ops := make([]expr.Expr, f.Arity())
			copy(ops, f.Operands())
			ops[i] = next
			rebuilt := expr.Expr(expr.Fn(f.Op(), ops...))
			if g.opts.Canonicalize {
				rebuilt = Canonical(rebuilt)
			}
			return rebuilt, because, true
		}
	}
	return g.applyRules(e)
}

// applyRules scans the rule list in order and applies the first rule
// that matches and passes its condition.
func (g *engine) applyRules(e expr.Expr) (expr.Expr, string, bool) {
	for i := range g.rs.rules {
		r := &g.rs.rules[i]
		if r.Once && g.fired[i] {
			continue
		}
		out, ok := g.applyRule(r, e, nil)
		if !ok {
			continue
		}
		if r.Once {
			g.fired[i] = true
		}
		return out, ruleID(r, i), true
	}
	return nil, "", false
}

// applyRule runs the match, condition, substitute, canonicalize chain
// for one rule. seed pre-binds wildcards: its entries are substituted
// into the pattern before matching and merged into the bindings handed
// to the replacement.
func (g *engine) applyRule(r *Rule, e expr.Expr, seed pattern.Substitution) (expr.Expr, bool) {
	sub := pattern.Substitution{}
	for k, v := range seed {
		sub[k] = v
	}
	if r.Match != nil {
		pat := r.Match
		if len(seed) > 0 {
			pat = seed.Apply(pat)
		}
		bound, ok := pattern.Match(e, pat, pattern.WithVariations(r.UseVariations))
		if !ok {
			return nil, false
		}
		for k, v := range bound {
			sub[k] = v
		}
	}
	if r.Condition != nil && !r.Condition(sub) {
		return nil, false
	}
	var out expr.Expr
	switch rep := r.Replace.(type) {
	case Template:
		out = sub.Apply(rep.Body)
	case Func:
		v, ok := rep(e, sub)
		if !ok {
			return nil, false
		}
		out = v
	default:
		return nil, false
	}
	if out == nil {
		return nil, false
	}
	if g.opts.Canonicalize {
		out = Canonical(out)
	}
	return out, true
}

// ruleID names a rule for provenance, falling back to its position.
func ruleID(r *Rule, i int) string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("rule %d", i)
}

// Canonical rebuilds one node through the collectors: Add and Negate
// route through the term collector; Multiply, Power and Sqrt through
// the product collector; Divide through the rational assembly so the
// quotient shape survives. Numeric content folds along the way, so
// Divide(Negate(6), 2) comes back as the literal -3. Nodes outside the
// collector operators pass through unchanged.
func Canonical(e expr.Expr) expr.Expr {
	f, ok := e.(*expr.Function)
	if !ok {
		return e
	}
	switch f.Op() {
	case expr.OpAdd, expr.OpNegate:
		return collect.NewTerms([]expr.Expr{f}).AsExpression()
	case expr.OpMultiply, expr.OpPower, expr.OpSqrt:
		return collect.NewProduct([]expr.Expr{f}).AsExpression()
	case expr.OpDivide:
		return collect.NewProduct([]expr.Expr{f}).AsRationalExpression()
	default:
		return e
	}
}
