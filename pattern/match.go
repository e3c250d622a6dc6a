package pattern

import "github.com/solwyrm/kanon/expr"

// Match reports whether target matches the wildcard pattern pat and
// returns the resulting bindings.
//
// Description:
//
//	Structural recursive descent, operator by operator. Wildcard
//	positions bind; a name bound earlier in the same pattern must bind
//	an equal value again (numbers numerically, otherwise structurally)
//	or the match fails. Sequence wildcards inside an operand list
//	search split points by bounded backtracking; commutative operators
//	additionally search operand assignments when MatchPermutations is
//	set. The first successful assignment in deterministic order wins.
//
// Algorithm Outline:
//
//	1. Classify the pattern node. Single wildcards bind the target;
//	   sequence wildcards in scalar position bind a one-element
//	   Sequence.
//	2. Literal numbers compare numerically (NaN matches NaN by
//	   canonical identity), symbols by name, functions by operator.
//	3. Operand lists route to the permutation matcher for commutative
//	   operators, else to the ordered matcher with split-point search.
//	4. With UseVariations, an Add/Multiply pattern also matches a bare
//	   target as a one-operand chain, and leftover wildcards bind the
//	   operator's identity element.
//
// Errors: none. A failed match returns (nil, false).
func Match(target, pat expr.Expr, opts ...Option) (Substitution, bool) {
	if target == nil || pat == nil {
		return nil, false
	}
	m := &matcher{opts: buildOptions(opts), subst: Substitution{}}
	if !m.match(target, pat) {
		return nil, false
	}
	return m.subst, true
}

type matcher struct {
	opts  Options
	subst Substitution
	trail []binding
}

type binding struct {
	name string
	old  expr.Expr
	had  bool
}

func (m *matcher) mark() int { return len(m.trail) }

func (m *matcher) bind(name string, v expr.Expr) {
	old, had := m.subst[name]
	m.trail = append(m.trail, binding{name: name, old: old, had: had})
	m.subst[name] = v
}

func (m *matcher) undo(mark int) {
	for i := len(m.trail) - 1; i >= mark; i-- {
		b := m.trail[i]
		if b.had {
			m.subst[b.name] = b.old
		} else {
			delete(m.subst, b.name)
		}
	}
	m.trail = m.trail[:mark]
}

// bindScalar binds a single wildcard, enforcing rebinding consistency:
// two numbers must be numerically equal, anything else structurally.
func (m *matcher) bindScalar(name string, v expr.Expr) bool {
	if name == "" {
		return true
	}
	if old, ok := m.subst[name]; ok {
		return scalarEqual(old, v)
	}
	m.bind(name, v)
	return true
}

// bindSeq binds a sequence wildcard to the given operands, enforcing
// structural rebinding consistency.
func (m *matcher) bindSeq(name string, vals []expr.Expr) bool {
	if name == "" {
		return true
	}
	seq := expr.Seq(vals...)
	if old, ok := m.subst[name]; ok {
		return old.Same(seq)
	}
	m.bind(name, seq)
	return true
}

func scalarEqual(a, b expr.Expr) bool {
	av, aok := expr.NumberOf(a)
	bv, bok := expr.NumberOf(b)
	if aok && bok {
		return av.Equal(bv) || av.Same(bv)
	}
	return a.Same(b)
}

func (m *matcher) match(target, pat expr.Expr) bool {
	switch kind, name := Classify(pat); kind {
	case KindSingle:
		return m.bindScalar(name, target)
	case KindSequence, KindOptional:
		return m.bindSeq(name, []expr.Expr{target})
	}

	switch p := pat.(type) {
	case *expr.Number:
		tv, ok := expr.NumberOf(target)
		if !ok {
			return false
		}
		pv := p.Value()
		return pv.Equal(tv) || pv.Same(tv)
	case *expr.Symbol:
		return p.Same(target)
	case *expr.Function:
		if tf, ok := target.(*expr.Function); ok && tf.Op() == p.Op() {
			return m.matchOperands(p.Op(), tf.Operands(), p.Operands())
		}
		if m.opts.UseVariations && expr.IsCommutative(p.Op()) {
			if _, ok := expr.Identity(p.Op()); ok {
				// Treat the bare target as a one-operand chain.
				return m.matchOperands(p.Op(), []expr.Expr{target}, p.Operands())
			}
		}
		return false
	}
	return false
}

func (m *matcher) matchOperands(op string, targets, pats []expr.Expr) bool {
	if m.opts.MatchPermutations && expr.IsCommutative(op) {
		return m.matchCommutative(op, pats, targets)
	}
	return m.matchList(op, pats, targets)
}

// matchList matches pattern operands against target operands in order,
// backtracking over how many operands each sequence wildcard consumes.
func (m *matcher) matchList(op string, pats, targets []expr.Expr) bool {
	if len(pats) == 0 {
		return len(targets) == 0
	}
	kind, name := Classify(pats[0])
	switch kind {
	case KindSequence, KindOptional:
		low := 0
		if kind == KindSequence {
			low = 1
		}
		for take := low; take <= len(targets); take++ {
			mark := m.mark()
			if m.bindSeq(name, targets[:take]) && m.matchList(op, pats[1:], targets[take:]) {
				return true
			}
			m.undo(mark)
		}
		if kind == KindSequence && m.opts.UseVariations {
			if id, ok := expr.Identity(op); ok {
				mark := m.mark()
				if m.bindSeq(name, []expr.Expr{id}) && m.matchList(op, pats[1:], targets) {
					return true
				}
				m.undo(mark)
			}
		}
		return false
	default:
		if len(targets) == 0 {
			if kind == KindSingle && m.opts.UseVariations {
				if id, ok := expr.Identity(op); ok {
					mark := m.mark()
					if m.bindScalar(name, id) && m.matchList(op, pats[1:], targets) {
						return true
					}
					m.undo(mark)
				}
			}
			return false
		}
		mark := m.mark()
		if m.match(targets[0], pats[0]) && m.matchList(op, pats[1:], targets[1:]) {
			return true
		}
		m.undo(mark)
		return false
	}
}

// matchCommutative assigns fixed pattern operands to distinct target
// operands by backtracking, then hands the leftover targets, in their
// original order, to the sequence wildcards.
func (m *matcher) matchCommutative(op string, pats, targets []expr.Expr) bool {
	var fixed, seqs []expr.Expr
	for _, p := range pats {
		if kind, _ := Classify(p); kind == KindSequence || kind == KindOptional {
			seqs = append(seqs, p)
		} else {
			fixed = append(fixed, p)
		}
	}
	used := make([]bool, len(targets))
	return m.assignFixed(op, fixed, 0, seqs, targets, used)
}

func (m *matcher) assignFixed(op string, fixed []expr.Expr, i int, seqs, targets []expr.Expr, used []bool) bool {
	if i == len(fixed) {
		rest := make([]expr.Expr, 0, len(targets))
		for j, t := range targets {
			if !used[j] {
				rest = append(rest, t)
			}
		}
		return m.matchList(op, seqs, rest)
	}
	for j := range targets {
		if used[j] {
			continue
		}
		mark := m.mark()
		if m.match(targets[j], fixed[i]) {
			used[j] = true
			if m.assignFixed(op, fixed, i+1, seqs, targets, used) {
				return true
			}
			used[j] = false
		}
		m.undo(mark)
	}
	if m.opts.UseVariations {
		if kind, name := Classify(fixed[i]); kind == KindSingle {
			if id, ok := expr.Identity(op); ok {
				mark := m.mark()
				if m.bindScalar(name, id) && m.assignFixed(op, fixed, i+1, seqs, targets, used) {
					return true
				}
				m.undo(mark)
			}
		}
	}
	return false
}
