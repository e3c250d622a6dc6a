package rewrite

import (
	"fmt"

	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/pattern"
)

// MatchAny tries every rule against e and collects each successful
// rewrite instead of committing to the first.
//
// Description:
//
//	Rule-enumerating callers (root finding, candidate generation) need
//	every rewrite a set can produce, not one simplification path.
//	MatchAny runs the match, condition, substitute, canonicalize chain
//	once per rule at the root and returns one Candidate per hit, in
//	rule order. seed pre-binds wildcards before matching: a solver
//	passes the unknown as seed so the pattern's corresponding wildcard
//	positions become that literal while the remaining wildcards still
//	bind freely. Seed entries stay visible to conditions, templates and
//	funcs.
//
// Candidates are reported as produced, duplicates included; collapsing
// equivalent results is the caller's business.
//
// Once and Recursive have no effect here: every rule gets exactly one
// attempt against the root. Canonicalize and Verbose apply per
// candidate.
//
// Errors:
//   - ErrNilRuleSet if rs is nil.
func MatchAny(e expr.Expr, rs *RuleSet, seed pattern.Substitution, opts ...Option) ([]Candidate, error) {
	if rs == nil {
		return nil, ErrNilRuleSet
	}
	if e == nil {
		return nil, nil
	}
	g := &engine{rs: rs, opts: buildOptions(opts)}
	var found []Candidate
	for i := range rs.rules {
		r := &rs.rules[i]
		out, ok := g.applyRule(r, e, seed)
		if !ok {
			continue
		}
		because := ruleID(r, i)
		found = append(found, Candidate{Value: out, Because: because})
		if g.opts.Verbose {
			fmt.Printf("MatchAny: %s: %s\n", because, out)
		}
	}
	return found, nil
}
