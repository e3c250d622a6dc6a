// Package pattern matches expressions against wildcard patterns and
// instantiates templates from the resulting bindings.
//
// 🚀 What is wildcard matching?
//
//	Rewrite rules describe shapes, not concrete trees: "anything plus
//	zero", "a constant times the same base twice". Wildcards are the
//	holes in those shapes. Matching decides whether a concrete
//	expression fits the shape and records what filled each hole, so a
//	replacement template can be instantiated.
//
// ✨ Key features:
//   - three wildcard arities: _ (one), __ (one or more), ___ (zero or
//     more), named or anonymous
//   - rebinding consistency: a repeated name must bind the same value
//     (numbers compare numerically, the rest structurally)
//   - bounded backtracking over sequence split points, never unbounded
//     recursion
//   - commutative permutation search (MatchPermutations, default on)
//   - identity-element variations: Add/Multiply patterns can match a
//     bare target (UseVariations, default off)
//   - Substitution.Apply splices Sequence bindings into operand lists
//
// ⚙️ Usage:
//
//	import "github.com/solwyrm/kanon/pattern"
//
//	// Match 2·x against coefficient-times-anything:
//	sub, ok := pattern.Match(
//	  expr.Mul(expr.Int(2), expr.Sym("x")),
//	  expr.Mul(expr.Sym("_c"), expr.Sym("_b")),
//	)
//	// ok == true; sub["_c"] is 2, sub["_b"] is x
//
//	out := sub.Apply(expr.Pow(expr.Sym("_b"), expr.Sym("_c")))
//	// Power(x, 2)
//
// Performance:
//
//   - Time:   worst-case exponential in wildcard count (bounded by arity)
//   - Memory: O(pattern depth) plus one binding per named wildcard
//
// See examples in example_test.go.
package pattern
