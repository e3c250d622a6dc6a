// Package rewrite drives rule-based transformation: compiled
// match/replace rules applied to an expression until it stops
// changing.
//
// 🚀 What is rule rewriting?
//
//	Simplification, expansion and equation solving are all the same
//	mechanism underneath: find a shape, replace it with another, repeat.
//	A rule couples a wildcard pattern with a replacement; the engine
//	scans a compiled rule set, applies the first hit, and feeds the
//	result back until a fixed point or the application budget. Every
//	application is recorded with the rule that made it, so a rewrite
//	chain can be audited afterwards.
//
// ✨ Key features:
//   - two replacement forms: declarative Template bodies and computed
//     Func callbacks, dispatched explicitly
//   - Compile validates rules up front (RuleError pinpoints the bad one)
//     and freezes the set
//   - mandatory application limit: rewriting is bounded, never trusted
//     to terminate on its own
//   - Outcome distinguishes NoMatch, FixedPoint and LimitReached
//   - bottom-up recursion (Recursive), single-shot mode (Once),
//     collector canonicalization (Canonicalize), per-step logging
//     (Verbose)
//   - MatchAny collects every candidate rewrite for root-enumerating
//     callers, with seed bindings for the unknown
//
// ⚙️ Usage:
//
//	import "github.com/solwyrm/kanon/rewrite"
//
//	// x + 0 is x, at any depth:
//	rs, err := rewrite.Compile([]rewrite.Rule{{
//	  Name:          "drop-zero",
//	  Match:         expr.Add(expr.Sym("_u"), expr.Int(0)),
//	  Replace:       rewrite.Template{Body: expr.Sym("_u")},
//	  UseVariations: false,
//	}})
//	if err != nil {
//	  log.Fatal(err)
//	}
//
//	res, err := rewrite.Replace(e, rs, 32, rewrite.WithRecursive(true))
//	// res.Value is the stable form, res.Steps the audit trail
//
// Performance:
//
//   - Time:   O(limit · rules · match cost per visited node)
//   - Memory: O(limit) provenance steps
//
// See examples in example_test.go.
package rewrite
