// Package rewrite applies compiled match/replace rules to expressions,
// iterating toward a fixed point under a caller-supplied application
// limit.
//
// A Rule pairs a wildcard pattern with a replacement (a Template
// instantiated from the match bindings, or a Func computed from them)
// plus an optional condition predicate. Compile boxes a rule list into
// an immutable RuleSet and reports malformed rules up front; Replace
// drives the scan, match, substitute, canonicalize cycle; MatchAny
// collects every candidate rewrite instead of committing to the first.
//
// Complexity:
//
//	– Time:  O(limit · r · match)   where r = rules, match = pattern cost per visited node
//	   • Each iteration applies at most one rule, the first that fires.
//	   • Recursive mode visits subexpressions bottom-up until the first hit.
//	– Space: O(limit)
//	   • One provenance step per applied rule.
//
// Options:
//
//	– Once:         stop after the first successful application.
//	– Recursive:    try subexpressions bottom-up, innermost first.
//	– Canonicalize: rebuild rewritten nodes through the collectors.
//	– Verbose:      print each application via fmt.Printf.
//
// Errors:
//
//	– ErrNilRuleSet:        Replace or MatchAny called without a compiled set.
//	– ErrBadIterationLimit: the application limit is below 1.
//	– RuleError (Compile):  wraps ErrNilReplacement, ErrMissingPattern or
//	  ErrUnboundWildcard with the offending rule's index and name.
//
// Example usage:
//
//	// Rewrite f(x) into g(x) wherever it appears:
//	rs, err := rewrite.Compile([]rewrite.Rule{{
//	    Name:    "f-to-g",
//	    Match:   expr.Fn("f", expr.Sym("_u")),
//	    Replace: rewrite.Template{Body: expr.Fn("g", expr.Sym("_u"))},
//	}})
//	if err != nil {
//	    // handle the RuleError
//	}
//	res, err := rewrite.Replace(e, rs, 16, rewrite.WithRecursive(true))
//	fmt.Println(res.Value, res.Outcome)
package rewrite

import (
	"errors"

	"github.com/solwyrm/kanon/expr"
)

var (
	// ErrNilRuleSet is returned when Replace or MatchAny is called with
	// a nil rule set.
	ErrNilRuleSet = errors.New("rewrite: nil rule set")

	// ErrBadIterationLimit is returned when the application limit passed
	// to Replace is below 1. The limit is the engine's only termination
	// guarantee and has no optional form.
	ErrBadIterationLimit = errors.New("rewrite: iteration limit must be at least 1")

	// ErrNilReplacement marks a rule whose Replace field is nil.
	ErrNilReplacement = errors.New("rewrite: rule has no replacement")

	// ErrMissingPattern marks a Template rule with no Match pattern.
	// Only Func rules may omit the pattern; they receive the whole
	// expression instead.
	ErrMissingPattern = errors.New("rewrite: template rule has no match pattern")

	// ErrUnboundWildcard marks a Template whose body references a
	// wildcard the rule's own pattern can never bind.
	ErrUnboundWildcard = errors.New("rewrite: template wildcard never bound by pattern")
)

// Outcome reports how a Replace call terminated.
type Outcome uint8

const (
	// NoMatch: no rule fired and the input came back unchanged.
	NoMatch Outcome = iota

	// FixedPoint: at least one rule fired and a later scan found no
	// further match, so the value is stable.
	FixedPoint

	// LimitReached: the application limit stopped the loop while further
	// rewriting was still possible. A fired Once call reports this too,
	// since stability goes unverified.
	LimitReached
)

// String returns a short human-readable name for the Outcome.
func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "NoMatch"
	case FixedPoint:
		return "FixedPoint"
	case LimitReached:
		return "LimitReached"
	default:
		return "Unknown"
	}
}

// Step records one fired rule: the value it produced and the rule's
// identifier, so a chain of rewrites can be audited after the fact.
type Step struct {
	Value   expr.Expr // Expression after this application
	Because string    // Firing rule's name, or "rule <index>" when unnamed
}

// Result carries the final value of a Replace call, how the loop
// terminated, and the provenance trail of every application.
type Result struct {
	Value   expr.Expr
	Outcome Outcome
	Steps   []Step
}

// Candidate is one successful rewrite collected by MatchAny.
type Candidate struct {
	Value   expr.Expr // Rewritten expression
	Because string    // Rule that produced it
}

// DefaultIterationLimit is a generous application budget for callers
// without a specific bound in mind. Replace still takes the limit as an
// explicit parameter; this constant only names a reasonable value.
const DefaultIterationLimit = 256

// Options configures Replace and MatchAny.
//
// Once – stop after the first successful application.
//
//	Default is false (iterate to fixed point or limit).
//
// Recursive – apply rules bottom-up across every subexpression.
//
//	Default is false (root only).
//
// Canonicalize – rebuild rewritten nodes through the Add/Multiply
// collectors so numeric content folds immediately.
//
//	Default is true.
//
// Verbose – print each application via fmt.Printf.
//
//	Default is false.
type Options struct {
	Once         bool // Single application
	Recursive    bool // Bottom-up over subexpressions
	Canonicalize bool // Re-collect rewritten nodes
	Verbose      bool // Log each application
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithOnce toggles single-application mode.
func WithOnce(enabled bool) Option {
	return func(o *Options) {
		o.Once = enabled
	}
}

// WithRecursive toggles bottom-up application across subexpressions.
func WithRecursive(enabled bool) Option {
	return func(o *Options) {
		o.Recursive = enabled
	}
}

// WithCanonicalize toggles collector canonicalization of rewritten
// nodes.
func WithCanonicalize(enabled bool) Option {
	return func(o *Options) {
		o.Canonicalize = enabled
	}
}

// WithVerbose toggles per-application logging.
func WithVerbose(enabled bool) Option {
	return func(o *Options) {
		o.Verbose = enabled
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults. Use this as a starting point for functional-options
// overrides.
//
// Defaults:
//   - Once:         false (iterate to fixed point or limit).
//   - Recursive:    false (root only).
//   - Canonicalize: true  (rewritten nodes re-collected).
//   - Verbose:      false.
func DefaultOptions() Options {
	return Options{Canonicalize: true}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
