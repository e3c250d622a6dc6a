// Package pattern defines the wildcard vocabulary, matcher options and
// substitution type for structural pattern matching over expressions.
//
// A pattern is an ordinary expression in which specially named symbols
// act as wildcards:
//
//	_  / _name    matches exactly one subexpression
//	__ / __name   matches one or more consecutive operands
//	___ / ___name matches zero or more consecutive operands
//
// Named wildcards bind; anonymous forms constrain arity without
// binding. A name that repeats inside one pattern must bind consistent
// values: numbers compare numerically, everything else structurally.
//
// Complexity:
//
//	– Time:  exponential in the wildcard count in the worst case
//	   • Sequence wildcards backtrack over split points (bounded by arity).
//	   • Commutative operators under MatchPermutations backtrack over
//	     operand assignments.
//	– Space: O(pattern depth) recursion plus one binding per named wildcard.
//
// Options:
//
//	– UseVariations:     match Add/Multiply patterns up to the identity element.
//	– MatchPermutations: try operand permutations under commutative operators.
//
// Errors: none. A failed match is the ordinary (nil, false) return.
package pattern

import (
	"strings"

	"github.com/solwyrm/kanon/expr"
)

// Kind classifies a pattern node's wildcard role.
//
// KindLiteral  – not a wildcard; matches by ordinary structure.
// KindSingle   – matches exactly one subexpression.
// KindSequence – matches one or more consecutive operands.
// KindOptional – matches zero or more consecutive operands.
type Kind uint8

const (
	// KindLiteral marks non-wildcard pattern nodes.
	KindLiteral Kind = iota

	// KindSingle marks _ and _name wildcards.
	KindSingle

	// KindSequence marks __ and __name wildcards.
	KindSequence

	// KindOptional marks ___ and ___name wildcards.
	KindOptional
)

// Classify reports the wildcard role of a pattern node and its binding
// name. The name is the full symbol text ("_x", "__rest"); anonymous
// wildcards report an empty name and bind nothing.
func Classify(e expr.Expr) (Kind, string) {
	s, ok := e.(*expr.Symbol)
	if !ok {
		return KindLiteral, ""
	}
	name := s.Name()
	var kind Kind
	switch {
	case strings.HasPrefix(name, "___"):
		kind = KindOptional
		if name == "___" {
			return kind, ""
		}
	case strings.HasPrefix(name, "__"):
		kind = KindSequence
		if name == "__" {
			return kind, ""
		}
	case strings.HasPrefix(name, "_"):
		kind = KindSingle
		if name == "_" {
			return kind, ""
		}
	default:
		return KindLiteral, ""
	}
	return kind, name
}

// Options configures the matcher.
//
// UseVariations – permit matching up to an identity element: an
//
//	Add/Multiply pattern may match a bare target by treating it as a
//	one-operand chain, with leftover single wildcards binding the
//	identity (0 for Add, 1 for Multiply) and leftover mandatory
//	sequence wildcards binding the identity as their only element.
//	Off by default: identity matches can re-fire rules on their own
//	output.
//
// MatchPermutations – under commutative operators, assign pattern
//
//	operands to target operands in any order (bounded backtracking,
//	deterministic first match). On by default; disable for patterns
//	that encode an already-normalized form.
type Options struct {
	UseVariations     bool // Match up to Add/Multiply identity elements
	MatchPermutations bool // Permute operands of commutative operators
}

// Option represents a functional option for configuring a match.
type Option func(*Options)

// WithVariations toggles identity-element variations.
func WithVariations(enabled bool) Option {
	return func(o *Options) {
		o.UseVariations = enabled
	}
}

// WithPermutations toggles commutative operand permutation.
func WithPermutations(enabled bool) Option {
	return func(o *Options) {
		o.MatchPermutations = enabled
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults. Use this as a starting point for functional-options
// overrides.
//
// Defaults:
//   - UseVariations:     false (identity matches are opt-in per pattern).
//   - MatchPermutations: true  (commutative operands match in any order).
func DefaultOptions() Options {
	return Options{
		UseVariations:     false,
		MatchPermutations: true,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
