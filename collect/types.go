// Package collect defines core types and configuration options for the
// Add and Multiply canonicalizers.
//
// A collector takes N operand expressions, folds the numeric content
// through the exact kernel, merges structurally equal symbolic parts,
// and reassembles a single canonical expression under a deterministic
// total order. Terms handles addition (coefficients on equal bases),
// Product handles multiplication (rational exponents on equal bases).
//
// Complexity:
//
//	– Time:  O(n·m + k log k)   where n = flattened operands, m = merged entries, k = output operands
//	   • Every operand is matched against the merged entry list by structural
//	     equality (linear scan, n·m comparisons).
//	   • Final assembly sorts the k surviving operands once.
//	– Space: O(n)
//	   • One entry per distinct base plus the deferred numeric side list.
//
// Options:
//
//	– Comparator: total order used to arrange the assembled operand list.
//	– Mode:       literal policy (rational split / single node / numeric collapse).
//
// Errors: none. Collection has no failure states; indeterminate inputs
// (NaN, ComplexInfinity, mixed-sign infinities) are absorbed into the
// output value instead of being reported.
//
// Example usage:
//
//	// Collect x + 2x + 3 into its canonical sum:
//	sum := collect.NewTerms([]expr.Expr{
//	    expr.Sym("x"),
//	    expr.Mul(expr.Int(2), expr.Sym("x")),
//	    expr.Int(3),
//	}).AsExpression()
//	fmt.Println(sum) // Add(3, Multiply(3, x))
package collect

import "github.com/solwyrm/kanon/expr"

// Mode controls how a collector treats the folded numeric literal when
// assembling its result.
//
// ModeRational   – split an exact rational literal into numerator and
//                  denominator parts, so a Divide node can be built.
// ModeExpression – keep the literal as a single leaf (canonical form).
// ModeNumeric    – collapse the literal to its decimal evaluation, the
//                  policy behind the N() methods.
type Mode uint8

const (
	// ModeRational splits exact rational literals across the fraction bar.
	ModeRational Mode = iota

	// ModeExpression keeps the folded literal as one exact leaf.
	ModeExpression

	// ModeNumeric collapses the folded literal to a decimal evaluation.
	ModeNumeric
)

// DefaultMode is the literal policy used when none is configured.
const DefaultMode = ModeExpression

// Comparator is a total order over expressions. It must be
// deterministic: collectors rely on it to make operand arrangement
// reproducible for any input order.
type Comparator func(a, b expr.Expr) int

// Options configures a collector.
//
// Comparator – total order for the assembled operand list.
//
//	Default is expr.Compare.
//
// Mode – literal policy for assembly.
//
//	Default is DefaultMode (ModeExpression).
type Options struct {
	Comparator Comparator // Arrangement order for assembled operands
	Mode       Mode       // Literal policy (rational / expression / numeric)
}

// Option represents a functional option for configuring a collector.
type Option func(*Options)

// WithComparator injects the total order used to arrange assembled
// operands. A nil comparator is ignored and the default order kept.
func WithComparator(cmp Comparator) Option {
	return func(o *Options) {
		if cmp != nil {
			o.Comparator = cmp
		}
	}
}

// WithMode selects the literal policy used during assembly.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults. Use this as a starting point for functional-options
// overrides.
//
// Defaults:
//   - Comparator: expr.Compare (numbers < symbols < functions).
//   - Mode:       ModeExpression (literals stay exact single leaves).
func DefaultOptions() Options {
	return Options{
		Comparator: expr.Compare,
		Mode:       DefaultMode,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
