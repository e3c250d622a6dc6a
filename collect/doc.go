// Package collect canonicalizes sums and products: N operand
// expressions in, one deterministic expression out.
//
// 🚀 What does collection do?
//
//	Symbolic engines constantly rebuild Add and Multiply nodes, and the
//	same mathematical content can arrive in countless shapes. Collection
//	flattens nesting, folds the numeric content through the exact
//	kernel, merges structurally equal parts, and reassembles under a
//	total order, so x + 2x + 3 always comes back as one canonical node.
//	It is the normalization layer between raw construction and pattern
//	matching.
//
// ✨ Key features:
//   - Terms: coefficient merging on Same bases, recursive Add/Negate
//     flattening, signed-infinity bookkeeping, NaN/ComplexInfinity
//     absorption
//   - exact numeric folding via numval.Sum: decimal noise cancels
//     without contaminating rational or radical parts
//   - Product: rational-exponent grouping, power-of-product and
//     power-of-quotient distribution, sign folding, degree-bucket
//     ordering
//   - three literal policies (ModeRational / ModeExpression /
//     ModeNumeric) shared by AsExpression, AsRationalExpression and N
//   - pluggable total order via WithComparator
//
// ⚙️ Usage:
//
//	import "github.com/solwyrm/kanon/collect"
//
//	x := expr.Sym("x")
//	sum := collect.NewTerms([]expr.Expr{
//	  x,
//	  expr.Mul(expr.Int(2), x),
//	  expr.Int(3),
//	}).AsExpression()
//	// Add(3, Multiply(3, x))
//
//	ratio := collect.NewProduct([]expr.Expr{
//	  expr.Rat(2, 3),
//	  x,
//	  expr.Pow(expr.Sym("y"), expr.Int(-1)),
//	}, collect.WithMode(collect.ModeRational)).AsRationalExpression()
//	// Divide(Multiply(2, x), Multiply(3, y))
//
// Performance:
//
//   - Time:   O(n·m) merging + O(k log k) assembly
//   - Memory: O(n)
//
// See examples in example_test.go.
package collect
