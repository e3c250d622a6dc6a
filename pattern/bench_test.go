package pattern_test

import (
	"fmt"
	"testing"

	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/pattern"
)

// BenchmarkMatch_CommutativeWide measures permutation search against a
// wide Add node where the fixed operand sits last.
func BenchmarkMatch_CommutativeWide(b *testing.B) {
	const width = 12

	ops := make([]expr.Expr, 0, width+1)
	for i := 0; i < width; i++ {
		ops = append(ops, expr.Sym(fmt.Sprintf("s%d", i)))
	}
	ops = append(ops, expr.Int(42))
	target := expr.Fn(expr.OpAdd, ops...)
	pat := expr.Add(expr.Int(42), expr.Sym("__rest"))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = pattern.Match(target, pat)
	}
}

// BenchmarkMatch_SplitPoints measures split-point backtracking with two
// sequence wildcards around a fixed middle operand.
func BenchmarkMatch_SplitPoints(b *testing.B) {
	const width = 20

	ops := make([]expr.Expr, 0, width)
	for i := 0; i < width; i++ {
		ops = append(ops, expr.Sym(fmt.Sprintf("s%d", i)))
	}
	target := expr.Fn("List", ops...)
	pat := expr.Fn("List", expr.Sym("__a"), expr.Sym("s17"), expr.Sym("__b"))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = pattern.Match(target, pat)
	}
}

// BenchmarkApply_Splice measures template instantiation with a
// sequence splice.
func BenchmarkApply_Splice(b *testing.B) {
	seq := make([]expr.Expr, 10)
	for i := range seq {
		seq[i] = expr.Sym(fmt.Sprintf("t%d", i))
	}
	sub := pattern.Substitution{
		"_a":     expr.Sym("x"),
		"__rest": expr.Seq(seq...),
	}
	template := expr.Add(expr.Sym("_a"), expr.Sym("__rest"), expr.Int(1))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sub.Apply(template)
	}
}
