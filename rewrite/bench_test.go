package rewrite_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/rewrite"
)

// BenchmarkReplace_Chain measures a self-feeding rule driven to the
// application limit.
func BenchmarkReplace_Chain(b *testing.B) {
	const limit = 64

	rs, err := rewrite.Compile([]rewrite.Rule{{
		Name:    "wrap",
		Match:   expr.Fn("f", expr.Sym("_u")),
		Replace: rewrite.Template{Body: expr.Fn("f", expr.Fn("g", expr.Sym("_u")))},
	}})
	if err != nil {
		b.Fatal(err)
	}
	e := expr.Fn("f", expr.Sym("a"))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := rewrite.Replace(e, rs, limit); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReplace_RecursiveFixedPoint measures bottom-up zero
// elimination over a deep left-leaning sum.
func BenchmarkReplace_RecursiveFixedPoint(b *testing.B) {
	const depth = 32

	rs, err := rewrite.Compile([]rewrite.Rule{{
		Name:    "drop-zero",
		Match:   expr.Add(expr.Sym("_u"), expr.Zero),
		Replace: rewrite.Template{Body: expr.Sym("_u")},
	}})
	if err != nil {
		b.Fatal(err)
	}
	e := expr.Expr(expr.Sym("x"))
	for i := 0; i < depth; i++ {
		e = expr.Add(e, expr.Zero)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := rewrite.Replace(e, rs, depth+1,
			rewrite.WithRecursive(true), rewrite.WithCanonicalize(false)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatchAny_RuleSweep measures one collecting sweep over a
// moderate rule set against a wide product.
func BenchmarkMatchAny_RuleSweep(b *testing.B) {
	const rules = 12
	const width = 16

	rnd := rand.New(rand.NewSource(13))
	list := make([]rewrite.Rule, rules)
	for i := range list {
		op := fmt.Sprintf("op%d", i%4)
		list[i] = rewrite.Rule{
			Name:    fmt.Sprintf("rule-%d", i),
			Match:   expr.Fn(op, expr.Sym("_a"), expr.Sym("___rest")),
			Replace: rewrite.Template{Body: expr.Fn(op, expr.Sym("___rest"), expr.Sym("_a"))},
		}
	}
	rs, err := rewrite.Compile(list)
	if err != nil {
		b.Fatal(err)
	}

	ops := make([]expr.Expr, width)
	for i := range ops {
		ops[i] = expr.Sym(fmt.Sprintf("v%d", rnd.Intn(width)))
	}
	e := expr.Fn("op1", ops...)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := rewrite.MatchAny(e, rs, nil); err != nil {
			b.Fatal(err)
		}
	}
}
