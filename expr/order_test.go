package expr_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwyrm/kanon/expr"
)

// TestCompare_KindPrecedence verifies the coarse order: numbers before
// symbols before functions.
func TestCompare_KindPrecedence(t *testing.T) {
	n, s, f := expr.Int(99), expr.Sym("a"), expr.Add()

	assert.Negative(t, expr.Compare(n, s), "number < symbol")
	assert.Negative(t, expr.Compare(s, f), "symbol < function")
	assert.Negative(t, expr.Compare(n, f), "number < function")
	assert.Positive(t, expr.Compare(f, n), "antisymmetric")
}

// TestCompare_WithinVariant exercises the per-variant tie-breakers.
func TestCompare_WithinVariant(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")

	assert.Negative(t, expr.Compare(expr.Rat(1, 2), expr.Int(1)), "1/2 < 1")
	assert.Zero(t, expr.Compare(expr.Rat(2, 4), expr.Rat(1, 2)), "equal rationals")
	assert.Negative(t, expr.Compare(x, y), "symbols by name")
	assert.Negative(t, expr.Compare(expr.Add(x), expr.Mul(x)),
		"functions by operator name")
	assert.Negative(t, expr.Compare(expr.Add(x, x), expr.Add(x, y)),
		"then operand-wise")
	assert.Negative(t, expr.Compare(expr.Add(x), expr.Add(x, y)),
		"prefix sorts before extension")
	assert.Zero(t, expr.Compare(expr.Pow(x, expr.Int(2)), expr.Pow(x, expr.Int(2))),
		"identical trees compare equal")
}

// TestCompare_SortIsDeterministic sorts a shuffled operand list twice
// and requires the same arrangement, including special numeric leaves.
func TestCompare_SortIsDeterministic(t *testing.T) {
	mixed := []expr.Expr{
		expr.Sym("y"),
		expr.PositiveInfinity,
		expr.Add(expr.Sym("x")),
		expr.Int(-3),
		expr.NaN,
		expr.Sym("x"),
		expr.Rat(1, 2),
	}

	first := append([]expr.Expr(nil), mixed...)
	sort.SliceStable(first, func(i, j int) bool {
		return expr.Compare(first[i], first[j]) < 0
	})

	second := []expr.Expr{first[3], first[0], first[6], first[2], first[5], first[1], first[4]}
	sort.SliceStable(second, func(i, j int) bool {
		return expr.Compare(second[i], second[j]) < 0
	})

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Same(second[i]), "position %d stable across shuffles", i)
	}

	assert.True(t, first[0].Same(expr.Int(-3)), "finite numbers lead")
	assert.True(t, first[len(first)-1].Same(expr.Add(expr.Sym("x"))),
		"functions trail")
}
