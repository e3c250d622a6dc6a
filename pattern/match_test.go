package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/pattern"
)

// TestClassify_WildcardVocabulary verifies the three wildcard arities
// and the anonymous forms.
func TestClassify_WildcardVocabulary(t *testing.T) {
	cases := []struct {
		in   expr.Expr
		kind pattern.Kind
		name string
	}{
		{expr.Sym("x"), pattern.KindLiteral, ""},
		{expr.Sym("_"), pattern.KindSingle, ""},
		{expr.Sym("_x"), pattern.KindSingle, "_x"},
		{expr.Sym("__"), pattern.KindSequence, ""},
		{expr.Sym("__rest"), pattern.KindSequence, "__rest"},
		{expr.Sym("___"), pattern.KindOptional, ""},
		{expr.Sym("___tail"), pattern.KindOptional, "___tail"},
		{expr.Int(7), pattern.KindLiteral, ""},
		{expr.Add(expr.Sym("_x")), pattern.KindLiteral, ""},
	}
	for _, c := range cases {
		kind, name := pattern.Classify(c.in)
		assert.Equal(t, c.kind, kind, "kind of %s", c.in)
		assert.Equal(t, c.name, name, "name of %s", c.in)
	}
}

// TestMatch_SingleWildcard verifies scalar binding and literal leaves.
func TestMatch_SingleWildcard(t *testing.T) {
	x := expr.Sym("x")

	sub, ok := pattern.Match(x, expr.Sym("_a"))
	require.True(t, ok)
	got, ok := sub.Get("_a")
	require.True(t, ok)
	assert.True(t, got.Same(x))

	sub, ok = pattern.Match(expr.Pow(x, expr.Int(2)), expr.Sym("_a"))
	require.True(t, ok, "a single wildcard matches any subtree")
	got, _ = sub.Get("_a")
	assert.Equal(t, "Power(x, 2)", got.String())

	_, ok = pattern.Match(x, expr.Sym("y"))
	assert.False(t, ok, "plain symbols match by name only")
}

// TestMatch_NumericLiterals verifies numbers in patterns compare
// numerically, with NaN matching by canonical identity.
func TestMatch_NumericLiterals(t *testing.T) {
	_, ok := pattern.Match(expr.Float(0.5), expr.Rat(1, 2))
	assert.True(t, ok, "1/2 matches 0.5 numerically")

	_, ok = pattern.Match(expr.NaN, expr.NaN)
	assert.True(t, ok, "NaN matches NaN structurally")

	_, ok = pattern.Match(expr.Sym("x"), expr.Int(2))
	assert.False(t, ok)

	_, ok = pattern.Match(expr.Int(3), expr.Int(2))
	assert.False(t, ok)
}

// TestMatch_OrderedOperands verifies non-commutative operators match
// positionally.
func TestMatch_OrderedOperands(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")

	sub, ok := pattern.Match(expr.Div(x, y), expr.Div(expr.Sym("_n"), expr.Sym("_d")))
	require.True(t, ok)
	n, _ := sub.Get("_n")
	d, _ := sub.Get("_d")
	assert.True(t, n.Same(x))
	assert.True(t, d.Same(y))

	_, ok = pattern.Match(expr.Pow(x, expr.Int(2)), expr.Pow(expr.Int(2), x))
	assert.False(t, ok, "Power operands do not permute")
}

// TestMatch_RepeatedWildcardConsistency verifies a repeated name must
// rebind an equal value: numbers numerically, the rest structurally.
func TestMatch_RepeatedWildcardConsistency(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	pat := expr.Mul(expr.Sym("_a"), expr.Sym("_a"))

	_, ok := pattern.Match(expr.Mul(x, x), pat)
	assert.True(t, ok)

	_, ok = pattern.Match(expr.Mul(x, y), pat)
	assert.False(t, ok, "inconsistent rebinding fails")

	sub, ok := pattern.Match(expr.Add(expr.Rat(1, 2), expr.Float(0.5)),
		expr.Add(expr.Sym("_a"), expr.Sym("_a")))
	require.True(t, ok, "numeric rebinding tolerates exactness differences")
	v, _ := sub.Get("_a")
	assert.Equal(t, "1/2", v.String(), "the first binding is kept")
}

// TestMatch_SequenceWildcards verifies mandatory and optional sequence
// binding inside ordered operand lists.
func TestMatch_SequenceWildcards(t *testing.T) {
	a, b, c := expr.Sym("a"), expr.Sym("b"), expr.Sym("c")

	sub, ok := pattern.Match(
		expr.Fn("List", a, b, c),
		expr.Fn("List", expr.Sym("__all")),
	)
	require.True(t, ok)
	all, _ := sub.Get("__all")
	assert.Equal(t, "Sequence(a, b, c)", all.String())

	sub, ok = pattern.Match(
		expr.Fn("List", a),
		expr.Fn("List", expr.Sym("___any")),
	)
	require.True(t, ok, "an optional sequence also takes a lone operand")
	lone, _ := sub.Get("___any")
	assert.Equal(t, "Sequence(a)", lone.String())

	sub, ok = pattern.Match(
		expr.Fn("List", a, b, c),
		expr.Fn("List", expr.Sym("_first"), expr.Sym("__rest")),
	)
	require.True(t, ok)
	first, _ := sub.Get("_first")
	rest, _ := sub.Get("__rest")
	assert.True(t, first.Same(a))
	assert.Equal(t, "Sequence(b, c)", rest.String())

	_, ok = pattern.Match(
		expr.Fn("List", a),
		expr.Fn("List", expr.Sym("_first"), expr.Sym("__rest")),
	)
	assert.False(t, ok, "a mandatory sequence needs at least one operand")

	sub, ok = pattern.Match(
		expr.Fn("List", a),
		expr.Fn("List", expr.Sym("___pre"), expr.Sym("_last")),
	)
	require.True(t, ok, "an optional sequence may be empty")
	pre, _ := sub.Get("___pre")
	last, _ := sub.Get("_last")
	assert.Equal(t, "Sequence()", pre.String())
	assert.True(t, last.Same(a))

	_, ok = pattern.Match(expr.Fn("f"), expr.Fn("f", expr.Sym("__xs")))
	assert.False(t, ok, "an empty operand list cannot satisfy a mandatory sequence")

	sub, ok = pattern.Match(expr.Fn("f"), expr.Fn("f", expr.Sym("___xs")))
	require.True(t, ok)
	xs, _ := sub.Get("___xs")
	assert.Equal(t, "Sequence()", xs.String())
}

// TestMatch_SplitPointBacktracking verifies the matcher searches split
// points until the fixed middle lines up.
func TestMatch_SplitPointBacktracking(t *testing.T) {
	x, y, z := expr.Sym("x"), expr.Sym("y"), expr.Sym("z")

	sub, ok := pattern.Match(
		expr.Fn("List", x, y, z),
		expr.Fn("List", expr.Sym("__a"), y, expr.Sym("__b")),
	)
	require.True(t, ok)
	av, _ := sub.Get("__a")
	bv, _ := sub.Get("__b")
	assert.Equal(t, "Sequence(x)", av.String())
	assert.Equal(t, "Sequence(z)", bv.String())
}

// TestMatch_SequenceRebinding verifies structural consistency for
// repeated sequence wildcards.
func TestMatch_SequenceRebinding(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")

	_, ok := pattern.Match(
		expr.Fn("List", x, y, x, y),
		expr.Fn("List", expr.Sym("__a"), expr.Sym("__a")),
	)
	assert.True(t, ok, "(x,y)(x,y) splits into equal halves")

	_, ok = pattern.Match(
		expr.Fn("List", x, y, y, x),
		expr.Fn("List", expr.Sym("__a"), expr.Sym("__a")),
	)
	assert.False(t, ok, "no split yields structurally equal halves")
}

// TestMatch_CommutativePermutations verifies operand permutation under
// commutative operators and its opt-out.
func TestMatch_CommutativePermutations(t *testing.T) {
	x := expr.Sym("x")

	sub, ok := pattern.Match(expr.Add(x, expr.Int(3)), expr.Add(expr.Int(3), expr.Sym("_x")))
	require.True(t, ok, "Add operands permute by default")
	v, _ := sub.Get("_x")
	assert.True(t, v.Same(x))

	_, ok = pattern.Match(
		expr.Add(x, expr.Int(3)),
		expr.Add(expr.Int(3), expr.Sym("_x")),
		pattern.WithPermutations(false),
	)
	assert.False(t, ok, "positional matching once permutations are disabled")

	_, ok = pattern.Match(expr.Mul(x, expr.Int(3)), expr.Mul(expr.Int(3), expr.Sym("_x")))
	assert.True(t, ok, "Multiply permutes too")
}

// TestMatch_CommutativeSequenceLeftovers verifies sequence wildcards
// absorb the unassigned operands in their original order.
func TestMatch_CommutativeSequenceLeftovers(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")

	sub, ok := pattern.Match(
		expr.Add(expr.Int(1), x, y),
		expr.Add(expr.Sym("_a"), expr.Sym("__rest")),
	)
	require.True(t, ok)
	a, _ := sub.Get("_a")
	rest, _ := sub.Get("__rest")
	assert.Equal(t, "1", a.String())
	assert.Equal(t, "Sequence(x, y)", rest.String())
}

// TestMatch_UseVariations verifies identity-element matching: a bare
// target matches an Add/Multiply pattern as a one-operand chain.
func TestMatch_UseVariations(t *testing.T) {
	x := expr.Sym("x")

	_, ok := pattern.Match(x, expr.Add(x, expr.Sym("_y")))
	assert.False(t, ok, "variations are off by default")

	sub, ok := pattern.Match(x, expr.Add(x, expr.Sym("_y")), pattern.WithVariations(true))
	require.True(t, ok)
	yv, _ := sub.Get("_y")
	assert.True(t, yv.Same(expr.Zero), "the leftover single wildcard binds the Add identity")

	sub, ok = pattern.Match(x, expr.Mul(expr.Sym("_c"), expr.Sym("__rest")), pattern.WithVariations(true))
	require.True(t, ok)
	cv, _ := sub.Get("_c")
	rest, _ := sub.Get("__rest")
	assert.True(t, cv.Same(x))
	assert.Equal(t, "Sequence(1)", rest.String(),
		"the leftover sequence wildcard binds the Multiply identity")

	sub, ok = pattern.Match(
		expr.Add(x, expr.Int(2)),
		expr.Add(x, expr.Int(2), expr.Sym("_z")),
		pattern.WithVariations(true),
	)
	require.True(t, ok, "variations also cover same-operator arity shortfalls")
	zv, _ := sub.Get("_z")
	assert.True(t, zv.Same(expr.Zero))
}

// TestMatch_AnonymousWildcards verifies anonymous forms constrain arity
// without binding.
func TestMatch_AnonymousWildcards(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")

	sub, ok := pattern.Match(expr.Add(x, y), expr.Add(expr.Sym("_"), expr.Sym("_")))
	require.True(t, ok)
	assert.Empty(t, sub, "anonymous wildcards leave no bindings")

	_, ok = pattern.Match(expr.Add(x, y), expr.Add(expr.Sym("_"), expr.Sym("_"), expr.Sym("_")))
	assert.False(t, ok, "arity still constrains")

	_, ok = pattern.Match(expr.Fn("List", x, y), expr.Fn("List", expr.Sym("___")))
	assert.True(t, ok, "anonymous optional sequence absorbs anything")
}

// TestMatch_NestedStructures verifies descent through mixed operators.
func TestMatch_NestedStructures(t *testing.T) {
	x := expr.Sym("x")
	target := expr.Add(expr.Mul(expr.Int(2), expr.Pow(x, expr.Int(2))), expr.Int(5))
	pat := expr.Add(expr.Mul(expr.Sym("_c"), expr.Pow(expr.Sym("_b"), expr.Int(2))), expr.Sym("_k"))

	sub, ok := pattern.Match(target, pat)
	require.True(t, ok)
	c, _ := sub.Get("_c")
	b, _ := sub.Get("_b")
	k, _ := sub.Get("_k")
	assert.Equal(t, "2", c.String())
	assert.True(t, b.Same(x))
	assert.Equal(t, "5", k.String())
}

// TestMatch_NilInputs verifies nil inputs fail plainly.
func TestMatch_NilInputs(t *testing.T) {
	_, ok := pattern.Match(nil, expr.Sym("_a"))
	assert.False(t, ok)
	_, ok = pattern.Match(expr.Sym("x"), nil)
	assert.False(t, ok)
}
