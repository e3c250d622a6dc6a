package expr

import "strings"

// Compare imposes the default total order used for canonical sortation:
// numbers sort before symbols, symbols before functions. Numbers order
// by the numeric kernel's canonical comparison, symbols by name, and
// functions by operator name, then operand-wise, then by arity.
//
// The order is deterministic for any pair of expressions, including the
// special numeric leaves, so sorting commutative operand lists with it
// always reproduces the same arrangement.
func Compare(a, b Expr) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case *Number:
		return x.Value().Cmp(b.(*Number).Value())
	case *Symbol:
		return strings.Compare(x.Name(), b.(*Symbol).Name())
	case *Function:
		y := b.(*Function)
		if c := strings.Compare(x.Op(), y.Op()); c != 0 {
			return c
		}
		n := len(x.operands)
		if len(y.operands) < n {
			n = len(y.operands)
		}
		for i := 0; i < n; i++ {
			if c := Compare(x.operands[i], y.operands[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(x.operands) < len(y.operands):
			return -1
		case len(x.operands) > len(y.operands):
			return 1
		}
		return 0
	}
	return 0
}

func kindRank(e Expr) int {
	switch e.Kind() {
	case KindNumber:
		return 0
	case KindSymbol:
		return 1
	default:
		return 2
	}
}
