package rewrite

import (
	"fmt"

	"github.com/solwyrm/kanon/expr"
	"github.com/solwyrm/kanon/pattern"
)

// Rule is one match/replace pair in its source form. Compile validates
// and boxes rules; a boxed set never changes.
//
// Match is the wildcard pattern tried against the current expression.
// Template rules require it; a Func rule may leave it nil, in which
// case the function receives the whole expression with an empty
// substitution and decides for itself.
//
// Condition, when non-nil, runs over the match bindings before the
// replacement is built; a false result skips the rule as if it had
// never matched.
type Rule struct {
	Name          string                          // Identifier recorded in provenance
	Match         expr.Expr                       // Wildcard pattern; nil allowed for Func rules
	Replace       Replacement                     // Template or Func
	Condition     func(pattern.Substitution) bool // Predicate over the bindings; nil = unconditional
	UseVariations bool                            // Also match Add/Multiply identity variations
	Once          bool                            // Retire the rule after its first firing per call
}

// Replacement is the sealed right-hand side of a rule: either a
// declarative Template instantiated from the match bindings, or a Func
// computing the result from them.
type Replacement interface {
	isReplacement()
}

// Template is a declarative replacement. Applying the match bindings
// to Body yields the rewritten expression; sequence bindings splice
// into the surrounding operand list.
type Template struct {
	Body expr.Expr
}

func (Template) isReplacement() {}

// Func is a computed replacement. It receives the matched expression
// and the bindings and returns the rewritten expression. Returning
// false declines the rewrite and sends the engine on to the next rule.
type Func func(matched expr.Expr, s pattern.Substitution) (expr.Expr, bool)

func (Func) isReplacement() {}

// RuleError reports a malformed rule found by Compile, carrying the
// rule's position and name alongside the underlying cause.
type RuleError struct {
	Index int    // Position in the compiled slice
	Name  string // Rule's name, possibly empty
	Err   error  // Underlying sentinel
}

// Error implements the error interface. The wrapped sentinel carries
// the package prefix.
func (e *RuleError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("rule %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("rule %d: %v", e.Index, e.Err)
}

// Unwrap exposes the sentinel cause to errors.Is.
func (e *RuleError) Unwrap() error { return e.Err }

// RuleSet is an ordered, read-only sequence of compiled rules. Build
// one with Compile; the engine tries rules in slice order.
type RuleSet struct {
	rules []Rule
}

// Len returns the number of compiled rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Compile boxes a rule list into an immutable RuleSet, validating each
// rule up front so malformed definitions surface here rather than deep
// inside a rewriting pass.
//
// Checks per rule:
//  1. Replace must be non-nil, and a Template must carry a body.
//  2. A Template rule must have a Match pattern.
//  3. Every wildcard in a Template body must be bindable by the rule's
//     own pattern. Anonymous wildcards never bind, so a template may
//     not contain one.
//
// Errors: the first violation is returned as a *RuleError wrapping
// ErrNilReplacement, ErrMissingPattern or ErrUnboundWildcard.
func Compile(rules []Rule) (*RuleSet, error) {
	boxed := make([]Rule, len(rules))
	copy(boxed, rules)
	for i := range boxed {
		if err := validate(&boxed[i]); err != nil {
			return nil, &RuleError{Index: i, Name: boxed[i].Name, Err: err}
		}
	}
	return &RuleSet{rules: boxed}, nil
}

func validate(r *Rule) error {
	if r.Replace == nil {
		return ErrNilReplacement
	}
	tpl, ok := r.Replace.(Template)
	if !ok {
		return nil
	}
	if tpl.Body == nil {
		return ErrNilReplacement
	}
	if r.Match == nil {
		return ErrMissingPattern
	}
	return checkTemplate(tpl.Body, wildcardNames(r.Match))
}

// wildcardNames collects every named wildcard occurring in e.
func wildcardNames(e expr.Expr) map[string]struct{} {
	names := make(map[string]struct{})
	var walk func(expr.Expr)
	walk = func(n expr.Expr) {
		if kind, name := pattern.Classify(n); kind != pattern.KindLiteral {
			if name != "" {
				names[name] = struct{}{}
			}
			return
		}
		if f, ok := n.(*expr.Function); ok {
			for _, op := range f.Operands() {
				walk(op)
			}
		}
	}
	walk(e)
	return names
}

// checkTemplate verifies every wildcard in a template body has a
// binding source in the pattern.
func checkTemplate(body expr.Expr, bound map[string]struct{}) error {
	if kind, name := pattern.Classify(body); kind != pattern.KindLiteral {
		if name == "" {
			return ErrUnboundWildcard
		}
		if _, ok := bound[name]; !ok {
			return ErrUnboundWildcard
		}
		return nil
	}
	if f, ok := body.(*expr.Function); ok {
		for _, op := range f.Operands() {
			if err := checkTemplate(op, bound); err != nil {
				return err
			}
		}
	}
	return nil
}
