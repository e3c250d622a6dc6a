// Package kanon is an exact symbolic kernel: numbers that stay exact
// as long as possible, canonical sums and products, wildcard matching
// and rule-driven rewriting.
//
// 🚀 What is kanon?
//
//	A small, synchronous computer-algebra core that brings together:
//		• Exact numerics: rational × radical × decimal × imaginary values
//		• Expression model: a closed Number / Symbol / Function node set
//		• Canonicalizers: like-term and like-factor collection for Add & Multiply
//		• Pattern matching: _ / __ / ___ wildcards with backtracking search
//		• Rewriting: compiled rule sets, fixed-point iteration, provenance
//
// ✨ Why choose kanon?
//
//   - Exactness first – 0.1 + (-0.1) + 1/4 is 1/4, never 0.25000000000000001
//   - Deterministic – one comparator fixes every operand arrangement
//   - Bounded – rewriting always terminates: the application limit is mandatory
//   - Auditable – every fired rule is recorded next to the value it produced
//
// Under the hood, everything is organized under five subpackages:
//
//	numval/  — the exact-when-possible numeric kernel and its arithmetic grid
//	expr/    — immutable expression nodes, operator table, total order
//	collect/ — Terms & Product collectors with exact / rational / numeric views
//	pattern/ — wildcard classification, matching and template substitution
//	rewrite/ — rule compilation, fixed-point replacement, candidate collection
//
// Quick taste:
//
//	x + 2x + 3          ⇒  Add(3, Multiply(3, x))
//	x · x² · 2          ⇒  Multiply(2, Power(x, 3))
//	2x + 6 = 0, seed x  ⇒  candidate root -3, checks back to exactly 0
//
// Dive into examples/ for runnable scenarios and each subpackage's doc.go
// for its contract.
//
//	go get github.com/solwyrm/kanon
package kanon
