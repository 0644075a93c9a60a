// Package ast defines the tree representation of a parsed boolean query.
//
// A query is a tree of four node kinds: TERM leaves and NOT/AND/OR
// operator nodes. The parser produces strictly binary AND/OR chains;
// the rewrite engine flattens them into n-ary nodes and distributes
// AND over OR toward a disjunction-of-conjunctions shape.
package ast

import (
	"sort"
	"strings"
)

// Kind identifies the variant of a Node
type Kind int

const (
	KindTerm Kind = iota
	KindNot
	KindAnd
	KindOr
)

// String returns the kind's name as rendered in tree output
func (k Kind) String() string {
	switch k {
	case KindTerm:
		return "TERM"
	case KindNot:
		return "NOT"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// Node is a tagged variant: a TERM leaf carries Value (and Literal for
// brace-delimited exact-match tokens); NOT has exactly one child; AND and
// OR carry two or more children, order preserved.
type Node struct {
	Kind     Kind
	Value    string // term value, empty for operator nodes
	Literal  bool   // exact-match literal, case preserved
	Children []*Node
}

// Term builds a leaf node
func Term(value string, literal bool) *Node {
	return &Node{Kind: KindTerm, Value: value, Literal: literal}
}

// Not builds a negation node over a single child
func Not(child *Node) *Node {
	return &Node{Kind: KindNot, Children: []*Node{child}}
}

// And builds a conjunction node
func And(children ...*Node) *Node {
	return &Node{Kind: KindAnd, Children: children}
}

// Or builds a disjunction node
func Or(children ...*Node) *Node {
	return &Node{Kind: KindOr, Children: children}
}

// String renders the tree in compact prefix form, e.g.
// OR(AND(TERM(a), TERM(b)), NOT(TERM(c)))
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Kind == KindTerm {
		return "TERM(" + n.Value + ")"
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return n.Kind.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Clone returns a deep copy of the subtree rooted at n
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dup := &Node{Kind: n.Kind, Value: n.Value, Literal: n.Literal}
	if len(n.Children) > 0 {
		dup.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			dup.Children[i] = c.Clone()
		}
	}
	return dup
}

// Count returns the number of nodes in the subtree rooted at n
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// TermValues returns every term value reachable from n in document order,
// with duplicates. The scan ignores NOT/OR semantics: it is pure
// reachability.
func (n *Node) TermValues() []string {
	var values []string
	n.appendTermValues(&values)
	return values
}

func (n *Node) appendTermValues(values *[]string) {
	if n == nil {
		return
	}
	if n.Kind == KindTerm {
		*values = append(*values, n.Value)
		return
	}
	for _, c := range n.Children {
		c.appendTermValues(values)
	}
}

// DistinctTermValues returns the sorted set of term values reachable from n
func (n *Node) DistinctTermValues() []string {
	seen := make(map[string]struct{})
	for _, v := range n.TermValues() {
		seen[v] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Equal reports whether two trees are structurally identical
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Value != b.Value || a.Literal != b.Literal {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
