// Package analysis derives a semantic summary from a normalized query
// tree: which term values stand alone, which are exclusionary, and which
// only matter jointly with another term.
//
// Terms are keyed by string value, not node identity: two occurrences of
// the same value are one entity here.
package analysis

import "github.com/teranos/sift/query/ast"

// Pair is an unordered value pair stored with A < B lexicographically
type Pair struct {
	A string
	B string
}

// NewPair orders two values into a Pair
func NewPair(x, y string) Pair {
	if x > y {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// Result holds the three categorized sets
type Result struct {
	// Standalone terms appear under no NOT and outside any AND: at the
	// top level or strictly under OR.
	Standalone map[string]struct{}

	// Excluded terms appear anywhere under a NOT.
	Excluded map[string]struct{}

	// RequiresPairs holds value pairs found jointly in the transitive
	// term set of the same AND node, after reconciliation against
	// Standalone.
	RequiresPairs map[Pair]struct{}
}

// context tags propagated down the walk
type tag int

const (
	tagNot tag = iota
	tagAnd
)

// Categorize walks a normalized tree and returns the categorized sets.
// Reconciliation has already been applied: no pair survives whose member
// is standalone anywhere in the query.
func Categorize(root *ast.Node) *Result {
	res := &Result{
		Standalone:    make(map[string]struct{}),
		Excluded:      make(map[string]struct{}),
		RequiresPairs: make(map[Pair]struct{}),
	}
	if root != nil {
		categorize(root, nil, res)
		res.reconcile()
	}
	return res
}

// categorize recurses with an immutable context stack: every call gets
// its own extended copy, so classification in one branch can never leak
// into a sibling branch.
func categorize(node *ast.Node, ctx []tag, res *Result) {
	switch node.Kind {
	case ast.KindTerm:
		switch {
		case hasTag(ctx, tagNot):
			res.Excluded[node.Value] = struct{}{}
		case hasTag(ctx, tagAnd):
			// Pairing was recorded by the enclosing AND
		default:
			res.Standalone[node.Value] = struct{}{}
		}

	case ast.KindNot:
		next := extend(ctx, tagNot)
		for _, child := range node.Children {
			categorize(child, next, res)
		}

	case ast.KindAnd:
		// Pair every distinct term value reachable in this subtree,
		// including values nested under NOT or OR. The pure reachability
		// scan is a deliberate contract: a negated term still pairs with
		// its conjunction siblings even though it is also excluded.
		values := node.DistinctTermValues()
		for i := 0; i < len(values); i++ {
			for j := i + 1; j < len(values); j++ {
				res.RequiresPairs[NewPair(values[i], values[j])] = struct{}{}
			}
		}

		next := extend(ctx, tagAnd)
		for _, child := range node.Children {
			categorize(child, next, res)
		}

	case ast.KindOr:
		// OR adds no tag; children inherit the parent context
		for _, child := range node.Children {
			categorize(child, ctx, res)
		}
	}
}

// reconcile drops every pair touching a standalone value: a term that is
// unconditionally relevant anywhere cannot be "required" elsewhere. The
// check is global and value-based, insensitive to which occurrence made
// the value standalone.
func (r *Result) reconcile() {
	for pair := range r.RequiresPairs {
		if _, ok := r.Standalone[pair.A]; ok {
			delete(r.RequiresPairs, pair)
			continue
		}
		if _, ok := r.Standalone[pair.B]; ok {
			delete(r.RequiresPairs, pair)
		}
	}
}

func hasTag(ctx []tag, t tag) bool {
	for _, c := range ctx {
		if c == t {
			return true
		}
	}
	return false
}

// extend returns a fresh stack with t appended; the input is never
// mutated and never shares its append slot
func extend(ctx []tag, t tag) []tag {
	next := make([]tag, len(ctx), len(ctx)+1)
	copy(next, ctx)
	return append(next, t)
}
