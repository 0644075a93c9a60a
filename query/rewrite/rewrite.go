// Package rewrite normalizes a parsed query tree toward a
// disjunction-of-conjunctions shape: associative AND/OR chains are
// flattened into n-ary nodes and AND is distributed over OR until a
// fixpoint is reached.
//
// Distribution is exponential in the worst case (an AND over k OR nodes
// with branching factor b yields up to b^k conjunctions), so the engine
// runs under a pass ceiling and an optional node-count ceiling.
package rewrite

import (
	"github.com/teranos/sift/errors"
	"github.com/teranos/sift/logger"
	"github.com/teranos/sift/query/ast"
)

// DefaultPassLimit bounds fixpoint iteration
const DefaultPassLimit = 1000

// Sentinel errors, checked with errors.Is
var (
	// ErrNotConverged marks a best-effort result: the pass ceiling was
	// reached before the tree stabilized. The returned tree is still
	// usable; callers decide whether to treat this as fatal.
	ErrNotConverged = errors.New("normalization did not converge within pass limit")

	// ErrResourceExceeded aborts normalization when the tree outgrows
	// the configured node budget. No tree is returned with it.
	ErrResourceExceeded = errors.New("normalization exceeded node budget")
)

// Engine runs bounded fixpoint normalization passes
type Engine struct {
	passLimit int
	nodeLimit int // 0 = unlimited
}

// NewEngine creates a normalization engine. passLimit values <= 0 fall
// back to DefaultPassLimit; nodeLimit 0 disables the node budget.
func NewEngine(passLimit, nodeLimit int) *Engine {
	if passLimit <= 0 {
		passLimit = DefaultPassLimit
	}
	if nodeLimit < 0 {
		nodeLimit = 0
	}
	return &Engine{passLimit: passLimit, nodeLimit: nodeLimit}
}

// parentRef locates a node inside its parent's child list. The root has
// a nil parent. The map is rebuilt from scratch every pass because
// distribution replaces nodes and may install a new root.
type parentRef struct {
	parent *ast.Node
	index  int
}

// Normalize rewrites the tree until no pass changes it, the pass ceiling
// is hit (tree returned together with ErrNotConverged), or the node
// budget is exceeded (nil tree, ErrResourceExceeded).
//
// Each pass walks the current tree breadth-first, recording parent
// pointers, then processes every AND node in that order: flatten direct
// AND children, then distribute over the first OR child. OR nodes get
// the symmetric flatten step so the flattening invariant holds for both.
func (e *Engine) Normalize(root *ast.Node) (*ast.Node, error) {
	if root == nil {
		return nil, nil
	}

	changed := true
	passes := 0
	for changed && passes < e.passLimit {
		changed = false
		passes++

		order, parents := e.scan(root)
		if e.nodeLimit > 0 && len(order) > e.nodeLimit {
			return nil, errors.Wrapf(ErrResourceExceeded,
				"tree grew to %d nodes (budget %d) after %d passes",
				len(order), e.nodeLimit, passes-1)
		}

		for _, node := range order {
			switch node.Kind {
			case ast.KindAnd:
				if flattenSameKind(node) {
					changed = true
				}
				if i := firstOrChild(node); i >= 0 {
					replacement := distribute(node, i)
					if ref := parents[node]; ref.parent == nil {
						root = replacement
					} else {
						ref.parent.Children[ref.index] = replacement
					}
					changed = true
				}
			case ast.KindOr:
				if flattenSameKind(node) {
					changed = true
				}
			}
		}
	}

	if changed {
		logger.Warnw("query normalization hit pass ceiling",
			"passes", passes,
			"nodes", root.Count())
		return root, ErrNotConverged
	}

	logger.Debugw("query normalization converged",
		"passes", passes,
		"nodes", root.Count())
	return root, nil
}

// scan gathers nodes breadth-first and records each node's parent and
// child index
func (e *Engine) scan(root *ast.Node) ([]*ast.Node, map[*ast.Node]parentRef) {
	order := []*ast.Node{root}
	parents := map[*ast.Node]parentRef{root: {}}
	for i := 0; i < len(order); i++ {
		node := order[i]
		for idx, child := range node.Children {
			parents[child] = parentRef{parent: node, index: idx}
			order = append(order, child)
		}
	}
	return order, parents
}

// flattenSameKind splices children of the node's own kind into the node,
// preserving order. Returns whether any splicing occurred.
func flattenSameKind(node *ast.Node) bool {
	changed := false
	for _, child := range node.Children {
		if child.Kind == node.Kind {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}

	flattened := make([]*ast.Node, 0, len(node.Children))
	for _, child := range node.Children {
		if child.Kind == node.Kind {
			flattened = append(flattened, child.Children...)
		} else {
			flattened = append(flattened, child)
		}
	}
	node.Children = flattened
	return true
}

// firstOrChild returns the index of the leftmost OR child, or -1
func firstOrChild(node *ast.Node) int {
	for i, child := range node.Children {
		if child.Kind == ast.KindOr {
			return i
		}
	}
	return -1
}

// distribute expands AND(before..., OR(c1..cn), after...) into
// OR(AND(before..., c1, after...), ..., AND(before..., cn, after...)).
// Siblings are deep-copied into each branch so later in-place rewrites
// of one branch cannot leak into another.
func distribute(node *ast.Node, orIndex int) *ast.Node {
	orNode := node.Children[orIndex]
	before := node.Children[:orIndex]
	after := node.Children[orIndex+1:]

	branches := make([]*ast.Node, 0, len(orNode.Children))
	for _, alt := range orNode.Children {
		children := make([]*ast.Node, 0, len(node.Children))
		for _, sibling := range before {
			children = append(children, sibling.Clone())
		}
		children = append(children, alt)
		for _, sibling := range after {
			children = append(children, sibling.Clone())
		}
		branches = append(branches, ast.And(children...))
	}
	return ast.Or(branches...)
}
