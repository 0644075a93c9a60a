// Package query compiles boolean query text into a normalized tree and a
// semantic summary of its terms.
//
// The pipeline is a straight line with no I/O and no shared state:
//
//	text → strip comments → parse → normalize → categorize → summarize
//
// Each call owns its tree exclusively, so concurrent compilations need no
// locking.
package query

import (
	"github.com/teranos/sift/errors"
	"github.com/teranos/sift/logger"
	"github.com/teranos/sift/query/analysis"
	"github.com/teranos/sift/query/ast"
	"github.com/teranos/sift/query/parser"
	"github.com/teranos/sift/query/rewrite"
	"github.com/teranos/sift/query/summary"
)

// Options configures a compilation. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// PassLimit bounds normalization passes; values <= 0 mean the
	// default of 1000.
	PassLimit int

	// NodeLimit aborts normalization once the tree exceeds this many
	// nodes; 0 disables the budget.
	NodeLimit int

	// CaseFold lowercases bare words and quoted phrases
	CaseFold bool

	// Delimiters for exact-match literals and annotation blocks
	LiteralOpen  string
	LiteralClose string
	CommentOpen  string
	CommentClose string
}

// DefaultOptions returns the standard pipeline configuration
func DefaultOptions() Options {
	return Options{
		PassLimit:    rewrite.DefaultPassLimit,
		NodeLimit:    0,
		CaseFold:     true,
		LiteralOpen:  "{",
		LiteralClose: "}",
		CommentOpen:  "<<<",
		CommentClose: ">>>",
	}
}

// Result is the output of a successful compilation
type Result struct {
	// AST is the normalized tree
	AST *ast.Node

	// Summary holds the categorized term report
	Summary *summary.Summary

	// Converged is false when normalization hit its pass ceiling and the
	// tree (and summary) are best-effort
	Converged bool
}

// Compile runs the full pipeline with default options
func Compile(input string) (*Result, error) {
	return CompileWithOptions(input, DefaultOptions())
}

// CompileWithOptions runs the full pipeline. Malformed input returns a
// *parser.SyntaxError; exceeding the node budget returns an error marked
// rewrite.ErrResourceExceeded. Non-convergence is not an error: the
// result comes back with Converged=false.
func CompileWithOptions(input string, opts Options) (*Result, error) {
	root, err := ParseWithOptions(input, opts)
	if err != nil {
		return nil, err
	}

	engine := rewrite.NewEngine(opts.PassLimit, opts.NodeLimit)
	normalized, err := engine.Normalize(root)
	converged := true
	if err != nil {
		if !errors.Is(err, rewrite.ErrNotConverged) {
			return nil, err
		}
		converged = false
		logger.Warnw("compiling best-effort summary from non-converged tree",
			"pass_limit", opts.PassLimit)
	}

	res := analysis.Categorize(normalized)
	return &Result{
		AST:       normalized,
		Summary:   summary.FromResult(res),
		Converged: converged,
	}, nil
}

// Parse builds the raw (un-normalized) tree with default options
func Parse(input string) (*ast.Node, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions builds the raw tree without normalizing it
func ParseWithOptions(input string, opts Options) (*ast.Node, error) {
	return parser.ParseWithOptions(input, parser.Options{
		CaseFold:     opts.CaseFold,
		LiteralOpen:  opts.LiteralOpen,
		LiteralClose: opts.LiteralClose,
		CommentOpen:  opts.CommentOpen,
		CommentClose: opts.CommentClose,
	})
}
