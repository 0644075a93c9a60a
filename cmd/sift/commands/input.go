package commands

import (
	"io"
	"os"
	"strings"

	"github.com/teranos/sift/am"
	"github.com/teranos/sift/errors"
	"github.com/teranos/sift/query"
)

// readInput resolves the query text from a positional argument, a file,
// or stdin ("-" as the file path).
func readInput(args []string, file string) (string, error) {
	switch {
	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read query from stdin")
		}
		return string(data), nil

	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read query file %s", file)
		}
		return string(data), nil

	case len(args) > 0:
		return strings.Join(args, " "), nil

	default:
		return "", errors.New("no query given: pass it as an argument, or use --file (- for stdin)")
	}
}

// loadOptions loads and validates configuration, returning the compiler
// options plus the full config for output settings.
func loadOptions() (query.Options, *am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return query.Options{}, nil, errors.Wrap(err, "failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return query.Options{}, nil, errors.Wrap(err, "invalid configuration")
	}

	opts := query.Options{
		PassLimit:    cfg.Compiler.PassLimit,
		NodeLimit:    cfg.Compiler.NodeLimit,
		CaseFold:     cfg.Compiler.CaseFold,
		LiteralOpen:  cfg.Compiler.LiteralOpen,
		LiteralClose: cfg.Compiler.LiteralClose,
		CommentOpen:  cfg.Compiler.CommentOpen,
		CommentClose: cfg.Compiler.CommentClose,
	}
	return opts, cfg, nil
}
