package am

import "github.com/teranos/sift/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Compiler.PassLimit <= 0 {
		return errors.Newf("compiler.pass_limit must be > 0, got %d", c.Compiler.PassLimit)
	}

	// NodeLimit: 0 = unlimited, negative = invalid
	if c.Compiler.NodeLimit < 0 {
		return errors.Newf("compiler.node_limit must be >= 0, got %d", c.Compiler.NodeLimit)
	}

	if c.Compiler.LiteralOpen == "" || c.Compiler.LiteralClose == "" {
		return errors.New("compiler.literal_open and compiler.literal_close cannot be empty")
	}
	if c.Compiler.LiteralOpen == c.Compiler.LiteralClose {
		return errors.Newf("literal delimiters must differ, both are %q", c.Compiler.LiteralOpen)
	}

	if c.Compiler.CommentOpen == "" || c.Compiler.CommentClose == "" {
		return errors.New("compiler.comment_open and compiler.comment_close cannot be empty")
	}

	return nil
}
