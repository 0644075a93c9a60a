package parser

// Options controls tokenization behavior. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// CaseFold lowercases bare words and quoted phrases. Literals always
	// keep their original case.
	CaseFold bool

	// Delimiters for exact-match literal tokens. The captured term value
	// includes the delimiters, so {ABC} and abc stay distinct values.
	LiteralOpen  string
	LiteralClose string

	// Markers for annotation blocks removed before tokenization
	CommentOpen  string
	CommentClose string
}

// DefaultOptions returns the standard grammar configuration
func DefaultOptions() Options {
	return Options{
		CaseFold:     true,
		LiteralOpen:  "{",
		LiteralClose: "}",
		CommentOpen:  "<<<",
		CommentClose: ">>>",
	}
}
