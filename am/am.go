package am

// Config represents the core sift configuration
type Config struct {
	Compiler CompilerConfig `mapstructure:"compiler"`
	Output   OutputConfig   `mapstructure:"output"`
}

// CompilerConfig configures the query compiler pipeline
type CompilerConfig struct {
	// Normalization bounds. PassLimit caps fixpoint passes; NodeLimit
	// caps tree size during AND-over-OR distribution (0 = unlimited).
	PassLimit int `mapstructure:"pass_limit"`
	NodeLimit int `mapstructure:"node_limit"`

	// CaseFold lowercases bare words and quoted phrases. Brace-delimited
	// literals always keep their original case.
	CaseFold bool `mapstructure:"case_fold"`

	// Token delimiters for exact-match literals
	LiteralOpen  string `mapstructure:"literal_open"`
	LiteralClose string `mapstructure:"literal_close"`

	// Markers for annotation blocks stripped before parsing
	CommentOpen  string `mapstructure:"comment_open"`
	CommentClose string `mapstructure:"comment_close"`
}

// OutputConfig configures how compiled summaries are rendered
type OutputConfig struct {
	JSON  bool `mapstructure:"json"`  // machine-readable summary output
	Color bool `mapstructure:"color"` // styled terminal rendering
}

// Normalization bound defaults
const (
	DefaultPassLimit = 1000
	DefaultNodeLimit = 0 // unlimited
)
