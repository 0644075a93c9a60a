package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Compiler defaults
	v.SetDefault("compiler.pass_limit", DefaultPassLimit)
	v.SetDefault("compiler.node_limit", DefaultNodeLimit)
	v.SetDefault("compiler.case_fold", true)
	v.SetDefault("compiler.literal_open", "{")
	v.SetDefault("compiler.literal_close", "}")
	v.SetDefault("compiler.comment_open", "<<<")
	v.SetDefault("compiler.comment_close", ">>>")

	// Output defaults
	v.SetDefault("output.json", false)
	v.SetDefault("output.color", true)
}
