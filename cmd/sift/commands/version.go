package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the sift release tag, overridable at build time via
// -ldflags "-X github.com/teranos/sift/cmd/sift/commands.Version=..."
var Version = "0.1.0"

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sift version information",
	Run: func(cmd *cobra.Command, args []string) {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if jsonOutput {
			output, _ := json.MarshalIndent(map[string]string{
				"version":  Version,
				"platform": runtime.GOOS + "/" + runtime.GOARCH,
				"go":       runtime.Version(),
			}, "", "  ")
			fmt.Println(string(output))
			return
		}

		fmt.Printf("sift %s\n", Version)
		fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("Go: %s\n", runtime.Version())
	},
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}
