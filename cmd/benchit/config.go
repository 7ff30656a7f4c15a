// cmd/benchit/config.go
package benchit

import (
	"github.com/spf13/cobra"
)

// configCmd groups the subcommands that inspect and create settings files.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Group commands for settings files",
	Long:  `The 'config' command groups subcommands that print or create settings files. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
