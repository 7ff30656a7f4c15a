// cmd/benchit/root.go
package benchit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose int
)

// rootCmd is the base Cobra command for the benchit application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "benchit",
	Short: "Measure the execution time of functions",
	Long: `benchit repeats a function until its average execution time is stable, reruns
outliers, and reports the average, shortest and longest retained samples.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "settings file (json, yaml or toml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log every sample (-vv also prints the resolved settings)")

	// The key in viper will be "config"
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}
