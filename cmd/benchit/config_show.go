// cmd/benchit/config_show.go
package benchit

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/benchit/config"
)

var showFormat string

// configShowCmd implements 'config show', which prints the settings that a
// measurement would use after defaults, file and environment are merged.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings",
	Long:  `The 'show' subcommand prints the settings resolved from the defaults, the --config file and the BENCHIT_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}
		return config.Encode(cmd.OutOrStdout(), s, showFormat)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().StringVarP(&showFormat, "format", "f", "yaml", "output format (json or yaml)")
}
