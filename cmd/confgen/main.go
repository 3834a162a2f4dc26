// Confgen - Link Configuration Generator
//
// A CLI tool that turns a tabular plan of point-to-point network links
// (site pairs, LAG ids, subnets, routing parameters, physical ports) into
// Nokia SR OS classic-CLI configuration text, one stanza block per site
// per link.
//
// Plans are read from XLSX, CSV, or YAML files; each row yields two
// mirrored configuration blocks sharing the same subnet-derived
// addressing. Output goes to timestamped flat text files, either one
// aggregate file or one file per link.
//
// Examples:
//
//	confgen -p Network_DataPlan.xlsx validate       # Check the plan
//	confgen -p Network_DataPlan.xlsx generate       # Render all links
//	confgen -p plan.csv generate -m multiple -o out # One file per link
//	confgen -p plan.yml show CORE1 CORE2            # Preview one link
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imadrouass/network-config-generator/pkg/cli"
	"github.com/imadrouass/network-config-generator/pkg/settings"
	"github.com/imadrouass/network-config-generator/pkg/util"
)

var (
	// Global flags
	planFile string // -p, --plan
	verbose  bool   // -v, --verbose

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Red("Error:"), err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "confgen",
	Short:             "Point-to-point link configuration generator",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Confgen renders Nokia SR OS style device configurations from a
tabular link plan. Each plan row describes one point-to-point link; the
generator emits two mirrored stanza blocks per link, one per endpoint.

  confgen -p <plan> validate
  confgen -p <plan> generate [-m single|multiple] [-o <dir>]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Log level: settings default, -v raises to debug
		level := "info"
		if userSettings.LogLevel != "" {
			level = userSettings.LogLevel
		}
		if verbose {
			level = "debug"
		}
		return util.SetLogLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&planFile, "plan", "p", "Network_DataPlan.xlsx",
		"Link plan file (.xlsx, .csv, .yml, or .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
