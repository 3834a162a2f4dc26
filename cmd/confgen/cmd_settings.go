package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imadrouass/network-config-generator/pkg/cli"
	"github.com/imadrouass/network-config-generator/pkg/output"
	"github.com/imadrouass/network-config-generator/pkg/settings"
	"github.com/imadrouass/network-config-generator/pkg/util"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved defaults",
	Long: `Persistent defaults live in ` + settings.DefaultSettingsPath() + `.
They fill in whatever the command-line flags leave unset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := cli.NewTable("SETTING", "VALUE")
		table.Row("output-dir", orDash(userSettings.OutputDir))
		table.Row("output-mode", orDash(userSettings.OutputMode))
		table.Row("log-level", orDash(userSettings.LogLevel))
		table.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a default (output-dir, output-mode, log-level)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "output-dir":
			userSettings.OutputDir = value
		case "output-mode":
			if _, err := output.ParseMode(value); err != nil {
				return err
			}
			userSettings.OutputMode = value
		case "log-level":
			if err := util.SetLogLevel(value); err != nil {
				return err
			}
			userSettings.LogLevel = value
		default:
			return fmt.Errorf("%w: unknown setting %q", util.ErrNotFound, key)
		}
		if err := userSettings.Save(); err != nil {
			return err
		}
		fmt.Printf("%s %s = %s\n", cli.Green("Saved:"), key, value)
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userSettings.Clear()
		if err := userSettings.Save(); err != nil {
			return err
		}
		fmt.Println(cli.Green("Settings cleared"))
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsClearCmd)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
