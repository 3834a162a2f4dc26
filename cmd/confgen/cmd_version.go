package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imadrouass/network-config-generator/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("confgen", version.Info())
	},
}
