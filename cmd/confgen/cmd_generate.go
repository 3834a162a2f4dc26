package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/imadrouass/network-config-generator/pkg/cli"
	"github.com/imadrouass/network-config-generator/pkg/output"
	"github.com/imadrouass/network-config-generator/pkg/plan"
	"github.com/imadrouass/network-config-generator/pkg/render"
)

var (
	outputDir  string // -o, --output
	outputMode string // -m, --mode
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render device configurations for every link in the plan",
	Long: `Loads the link plan, validates it, renders the mirrored endpoint
stanzas for every link, and writes the result to timestamped text files.

In single mode all links go into one file; in multiple mode each link
gets its own file named after the site pair. When --mode is omitted and
stdin is a terminal, you are asked which to use; otherwise single mode
is the default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		links, err := plan.Load(planFile)
		if err != nil {
			return err
		}

		configs, err := render.Plan(links)
		if err != nil {
			return err
		}

		mode, err := resolveMode()
		if err != nil {
			return err
		}

		dir := outputDir
		if dir == "" {
			dir = userSettings.OutputDir
		}
		writer := output.NewWriter(dir)

		paths, err := writer.WriteAll(configs, mode)
		if err != nil {
			return err
		}

		warnings := 0
		for _, c := range configs {
			warnings += len(c.Warnings)
		}

		fmt.Printf("%s rendered %d link(s) into %d file(s) under %s\n",
			cli.Green("Done:"), len(configs), len(paths), writer.Dir)
		if warnings > 0 {
			fmt.Println(cli.Yellow(fmt.Sprintf(
				"%d advisory warning(s) logged; review interface names", warnings)))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"Output directory (default \""+output.DefaultDir+"\")")
	generateCmd.Flags().StringVarP(&outputMode, "mode", "m", "",
		"Output mode: single or multiple")
}

// resolveMode picks the output mode from the flag, saved settings, or an
// interactive prompt, in that order. Non-interactive runs without a mode
// fall back to a single aggregate file.
func resolveMode() (output.Mode, error) {
	if outputMode != "" {
		return output.ParseMode(outputMode)
	}
	if userSettings.OutputMode != "" {
		return output.ParseMode(userSettings.OutputMode)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return promptMode()
	}
	return output.ModeSingle, nil
}

func promptMode() (output.Mode, error) {
	fmt.Print("Save configurations to a single file or multiple files? [s/m]: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return output.ModeSingle, fmt.Errorf("reading mode selection: %w", err)
	}
	mode, err := output.ParseMode(strings.TrimSpace(line))
	if err != nil {
		fmt.Println(cli.Yellow("Unrecognized choice, using a single file"))
		return output.ModeSingle, nil
	}
	return mode, nil
}
