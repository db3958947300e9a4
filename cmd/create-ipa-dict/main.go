package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/similarwords/internal/cli"
	"codeberg.org/snonux/similarwords/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.NewCreateDictCommand(flags)

	cobra.OnInitialize(func() {
		cli.SetupLogging(flags.Verbose)
		cli.InitConfig(flags.CfgFile)
		cli.ApplyConfig(flags)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		proc := processor.NewProcessor(flags)
		if flags.ListLanguages {
			return proc.ListLanguages(cmd.Context())
		}
		if flags.ListModels {
			return proc.ListModels(cmd.Context())
		}

		var input string
		if len(args) > 0 {
			input = args[0]
		}
		return proc.CreateDictionary(cmd.Context(), input)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
