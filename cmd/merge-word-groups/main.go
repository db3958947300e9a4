package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/similarwords/internal/cli"
	"codeberg.org/snonux/similarwords/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.NewMergeGroupsCommand(flags)

	cobra.OnInitialize(func() {
		cli.SetupLogging(flags.Verbose)
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return processor.NewProcessor(flags).Merge(args)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
