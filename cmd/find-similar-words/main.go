package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/similarwords/internal/cli"
	"codeberg.org/snonux/similarwords/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.NewFindSimilarCommand(flags)

	cobra.OnInitialize(func() {
		cli.SetupLogging(flags.Verbose)
		cli.InitConfig(flags.CfgFile)
		cli.ApplyConfig(flags)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		_, err := processor.NewProcessor(flags).FindSimilar(args)
		return err
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
