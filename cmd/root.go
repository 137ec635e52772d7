package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "nluctl",
		Short:         "nluctl: train and serve NLU models for bots",
		Long:          "nluctl mounts bots on an NLU engine, keeps one training per bot language in step with its definitions, and reports training progress from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: $HOME/.nluctl/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(opts),
		newStatusCmd(opts),
		newTrainCmd(opts),
		newCancelCmd(opts),
		newPredictCmd(opts),
		newHealthCmd(opts),
		newBotsCmd(opts),
	)

	return rootCmd
}
