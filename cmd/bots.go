package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bnema/nlu-trainer/internal/adapters/bots"
	"github.com/spf13/cobra"
)

func newBotsCmd(opts *rootOptions) *cobra.Command {
	var mounted bool

	cmd := &cobra.Command{
		Use:   "bots",
		Short: "List bots configured in the bots directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.config()

			if mounted {
				ids, err := newAPIClient(cfg).ListBots(cmd.Context())
				if err != nil {
					return fmt.Errorf("list mounted bots: %w", err)
				}
				for _, id := range ids {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
						return err
					}
				}
				return nil
			}

			configs, err := bots.Source{Dir: cfg.GetString(keyBotsDir)}.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(configs) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no bots in %s\n", cfg.GetString(keyBotsDir))
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tLANGUAGES\tDISABLED")
			for _, bot := range configs {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", bot.ID, bot.Name, strings.Join(bot.Languages, ","), bot.Disabled)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&mounted, "mounted", false, "List the bots mounted on the running server instead")

	return cmd
}
