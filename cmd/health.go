package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHealthCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show the NLU engine health as seen by the running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			health, err := newAPIClient(opts.config()).Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("get health: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(health)
			}

			state := "unavailable"
			if health.IsAvailable {
				state = "available"
			}
			languages := "none"
			if len(health.Languages) > 0 {
				languages = strings.Join(health.Languages, ", ")
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "engine: %s\nlanguages: %s\n", state, languages)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
