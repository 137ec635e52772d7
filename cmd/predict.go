package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPredictCmd(opts *rootOptions) *cobra.Command {
	var botID string
	var language string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "predict <text>",
		Short: "Classify a text with a mounted bot's model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := trainingFlagsID(botID, language)
			if err != nil {
				return err
			}

			prediction, err := newAPIClient(opts.config()).Predict(cmd.Context(), id.BotID, id.Language, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("predict with %s: %w", id, err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(prediction)
			}

			if len(prediction.Intents) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no intent matched")
				return err
			}
			for _, intent := range prediction.Intents {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\n", intent.Name, intent.Confidence); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID")
	cmd.Flags().StringVar(&language, "lang", "", "Language")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("bot")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}
