package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/nlu-trainer/internal/adapters/http/api"
	statusadapter "github.com/bnema/nlu-trainer/internal/adapters/render/status"
	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var botID string
	var asJSON bool
	var staleAfter time.Duration

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show recorded training sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := openRepository(cmd.Context(), opts.config())
			if err != nil {
				return err
			}
			defer repo.close()

			var sessions []domain.TrainingSession
			if botID != "" {
				sessions, err = repo.ListByBot(cmd.Context(), domain.BotID(botID))
			} else {
				sessions, err = repo.List(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("load trainings: %w", err)
			}

			return writeSessionsOutput(cmd, sessions, staleAfter, asJSON)
		},
	}

	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID (default: all bots)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().DurationVar(&staleAfter, "stale-after", 15*time.Minute, "Flag active trainings not updated for this long")

	return cmd
}

func writeSessionsOutput(cmd *cobra.Command, sessions []domain.TrainingSession, staleAfter time.Duration, asJSON bool) error {
	if asJSON {
		trainings := make([]api.TrainingResponse, 0, len(sessions))
		for _, session := range sessions {
			trainings = append(trainings, api.NewTrainingResponse(session))
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(api.TrainingsResponse{Trainings: trainings})
	}

	rendered, err := statusRenderer(sessions, statusadapter.RenderOptions{
		Now:        time.Now(),
		StaleAfter: staleAfter,
	})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
