package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/nlu-trainer/internal/adapters/http/api"
	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/loop"
	"github.com/spf13/cobra"
)

func newTrainCmd(opts *rootOptions) *cobra.Command {
	var botID string
	var language string
	var wait bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Queue a training on the running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := trainingFlagsID(botID, language)
			if err != nil {
				return err
			}

			client := newAPIClient(opts.config())
			session, err := client.QueueTraining(cmd.Context(), id.BotID, id.Language)
			if err != nil {
				return fmt.Errorf("queue training %s: %w", id, err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "training %s: %s (attempt %s)\n", id, session.Status, session.Attempt); err != nil {
				return err
			}
			if !wait {
				return nil
			}

			final, err := waitForTraining(cmd, client, id, session, interval)
			if err != nil {
				return err
			}
			return reportFinalTraining(cmd, final)
		},
	}

	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID")
	cmd.Flags().StringVar(&language, "lang", "", "Language")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the training finishes")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Polling interval used with --wait")
	_ = cmd.MarkFlagRequired("bot")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}

func newCancelCmd(opts *rootOptions) *cobra.Command {
	var botID string
	var language string

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a training on the running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := trainingFlagsID(botID, language)
			if err != nil {
				return err
			}

			session, err := newAPIClient(opts.config()).CancelTraining(cmd.Context(), id.BotID, id.Language)
			if err != nil {
				return fmt.Errorf("cancel training %s: %w", id, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "training %s: %s\n", id, session.Status)
			return err
		},
	}

	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID")
	cmd.Flags().StringVar(&language, "lang", "", "Language")
	_ = cmd.MarkFlagRequired("bot")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}

func waitForTraining(cmd *cobra.Command, client api.Client, id domain.TrainingID, session domain.TrainingSession, interval time.Duration) (domain.TrainingSession, error) {
	if interval <= 0 {
		interval = time.Second
	}

	final := session
	err := runWaitSpinner(cmd.Context(), cmd.ErrOrStderr(), waitLabel(session), func(ctx context.Context, update func(string)) error {
		var err error
		final, err = loop.Start(ctx, session, func(ctx context.Context, current domain.TrainingSession) (domain.TrainingSession, loop.Next) {
			if !current.Status.Active() {
				return current, loop.Break(nil)
			}

			next, err := client.GetTraining(ctx, id.BotID, id.Language)
			if err != nil {
				return current, loop.Break(fmt.Errorf("poll training %s: %w", id, err))
			}
			if next.Attempt != session.Attempt {
				return next, loop.Break(fmt.Errorf("training %s was superseded by attempt %s", id, next.Attempt))
			}

			update(waitLabel(next))
			if !next.Status.Active() {
				return next, loop.Break(nil)
			}
			return next, loop.Continue(interval)
		})
		return err
	})

	return final, err
}

func waitLabel(session domain.TrainingSession) string {
	return fmt.Sprintf("Training %s: %s %3.0f%%", session.ID, session.Status, session.Progress*100)
}

func reportFinalTraining(cmd *cobra.Command, session domain.TrainingSession) error {
	switch session.Status {
	case domain.TrainingStatusDone:
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "training %s: done (model %s)\n", session.ID, session.ModelID)
		return err
	case domain.TrainingStatusErrored:
		return fmt.Errorf("training %s errored: %s", session.ID, session.Error)
	default:
		return fmt.Errorf("training %s ended %s", session.ID, session.Status)
	}
}
