package application

import (
	"errors"
	"fmt"

	"github.com/bnema/nlu-trainer/internal/domain"
)

type LanguageAction string

const (
	LanguageActionUpToDate      LanguageAction = "up-to-date"
	LanguageActionQueued        LanguageAction = "queued"
	LanguageActionNeedsTraining LanguageAction = "needs-training"
	LanguageActionFailed        LanguageAction = "failed"
)

type LanguageOutcome struct {
	Language string
	ModelID  domain.ModelID
	Action   LanguageAction
	Session  *domain.TrainingSession
	Err      error
}

type MountReport struct {
	BotID    domain.BotID
	Outcomes []LanguageOutcome
}

// Err joins the per-language failures, nil when every language was handled.
func (r MountReport) Err() error {
	var errs []error
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			errs = append(errs, fmt.Errorf("language %s: %w", outcome.Language, outcome.Err))
		}
	}
	return errors.Join(errs...)
}

func (r MountReport) Outcome(language string) (LanguageOutcome, bool) {
	for _, outcome := range r.Outcomes {
		if outcome.Language == language {
			return outcome, true
		}
	}
	return LanguageOutcome{}, false
}
