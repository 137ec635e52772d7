package domain

import (
	"fmt"
	"strings"
	"time"
)

type TrainingStatus string

const (
	TrainingStatusNeedsTraining TrainingStatus = "needs-training"
	TrainingStatusQueued        TrainingStatus = "queued"
	TrainingStatusTraining      TrainingStatus = "training"
	TrainingStatusDone          TrainingStatus = "done"
	TrainingStatusErrored       TrainingStatus = "errored"
	TrainingStatusCanceled      TrainingStatus = "canceled"
)

func (s TrainingStatus) Valid() bool {
	switch s {
	case TrainingStatusNeedsTraining, TrainingStatusQueued, TrainingStatusTraining,
		TrainingStatusDone, TrainingStatusErrored, TrainingStatusCanceled:
		return true
	default:
		return false
	}
}

// Active reports whether a session in this status owns the TrainingID's single
// scheduling slot.
func (s TrainingStatus) Active() bool {
	return s == TrainingStatusQueued || s == TrainingStatusTraining
}

// TrainingID identifies one (bot, language) training unit. Comparison is exact
// and case-sensitive.
type TrainingID struct {
	BotID    BotID
	Language string
}

func (id TrainingID) String() string {
	return fmt.Sprintf("%s/%s", id.BotID, id.Language)
}

func (id TrainingID) Validate() error {
	if strings.TrimSpace(string(id.BotID)) == "" {
		return fmt.Errorf("bot id is required")
	}
	if strings.TrimSpace(id.Language) == "" {
		return fmt.Errorf("language is required")
	}

	return nil
}

type TrainingSession struct {
	ID        TrainingID
	Status    TrainingStatus
	Progress  float64
	Attempt   string
	ModelID   ModelID
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTrainingSession(id TrainingID, now time.Time) TrainingSession {
	return TrainingSession{
		ID:        id,
		Status:    TrainingStatusNeedsTraining,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetProgress only moves progress forward and clamps it to [0, 1].
func (s *TrainingSession) SetProgress(progress float64) bool {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	if progress <= s.Progress {
		return false
	}

	s.Progress = progress
	return true
}
