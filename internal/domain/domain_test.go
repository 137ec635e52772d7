package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingStatusActive(t *testing.T) {
	tests := []struct {
		status TrainingStatus
		want   bool
	}{
		{status: TrainingStatusNeedsTraining, want: false},
		{status: TrainingStatusQueued, want: true},
		{status: TrainingStatusTraining, want: true},
		{status: TrainingStatusDone, want: false},
		{status: TrainingStatusErrored, want: false},
		{status: TrainingStatusCanceled, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.True(t, tt.status.Valid())
			assert.Equal(t, tt.want, tt.status.Active())
		})
	}

	assert.False(t, TrainingStatus("idle").Valid())
}

func TestTrainingIDEqualityIsCaseSensitive(t *testing.T) {
	a := TrainingID{BotID: "b1", Language: "en"}
	b := TrainingID{BotID: "b1", Language: "EN"}

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, TrainingID{BotID: "b1", Language: "en"})
	assert.Equal(t, "b1/en", a.String())
}

func TestTrainingIDValidate(t *testing.T) {
	require.NoError(t, TrainingID{BotID: "b1", Language: "en"}.Validate())
	assert.ErrorContains(t, TrainingID{Language: "en"}.Validate(), "bot id is required")
	assert.ErrorContains(t, TrainingID{BotID: "b1", Language: " "}.Validate(), "language is required")
}

func TestTrainingSessionProgressIsMonotonic(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := NewTrainingSession(TrainingID{BotID: "b1", Language: "en"}, now)

	assert.Equal(t, TrainingStatusNeedsTraining, session.Status)
	assert.True(t, session.SetProgress(0.4))
	assert.False(t, session.SetProgress(0.2))
	assert.Equal(t, 0.4, session.Progress)
	assert.True(t, session.SetProgress(7))
	assert.Equal(t, 1.0, session.Progress)
}

func TestBotConfigNormalizeLanguagesDeduplicatesAndDropsEmpty(t *testing.T) {
	cfg := BotConfig{ID: "b1", Languages: []string{"en", "", " fr", "en", "fr"}}
	cfg.NormalizeLanguages()

	assert.Equal(t, []string{"en", "fr"}, cfg.Languages)
	assert.Equal(t, []TrainingID{
		{BotID: "b1", Language: "en"},
		{BotID: "b1", Language: "fr"},
	}, cfg.TrainingIDs())
}

func TestBotConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BotConfig
		wantErr string
	}{
		{name: "valid", cfg: BotConfig{ID: "b1", Languages: []string{"en"}}},
		{name: "missing id", cfg: BotConfig{Languages: []string{"en"}}, wantErr: "id is required"},
		{name: "no languages", cfg: BotConfig{ID: "b1"}, wantErr: "at least one language"},
		{name: "blank language", cfg: BotConfig{ID: "b1", Languages: []string{"en", " "}}, wantErr: "empty language"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestBotErrorsUnwrapToSentinels(t *testing.T) {
	notMounted := fmt.Errorf("queue training: %w", BotNotMountedError{BotID: "b1"})
	require.ErrorIs(t, notMounted, ErrBotNotMounted)

	var typed BotNotMountedError
	require.True(t, errors.As(notMounted, &typed))
	assert.Equal(t, BotID("b1"), typed.BotID)

	assert.ErrorIs(t, ConflictError{BotID: "b1"}, ErrBotAlreadyMounted)
	assert.Contains(t, ConflictError{BotID: "b1"}.Error(), "already mounted")
}
