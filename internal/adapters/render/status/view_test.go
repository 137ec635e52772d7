package status

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(bot domain.BotID, lang string, status domain.TrainingStatus, progress float64, updatedAt time.Time) domain.TrainingSession {
	return domain.TrainingSession{
		ID:        domain.TrainingID{BotID: bot, Language: lang},
		Status:    status,
		Progress:  progress,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestRenderEmpty(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "bots: 0  trainings: 0")
	assert.Contains(t, output, "No trainings recorded.")
}

func TestRenderGroupsSessionsByBot(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	done := session("b1", "fr", domain.TrainingStatusDone, 1, now.Add(-2*time.Hour))
	done.ModelID = "b1.fr.abc"
	output, err := Render([]domain.TrainingSession{
		session("b2", "en", domain.TrainingStatusQueued, 0, now),
		done,
		session("b1", "en", domain.TrainingStatusTraining, 0.5, now.Add(-5*time.Minute)),
	}, RenderOptions{Now: now, StaleAfter: time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "bots: 2  trainings: 3")
	assert.Contains(t, output, "Bot: b1")
	assert.Contains(t, output, "Bot: b2")
	assert.Less(t, strings.Index(output, "Bot: b1"), strings.Index(output, "Bot: b2"))
	assert.Contains(t, output, " 50%")
	assert.Contains(t, output, "100%")
	assert.Contains(t, output, "b1.fr.abc")
	assert.Contains(t, output, "updated 5 minutes ago")
	assert.Contains(t, output, "updated 2 hours ago")
	assert.Contains(t, output, "updated just now")
	assert.NotContains(t, output, "[stale]")
}

func TestRenderShowsTrainingError(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	failed := session("b1", "en", domain.TrainingStatusErrored, 0.3, now)
	failed.Error = "engine exploded"

	output, err := Render([]domain.TrainingSession{failed}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "errored")
	assert.Contains(t, output, "error: engine exploded")
}

func TestRenderMarksStaleActiveSessions(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.TrainingSession{
		session("b1", "en", domain.TrainingStatusTraining, 0.2, now.Add(-3*time.Hour)),
	}, RenderOptions{Now: now, StaleAfter: time.Hour})
	require.NoError(t, err)
	assert.Contains(t, output, "[stale]")

	output, err = Render([]domain.TrainingSession{
		session("b1", "en", domain.TrainingStatusDone, 1, now.Add(-3*time.Hour)),
	}, RenderOptions{Now: now, StaleAfter: time.Hour})
	require.NoError(t, err)
	assert.NotContains(t, output, "[stale]")
}

func TestRenderDoesNotMarkStaleWhenNowNotProvided(t *testing.T) {
	updated := time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.TrainingSession{
		session("b1", "en", domain.TrainingStatusQueued, 0, updated),
	}, RenderOptions{StaleAfter: time.Hour})

	require.NoError(t, err)
	assert.NotContains(t, output, "[stale]")
	assert.Contains(t, output, "updated 2026-02-10T11:00:00Z")
}

func TestProgressBarClamps(t *testing.T) {
	s := newStyles()

	assert.Equal(t, 24, strings.Count(renderProgressBar(2, 24, s), "="))
	assert.Equal(t, 0, strings.Count(renderProgressBar(-1, 24, s), "="))
	assert.Equal(t, 12, strings.Count(renderProgressBar(0.5, 24, s), "="))
	assert.Empty(t, renderProgressBar(0.5, 0, s))
}
