package metrics

import (
	"testing"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserverTracksTransitions(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	observer, err := NewObserver(registry)
	require.NoError(t, err)

	id := domain.TrainingID{BotID: "b1", Language: "en"}
	observer.TransitionObserved(id, "", domain.TrainingStatusQueued)
	observer.TransitionObserved(id, domain.TrainingStatusQueued, domain.TrainingStatusTraining)
	observer.ProgressObserved(id, 0.25)

	assert.Equal(t, 1.0, testutil.ToFloat64(observer.sessions.WithLabelValues("training")))
	assert.Equal(t, 0.0, testutil.ToFloat64(observer.sessions.WithLabelValues("queued")))
	assert.Equal(t, 0.25, testutil.ToFloat64(observer.progress.WithLabelValues("b1", "en")))

	observer.TransitionObserved(id, domain.TrainingStatusTraining, domain.TrainingStatusDone)
	assert.Equal(t, 1.0, testutil.ToFloat64(observer.transitions.WithLabelValues("done")))
	assert.Equal(t, 1.0, testutil.ToFloat64(observer.progress.WithLabelValues("b1", "en")))

	observer.TransitionObserved(id, domain.TrainingStatusDone, domain.TrainingStatusNeedsTraining)
	assert.Equal(t, 0, testutil.CollectAndCount(observer.progress))
}

func TestObserverSeedFromExistingSessions(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	observer, err := NewObserver(registry)
	require.NoError(t, err)

	observer.Seed([]domain.TrainingSession{
		{ID: domain.TrainingID{BotID: "b1", Language: "en"}, Status: domain.TrainingStatusDone},
		{ID: domain.TrainingID{BotID: "b1", Language: "fr"}, Status: domain.TrainingStatusDone},
		{ID: domain.TrainingID{BotID: "b2", Language: "en"}, Status: domain.TrainingStatusQueued},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(observer.sessions.WithLabelValues("done")))
	assert.Equal(t, 1.0, testutil.ToFloat64(observer.sessions.WithLabelValues("queued")))
}

func TestNewObserverRejectsDuplicateRegistration(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	_, err := NewObserver(registry)
	require.NoError(t, err)

	_, err = NewObserver(registry)
	require.Error(t, err)
}
