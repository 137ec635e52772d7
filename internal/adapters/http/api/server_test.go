package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/bnema/nlu-trainer/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	repo     ports.TrainingRepository
	mounted  map[domain.BotID]bool
	sessions map[domain.TrainingID]domain.TrainingSession
	health   domain.EngineHealth
	healthOK bool
}

func (s *fakeService) ListBots() []domain.BotID {
	ids := make([]domain.BotID, 0, len(s.mounted))
	for _, id := range []domain.BotID{"b1", "b2"} {
		if s.mounted[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *fakeService) GetTraining(_ context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	session, ok := s.sessions[domain.TrainingID{BotID: botID, Language: language}]
	if !ok {
		return domain.TrainingSession{}, fmt.Errorf("get training %s/%s: %w", botID, language, domain.ErrTrainingNotFound)
	}
	return session, nil
}

func (s *fakeService) QueueTraining(_ context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	if !s.mounted[botID] {
		return domain.TrainingSession{}, domain.BotNotMountedError{BotID: botID}
	}
	id := domain.TrainingID{BotID: botID, Language: language}
	session := domain.TrainingSession{ID: id, Status: domain.TrainingStatusQueued, Attempt: "a1"}
	s.sessions[id] = session
	return session, nil
}

func (s *fakeService) CancelTraining(_ context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	if !s.mounted[botID] {
		return domain.TrainingSession{}, domain.BotNotMountedError{BotID: botID}
	}
	id := domain.TrainingID{BotID: botID, Language: language}
	session := s.sessions[id]
	session.Status = domain.TrainingStatusCanceled
	s.sessions[id] = session
	return session, nil
}

func (s *fakeService) Predict(_ context.Context, botID domain.BotID, language string, text string) (domain.Prediction, error) {
	if !s.mounted[botID] {
		return domain.Prediction{}, domain.BotNotMountedError{BotID: botID}
	}
	return domain.Prediction{
		ModelID:  "b1.en.v1",
		Language: language,
		Text:     text,
		Intents:  []domain.IntentPrediction{{Name: "greet", Confidence: 0.9}},
	}, nil
}

func (s *fakeService) GetHealth(context.Context) (domain.EngineHealth, error) {
	if !s.healthOK {
		return domain.EngineHealth{}, fmt.Errorf("get engine info: %w", domain.ErrEngineUnavailable)
	}
	return s.health, nil
}

func (s *fakeService) TrainingRepository() ports.TrainingRepository {
	return s.repo
}

func newTestServer(t *testing.T, service *fakeService, opts ...Option) Client {
	t.Helper()

	server := httptest.NewServer(NewServer(service, opts...))
	t.Cleanup(server.Close)
	return Client{BaseURL: server.URL, HTTPClient: server.Client()}
}

func newFakeService(t *testing.T) *fakeService {
	return &fakeService{
		repo:     mocks.NewMockTrainingRepository(t),
		mounted:  map[domain.BotID]bool{"b1": true},
		sessions: map[domain.TrainingID]domain.TrainingSession{},
		health:   domain.EngineHealth{IsAvailable: true, Languages: []string{"en"}},
		healthOK: true,
	}
}

func TestTrainingLifecycleOverHTTP(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, newFakeService(t))
	ctx := context.Background()

	_, err := client.GetTraining(ctx, "b1", "en")
	require.ErrorIs(t, err, domain.ErrTrainingNotFound)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	queued, err := client.QueueTraining(ctx, "b1", "en")
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingStatusQueued, queued.Status)
	assert.Equal(t, domain.TrainingID{BotID: "b1", Language: "en"}, queued.ID)

	got, err := client.GetTraining(ctx, "b1", "en")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.Attempt)

	canceled, err := client.CancelTraining(ctx, "b1", "en")
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingStatusCanceled, canceled.Status)
}

func TestUnmountedBotIsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, newFakeService(t))

	_, err := client.QueueTraining(context.Background(), "ghost", "en")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "not mounted")
}

func TestHealthMapsEngineUnavailable(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	client := newTestServer(t, service)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, health.IsAvailable)

	service.healthOK = false
	_, err = client.Health(context.Background())
	require.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestListBotsAndTrainings(t *testing.T) {
	t.Parallel()

	service := newFakeService(t)
	repo := service.repo.(*mocks.MockTrainingRepository)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	session := domain.TrainingSession{
		ID:        domain.TrainingID{BotID: "b1", Language: "en"},
		Status:    domain.TrainingStatusDone,
		Progress:  1,
		ModelID:   "b1.en.v1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo.EXPECT().List(mock.Anything).Return([]domain.TrainingSession{session}, nil).Once()
	repo.EXPECT().ListByBot(mock.Anything, domain.BotID("b2")).Return(nil, domain.ErrStorage).Once()
	client := newTestServer(t, service)

	bots, err := client.ListBots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, bots)

	sessions, err := client.ListTrainings(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []domain.TrainingSession{session}, sessions)

	_, err = client.ListTrainings(context.Background(), "b2")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestPredictValidatesBody(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, newFakeService(t))

	prediction, err := client.Predict(context.Background(), "b1", "en", "hello")
	require.NoError(t, err)
	assert.Equal(t, "greet", prediction.Intents[0].Name)

	_, err = client.Predict(context.Background(), "b1", "en", "")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "text is required", apiErr.Message)
}

func TestMetricsRoute(t *testing.T) {
	t.Parallel()

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "nlu_training_sessions{status=\"done\"} 1\n")
	})
	client := newTestServer(t, newFakeService(t), WithMetrics(metrics))

	resp, err := client.HTTPClient.Get(client.BaseURL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "nlu_training_sessions"))
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{domain.BotNotMountedError{BotID: "b1"}, http.StatusNotFound},
		{fmt.Errorf("get: %w", domain.ErrTrainingNotFound), http.StatusNotFound},
		{domain.ConflictError{BotID: "b1"}, http.StatusConflict},
		{fmt.Errorf("x: %w", domain.ErrEngineUnavailable), http.StatusServiceUnavailable},
		{domain.ErrQueueClosed, http.StatusServiceUnavailable},
		{domain.ErrModelNotReady, http.StatusConflict},
		{domain.ErrStorage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}
