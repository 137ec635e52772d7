package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return Client{BaseURL: server.URL, HTTPClient: server.Client()}
}

func TestGetInfoParsesHealth(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/info", r.URL.Path)
		assert.Empty(t, r.Header.Get("X-App-Secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.4.0","health":{"isAvailable":true,"languages":["en","fr"]}}`))
	})

	info, err := client.GetInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", info.Version)
	assert.True(t, info.Health.IsAvailable)
	assert.Equal(t, []string{"en", "fr"}, info.Health.Languages)
}

func TestHasModelSendsSecretAndMapsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s3cret", r.Header.Get("X-App-Secret"))
		switch r.URL.Path {
		case "/models/b1.en.4f2a9c1d":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	exists, err := client.HasModel(context.Background(), "b1.en.4f2a9c1d", "s3cret")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.HasModel(context.Background(), "b1.fr.00000000", "s3cret")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestServerErrorMapsToEngineUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"warming up"}`))
	})

	_, err := client.HasModel(context.Background(), "b1.en.4f2a9c1d", "s3cret")
	require.ErrorIs(t, err, domain.ErrEngineUnavailable)
	assert.ErrorContains(t, err, "warming up")
}

func TestTransportFailureMapsToEngineUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := Client{BaseURL: baseURL, RequestTimeout: time.Second}
	_, err := client.GetInfo(context.Background())
	require.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestClientErrorIsNotEngineUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"intent greet has no utterances"}`))
	})

	_, err := client.StartTraining(context.Background(), domain.TrainSet{ModelID: "b1.en.4f2a9c1d", Language: "en"}, "s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEngineUnavailable)
	assert.ErrorContains(t, err, "intent greet has no utterances")
}

func TestStartTrainingPostsTrainSet(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/train", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var set domain.TrainSet
		require.NoError(t, json.NewDecoder(r.Body).Decode(&set))
		assert.Equal(t, domain.ModelID("b1.en.4f2a9c1d"), set.ModelID)
		require.Len(t, set.Intents, 1)
		assert.Equal(t, []string{"hello", "hi there"}, set.Intents[0].Utterances)

		_, _ = w.Write([]byte(`{"modelId":"b1.en.4f2a9c1d"}`))
	})

	modelID, err := client.StartTraining(context.Background(), domain.TrainSet{
		ModelID:  "b1.en.4f2a9c1d",
		Language: "en",
		Intents:  []domain.Intent{{Name: "greet", Utterances: []string{"hello", "hi there"}}},
	}, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, domain.ModelID("b1.en.4f2a9c1d"), modelID)
}

func TestGetTrainingStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/train/b1.en.4f2a9c1d" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"status":"training","progress":0.42}`))
	})

	status, err := client.GetTrainingStatus(context.Background(), "b1.en.4f2a9c1d", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingStatusTraining, status.Status)
	assert.InDelta(t, 0.42, status.Progress, 0.0001)

	_, err = client.GetTrainingStatus(context.Background(), "b1.fr.00000000", "s3cret")
	require.ErrorIs(t, err, domain.ErrTrainingNotFound)
}

func TestCancelTrainingToleratesUnknownModel(t *testing.T) {
	t.Parallel()

	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/train/b1.en.4f2a9c1d/cancel" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	require.NoError(t, client.CancelTraining(context.Background(), "b1.en.4f2a9c1d", "s3cret"))
	require.NoError(t, client.CancelTraining(context.Background(), "b1.en.gone", "s3cret"))
	assert.Equal(t, []string{"/train/b1.en.4f2a9c1d/cancel", "/train/b1.en.gone/cancel"}, paths)
}

func TestPredict(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict/b1.en.4f2a9c1d" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"hello"}, req.Utterances)
		_, _ = w.Write([]byte(`{"predictions":[{"modelId":"b1.en.4f2a9c1d","language":"en","text":"hello","intents":[{"name":"greet","confidence":0.97}]}]}`))
	})

	predictions, err := client.Predict(context.Background(), "b1.en.4f2a9c1d", "s3cret", []string{"hello"})
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "greet", predictions[0].Intents[0].Name)

	_, err = client.Predict(context.Background(), "b1.en.missing", "s3cret", []string{"hello"})
	require.ErrorIs(t, err, domain.ErrModelNotReady)
}

func TestCanceledContextIsNotEngineUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetInfo(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestBuildAPIURLRejectsBadBase(t *testing.T) {
	t.Parallel()

	_, err := buildAPIURL("", "/info")
	require.ErrorContains(t, err, "base url is required")

	_, err = buildAPIURL("ftp://engine", "/info")
	require.ErrorContains(t, err, "http or https")
}
