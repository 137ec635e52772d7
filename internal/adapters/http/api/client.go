package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
)

const (
	maxResponseBytes      = 4 << 20
	defaultRequestTimeout = 30 * time.Second
)

// Error is a non-2xx answer of the server. It unwraps to the domain sentinel
// matching its status code when there is one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrTrainingNotFound
	case http.StatusServiceUnavailable:
		return domain.ErrEngineUnavailable
	default:
		return nil
	}
}

// Client calls a running nluctl server.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

func (c Client) Health(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.do(ctx, http.MethodGet, "/health", nil, &health)
	return health, err
}

func (c Client) ListBots(ctx context.Context) ([]string, error) {
	var bots BotsResponse
	if err := c.do(ctx, http.MethodGet, "/bots", nil, &bots); err != nil {
		return nil, err
	}
	return bots.Bots, nil
}

func (c Client) ListTrainings(ctx context.Context, botID domain.BotID) ([]domain.TrainingSession, error) {
	path := "/trainings"
	if botID != "" {
		path += "?bot=" + url.QueryEscape(string(botID))
	}

	var payload TrainingsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	sessions := make([]domain.TrainingSession, 0, len(payload.Trainings))
	for _, training := range payload.Trainings {
		sessions = append(sessions, training.Session())
	}
	return sessions, nil
}

func (c Client) GetTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	return c.training(ctx, http.MethodGet, botID, language)
}

func (c Client) QueueTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	return c.training(ctx, http.MethodPost, botID, language)
}

func (c Client) CancelTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	return c.training(ctx, http.MethodDelete, botID, language)
}

func (c Client) Predict(ctx context.Context, botID domain.BotID, language string, text string) (domain.Prediction, error) {
	var prediction domain.Prediction
	path := "/bots/" + url.PathEscape(string(botID)) + "/predict/" + url.PathEscape(language)
	err := c.do(ctx, http.MethodPost, path, PredictRequest{Text: text}, &prediction)
	return prediction, err
}

func (c Client) training(ctx context.Context, method string, botID domain.BotID, language string) (domain.TrainingSession, error) {
	var payload TrainingResponse
	path := "/bots/" + url.PathEscape(string(botID)) + "/trainings/" + url.PathEscape(language)
	if err := c.do(ctx, method, path, nil, &payload); err != nil {
		return domain.TrainingSession{}, err
	}
	return payload.Session(), nil
}

func (c Client) do(ctx context.Context, method string, path string, in any, out any) error {
	if c.BaseURL == "" {
		return errors.New("server url is required")
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("parse server url: %w", err)
	}
	endpoint, err := base.Parse(path)
	if err != nil {
		return fmt.Errorf("parse request path: %w", err)
	}

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		timeout := c.RequestTimeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var payload ErrorResponse
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil || payload.Error == "" {
			payload.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
