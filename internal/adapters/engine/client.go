package engine

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
	"github.com/bnema/nlu-trainer/internal/ports"
)

const (
	appSecretHeader       = "X-App-Secret"
	maxEngineResponseSize = 8 << 20
	defaultRequestTimeout = 30 * time.Second
)

// Client talks JSON to the NLU engine. Transport failures and 5xx answers
// unwrap to domain.ErrEngineUnavailable.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.Engine = Client{}

type errorResponse struct {
	Error string `json:"error"`
}

type startTrainingResponse struct {
	ModelID domain.ModelID `json:"modelId"`
}

type predictRequest struct {
	Utterances []string `json:"utterances"`
}

type predictResponse struct {
	Predictions []domain.Prediction `json:"predictions"`
}

func (c Client) GetInfo(ctx context.Context) (domain.EngineInfo, error) {
	var info domain.EngineInfo
	if _, err := c.do(ctx, "get engine info", http.MethodGet, "/info", "", nil, &info); err != nil {
		return domain.EngineInfo{}, err
	}
	return info, nil
}

func (c Client) HasModel(ctx context.Context, modelID domain.ModelID, secret string) (bool, error) {
	if modelID == "" {
		return false, errors.New("model id is required")
	}

	status, err := c.do(ctx, "check model", http.MethodGet, "/models/"+url.PathEscape(string(modelID)), secret, nil, nil)
	if err != nil {
		if status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c Client) StartTraining(ctx context.Context, set domain.TrainSet, secret string) (domain.ModelID, error) {
	if set.ModelID == "" {
		return "", errors.New("model id is required")
	}

	var payload startTrainingResponse
	if _, err := c.do(ctx, "start training", http.MethodPost, "/train", secret, set, &payload); err != nil {
		return "", err
	}
	if payload.ModelID == "" {
		return set.ModelID, nil
	}
	return payload.ModelID, nil
}

func (c Client) GetTrainingStatus(ctx context.Context, modelID domain.ModelID, secret string) (domain.EngineTrainingStatus, error) {
	var status domain.EngineTrainingStatus
	code, err := c.do(ctx, "get training status", http.MethodGet, "/train/"+url.PathEscape(string(modelID)), secret, nil, &status)
	if err != nil {
		if code == http.StatusNotFound {
			return domain.EngineTrainingStatus{}, fmt.Errorf("get training status of %s: %w", modelID, domain.ErrTrainingNotFound)
		}
		return domain.EngineTrainingStatus{}, err
	}
	return status, nil
}

func (c Client) CancelTraining(ctx context.Context, modelID domain.ModelID, secret string) error {
	code, err := c.do(ctx, "cancel training", http.MethodPost, "/train/"+url.PathEscape(string(modelID))+"/cancel", secret, nil, nil)
	if err != nil && code != http.StatusNotFound {
		return err
	}
	return nil
}

func (c Client) Predict(ctx context.Context, modelID domain.ModelID, secret string, utterances []string) ([]domain.Prediction, error) {
	var payload predictResponse
	code, err := c.do(ctx, "predict", http.MethodPost, "/predict/"+url.PathEscape(string(modelID)), secret, predictRequest{Utterances: utterances}, &payload)
	if err != nil {
		if code == http.StatusNotFound {
			return nil, fmt.Errorf("predict with %s: %w", modelID, domain.ErrModelNotReady)
		}
		return nil, err
	}
	return payload.Predictions, nil
}

// do sends one request and decodes a 2xx body into out. The returned status is
// zero when no response was received.
func (c Client) do(ctx context.Context, op string, method string, path string, secret string, in any, out any) (int, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return 0, err
	}

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, body)
	if err != nil {
		return 0, fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if secret != "" {
		req.Header.Set(appSecretHeader, secret)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, fmt.Errorf("%s: %w", op, ctxErr)
		}
		return 0, fmt.Errorf("%s: %w: %w", op, domain.ErrEngineUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, fmt.Errorf("%s: %w: %s", op, domain.ErrEngineUnavailable, decodeEngineError(resp))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, fmt.Errorf("%s: %s", op, decodeEngineError(resp))
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxEngineResponseSize)).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s response: %w", op, err)
	}
	return resp.StatusCode, nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeEngineError(resp *http.Response) string {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxEngineResponseSize)).Decode(&payload); err != nil || payload.Error == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", resp.StatusCode, payload.Error)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("engine base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse engine base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("engine base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("engine base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse engine path: %w", err)
	}

	return endpoint.String(), nil
}
