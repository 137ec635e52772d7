package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Service is the part of the orchestrator exposed over HTTP.
type Service interface {
	ListBots() []domain.BotID
	GetTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error)
	QueueTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error)
	CancelTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error)
	Predict(ctx context.Context, botID domain.BotID, language string, text string) (domain.Prediction, error)
	GetHealth(ctx context.Context) (domain.EngineHealth, error)
	TrainingRepository() ports.TrainingRepository
}

type Option func(*config)

type config struct {
	logger  *zap.Logger
	metrics http.Handler
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics serves handler on GET /metrics.
func WithMetrics(handler http.Handler) Option {
	return func(c *config) {
		c.metrics = handler
	}
}

type handlers struct {
	service Service
}

func NewServer(service Service, opts ...Option) *echo.Echo {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(cfg.logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.logger))

	h := handlers{service: service}
	e.GET("/health", h.health)
	e.GET("/bots", h.listBots)
	e.GET("/trainings", h.listTrainings)
	e.GET("/bots/:botId/trainings/:lang", h.getTraining)
	e.POST("/bots/:botId/trainings/:lang", h.queueTraining)
	e.DELETE("/bots/:botId/trainings/:lang", h.cancelTraining)
	e.POST("/bots/:botId/predict/:lang", h.predict)
	if cfg.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.metrics))
	}

	return e
}

func (h handlers) health(c echo.Context) error {
	health, err := h.service.GetHealth(c.Request().Context())
	if err != nil {
		return err
	}

	languages := health.Languages
	if languages == nil {
		languages = []string{}
	}
	return c.JSON(http.StatusOK, HealthResponse{IsAvailable: health.IsAvailable, Languages: languages})
}

func (h handlers) listBots(c echo.Context) error {
	ids := h.service.ListBots()
	bots := make([]string, 0, len(ids))
	for _, id := range ids {
		bots = append(bots, string(id))
	}
	return c.JSON(http.StatusOK, BotsResponse{Bots: bots})
}

func (h handlers) listTrainings(c echo.Context) error {
	repo := h.service.TrainingRepository()

	var (
		sessions []domain.TrainingSession
		err      error
	)
	if botID := c.QueryParam("bot"); botID != "" {
		sessions, err = repo.ListByBot(c.Request().Context(), domain.BotID(botID))
	} else {
		sessions, err = repo.List(c.Request().Context())
	}
	if err != nil {
		return err
	}

	trainings := make([]TrainingResponse, 0, len(sessions))
	for _, session := range sessions {
		trainings = append(trainings, NewTrainingResponse(session))
	}
	return c.JSON(http.StatusOK, TrainingsResponse{Trainings: trainings})
}

func (h handlers) getTraining(c echo.Context) error {
	session, err := h.service.GetTraining(c.Request().Context(), domain.BotID(c.Param("botId")), c.Param("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, NewTrainingResponse(session))
}

func (h handlers) queueTraining(c echo.Context) error {
	session, err := h.service.QueueTraining(c.Request().Context(), domain.BotID(c.Param("botId")), c.Param("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, NewTrainingResponse(session))
}

func (h handlers) cancelTraining(c echo.Context) error {
	session, err := h.service.CancelTraining(c.Request().Context(), domain.BotID(c.Param("botId")), c.Param("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, NewTrainingResponse(session))
}

func (h handlers) predict(c echo.Context) error {
	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	prediction, err := h.service.Predict(c.Request().Context(), domain.BotID(c.Param("botId")), c.Param("lang"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prediction)
}

// StatusFor maps domain failures onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrBotNotMounted), errors.Is(err, domain.ErrTrainingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBotAlreadyMounted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEngineUnavailable), errors.Is(err, domain.ErrQueueClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrModelNotReady):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := StatusFor(err)
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(status)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Warn("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, ErrorResponse{Error: message})
	}
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Debug("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.Error(err))
			return err
		}
	}
}
