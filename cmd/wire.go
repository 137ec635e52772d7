package cmd

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/nlu-trainer/internal/adapters/bots"
	"github.com/bnema/nlu-trainer/internal/adapters/engine"
	"github.com/bnema/nlu-trainer/internal/adapters/http/api"
	"github.com/bnema/nlu-trainer/internal/adapters/metrics"
	statusadapter "github.com/bnema/nlu-trainer/internal/adapters/render/status"
	pgrepo "github.com/bnema/nlu-trainer/internal/adapters/repo/postgres"
	tomlrepo "github.com/bnema/nlu-trainer/internal/adapters/repo/toml"
	chainresolver "github.com/bnema/nlu-trainer/internal/adapters/secrets/chain"
	"github.com/bnema/nlu-trainer/internal/application"
	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var statusRenderer = statusadapter.Render

type repository struct {
	ports.TrainingRepository
	close func()
}

// server is everything `serve` runs.
type server struct {
	cfg          *viper.Viper
	logger       *zap.Logger
	repo         repository
	source       bots.Source
	orchestrator *application.Orchestrator
	http         *echo.Echo
}

func (s *server) Close() {
	s.repo.close()
	_ = s.logger.Sync()
}

func newLogger(cfg *viper.Viper) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.GetString(keyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

func openRepository(ctx context.Context, cfg *viper.Viper) (repository, error) {
	switch driver := strings.ToLower(cfg.GetString(keyRepositoryDriver)); driver {
	case "", "toml":
		repo, err := tomlrepo.NewRepository(cfg)
		if err != nil {
			return repository{}, fmt.Errorf("wire toml training repository: %w", err)
		}
		return repository{TrainingRepository: repo, close: func() {}}, nil
	case "postgres":
		dsn := cfg.GetString(keyRepositoryDSN)
		if dsn == "" {
			return repository{}, fmt.Errorf("%s is required for the postgres driver", keyRepositoryDSN)
		}
		repo, err := pgrepo.Open(ctx, dsn)
		if err != nil {
			return repository{}, fmt.Errorf("wire postgres training repository: %w", err)
		}
		return repository{TrainingRepository: repo, close: repo.Close}, nil
	default:
		return repository{}, fmt.Errorf("unknown repository driver %q", driver)
	}
}

func resolveAppSecret(ctx context.Context, cfg *viper.Viper, homeDir string) (string, error) {
	ref := cfg.GetString(keyEngineSecretRef)
	if ref == "" {
		return "", nil
	}

	resolver, err := chainresolver.NewDefault(filepath.Join(homeDir, configDirName, "secrets"))
	if err != nil {
		return "", fmt.Errorf("wire secret resolver: %w", err)
	}
	secret, err := resolver.Resolve(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("resolve engine app secret: %w", err)
	}
	return secret, nil
}

func wireServer(ctx context.Context, opts *rootOptions) (*server, error) {
	cfg := opts.config()

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	appSecret, err := resolveAppSecret(ctx, cfg, opts.homeDir)
	if err != nil {
		return nil, err
	}

	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observer, err := metrics.NewObserver(metricsRegistry)
	if err != nil {
		repo.close()
		return nil, fmt.Errorf("wire metrics: %w", err)
	}
	sessions, err := repo.List(ctx)
	if err != nil {
		repo.close()
		return nil, fmt.Errorf("load trainings: %w", err)
	}
	observer.Seed(sessions)

	engineClient := engine.Client{
		BaseURL:        cfg.GetString(keyEngineURL),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.GetDuration(keyEngineTimeout),
	}
	source := bots.Source{Dir: cfg.GetString(keyBotsDir)}
	factory := bots.Factory{
		Dir:          source.Dir,
		Engine:       engineClient,
		AppSecret:    appSecret,
		PollInterval: cfg.GetDuration(keyTrainingPollInterval),
		Logger:       logger.Named("bots"),
	}

	botRegistry := application.NewBotRegistry()
	queue := application.NewTrainingQueue(repo, botRegistry,
		application.WithWorkers(cfg.GetInt(keyTrainingWorkers)),
		application.WithCancelWait(cfg.GetDuration(keyTrainingCancelWait)),
		application.WithQueueLogger(logger.Named("queue")),
		application.WithObserver(observer),
		application.WithQueueClock(ports.SystemClock{}),
	)
	orchestrator := application.NewOrchestrator(queue, engineClient, factory, botRegistry,
		application.WithAppSecret(appSecret),
		application.WithQueueTrainingOnMount(cfg.GetBool(keyTrainingQueueOnMount)),
		application.WithTrainingDisabled(cfg.GetBool(keyTrainingDisabled)),
		application.WithLogger(logger.Named("orchestrator")),
	)

	httpServer := api.NewServer(orchestrator,
		api.WithLogger(logger.Named("http")),
		api.WithMetrics(promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{})),
	)

	return &server{
		cfg:          cfg,
		logger:       logger,
		repo:         repo,
		source:       source,
		orchestrator: orchestrator,
		http:         httpServer,
	}, nil
}

func newAPIClient(cfg *viper.Viper) api.Client {
	return api.Client{
		BaseURL:        cfg.GetString(keyServerURL),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: 30 * time.Second,
	}
}

func trainingFlagsID(botID, language string) (domain.TrainingID, error) {
	id := domain.TrainingID{BotID: domain.BotID(strings.TrimSpace(botID)), Language: strings.TrimSpace(language)}
	if err := id.Validate(); err != nil {
		return domain.TrainingID{}, err
	}
	return id, nil
}
