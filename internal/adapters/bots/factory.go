package bots

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	"go.uber.org/zap"
)

// Factory builds bot runtimes over the bot directories found in Dir.
type Factory struct {
	Dir          string
	Engine       ports.Engine
	AppSecret    string
	PollInterval time.Duration
	Logger       *zap.Logger
}

var _ ports.BotFactory = Factory{}

func (f Factory) MakeBot(ctx context.Context, cfg domain.BotConfig) (ports.Bot, ports.DefinitionService, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if f.Engine == nil {
		return nil, nil, errors.New("bot factory has no engine")
	}

	botDir := filepath.Join(f.Dir, string(cfg.ID))
	info, err := os.Stat(botDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("bot %s: %w", cfg.ID, domain.ErrBotConfigNotFound)
		}
		return nil, nil, fmt.Errorf("stat bot directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("bot %s: %s is not a directory", cfg.ID, botDir)
	}

	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("bot", string(cfg.ID)))

	pollInterval := f.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	defs := newDefinitionService(cfg, botDir, logger)
	bot := &Bot{
		cfg:          cfg,
		defs:         defs,
		engine:       f.Engine,
		appSecret:    f.AppSecret,
		pollInterval: pollInterval,
		logger:       logger,
		models:       map[string]domain.ModelID{},
	}

	return bot, defs, nil
}
