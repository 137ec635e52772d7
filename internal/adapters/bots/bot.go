package bots

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/loop"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = time.Second
	engineCancelTimeout = 5 * time.Second
)

var errEngineCanceled = errors.New("training canceled by engine")

// Bot is the mounted runtime of one bot: it trains languages on the engine and
// serves predictions from the models it has loaded.
type Bot struct {
	cfg          domain.BotConfig
	defs         *DefinitionService
	engine       ports.Engine
	appSecret    string
	pollInterval time.Duration
	logger       *zap.Logger

	mu      sync.RWMutex
	models  map[string]domain.ModelID
	mounted bool
}

var _ ports.Bot = (*Bot)(nil)

// Mount loads every language whose latest model already exists on the engine
// and starts watching the definition files. Engine failures leave the
// language unloaded.
func (b *Bot) Mount(ctx context.Context) error {
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for _, language := range b.cfg.Languages {
		language := language
		p.Go(func(ctx context.Context) error {
			return b.loadExisting(ctx, language)
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	if err := b.defs.Watch(); err != nil {
		return fmt.Errorf("watch definitions: %w", err)
	}

	b.mu.Lock()
	b.mounted = true
	b.mu.Unlock()
	return nil
}

func (b *Bot) loadExisting(ctx context.Context, language string) error {
	modelID, err := b.defs.GetLatestModelID(ctx, language)
	if err != nil {
		return err
	}
	exists, err := b.engine.HasModel(ctx, modelID, b.appSecret)
	if err != nil {
		b.logger.Warn("check model at mount", zap.String("language", language), zap.Error(err))
		return nil
	}
	if exists {
		b.loadModel(language, modelID)
	}
	return nil
}

func (b *Bot) Unmount(_ context.Context) error {
	b.defs.Close()

	b.mu.Lock()
	b.mounted = false
	b.models = map[string]domain.ModelID{}
	b.mu.Unlock()
	return nil
}

// Train runs one engine training for language, polling progress every poll
// interval. When ctx ends the engine side is canceled too.
func (b *Bot) Train(ctx context.Context, language string, progress ports.ProgressFunc) (domain.ModelID, error) {
	set, err := b.defs.TrainSet(ctx, language)
	if err != nil {
		return "", err
	}
	if len(set.Intents) == 0 {
		return "", fmt.Errorf("language %s: %w: no intent has utterances", language, domain.ErrInvalidTrainingSet)
	}

	modelID, err := b.engine.StartTraining(ctx, set, b.appSecret)
	if err != nil {
		return "", fmt.Errorf("start training: %w", err)
	}

	logger := b.logger.With(zap.String("language", language), zap.String("model", string(modelID)))
	_, err = loop.Start(ctx, domain.EngineTrainingStatus{}, func(ctx context.Context, _ domain.EngineTrainingStatus) (domain.EngineTrainingStatus, loop.Next) {
		status, err := b.engine.GetTrainingStatus(ctx, modelID, b.appSecret)
		if err != nil {
			if errors.Is(err, domain.ErrEngineUnavailable) {
				logger.Debug("poll training status", zap.Error(err))
				return status, loop.Continue(b.pollInterval)
			}
			return status, loop.Break(err)
		}
		if progress != nil {
			progress(status.Progress)
		}

		switch status.Status {
		case domain.TrainingStatusDone:
			return status, loop.Break(nil)
		case domain.TrainingStatusErrored:
			return status, loop.Break(fmt.Errorf("engine: %s", status.Error))
		case domain.TrainingStatusCanceled:
			return status, loop.Break(errEngineCanceled)
		default:
			return status, loop.Continue(b.pollInterval)
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			b.cancelOnEngine(ctx, modelID, logger)
			return "", ctx.Err()
		}
		return "", err
	}

	b.loadModel(language, modelID)
	return modelID, nil
}

func (b *Bot) Predict(ctx context.Context, language string, text string) (domain.Prediction, error) {
	b.mu.RLock()
	mounted := b.mounted
	b.mu.RUnlock()

	modelID, ok := b.LoadedModel(language)
	if !mounted || !ok {
		return domain.Prediction{}, fmt.Errorf("bot %s language %s: %w", b.cfg.ID, language, domain.ErrModelNotReady)
	}

	predictions, err := b.engine.Predict(ctx, modelID, b.appSecret, []string{text})
	if err != nil {
		return domain.Prediction{}, err
	}
	if len(predictions) == 0 {
		return domain.Prediction{ModelID: modelID, Language: language, Text: text}, nil
	}
	return predictions[0], nil
}

// LoadedModel reports the model currently serving language.
func (b *Bot) LoadedModel(language string) (domain.ModelID, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	modelID, ok := b.models[language]
	return modelID, ok
}

func (b *Bot) loadModel(language string, modelID domain.ModelID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.models[language] = modelID
}

func (b *Bot) cancelOnEngine(ctx context.Context, modelID domain.ModelID, logger *zap.Logger) {
	cancelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), engineCancelTimeout)
	defer cancel()

	if err := b.engine.CancelTraining(cancelCtx, modelID, b.appSecret); err != nil {
		logger.Warn("cancel training on engine", zap.Error(err))
	}
}
