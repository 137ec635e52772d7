package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/keylock"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

// Orchestrator is the lifecycle API of the NLU training platform: it mounts and
// unmounts bots and keeps their per-language trainings in step with the engine.
type Orchestrator struct {
	queue    *TrainingQueue
	engine   ports.Engine
	factory  ports.BotFactory
	registry *BotRegistry
	logger   *zap.Logger

	appSecret        string
	queueOnMount     bool
	trainingDisabled bool

	bots *keylock.Locker[domain.BotID]

	subsMu        sync.Mutex
	subscriptions map[domain.BotID]func()
}

type OrchestratorOption func(*Orchestrator)

// WithQueueTrainingOnMount controls whether missing models are queued for
// training at mount or only flagged as needing training.
func WithQueueTrainingOnMount(enabled bool) OrchestratorOption {
	return func(o *Orchestrator) {
		o.queueOnMount = enabled
	}
}

// WithTrainingDisabled turns off automatic training platform-wide, whatever the
// per-mount setting.
func WithTrainingDisabled(disabled bool) OrchestratorOption {
	return func(o *Orchestrator) {
		o.trainingDisabled = disabled
	}
}

func WithAppSecret(secret string) OrchestratorOption {
	return func(o *Orchestrator) {
		o.appSecret = secret
	}
}

func WithLogger(logger *zap.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func NewOrchestrator(queue *TrainingQueue, engine ports.Engine, factory ports.BotFactory, registry *BotRegistry, opts ...OrchestratorOption) *Orchestrator {
	if registry == nil {
		registry = NewBotRegistry()
	}

	o := &Orchestrator{
		queue:         queue,
		engine:        engine,
		factory:       factory,
		registry:      registry,
		logger:        zap.NewNop(),
		queueOnMount:  true,
		bots:          keylock.New[domain.BotID](),
		subscriptions: map[domain.BotID]func(){},
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *Orchestrator) TrainingRepository() ports.TrainingRepository {
	return o.queue.Repository()
}

func (o *Orchestrator) HasBot(botID domain.BotID) bool {
	_, ok := o.registry.GetBot(botID)
	return ok
}

func (o *Orchestrator) GetBot(botID domain.BotID) (ports.Bot, error) {
	bot, ok := o.registry.GetBot(botID)
	if !ok {
		return nil, domain.BotNotMountedError{BotID: botID}
	}
	return bot, nil
}

func (o *Orchestrator) ListBots() []domain.BotID {
	return o.registry.GetIDs()
}

// MountBot registers the bot, hooks its dirty-model signal and decides per
// language whether a training is needed. Languages are checked concurrently and
// independently: a failing language is reported in the returned error while the
// others are still handled and the bot stays mounted.
func (o *Orchestrator) MountBot(ctx context.Context, cfg domain.BotConfig) (MountReport, error) {
	cfg.NormalizeLanguages()
	if err := cfg.Validate(); err != nil {
		return MountReport{}, fmt.Errorf("mount bot: %w", err)
	}

	unlock := o.bots.Lock(cfg.ID)
	defer unlock()

	if o.HasBot(cfg.ID) {
		return MountReport{}, domain.ConflictError{BotID: cfg.ID}
	}

	bot, defs, err := o.factory.MakeBot(ctx, cfg)
	if err != nil {
		return MountReport{}, fmt.Errorf("make bot %s: %w", cfg.ID, err)
	}
	if err := o.registry.SetBot(cfg.ID, bot); err != nil {
		return MountReport{}, err
	}

	botID := cfg.ID
	o.subscribe(botID, defs.ListenForDirtyModels(func(language string) {
		o.onDirtyModel(botID, language)
	}))

	report := MountReport{BotID: botID}
	report.Outcomes = iter.Map(cfg.Languages, func(language *string) LanguageOutcome {
		return o.checkLanguage(ctx, botID, defs, *language)
	})

	if err := bot.Mount(ctx); err != nil {
		o.rollbackMount(ctx, botID)
		return report, fmt.Errorf("mount bot %s runtime: %w", botID, err)
	}
	o.queue.Reschedule()

	if err := report.Err(); err != nil {
		o.logger.Warn("bot mounted with failing languages", zap.String("bot", string(botID)), zap.Error(err))
		return report, fmt.Errorf("mount bot %s: %w", botID, err)
	}

	o.logger.Info("bot mounted", zap.String("bot", string(botID)), zap.Strings("languages", cfg.Languages))
	return report, nil
}

// UnmountBot unmounts the runtime, cancels the bot's trainings and removes it
// from the registry. Cancellation and removal happen even when the runtime
// fails to unmount.
func (o *Orchestrator) UnmountBot(ctx context.Context, botID domain.BotID) error {
	unlock := o.bots.Lock(botID)
	defer unlock()

	bot, ok := o.registry.GetBot(botID)
	if !ok {
		return domain.BotNotMountedError{BotID: botID}
	}

	o.unsubscribe(botID)

	var errs []error
	if err := bot.Unmount(ctx); err != nil {
		errs = append(errs, fmt.Errorf("unmount bot %s runtime: %w", botID, err))
	}
	if err := o.queue.CancelTrainings(ctx, botID); err != nil {
		errs = append(errs, fmt.Errorf("cancel trainings of bot %s: %w", botID, err))
	}
	o.registry.RemoveBot(botID)

	o.logger.Info("bot unmounted", zap.String("bot", string(botID)))
	return errors.Join(errs...)
}

// QueueTraining and CancelTraining hold the bot lock so an unmount cannot
// slip between the registry check and the queue write.
func (o *Orchestrator) QueueTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	unlock := o.bots.Lock(botID)
	defer unlock()

	if !o.HasBot(botID) {
		return domain.TrainingSession{}, domain.BotNotMountedError{BotID: botID}
	}
	return o.queue.QueueTraining(ctx, domain.TrainingID{BotID: botID, Language: language})
}

func (o *Orchestrator) CancelTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	unlock := o.bots.Lock(botID)
	defer unlock()

	if !o.HasBot(botID) {
		return domain.TrainingSession{}, domain.BotNotMountedError{BotID: botID}
	}
	return o.queue.CancelTraining(ctx, domain.TrainingID{BotID: botID, Language: language})
}

// GetTraining does not require the bot to be mounted.
func (o *Orchestrator) GetTraining(ctx context.Context, botID domain.BotID, language string) (domain.TrainingSession, error) {
	return o.queue.GetTraining(ctx, domain.TrainingID{BotID: botID, Language: language})
}

func (o *Orchestrator) Predict(ctx context.Context, botID domain.BotID, language string, text string) (domain.Prediction, error) {
	bot, err := o.GetBot(botID)
	if err != nil {
		return domain.Prediction{}, err
	}
	return bot.Predict(ctx, language, text)
}

// ResumeTrainings is meant to run once at startup, before any bot is mounted.
func (o *Orchestrator) ResumeTrainings(ctx context.Context) error {
	return o.queue.Resume(ctx)
}

func (o *Orchestrator) GetHealth(ctx context.Context) (domain.EngineHealth, error) {
	info, err := o.engine.GetInfo(ctx)
	if err != nil {
		return domain.EngineHealth{}, fmt.Errorf("get engine info: %w", err)
	}
	return info.Health, nil
}

// Teardown unmounts every mounted bot, then stops the queue. A failing bot does
// not stop the others from being unmounted.
func (o *Orchestrator) Teardown(ctx context.Context) error {
	var errs []error
	for _, botID := range o.registry.GetIDs() {
		if err := o.UnmountBot(ctx, botID); err != nil {
			o.logger.Warn("unmount bot during teardown", zap.String("bot", string(botID)), zap.Error(err))
			errs = append(errs, err)
		}
	}

	if err := o.queue.Teardown(); err != nil {
		errs = append(errs, fmt.Errorf("teardown training queue: %w", err))
	}
	o.registry.Clear()

	return errors.Join(errs...)
}

func (o *Orchestrator) checkLanguage(ctx context.Context, botID domain.BotID, defs ports.DefinitionService, language string) LanguageOutcome {
	outcome := LanguageOutcome{Language: language}
	id := domain.TrainingID{BotID: botID, Language: language}

	modelID, err := defs.GetLatestModelID(ctx, language)
	if err != nil {
		outcome.Action = LanguageActionFailed
		outcome.Err = fmt.Errorf("get latest model id: %w", err)
		return outcome
	}
	outcome.ModelID = modelID

	exists, err := o.engine.HasModel(ctx, modelID, o.appSecret)
	if err != nil {
		outcome.Action = LanguageActionFailed
		outcome.Err = fmt.Errorf("check model %s: %w", modelID, err)
		return outcome
	}
	if exists {
		outcome.Action = LanguageActionUpToDate
		return outcome
	}

	var session domain.TrainingSession
	if o.queueOnMount && !o.trainingDisabled {
		session, err = o.queue.QueueTraining(ctx, id)
		outcome.Action = LanguageActionQueued
	} else {
		session, err = o.queue.NeedsTraining(ctx, id)
		outcome.Action = LanguageActionNeedsTraining
	}
	if err != nil {
		outcome.Action = LanguageActionFailed
		outcome.Err = err
		return outcome
	}

	outcome.Session = &session
	return outcome
}

func (o *Orchestrator) onDirtyModel(botID domain.BotID, language string) {
	id := domain.TrainingID{BotID: botID, Language: language}
	if _, err := o.queue.NeedsTraining(context.Background(), id); err != nil {
		o.logger.Warn("flag dirty model", zap.String("bot", string(botID)), zap.String("language", language), zap.Error(err))
		return
	}
	o.logger.Debug("model flagged dirty", zap.String("bot", string(botID)), zap.String("language", language))
}

func (o *Orchestrator) rollbackMount(ctx context.Context, botID domain.BotID) {
	o.unsubscribe(botID)
	if err := o.queue.CancelTrainings(ctx, botID); err != nil {
		o.logger.Warn("cancel trainings after failed mount", zap.String("bot", string(botID)), zap.Error(err))
	}
	o.registry.RemoveBot(botID)
}

func (o *Orchestrator) subscribe(botID domain.BotID, unsubscribe func()) {
	o.subsMu.Lock()
	defer o.subsMu.Unlock()
	o.subscriptions[botID] = unsubscribe
}

func (o *Orchestrator) unsubscribe(botID domain.BotID) {
	o.subsMu.Lock()
	unsubscribe, ok := o.subscriptions[botID]
	delete(o.subscriptions, botID)
	o.subsMu.Unlock()

	if ok && unsubscribe != nil {
		unsubscribe()
	}
}
