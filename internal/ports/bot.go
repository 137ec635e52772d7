package ports

import (
	"context"

	"github.com/bnema/nlu-trainer/internal/domain"
)

type ProgressFunc func(progress float64)

// Trainer runs one training attempt for a language. Implementations must return
// promptly with ctx.Err() once ctx is canceled.
type Trainer interface {
	Train(ctx context.Context, language string, progress ProgressFunc) (domain.ModelID, error)
}

// Bot is the mounted runtime handle (predictor) of a bot.
type Bot interface {
	Trainer
	Mount(ctx context.Context) error
	Unmount(ctx context.Context) error
	Predict(ctx context.Context, language string, text string) (domain.Prediction, error)
}

type DirtyModelFunc func(language string)

type DefinitionService interface {
	GetLatestModelID(ctx context.Context, language string) (domain.ModelID, error)
	// ListenForDirtyModels registers fn and returns the func that removes it.
	ListenForDirtyModels(fn DirtyModelFunc) (unsubscribe func())
}

type BotFactory interface {
	MakeBot(ctx context.Context, cfg domain.BotConfig) (Bot, DefinitionService, error)
}

type TrainerLookup interface {
	GetTrainer(botID domain.BotID) (Trainer, bool)
}

type BotConfigSource interface {
	List(ctx context.Context) ([]domain.BotConfig, error)
	Get(ctx context.Context, botID domain.BotID) (domain.BotConfig, error)
}
