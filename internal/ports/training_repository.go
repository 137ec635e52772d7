package ports

import (
	"context"

	"github.com/bnema/nlu-trainer/internal/domain"
)

// TrainingRepository persists training sessions. It does not validate status
// transitions. Implementations report I/O failures wrapped with domain.ErrStorage
// and a missing session with domain.ErrTrainingNotFound.
type TrainingRepository interface {
	Get(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, error)
	Upsert(ctx context.Context, session domain.TrainingSession) error
	ListByBot(ctx context.Context, botID domain.BotID) ([]domain.TrainingSession, error)
	List(ctx context.Context) ([]domain.TrainingSession, error)
}
