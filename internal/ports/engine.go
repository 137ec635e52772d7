package ports

import (
	"context"

	"github.com/bnema/nlu-trainer/internal/domain"
)

// Engine is the external training and inference service. Connectivity failures
// unwrap to domain.ErrEngineUnavailable.
type Engine interface {
	GetInfo(ctx context.Context) (domain.EngineInfo, error)
	HasModel(ctx context.Context, modelID domain.ModelID, secret string) (bool, error)
	StartTraining(ctx context.Context, set domain.TrainSet, secret string) (domain.ModelID, error)
	GetTrainingStatus(ctx context.Context, modelID domain.ModelID, secret string) (domain.EngineTrainingStatus, error)
	CancelTraining(ctx context.Context, modelID domain.ModelID, secret string) error
	Predict(ctx context.Context, modelID domain.ModelID, secret string, utterances []string) ([]domain.Prediction, error)
}
