package ports

import "github.com/bnema/nlu-trainer/internal/domain"

type TrainingObserver interface {
	TransitionObserved(id domain.TrainingID, from, to domain.TrainingStatus)
	ProgressObserved(id domain.TrainingID, progress float64)
}

type NopTrainingObserver struct{}

func (NopTrainingObserver) TransitionObserved(domain.TrainingID, domain.TrainingStatus, domain.TrainingStatus) {
}

func (NopTrainingObserver) ProgressObserved(domain.TrainingID, float64) {}
