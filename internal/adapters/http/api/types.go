package api

import (
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
)

type TrainingResponse struct {
	BotID     string    `json:"botId"`
	Language  string    `json:"language"`
	Status    string    `json:"status"`
	Progress  float64   `json:"progress"`
	Attempt   string    `json:"attempt,omitempty"`
	ModelID   string    `json:"modelId,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewTrainingResponse(session domain.TrainingSession) TrainingResponse {
	return TrainingResponse{
		BotID:     string(session.ID.BotID),
		Language:  session.ID.Language,
		Status:    string(session.Status),
		Progress:  session.Progress,
		Attempt:   session.Attempt,
		ModelID:   string(session.ModelID),
		Error:     session.Error,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func (r TrainingResponse) Session() domain.TrainingSession {
	return domain.TrainingSession{
		ID:        domain.TrainingID{BotID: domain.BotID(r.BotID), Language: r.Language},
		Status:    domain.TrainingStatus(r.Status),
		Progress:  r.Progress,
		Attempt:   r.Attempt,
		ModelID:   domain.ModelID(r.ModelID),
		Error:     r.Error,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type TrainingsResponse struct {
	Trainings []TrainingResponse `json:"trainings"`
}

type BotsResponse struct {
	Bots []string `json:"bots"`
}

type HealthResponse struct {
	IsAvailable bool     `json:"isAvailable"`
	Languages   []string `json:"languages"`
}

type PredictRequest struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
