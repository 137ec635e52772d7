package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBotNotMounted      = errors.New("bot not mounted")
	ErrBotAlreadyMounted  = errors.New("bot already mounted")
	ErrEngineUnavailable  = errors.New("engine unavailable")
	ErrStorage            = errors.New("training storage error")
	ErrTrainingNotFound   = errors.New("training not found")
	ErrQueueClosed        = errors.New("training queue closed")
	ErrModelNotReady      = errors.New("model not ready")
	ErrBotConfigNotFound  = errors.New("bot config not found")
	ErrInvalidTrainingSet = errors.New("invalid training set")
)

type BotNotMountedError struct {
	BotID BotID
}

func (e BotNotMountedError) Error() string {
	return fmt.Sprintf("bot %q is not mounted", e.BotID)
}

func (e BotNotMountedError) Unwrap() error {
	return ErrBotNotMounted
}

type ConflictError struct {
	BotID BotID
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("bot %q is already mounted", e.BotID)
}

func (e ConflictError) Unwrap() error {
	return ErrBotAlreadyMounted
}
