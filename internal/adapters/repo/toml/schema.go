package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int              `toml:"version"`
	Trainings []trainingSchema `toml:"trainings"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported trainings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type trainingSchema struct {
	BotID     string  `toml:"bot_id"`
	Language  string  `toml:"language"`
	Status    string  `toml:"status"`
	Progress  float64 `toml:"progress"`
	Attempt   string  `toml:"attempt,omitempty"`
	ModelID   string  `toml:"model_id,omitempty"`
	Error     string  `toml:"error,omitempty"`
	CreatedAt string  `toml:"created_at"`
	UpdatedAt string  `toml:"updated_at"`
}
