package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	trainingsPathKey    = "repository.path"
	trainingsFileMode   = 0o600
	trainingsDirMode    = 0o700
	trainingsConfigDir  = ".nluctl"
	trainingsConfigFile = "trainings.toml"
	tempFilePattern     = ".trainings-*.toml.tmp"
)

// Repository keeps every training session in a single TOML file. Writes go
// through a temp file and a rename so readers never see a partial file.
type Repository struct {
	trainingsPath string
	mu            *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.TrainingRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(trainingsPathKey, filepath.Join(homeDir, trainingsConfigDir, trainingsConfigFile))

	trainingsPath := cfg.GetString(trainingsPathKey)
	if trainingsPath == "" {
		return nil, errors.New("trainings path is empty")
	}
	trainingsPath, err = normalizeTrainingsPath(trainingsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{trainingsPath: trainingsPath, mu: lockForPath(trainingsPath)}, nil
}

func (r *Repository) Path() string {
	return r.trainingsPath
}

func (r *Repository) Upsert(ctx context.Context, session domain.TrainingSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := session.ID.Validate(); err != nil {
		return fmt.Errorf("upsert training: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(session)
	updated := false
	for i := range file.Trainings {
		if file.Trainings[i].BotID == encoded.BotID && file.Trainings[i].Language == encoded.Language {
			file.Trainings[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Trainings = append(file.Trainings, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Get(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.TrainingSession{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.TrainingSession{}, err
	}

	for _, entry := range file.Trainings {
		if entry.BotID == string(id.BotID) && entry.Language == id.Language {
			return fromSchema(entry), nil
		}
	}

	return domain.TrainingSession{}, domain.ErrTrainingNotFound
}

func (r *Repository) ListByBot(ctx context.Context, botID domain.BotID) ([]domain.TrainingSession, error) {
	sessions, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := sessions[:0]
	for _, session := range sessions {
		if session.ID.BotID == botID {
			filtered = append(filtered, session)
		}
	}

	return filtered, nil
}

// List returns every session ordered by bot then language.
func (r *Repository) List(ctx context.Context) ([]domain.TrainingSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.TrainingSession, 0, len(file.Trainings))
	for _, entry := range file.Trainings {
		sessions = append(sessions, fromSchema(entry))
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].ID.BotID != sessions[j].ID.BotID {
			return sessions[i].ID.BotID < sessions[j].ID.BotID
		}
		return sessions[i].ID.Language < sessions[j].ID.Language
	})

	return sessions, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.trainingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("%w: read trainings file: %w", domain.ErrStorage, err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("%w: decode trainings file: %w", domain.ErrStorage, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	file.applyDefaults()

	for _, entry := range file.Trainings {
		if !domain.TrainingStatus(entry.Status).Valid() {
			return fileSchema{}, fmt.Errorf("%w: training %s/%s has unknown status %q", domain.ErrStorage, entry.BotID, entry.Language, entry.Status)
		}
	}

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.trainingsPath), trainingsDirMode); err != nil {
		return fmt.Errorf("%w: create trainings directory: %w", domain.ErrStorage, err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("%w: encode trainings file: %w", domain.ErrStorage, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.trainingsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("%w: create temp trainings file: %w", domain.ErrStorage, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("%w: write temp trainings file: %w", domain.ErrStorage, err)
	}

	if err := tempFile.Chmod(trainingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("%w: chmod temp trainings file: %w", domain.ErrStorage, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("%w: close temp trainings file: %w", domain.ErrStorage, err)
	}

	if err := os.Rename(tempName, r.trainingsPath); err != nil {
		return fmt.Errorf("%w: replace trainings file: %w", domain.ErrStorage, err)
	}

	cleanup = false
	return nil
}

func normalizeTrainingsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve trainings path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(session domain.TrainingSession) trainingSchema {
	return trainingSchema{
		BotID:     string(session.ID.BotID),
		Language:  session.ID.Language,
		Status:    string(session.Status),
		Progress:  session.Progress,
		Attempt:   session.Attempt,
		ModelID:   string(session.ModelID),
		Error:     session.Error,
		CreatedAt: formatTime(session.CreatedAt),
		UpdatedAt: formatTime(session.UpdatedAt),
	}
}

func fromSchema(entry trainingSchema) domain.TrainingSession {
	return domain.TrainingSession{
		ID:        domain.TrainingID{BotID: domain.BotID(entry.BotID), Language: entry.Language},
		Status:    domain.TrainingStatus(entry.Status),
		Progress:  entry.Progress,
		Attempt:   entry.Attempt,
		ModelID:   domain.ModelID(entry.ModelID),
		Error:     entry.Error,
		CreatedAt: parseTime(entry.CreatedAt),
		UpdatedAt: parseTime(entry.UpdatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
