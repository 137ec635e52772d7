package bots

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const botConfigFile = "bot.toml"

type botFileSchema struct {
	ID        string   `toml:"id"`
	Name      string   `toml:"name,omitempty"`
	Languages []string `toml:"languages"`
	Disabled  bool     `toml:"disabled,omitempty"`
}

// Source reads bot configs from <Dir>/<botId>/bot.toml.
type Source struct {
	Dir string
}

var _ ports.BotConfigSource = Source{}

// List returns every bot config found under Dir, sorted by id. A missing Dir
// holds no bots.
func (s Source) List(ctx context.Context) ([]domain.BotConfig, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.BotConfig{}, nil
		}
		return nil, fmt.Errorf("read bots directory: %w", err)
	}

	configs := make([]domain.BotConfig, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		cfg, err := s.Get(ctx, domain.BotID(entry.Name()))
		if err != nil {
			if errors.Is(err, domain.ErrBotConfigNotFound) {
				continue
			}
			return nil, err
		}
		configs = append(configs, cfg)
	}

	sort.Slice(configs, func(i, j int) bool { return configs[i].ID < configs[j].ID })
	return configs, nil
}

func (s Source) Get(ctx context.Context, botID domain.BotID) (domain.BotConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.BotConfig{}, err
	}

	path := filepath.Join(s.Dir, string(botID), botConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.BotConfig{}, fmt.Errorf("bot %s: %w", botID, domain.ErrBotConfigNotFound)
		}
		return domain.BotConfig{}, fmt.Errorf("read %s: %w", path, err)
	}

	var file botFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.BotConfig{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if file.ID == "" {
		file.ID = string(botID)
	}
	if file.ID != string(botID) {
		return domain.BotConfig{}, fmt.Errorf("%s: id %q does not match directory %q", path, file.ID, botID)
	}

	cfg := domain.BotConfig{
		ID:        domain.BotID(file.ID),
		Name:      file.Name,
		Languages: file.Languages,
		Disabled:  file.Disabled,
	}
	cfg.NormalizeLanguages()
	if err := cfg.Validate(); err != nil {
		return domain.BotConfig{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
