package domain

import (
	"fmt"
	"strings"
)

type BotID string
type ModelID string

type BotConfig struct {
	ID        BotID
	Name      string
	Languages []string
	Disabled  bool
}

func (c BotConfig) Validate() error {
	if strings.TrimSpace(string(c.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("bot %s: at least one language is required", c.ID)
	}
	for _, lang := range c.Languages {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("bot %s: empty language", c.ID)
		}
	}

	return nil
}

// NormalizeLanguages trims, drops empty entries and deduplicates while keeping
// the configured order.
func (c *BotConfig) NormalizeLanguages() {
	if c == nil {
		return
	}

	languages := make([]string, 0, len(c.Languages))
	seen := make(map[string]struct{}, len(c.Languages))
	for _, lang := range c.Languages {
		trimmed := strings.TrimSpace(lang)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		languages = append(languages, trimmed)
	}

	c.Languages = languages
}

func (c BotConfig) TrainingIDs() []TrainingID {
	ids := make([]TrainingID, 0, len(c.Languages))
	for _, lang := range c.Languages {
		ids = append(ids, TrainingID{BotID: c.ID, Language: lang})
	}
	return ids
}
