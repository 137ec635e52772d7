package bots

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/nlu-trainer/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	intentsDir        = "intents"
	entitiesDir       = "entities"
	fingerprintLength = 10
)

type intentFile struct {
	Name       string              `yaml:"name"`
	Contexts   []string            `yaml:"contexts"`
	Utterances map[string][]string `yaml:"utterances"`
	Slots      []slotFile          `yaml:"slots"`
}

type slotFile struct {
	Name     string   `yaml:"name"`
	Entities []string `yaml:"entities"`
}

type entityFile struct {
	Name     string              `yaml:"name"`
	Type     string              `yaml:"type"`
	Fuzzy    float64             `yaml:"fuzzy"`
	Values   map[string][]string `yaml:"values"`
	Patterns []string            `yaml:"patterns"`
}

// definitions is a snapshot of a bot's intents and entities.
type definitions struct {
	intents  []intentFile
	entities []entityFile
}

func loadDefinitions(botDir string) (definitions, error) {
	var defs definitions

	if err := readYAMLDir(filepath.Join(botDir, intentsDir), func(path string, data []byte) error {
		var intent intentFile
		if err := yaml.Unmarshal(data, &intent); err != nil {
			return fmt.Errorf("decode intent %s: %w", path, err)
		}
		if intent.Name == "" {
			intent.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		defs.intents = append(defs.intents, intent)
		return nil
	}); err != nil {
		return definitions{}, err
	}

	if err := readYAMLDir(filepath.Join(botDir, entitiesDir), func(path string, data []byte) error {
		var entity entityFile
		if err := yaml.Unmarshal(data, &entity); err != nil {
			return fmt.Errorf("decode entity %s: %w", path, err)
		}
		if entity.Name == "" {
			entity.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		if entity.Type == "" {
			entity.Type = "list"
		}
		defs.entities = append(defs.entities, entity)
		return nil
	}); err != nil {
		return definitions{}, err
	}

	sort.Slice(defs.intents, func(i, j int) bool { return defs.intents[i].Name < defs.intents[j].Name })
	sort.Slice(defs.entities, func(i, j int) bool { return defs.entities[i].Name < defs.entities[j].Name })
	return defs, nil
}

func readYAMLDir(dir string, decode func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isDefinitionFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := decode(path, data); err != nil {
			return err
		}
	}
	return nil
}

func isDefinitionFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := filepath.Ext(name)
	return ext == ".yml" || ext == ".yaml"
}

// trainSet builds the engine input for one language. The model id is derived
// from the content, so identical definitions always map to the same model.
func (d definitions) trainSet(botID domain.BotID, language string) (domain.TrainSet, error) {
	set := domain.TrainSet{
		Language: language,
		Intents:  []domain.Intent{},
		Entities: []domain.Entity{},
	}

	for _, intent := range d.intents {
		utterances := intent.Utterances[language]
		if len(utterances) == 0 {
			continue
		}
		converted := domain.Intent{
			Name:       intent.Name,
			Contexts:   intent.Contexts,
			Utterances: utterances,
		}
		for _, slot := range intent.Slots {
			converted.Slots = append(converted.Slots, domain.Slot{Name: slot.Name, Entities: slot.Entities})
		}
		set.Intents = append(set.Intents, converted)
	}
	for _, entity := range d.entities {
		set.Entities = append(set.Entities, domain.Entity{
			Name:     entity.Name,
			Type:     entity.Type,
			Fuzzy:    entity.Fuzzy,
			Values:   entity.Values,
			Patterns: entity.Patterns,
		})
	}

	encoded, err := json.Marshal(struct {
		Language string          `json:"language"`
		Intents  []domain.Intent `json:"intents"`
		Entities []domain.Entity `json:"entities"`
	}{language, set.Intents, set.Entities})
	if err != nil {
		return domain.TrainSet{}, fmt.Errorf("fingerprint %s/%s: %w", botID, language, err)
	}
	sum := sha1.Sum(encoded)

	set.ModelID = domain.ModelID(fmt.Sprintf("%s.%s.%s", botID, language, hex.EncodeToString(sum[:])[:fingerprintLength]))
	set.Seed = int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
	return set, nil
}
