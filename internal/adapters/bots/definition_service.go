package bots

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefinitionService computes a bot's latest model ids from its definition
// files and, while watching, reports languages whose definitions changed.
type DefinitionService struct {
	botID     domain.BotID
	botDir    string
	languages []string
	logger    *zap.Logger

	mu           sync.Mutex
	fingerprints map[string]domain.ModelID
	listeners    map[int]ports.DirtyModelFunc
	nextListener int
	stopWatch    context.CancelFunc
	watchDone    chan struct{}
}

var _ ports.DefinitionService = (*DefinitionService)(nil)

func newDefinitionService(cfg domain.BotConfig, botDir string, logger *zap.Logger) *DefinitionService {
	return &DefinitionService{
		botID:        cfg.ID,
		botDir:       botDir,
		languages:    append([]string(nil), cfg.Languages...),
		logger:       logger,
		fingerprints: map[string]domain.ModelID{},
		listeners:    map[int]ports.DirtyModelFunc{},
	}
}

func (s *DefinitionService) GetLatestModelID(ctx context.Context, language string) (domain.ModelID, error) {
	set, err := s.TrainSet(ctx, language)
	if err != nil {
		return "", err
	}
	return set.ModelID, nil
}

func (s *DefinitionService) TrainSet(ctx context.Context, language string) (domain.TrainSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.TrainSet{}, err
	}

	defs, err := loadDefinitions(s.botDir)
	if err != nil {
		return domain.TrainSet{}, fmt.Errorf("load definitions of bot %s: %w", s.botID, err)
	}
	return defs.trainSet(s.botID, language)
}

func (s *DefinitionService) ListenForDirtyModels(fn ports.DirtyModelFunc) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Watch starts following the definition files until Close. Calling it twice is
// a no-op.
func (s *DefinitionService) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopWatch != nil {
		return nil
	}

	fingerprints, err := s.computeFingerprints()
	if err != nil {
		return err
	}
	s.fingerprints = fingerprints

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create definitions watcher: %w", err)
	}
	for _, dir := range []string{s.botDir, filepath.Join(s.botDir, intentsDir), filepath.Join(s.botDir, entitiesDir)} {
		if err := watcher.Add(dir); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			_ = watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.stopWatch = cancel
	s.watchDone = make(chan struct{})
	go s.watch(ctx, watcher, s.watchDone)

	return nil
}

// Close stops the watcher and waits for it to exit.
func (s *DefinitionService) Close() {
	s.mu.Lock()
	stop, done := s.stopWatch, s.watchDone
	s.stopWatch, s.watchDone = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	stop()
	<-done
}

func (s *DefinitionService) watch(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	defer func() { _ = watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("definitions watcher error", zap.String("bot", string(s.botID)), zap.Error(err))
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			base := filepath.Base(ev.Name)
			if ev.Has(fsnotify.Create) && (base == intentsDir || base == entitiesDir) {
				if err := watcher.Add(ev.Name); err != nil {
					s.logger.Warn("watch definitions directory", zap.String("path", ev.Name), zap.Error(err))
				}
			}
			if !isDefinitionFile(base) && base != intentsDir && base != entitiesDir {
				continue
			}
			s.refresh()
		}
	}
}

// refresh recomputes every language's model id and notifies listeners of the
// ones that changed.
func (s *DefinitionService) refresh() {
	s.mu.Lock()
	fingerprints, err := s.computeFingerprints()
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn("reload definitions", zap.String("bot", string(s.botID)), zap.Error(err))
		return
	}

	var dirty []string
	for _, language := range s.languages {
		if fingerprints[language] != s.fingerprints[language] {
			dirty = append(dirty, language)
		}
	}
	s.fingerprints = fingerprints

	listeners := make([]ports.DirtyModelFunc, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, language := range dirty {
		s.logger.Debug("definitions changed", zap.String("bot", string(s.botID)), zap.String("language", language))
		for _, fn := range listeners {
			fn(language)
		}
	}
}

func (s *DefinitionService) computeFingerprints() (map[string]domain.ModelID, error) {
	defs, err := loadDefinitions(s.botDir)
	if err != nil {
		return nil, err
	}

	fingerprints := make(map[string]domain.ModelID, len(s.languages))
	for _, language := range s.languages {
		set, err := defs.trainSet(s.botID, language)
		if err != nil {
			return nil, err
		}
		fingerprints[language] = set.ModelID
	}
	return fingerprints, nil
}
