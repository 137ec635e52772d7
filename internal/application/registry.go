package application

import (
	"sort"
	"sync"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
)

// BotRegistry is the authority on which bots are mounted.
type BotRegistry struct {
	mu   sync.RWMutex
	bots map[domain.BotID]ports.Bot
}

var _ ports.TrainerLookup = (*BotRegistry)(nil)

func NewBotRegistry() *BotRegistry {
	return &BotRegistry{bots: map[domain.BotID]ports.Bot{}}
}

func (r *BotRegistry) SetBot(botID domain.BotID, bot ports.Bot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bots[botID]; ok {
		return domain.ConflictError{BotID: botID}
	}
	r.bots[botID] = bot
	return nil
}

func (r *BotRegistry) GetBot(botID domain.BotID) (ports.Bot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bot, ok := r.bots[botID]
	return bot, ok
}

func (r *BotRegistry) GetTrainer(botID domain.BotID) (ports.Trainer, bool) {
	bot, ok := r.GetBot(botID)
	if !ok {
		return nil, false
	}
	return bot, true
}

func (r *BotRegistry) RemoveBot(botID domain.BotID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.bots[botID]
	delete(r.bots, botID)
	return ok
}

// GetIDs returns a sorted snapshot of the mounted bot ids.
func (r *BotRegistry) GetIDs() []domain.BotID {
	r.mu.RLock()
	ids := make([]domain.BotID, 0, len(r.bots))
	for id := range r.bots {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *BotRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bots = map[domain.BotID]ports.Bot{}
}
