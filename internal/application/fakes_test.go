package application

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type inMemoryTrainingRepo struct {
	mu       sync.Mutex
	sessions map[domain.TrainingID]domain.TrainingSession
	upserts  int
	failWith error
	failures int
}

var _ ports.TrainingRepository = (*inMemoryTrainingRepo)(nil)

func newInMemoryTrainingRepo(sessions ...domain.TrainingSession) *inMemoryTrainingRepo {
	repo := &inMemoryTrainingRepo{sessions: map[domain.TrainingID]domain.TrainingSession{}}
	for _, session := range sessions {
		repo.sessions[session.ID] = session
	}
	return repo
}

func (r *inMemoryTrainingRepo) Get(_ context.Context, id domain.TrainingID) (domain.TrainingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		r.failures++
		return domain.TrainingSession{}, r.failWith
	}
	session, ok := r.sessions[id]
	if !ok {
		return domain.TrainingSession{}, domain.ErrTrainingNotFound
	}
	return session, nil
}

func (r *inMemoryTrainingRepo) Upsert(_ context.Context, session domain.TrainingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		r.failures++
		return r.failWith
	}
	r.sessions[session.ID] = session
	r.upserts++
	return nil
}

func (r *inMemoryTrainingRepo) ListByBot(ctx context.Context, botID domain.BotID) ([]domain.TrainingSession, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.TrainingSession, 0, len(all))
	for _, session := range all {
		if session.ID.BotID == botID {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (r *inMemoryTrainingRepo) List(_ context.Context) ([]domain.TrainingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		r.failures++
		return nil, r.failWith
	}
	sessions := make([]domain.TrainingSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID.String() < sessions[j].ID.String() })
	return sessions, nil
}

func (r *inMemoryTrainingRepo) upsertCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upserts
}

func (r *inMemoryTrainingRepo) failureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures
}

func (r *inMemoryTrainingRepo) setFailure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

// blockingTrainer holds every attempt until release is closed or the attempt is
// canceled.
type blockingTrainer struct {
	mu           sync.Mutex
	calls        map[string]int
	started      chan string
	release      chan struct{}
	err          error
	ignoreCancel bool
}

func newBlockingTrainer() *blockingTrainer {
	return &blockingTrainer{
		calls:   map[string]int{},
		started: make(chan string, 64),
		release: make(chan struct{}),
	}
}

func (t *blockingTrainer) Train(ctx context.Context, language string, progress ports.ProgressFunc) (domain.ModelID, error) {
	t.mu.Lock()
	t.calls[language]++
	t.mu.Unlock()

	progress(0.5)
	t.started <- language

	if t.ignoreCancel {
		<-t.release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return domain.ModelID("model-" + language), t.err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.release:
		return domain.ModelID("model-" + language), t.err
	}
}

func (t *blockingTrainer) callCount(language string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls[language]
}

type staticTrainerLookup struct {
	mu       sync.Mutex
	trainers map[domain.BotID]ports.Trainer
}

func newStaticTrainerLookup() *staticTrainerLookup {
	return &staticTrainerLookup{trainers: map[domain.BotID]ports.Trainer{}}
}

func (l *staticTrainerLookup) mount(botID domain.BotID, trainer ports.Trainer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trainers[botID] = trainer
}

func (l *staticTrainerLookup) GetTrainer(botID domain.BotID) (ports.Trainer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	trainer, ok := l.trainers[botID]
	return trainer, ok
}

func waitForStatus(t *testing.T, repo ports.TrainingRepository, id domain.TrainingID, status domain.TrainingStatus) domain.TrainingSession {
	t.Helper()

	var last domain.TrainingSession
	require.Eventually(t, func() bool {
		session, err := repo.Get(context.Background(), id)
		if err != nil {
			return false
		}
		last = session
		return session.Status == status
	}, 2*time.Second, 5*time.Millisecond, "training %s never reached %s (last: %s)", id, status, last.Status)
	return last
}

func waitStarted(t *testing.T, trainer *blockingTrainer, language string) {
	t.Helper()

	select {
	case got := <-trainer.started:
		require.Equal(t, language, got)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "training did not start", "language %s", language)
	}
}
