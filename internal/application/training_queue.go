package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/keylock"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const (
	DefaultTrainingWorkers   = 2
	DefaultCancelWait        = 5 * time.Second
	defaultIdleRescanPeriod  = 2 * time.Second
	defaultStorageRetry      = time.Second
	defaultProgressWriteStep = 0.01
)

type pendingTraining struct {
	id        domain.TrainingID
	attempt   string
	notBefore time.Time
}

type trainingJob struct {
	id              domain.TrainingID
	attempt         string
	ctx             context.Context
	cancel          context.CancelFunc
	cancelRequested bool
	done            chan struct{}
}

// TrainingQueue schedules training attempts on a bounded worker pool. It keeps
// at most one active session (queued or training) per TrainingID and at most
// one running job per TrainingID.
type TrainingQueue struct {
	repo     ports.TrainingRepository
	trainers ports.TrainerLookup
	clock    ports.Clock
	logger   *zap.Logger
	observer ports.TrainingObserver

	workers      int
	cancelWait   time.Duration
	idleInterval time.Duration
	storageRetry time.Duration

	keys *keylock.Locker[domain.TrainingID]

	mu      sync.Mutex
	pending []pendingTraining
	running map[domain.TrainingID]*trainingJob
	wake    chan struct{}
	closed  bool

	ctx  context.Context
	stop context.CancelFunc
	wg   conc.WaitGroup
}

type TrainingQueueOption func(*TrainingQueue)

func WithWorkers(n int) TrainingQueueOption {
	return func(q *TrainingQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

// WithCancelWait bounds how long CancelTrainings waits for in-flight jobs to
// acknowledge cancellation.
func WithCancelWait(d time.Duration) TrainingQueueOption {
	return func(q *TrainingQueue) {
		if d >= 0 {
			q.cancelWait = d
		}
	}
}

func WithIdleRescan(d time.Duration) TrainingQueueOption {
	return func(q *TrainingQueue) {
		if d > 0 {
			q.idleInterval = d
		}
	}
}

// WithStorageRetry sets how long an attempt waits before it is picked up again
// after the repository failed while starting it.
func WithStorageRetry(d time.Duration) TrainingQueueOption {
	return func(q *TrainingQueue) {
		if d > 0 {
			q.storageRetry = d
		}
	}
}

func WithQueueLogger(logger *zap.Logger) TrainingQueueOption {
	return func(q *TrainingQueue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

func WithObserver(observer ports.TrainingObserver) TrainingQueueOption {
	return func(q *TrainingQueue) {
		if observer != nil {
			q.observer = observer
		}
	}
}

func WithQueueClock(clock ports.Clock) TrainingQueueOption {
	return func(q *TrainingQueue) {
		if clock != nil {
			q.clock = clock
		}
	}
}

// NewTrainingQueue starts the worker pool right away; call Teardown to stop it.
func NewTrainingQueue(repo ports.TrainingRepository, trainers ports.TrainerLookup, opts ...TrainingQueueOption) *TrainingQueue {
	q := &TrainingQueue{
		repo:         repo,
		trainers:     trainers,
		clock:        ports.SystemClock{},
		logger:       zap.NewNop(),
		observer:     ports.NopTrainingObserver{},
		workers:      DefaultTrainingWorkers,
		cancelWait:   DefaultCancelWait,
		idleInterval: defaultIdleRescanPeriod,
		storageRetry: defaultStorageRetry,
		keys:         keylock.New[domain.TrainingID](),
		running:      map[domain.TrainingID]*trainingJob{},
		wake:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}

	q.ctx, q.stop = context.WithCancel(context.Background())
	for i := 0; i < q.workers; i++ {
		q.wg.Go(q.work)
	}

	return q
}

func (q *TrainingQueue) Repository() ports.TrainingRepository {
	return q.repo
}

// NeedsTraining records that id has no current model. It never downgrades a
// queued or training session.
func (q *TrainingQueue) NeedsTraining(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, error) {
	if err := id.Validate(); err != nil {
		return domain.TrainingSession{}, err
	}

	unlock := q.keys.Lock(id)
	defer unlock()

	session, from, err := q.load(ctx, id)
	if err != nil {
		return domain.TrainingSession{}, err
	}
	if from.Active() || from == domain.TrainingStatusNeedsTraining {
		return session, nil
	}

	session.Status = domain.TrainingStatusNeedsTraining
	session.Progress = 0
	session.Error = ""
	if err := q.save(ctx, &session, from); err != nil {
		return domain.TrainingSession{}, err
	}

	return session, nil
}

// QueueTraining schedules a fresh attempt for id. When an attempt is already
// queued or running it is returned unchanged.
func (q *TrainingQueue) QueueTraining(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, error) {
	if err := id.Validate(); err != nil {
		return domain.TrainingSession{}, err
	}

	unlock := q.keys.Lock(id)
	defer unlock()

	if q.isClosed() {
		return domain.TrainingSession{}, domain.ErrQueueClosed
	}

	session, from, err := q.load(ctx, id)
	if err != nil {
		return domain.TrainingSession{}, err
	}
	if from.Active() && q.tracked(session) {
		return session, nil
	}

	session.Status = domain.TrainingStatusQueued
	session.Attempt = uuid.NewString()
	session.Progress = 0
	session.Error = ""
	if err := q.save(ctx, &session, from); err != nil {
		return domain.TrainingSession{}, err
	}

	q.enqueue(session)
	return session, nil
}

// CancelTraining removes a queued attempt, or asks a running one to stop. A
// running session stays in training until its worker acknowledges.
func (q *TrainingQueue) CancelTraining(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, error) {
	session, _, err := q.cancel(ctx, id)
	return session, err
}

// CancelTrainings requests cancellation of every session of botID, then waits
// at most the configured cancel wait for running jobs to acknowledge.
func (q *TrainingQueue) CancelTrainings(ctx context.Context, botID domain.BotID) error {
	sessions, err := q.repo.ListByBot(ctx, botID)
	if err != nil {
		return fmt.Errorf("list trainings of bot %s: %w", botID, err)
	}

	var errs []error
	var acks []<-chan struct{}
	for _, session := range sessions {
		if !session.Status.Active() {
			continue
		}
		_, done, err := q.cancel(ctx, session.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if done != nil {
			acks = append(acks, done)
		}
	}

	if !q.awaitAcks(ctx, acks) {
		q.logger.Warn("training cancellation not acknowledged in time",
			zap.String("bot", string(botID)),
			zap.Duration("wait", q.cancelWait))
	}

	return errors.Join(errs...)
}

// GetTraining returns the persisted session without waiting on a running job.
func (q *TrainingQueue) GetTraining(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, error) {
	session, err := q.repo.Get(ctx, id)
	if err != nil {
		return domain.TrainingSession{}, fmt.Errorf("get training %s: %w", id, err)
	}
	return session, nil
}

// Resume requeues sessions a previous process left queued or training. A
// training session is always restarted from scratch.
func (q *TrainingQueue) Resume(ctx context.Context) error {
	sessions, err := q.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list trainings: %w", err)
	}

	var errs []error
	for _, stale := range sessions {
		if !stale.Status.Active() {
			continue
		}
		if err := q.resumeOne(ctx, stale.ID); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Reschedule wakes idle workers, e.g. after a bot whose trainings were waiting
// got mounted.
func (q *TrainingQueue) Reschedule() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notifyLocked()
}

// Teardown stops accepting work, cancels running jobs and waits for workers to
// exit. Pending sessions stay queued in the repository for the next Resume.
func (q *TrainingQueue) Teardown() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.pending = nil
	q.notifyLocked()
	q.mu.Unlock()

	q.stop()
	if recovered := q.wg.WaitAndRecover(); recovered != nil {
		return fmt.Errorf("training worker panicked: %v", recovered.Value)
	}

	return nil
}

func (q *TrainingQueue) resumeOne(ctx context.Context, id domain.TrainingID) error {
	unlock := q.keys.Lock(id)
	defer unlock()

	if q.isClosed() {
		return domain.ErrQueueClosed
	}

	session, from, err := q.load(ctx, id)
	if err != nil {
		return err
	}
	if !from.Active() || q.tracked(session) {
		return nil
	}

	q.logger.Info("resuming training",
		zap.String("bot", string(id.BotID)),
		zap.String("language", id.Language),
		zap.String("status", string(from)))

	session.Status = domain.TrainingStatusQueued
	session.Attempt = uuid.NewString()
	session.Progress = 0
	session.Error = ""
	if err := q.save(ctx, &session, from); err != nil {
		return err
	}

	q.enqueue(session)
	return nil
}

func (q *TrainingQueue) cancel(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, <-chan struct{}, error) {
	unlock := q.keys.Lock(id)
	defer unlock()

	session, err := q.repo.Get(ctx, id)
	if err != nil {
		return domain.TrainingSession{}, nil, fmt.Errorf("get training %s: %w", id, err)
	}

	switch session.Status {
	case domain.TrainingStatusQueued:
		q.mu.Lock()
		q.removePendingLocked(id)
		q.requestCancelLocked(id, session.Attempt)
		q.mu.Unlock()
	case domain.TrainingStatusTraining:
		q.mu.Lock()
		job := q.requestCancelLocked(id, session.Attempt)
		q.mu.Unlock()
		if job != nil {
			return session, job.done, nil
		}
	default:
		return session, nil, nil
	}

	from := session.Status
	session.Status = domain.TrainingStatusCanceled
	if err := q.save(ctx, &session, from); err != nil {
		return domain.TrainingSession{}, nil, err
	}

	return session, nil, nil
}

func (q *TrainingQueue) awaitAcks(ctx context.Context, acks []<-chan struct{}) bool {
	if len(acks) == 0 {
		return true
	}

	timer := time.NewTimer(q.cancelWait)
	defer timer.Stop()

	for _, done := range acks {
		select {
		case <-done:
		case <-timer.C:
			return false
		case <-ctx.Done():
			return false
		}
	}
	return true
}

func (q *TrainingQueue) work() {
	for {
		job, trainer, wake, ok := q.next()
		if !ok {
			return
		}
		if job == nil {
			timer := time.NewTimer(q.idleInterval)
			select {
			case <-wake:
			case <-timer.C:
			case <-q.ctx.Done():
			}
			timer.Stop()
			continue
		}

		q.run(job, trainer)
	}
}

// next pops the first pending attempt whose TrainingID has no running job and
// whose bot is mounted.
func (q *TrainingQueue) next() (*trainingJob, ports.Trainer, <-chan struct{}, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, nil, nil, false
	}

	now := time.Now()
	for i, item := range q.pending {
		if now.Before(item.notBefore) {
			continue
		}
		if _, busy := q.running[item.id]; busy {
			continue
		}
		trainer, ok := q.trainers.GetTrainer(item.id.BotID)
		if !ok {
			continue
		}

		q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
		ctx, cancel := context.WithCancel(q.ctx)
		job := &trainingJob{
			id:      item.id,
			attempt: item.attempt,
			ctx:     ctx,
			cancel:  cancel,
			done:    make(chan struct{}),
		}
		q.running[item.id] = job
		return job, trainer, nil, true
	}

	return nil, nil, q.wake, true
}

func (q *TrainingQueue) run(job *trainingJob, trainer ports.Trainer) {
	defer q.finish(job)

	if !q.begin(job) {
		return
	}

	logger := q.logger.With(
		zap.String("bot", string(job.id.BotID)),
		zap.String("language", job.id.Language),
		zap.String("attempt", job.attempt))
	logger.Info("training started")

	modelID, err := trainer.Train(job.ctx, job.id.Language, func(progress float64) {
		q.progress(job, progress)
	})
	q.complete(job, modelID, err, logger)
}

func (q *TrainingQueue) begin(job *trainingJob) bool {
	unlock := q.keys.Lock(job.id)
	defer unlock()

	if job.ctx.Err() != nil {
		return false
	}

	ctx := context.WithoutCancel(job.ctx)
	session, err := q.repo.Get(ctx, job.id)
	if err != nil {
		q.logger.Warn("load training before start", zap.String("training", job.id.String()), zap.Error(err))
		if !errors.Is(err, domain.ErrTrainingNotFound) {
			q.retry(job)
		}
		return false
	}
	if session.Status != domain.TrainingStatusQueued || session.Attempt != job.attempt {
		return false
	}

	session.Status = domain.TrainingStatusTraining
	session.Progress = 0
	if err := q.save(ctx, &session, domain.TrainingStatusQueued); err != nil {
		q.logger.Warn("mark training started", zap.String("training", job.id.String()), zap.Error(err))
		q.retry(job)
		return false
	}
	return true
}

// retry puts a job that failed to start back in the pending list, delayed by
// the storage retry interval. Callers hold the key lock, so the attempt is
// still tracked while the job is running.
func (q *TrainingQueue) retry(job *trainingJob) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || job.ctx.Err() != nil {
		return
	}
	for _, item := range q.pending {
		if item.id == job.id {
			return
		}
	}
	q.pending = append(q.pending, pendingTraining{
		id:        job.id,
		attempt:   job.attempt,
		notBefore: time.Now().Add(q.storageRetry),
	})
}

func (q *TrainingQueue) progress(job *trainingJob, progress float64) {
	unlock := q.keys.Lock(job.id)
	defer unlock()

	ctx := context.WithoutCancel(job.ctx)
	session, err := q.repo.Get(ctx, job.id)
	if err != nil || session.Attempt != job.attempt || session.Status != domain.TrainingStatusTraining {
		return
	}

	previous := session.Progress
	if !session.SetProgress(progress) {
		return
	}
	if session.Progress < 1 && session.Progress-previous < defaultProgressWriteStep {
		return
	}
	if err := q.save(ctx, &session, session.Status); err != nil {
		q.logger.Debug("save training progress", zap.String("training", job.id.String()), zap.Error(err))
		return
	}
	q.observer.ProgressObserved(job.id, session.Progress)
}

// complete records the attempt's terminal state unless a newer attempt or a
// finished cancellation already replaced it.
func (q *TrainingQueue) complete(job *trainingJob, modelID domain.ModelID, trainErr error, logger *zap.Logger) {
	unlock := q.keys.Lock(job.id)
	defer unlock()

	ctx := context.WithoutCancel(job.ctx)
	session, err := q.repo.Get(ctx, job.id)
	if err != nil {
		logger.Warn("load training after run", zap.Error(err))
		return
	}
	if session.Attempt != job.attempt || session.Status != domain.TrainingStatusTraining {
		logger.Debug("discarding stale training result", zap.String("status", string(session.Status)))
		return
	}

	switch {
	case trainErr == nil:
		session.Status = domain.TrainingStatusDone
		session.Progress = 1
		session.ModelID = modelID
		session.Error = ""
		logger.Info("training done", zap.String("model", string(modelID)))
	case job.ctx.Err() != nil:
		session.Status = domain.TrainingStatusCanceled
		logger.Info("training canceled")
	default:
		session.Status = domain.TrainingStatusErrored
		session.Error = trainErr.Error()
		logger.Warn("training failed", zap.Error(trainErr))
	}

	if err := q.save(ctx, &session, domain.TrainingStatusTraining); err != nil {
		logger.Warn("save training result", zap.Error(err))
	}
}

func (q *TrainingQueue) finish(job *trainingJob) {
	job.cancel()

	q.mu.Lock()
	if q.running[job.id] == job {
		delete(q.running, job.id)
	}
	q.notifyLocked()
	q.mu.Unlock()

	close(job.done)
}

// load returns the stored session and its status. A missing session comes back
// fresh with an empty status so its first save counts as a transition.
func (q *TrainingQueue) load(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, domain.TrainingStatus, error) {
	session, err := q.repo.Get(ctx, id)
	if err == nil {
		return session, session.Status, nil
	}
	if errors.Is(err, domain.ErrTrainingNotFound) {
		return domain.NewTrainingSession(id, q.clock.Now()), "", nil
	}
	return domain.TrainingSession{}, "", fmt.Errorf("get training %s: %w", id, err)
}

func (q *TrainingQueue) save(ctx context.Context, session *domain.TrainingSession, from domain.TrainingStatus) error {
	now := q.clock.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	if err := q.repo.Upsert(ctx, *session); err != nil {
		return fmt.Errorf("save training %s: %w", session.ID, err)
	}

	if from != session.Status {
		q.logger.Debug("training transition",
			zap.String("bot", string(session.ID.BotID)),
			zap.String("language", session.ID.Language),
			zap.String("from", string(from)),
			zap.String("status", string(session.Status)))
		q.observer.TransitionObserved(session.ID, from, session.Status)
	}
	return nil
}

// tracked reports whether this process holds the session's current attempt,
// either pending or running without a cancellation request.
func (q *TrainingQueue) tracked(session domain.TrainingSession) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if job, ok := q.running[session.ID]; ok && job.attempt == session.Attempt {
		return !job.cancelRequested
	}
	for _, item := range q.pending {
		if item.id == session.ID && item.attempt == session.Attempt {
			return true
		}
	}
	return false
}

func (q *TrainingQueue) enqueue(session domain.TrainingSession) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.removePendingLocked(session.ID)
	q.pending = append(q.pending, pendingTraining{id: session.ID, attempt: session.Attempt})
	q.notifyLocked()
}

func (q *TrainingQueue) removePendingLocked(id domain.TrainingID) {
	kept := q.pending[:0]
	for _, item := range q.pending {
		if item.id != id {
			kept = append(kept, item)
		}
	}
	q.pending = kept
}

func (q *TrainingQueue) requestCancelLocked(id domain.TrainingID, attempt string) *trainingJob {
	job, ok := q.running[id]
	if !ok || job.attempt != attempt {
		return nil
	}
	job.cancelRequested = true
	job.cancel()
	return job
}

func (q *TrainingQueue) notifyLocked() {
	close(q.wake)
	q.wake = make(chan struct{})
}

func (q *TrainingQueue) isClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
