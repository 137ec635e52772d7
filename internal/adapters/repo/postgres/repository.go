package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Queryer is the part of pgxpool.Pool the repository uses.
type Queryer interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	db    Queryer
	close func()
}

var _ ports.TrainingRepository = (*Repository)(nil)

// Open connects a pool to dsn and makes sure the trainings table exists.
func Open(ctx context.Context, dsn string) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is empty")
	}

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, storageError("connect", err)
	}

	repo := &Repository{db: pool, close: pool.Close}
	if err := repo.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return repo, nil
}

func New(db Queryer) *Repository {
	return &Repository{db: db, close: func() {}}
}

func (r *Repository) Close() {
	r.close()
}

// Migrate applies every schema version newer than the stored one.
func (r *Repository) Migrate(ctx context.Context) error {
	current, err := r.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for version, ddl := range migrations {
		if version+1 <= current {
			continue
		}
		if _, err := r.db.Exec(ctx, ddl); err != nil {
			return storageError(fmt.Sprintf("apply schema version %d", version+1), err)
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM "nlu_schema_version"`); err != nil {
			return storageError("reset schema version", err)
		}
		if _, err := r.db.Exec(ctx, `INSERT INTO "nlu_schema_version" ("version") VALUES ($1)`, version+1); err != nil {
			return storageError("record schema version", err)
		}
	}

	return nil
}

func (r *Repository) schemaVersion(ctx context.Context) (int, error) {
	var version *int
	err := r.db.QueryRow(ctx, `SELECT max("version") FROM "nlu_schema_version"`).Scan(&version)
	if err != nil {
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) && pgerr.Code == pgerrcode.UndefinedTable {
			return 0, nil
		}
		return 0, storageError("read schema version", err)
	}
	if version == nil {
		return 0, nil
	}
	return *version, nil
}

func (r *Repository) Upsert(ctx context.Context, session domain.TrainingSession) error {
	if err := session.ID.Validate(); err != nil {
		return fmt.Errorf("upsert training: %w", err)
	}

	_, err := r.db.Exec(ctx, upsertTrainingSQL,
		string(session.ID.BotID),
		session.ID.Language,
		string(session.Status),
		session.Progress,
		session.Attempt,
		string(session.ModelID),
		session.Error,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return storageError(fmt.Sprintf("upsert training %s", session.ID), err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id domain.TrainingID) (domain.TrainingSession, error) {
	row := r.db.QueryRow(ctx, selectTrainingSQL+` WHERE "bot_id" = $1 AND "language" = $2`, string(id.BotID), id.Language)

	session, err := scanTraining(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TrainingSession{}, domain.ErrTrainingNotFound
		}
		return domain.TrainingSession{}, storageError(fmt.Sprintf("get training %s", id), err)
	}
	return session, nil
}

func (r *Repository) ListByBot(ctx context.Context, botID domain.BotID) ([]domain.TrainingSession, error) {
	return r.list(ctx, selectTrainingSQL+` WHERE "bot_id" = $1 ORDER BY "language"`, string(botID))
}

func (r *Repository) List(ctx context.Context) ([]domain.TrainingSession, error) {
	return r.list(ctx, selectTrainingSQL+` ORDER BY "bot_id", "language"`)
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]domain.TrainingSession, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("list trainings", err)
	}
	defer rows.Close()

	sessions := []domain.TrainingSession{}
	for rows.Next() {
		session, err := scanTraining(rows)
		if err != nil {
			return nil, storageError("scan training", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list trainings", err)
	}

	return sessions, nil
}

func scanTraining(row pgx.Row) (domain.TrainingSession, error) {
	var (
		session domain.TrainingSession
		botID   string
		status  string
		modelID string
	)
	if err := row.Scan(
		&botID,
		&session.ID.Language,
		&status,
		&session.Progress,
		&session.Attempt,
		&modelID,
		&session.Error,
		&session.CreatedAt,
		&session.UpdatedAt,
	); err != nil {
		return domain.TrainingSession{}, err
	}

	session.ID.BotID = domain.BotID(botID)
	session.Status = domain.TrainingStatus(status)
	session.ModelID = domain.ModelID(modelID)
	session.CreatedAt = session.CreatedAt.UTC()
	session.UpdatedAt = session.UpdatedAt.UTC()
	if !session.Status.Valid() {
		return domain.TrainingSession{}, fmt.Errorf("training %s has unknown status %q", session.ID, status)
	}

	return session, nil
}

// storageError maps driver failures onto domain.ErrStorage. Context errors are
// returned as they are so callers can tell cancellation from I/O failure.
func storageError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
		switch {
		case pgerr.Code == pgerrcode.UndefinedTable:
			return fmt.Errorf("%w: %s: trainings schema is missing: %w", domain.ErrStorage, op, err)
		case pgerrcode.IsConnectionException(pgerr.Code):
			return fmt.Errorf("%w: %s: connection lost: %w", domain.ErrStorage, op, err)
		}
	}

	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}
