package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDSNEnv = "NLUCTL_TEST_POSTGRES_DSN"

func TestStorageErrorMapsDriverFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		storage  bool
		contains string
	}{
		{
			name:     "undefined table",
			err:      &pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: `relation "training_session" does not exist`},
			storage:  true,
			contains: "trainings schema is missing",
		},
		{
			name:     "connection failure",
			err:      &pgconn.PgError{Code: pgerrcode.ConnectionFailure, Message: "connection failure"},
			storage:  true,
			contains: "connection lost",
		},
		{
			name:     "other driver error",
			err:      errors.New("unexpected EOF"),
			storage:  true,
			contains: "unexpected EOF",
		},
		{
			name:     "context canceled",
			err:      fmt.Errorf("query: %w", context.Canceled),
			storage:  false,
			contains: "context canceled",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := storageError("get training b1/en", tt.err)
			assert.Equal(t, tt.storage, errors.Is(err, domain.ErrStorage))
			assert.ErrorContains(t, err, tt.contains)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func openTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo
}

func TestRepositoryRoundTripAgainstPostgres(t *testing.T) {
	repo := openTestRepository(t)
	ctx := context.Background()

	botID := domain.BotID("bot-" + uuid.NewString())
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	en := domain.TrainingSession{
		ID:        domain.TrainingID{BotID: botID, Language: "en"},
		Status:    domain.TrainingStatusQueued,
		Attempt:   uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	fr := domain.TrainingSession{
		ID:        domain.TrainingID{BotID: botID, Language: "fr"},
		Status:    domain.TrainingStatusErrored,
		Progress:  0.25,
		Attempt:   uuid.NewString(),
		Error:     "engine unavailable",
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, repo.Upsert(ctx, fr))
	require.NoError(t, repo.Upsert(ctx, en))

	got, err := repo.Get(ctx, en.ID)
	require.NoError(t, err)
	assert.Equal(t, en, got)

	en.Status = domain.TrainingStatusDone
	en.Progress = 1
	en.ModelID = domain.ModelID(string(botID) + ".en.4f2a9c1d")
	en.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Upsert(ctx, en))

	sessions, err := repo.ListByBot(ctx, botID)
	require.NoError(t, err)
	assert.Equal(t, []domain.TrainingSession{en, fr}, sessions)

	_, err = repo.Get(ctx, domain.TrainingID{BotID: botID, Language: "EN"})
	require.ErrorIs(t, err, domain.ErrTrainingNotFound)
}

func TestRepositoryMigrateIsIdempotent(t *testing.T) {
	repo := openTestRepository(t)

	require.NoError(t, repo.Migrate(context.Background()))
	version, err := repo.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}
