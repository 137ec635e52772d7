package loop_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/nlu-trainer/internal/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCountsUntilBreak(t *testing.T) {
	t.Parallel()

	got, err := loop.Start(context.Background(), 1, func(_ context.Context, value int) (int, loop.Next) {
		value++
		if value >= 10 {
			return value, loop.Break(nil)
		}
		return value, loop.Continue(0)
	})

	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestStartReturnsBreakError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	got, err := loop.Start(context.Background(), "init", func(_ context.Context, _ string) (string, loop.Next) {
		return "last", loop.Break(boom)
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, "last", got)
}

func TestStartStopsWhenContextIsCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	got, err := loop.Start(ctx, 0, func(_ context.Context, value int) (int, loop.Next) {
		calls++
		if calls == 3 {
			cancel()
		}
		return value + 1, loop.Continue(time.Hour)
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, got)
	assert.Equal(t, 3, calls)
}

func TestStartWithCanceledContextDoesNotRunTask(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loop.Start(ctx, 0, func(_ context.Context, value int) (int, loop.Next) {
		t.Fatal("task must not run")
		return value, loop.Break(nil)
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeoutBoundsEachInvocation(t *testing.T) {
	t.Parallel()

	_, err := loop.Start(context.Background(), 0, func(ctx context.Context, value int) (int, loop.Next) {
		<-ctx.Done()
		return value, loop.Break(ctx.Err())
	}, loop.WithTimeout(10*time.Millisecond))

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNextString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[break] without error", loop.Break(nil).String())
	assert.Equal(t, "[continue] interval: 1s", loop.Continue(time.Second).String())
	assert.Contains(t, loop.Break(errors.New("x")).String(), "with error: x")
}
