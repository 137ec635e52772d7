// Package loop runs a task repeatedly until it breaks or its context ends.
//
// A task receives the value it returned last time and decides what happens
// next:
//
//	Continue(d) sleeps d, then calls the task again.
//	Break(nil)  stops the loop without error.
//	Break(err)  stops the loop and returns err.
//
// The zero Next is Continue(0).
package loop

import (
	"context"
	"fmt"
	"time"
)

type Next struct {
	err      error
	quit     bool
	interval time.Duration
}

func (n Next) String() string {
	if n.err != nil {
		return fmt.Sprintf("[break] with error: %v", n.err)
	}
	if n.quit {
		return "[break] without error"
	}
	return fmt.Sprintf("[continue] interval: %s", n.interval)
}

func Continue(interval time.Duration) Next {
	return Next{interval: interval}
}

func Break(err error) Next {
	return Next{quit: true, err: err}
}

type Task[T any] func(ctx context.Context, value T) (T, Next)

type Option func(*config)

type config struct {
	timeout time.Duration
}

// WithTimeout bounds every single task invocation.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// Start calls task with init, then with each value it returns, until the task
// breaks or ctx is done. The last value is always returned, even with an error.
func Start[T any](ctx context.Context, init T, task Task[T], options ...Option) (T, error) {
	if err := ctx.Err(); err != nil {
		return init, err
	}

	cfg := config{}
	for _, opt := range options {
		opt(&cfg)
	}

	value := init
	for {
		v, next := invoke(ctx, cfg, value, task)
		if next.err != nil {
			return v, next.err
		}
		if next.quit {
			return v, nil
		}
		value = v

		timer := time.NewTimer(next.interval)
		select {
		case <-ctx.Done():
			// shutdown wins over a timer that fired at the same time.
			timer.Stop()
			return value, ctx.Err()
		case <-timer.C:
		}
	}
}

func invoke[T any](ctx context.Context, cfg config, value T, task Task[T]) (T, Next) {
	if cfg.timeout <= 0 {
		return task(ctx, value)
	}

	taskCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()
	return task(taskCtx, value)
}
