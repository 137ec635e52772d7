package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/nlu-trainer/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

// Resolver reads secrets from the pass password manager. Only the first line
// of an entry is used, as pass conventionally stores metadata below it.
type Resolver struct {
	run runFunc
}

var _ ports.SecretResolver = (*Resolver)(nil)

func NewResolver() *Resolver {
	return &Resolver{run: runPassCommand}
}

func (r *Resolver) Resolve(ctx context.Context, entry string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entry = strings.TrimSpace(entry)
	if entry == "" {
		return "", errors.New("pass entry is empty")
	}

	stdout, stderr, err := r.run(ctx, "show", entry)
	if err != nil {
		return "", formatError(entry, err, stderr)
	}

	value, _, _ := strings.Cut(stdout, "\n")
	value = strings.TrimSuffix(value, "\r")
	if value == "" {
		return "", fmt.Errorf("pass entry %q is empty", entry)
	}
	return value, nil
}

func runPassCommand(ctx context.Context, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass show %q: %w", entry, err)
	}

	return fmt.Errorf("pass show %q: %w: %s", entry, err, stderr)
}
