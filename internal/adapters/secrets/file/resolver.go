package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/nlu-trainer/internal/ports"
)

const maxSecretFileMode = 0o600

// Resolver reads secrets from files. Relative references are resolved under
// root and may not escape it.
type Resolver struct {
	root string
}

var _ ports.SecretResolver = (*Resolver)(nil)

func NewResolver(root string) *Resolver {
	return &Resolver{root: filepath.Clean(root)}
}

func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := r.pathForRef(ref)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file secret %q not found: %w", ref, err)
		}
		return "", fmt.Errorf("stat file secret %q: %w", ref, err)
	}
	if info.Mode().Perm()&^maxSecretFileMode != 0 {
		return "", fmt.Errorf("file secret %q is readable by others (mode %o)", ref, info.Mode().Perm())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file secret %q: %w", ref, err)
	}

	value := strings.TrimRight(string(data), "\r\n")
	if value == "" {
		return "", fmt.Errorf("file secret %q is empty", ref)
	}
	return value, nil
}

func (r *Resolver) pathForRef(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", errors.New("secret reference is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) {
		return cleaned, nil
	}
	if strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid secret reference %q", ref)
	}

	return filepath.Join(r.root, cleaned), nil
}
