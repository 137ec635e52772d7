package chain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	fileresolver "github.com/bnema/nlu-trainer/internal/adapters/secrets/file"
	passresolver "github.com/bnema/nlu-trainer/internal/adapters/secrets/pass"
	"github.com/bnema/nlu-trainer/internal/ports"
)

const (
	SchemeEnv  = "env"
	SchemeFile = "file"
	SchemePass = "pass"
)

// Resolver dispatches secret references of the form "<scheme>:<value>" to the
// resolver registered for the scheme. References without a known scheme are
// returned as literal secrets.
type Resolver struct {
	schemes   map[string]ports.SecretResolver
	fallbacks map[string]ports.SecretResolver
}

var _ ports.SecretResolver = (*Resolver)(nil)

var errNilResolver = errors.New("secret resolver is nil")

type Option func(*Resolver)

func WithScheme(scheme string, resolver ports.SecretResolver) Option {
	return func(r *Resolver) {
		r.schemes[scheme] = resolver
	}
}

// WithFallback is consulted when the scheme's resolver fails for a reason
// other than cancellation.
func WithFallback(scheme string, resolver ports.SecretResolver) Option {
	return func(r *Resolver) {
		r.fallbacks[scheme] = resolver
	}
}

func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		schemes:   map[string]ports.SecretResolver{},
		fallbacks: map[string]ports.SecretResolver{},
	}
	for _, opt := range opts {
		opt(r)
	}

	for scheme, resolver := range r.schemes {
		if resolver == nil {
			return nil, fmt.Errorf("scheme %q: %w", scheme, errNilResolver)
		}
	}
	for scheme, resolver := range r.fallbacks {
		if resolver == nil {
			return nil, fmt.Errorf("fallback for scheme %q: %w", scheme, errNilResolver)
		}
	}

	return r, nil
}

// NewDefault resolves env:, file: and pass: references. pass: entries fall back
// to a file of the same name under fileRoot.
func NewDefault(fileRoot string) (*Resolver, error) {
	files := fileresolver.NewResolver(fileRoot)
	return NewResolver(
		WithScheme(SchemeEnv, EnvResolver{Lookup: os.LookupEnv}),
		WithScheme(SchemeFile, files),
		WithScheme(SchemePass, passresolver.NewResolver()),
		WithFallback(SchemePass, files),
	)
}

func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	scheme, value, ok := strings.Cut(ref, ":")
	if !ok {
		return ref, nil
	}
	resolver, known := r.schemes[scheme]
	if !known {
		return ref, nil
	}

	secret, err := resolver.Resolve(ctx, value)
	if err == nil {
		return secret, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallback, hasFallback := r.fallbacks[scheme]
	if !hasFallback {
		return "", fmt.Errorf("resolve %s secret: %w", scheme, err)
	}

	secret, fallbackErr := fallback.Resolve(ctx, value)
	if fallbackErr == nil {
		return secret, nil
	}

	return "", fmt.Errorf("primary %s resolver failed: %w; fallback resolver failed: %w", scheme, err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// EnvResolver reads secrets from environment variables.
type EnvResolver struct {
	Lookup func(string) (string, bool)
}

func (e EnvResolver) Resolve(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(strings.TrimSpace(name))
	if !ok || value == "" {
		return "", fmt.Errorf("environment variable %q is not set", name)
	}
	return value, nil
}
