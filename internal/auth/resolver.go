// Package auth resolves the GitHub token used by clients built on top of
// repovault. Sources are consulted in priority order: an explicit flag,
// environment variables, then the token persisted in the store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
)

// ErrNoToken is returned by Resolve when no source provides a token.
var ErrNoToken = errors.New("no token available")

// Source indicates where a token was found
type Source string

const (
	SourceFlag  Source = "flag"
	SourceEnv   Source = "env"
	SourceStore Source = "store"
	SourceNone  Source = "none"
)

// DefaultEnvVars are the environment variables checked by NewGitHubResolver.
var DefaultEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// Result contains the resolved token and its source
type Result struct {
	Token  string
	Source Source
	Name   string // e.g., "GITHUB_TOKEN" or "repovault/auth-token"
}

// TokenGetter reads a persisted token; ok is false when none is stored.
type TokenGetter interface {
	GetToken() (token string, ok bool)
}

// TokenProvider is a function that attempts to provide a token.
// Returns an empty token when the source has none; errors are reserved for
// unexpected failures.
type TokenProvider func() (token string, source Source, name string, err error)

// Resolver resolves tokens from multiple sources in priority order
type Resolver struct {
	providers []TokenProvider
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewGitHubResolver resolves flagValue, then DefaultEnvVars, then the store.
func NewGitHubResolver(flagValue string, store TokenGetter) *Resolver {
	return NewResolver().
		WithFlagValue(flagValue).
		WithEnvs(DefaultEnvVars...).
		WithStore(store)
}

// WithFlagValue adds a flag value as the highest priority source.
func (r *Resolver) WithFlagValue(value string) *Resolver {
	return r.WithProvider(func() (string, Source, string, error) {
		return strings.TrimSpace(value), SourceFlag, "flag", nil
	})
}

// WithEnv adds an environment variable as a token source
func (r *Resolver) WithEnv(envVar string) *Resolver {
	return r.WithProvider(func() (string, Source, string, error) {
		return strings.TrimSpace(os.Getenv(envVar)), SourceEnv, envVar, nil
	})
}

// WithEnvs adds multiple environment variables as token sources (checked in order)
func (r *Resolver) WithEnvs(envVars ...string) *Resolver {
	for _, envVar := range envVars {
		r.WithEnv(envVar)
	}

	return r
}

// WithStore adds the persisted token as a source. A nil store is ignored.
func (r *Resolver) WithStore(store TokenGetter) *Resolver {
	if store == nil {
		return r
	}

	return r.WithProvider(func() (string, Source, string, error) {
		token, _ := store.GetToken()
		return token, SourceStore, "store", nil
	})
}

// WithProvider adds a custom token provider
func (r *Resolver) WithProvider(provider TokenProvider) *Resolver {
	r.providers = append(r.providers, provider)
	return r
}

// Resolve returns the first token found, or ErrNoToken.
func (r *Resolver) Resolve() (*Result, error) {
	for _, provider := range r.providers {
		token, source, name, err := provider()
		if err != nil {
			return nil, fmt.Errorf("token provider %s: %w", name, err)
		}

		if token != "" {
			return &Result{Token: token, Source: source, Name: name}, nil
		}
	}

	return nil, ErrNoToken
}

// TokenSource returns an oauth2 token source for the resolved token.
func (res *Result) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: res.Token})
}

// HTTPClient returns an HTTP client that authenticates with the resolved
// token, suitable for github.NewClient.
func (res *Result) HTTPClient(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, res.TokenSource())
}

// Redact masks all but the last four characters of a token.
func Redact(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}

	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
