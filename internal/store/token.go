package store

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/inovacc/repovault/internal/medium"
)

// GetToken returns the stored auth token. ok is false when no token is set
// or the medium cannot be read.
func (s *RepositoryStore) GetToken() (token string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.medium.Get(NamespaceToken)
	if err != nil {
		if !errors.Is(err, medium.ErrNotFound) {
			s.logger.Warn("reading auth token", slog.String("error", err.Error()))
		}

		return "", false
	}

	if len(data) == 0 {
		return "", false
	}

	return string(data), true
}

// SetToken stores value as the auth token, replacing any previous one.
func (s *RepositoryStore) SetToken(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.medium.Put(NamespaceToken, []byte(value)); err != nil {
		return &PersistError{Namespace: NamespaceToken, Op: "write", Err: err}
	}

	return nil
}

// ClearToken removes the auth token. Clearing an absent token succeeds.
func (s *RepositoryStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.medium.Delete(NamespaceToken); err != nil {
		return &PersistError{Namespace: NamespaceToken, Op: "delete", Err: err}
	}

	return nil
}
