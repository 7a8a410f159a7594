package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/repovault/internal/medium"
)

// Namespaces under which the sub-stores are persisted in the medium.
const (
	NamespaceRecords  = "repovault/saved-repositories"
	NamespaceSettings = "repovault/settings"
	NamespaceToken    = "repovault/auth-token"
)

// RepositoryStore is the durable CRUD and query surface over saved
// repositories, plus the settings and auth token sub-stores. All three live
// in one Medium under distinct namespaces.
//
// Every mutation is a read-modify-write of a whole namespace guarded by the
// store mutex, so goroutines sharing one store never lose updates. Exclusion
// between processes is up to the medium.
type RepositoryStore struct {
	mu     sync.Mutex
	medium medium.Medium
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a RepositoryStore.
type Option func(*RepositoryStore)

// WithLogger sets the logger used for soft failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *RepositoryStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *RepositoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator replaces the UUID record id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *RepositoryStore) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New creates a store over m.
func New(m medium.Medium, opts ...Option) *RepositoryStore {
	s := &RepositoryStore{
		medium: m,
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Close closes the underlying medium.
func (s *RepositoryStore) Close() error {
	return s.medium.Close()
}
