package medium

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned by Put when a value exceeds the size limit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Medium is a synchronous key-value store holding opaque byte values.
// Implementations are safe for concurrent use by multiple goroutines.
type Medium interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases the underlying resources.
	Close() error
}

// Backend names a Medium implementation.
type Backend string

const (
	BackendBolt     Backend = "bolt"
	BackendSQLite   Backend = "sqlite"
	BackendFile     Backend = "file"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

// Backends lists every backend accepted by Open.
var Backends = []Backend{BackendBolt, BackendSQLite, BackendFile, BackendRedis, BackendPostgres, BackendMemory}

// Options selects and configures a backend.
type Options struct {
	Backend Backend

	// Dir is the data directory for on-disk backends
	Dir string

	// MaxValueBytes limits the size of a single value; 0 disables the limit
	MaxValueBytes int

	Redis    RedisOptions
	Postgres PostgresOptions
}

// Open creates the Medium described by opts.
func Open(opts Options) (Medium, error) {
	var (
		m   Medium
		err error
	)

	switch opts.Backend {
	case BackendBolt, "":
		m, err = NewBolt(filepath.Join(opts.Dir, "repovault.bolt"))
	case BackendSQLite:
		m, err = NewSQLite(filepath.Join(opts.Dir, "repovault.db"))
	case BackendFile:
		m, err = NewFile(filepath.Join(opts.Dir, "kv"))
	case BackendRedis:
		m, err = NewRedis(opts.Redis)
	case BackendPostgres:
		m, err = NewPostgres(opts.Postgres)
	case BackendMemory:
		m = NewMemory()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", opts.Backend, err)
	}

	if opts.MaxValueBytes > 0 {
		m = WithQuota(m, opts.MaxValueBytes)
	}

	return m, nil
}

// ParseBackend converts a string to a Backend.
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == s {
			return b, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}
