package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion is returned by writes when the persisted records
	// were written by a newer schema than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported records schema version")

	// ErrEmptyToken is returned by SetToken for a blank token.
	ErrEmptyToken = errors.New("token is empty")
)

// PersistError wraps a failure of the medium during a write operation.
// The previously persisted state remains authoritative.
type PersistError struct {
	Namespace string
	Op        string
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Namespace, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
