package medium

import "fmt"

type quota struct {
	Medium
	max int
}

// WithQuota wraps m so that Put rejects values larger than maxBytes with
// ErrQuotaExceeded. The wrapped medium is left untouched on rejection.
func WithQuota(m Medium, maxBytes int) Medium {
	return &quota{Medium: m, max: maxBytes}
}

func (q *quota) Put(key string, value []byte) error {
	if len(value) > q.max {
		return fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrQuotaExceeded, key, len(value), q.max)
	}

	return q.Medium.Put(key, value)
}
