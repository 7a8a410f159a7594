package medium

import (
	"net/url"
	"path/filepath"
	"sync"

	"github.com/inovacc/repovault/internal/encoding"
)

// File is a Medium storing each key in its own file under a directory.
// Writes are atomic (temp file + rename). Exclusion is in-process only:
// two processes writing the same directory can lose updates.
type File struct {
	mu  sync.RWMutex
	dir string
}

// NewFile creates the directory if needed and returns a file medium.
func NewFile(dir string) (*File, error) {
	if err := encoding.EnsureDir(dir); err != nil {
		return nil, err
	}

	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".dat")
}

func (f *File) Get(key string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := encoding.ReadFile(f.path(key))
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, ErrNotFound
	}

	return data, nil
}

func (f *File) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return encoding.WriteFileAtomic(f.path(key), value)
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return encoding.RemoveFile(f.path(key))
}

func (f *File) Close() error {
	return nil
}
