package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/inovacc/repovault/internal/medium"
	"github.com/inovacc/repovault/internal/model"
)

const maxIDAttempts = 8

// load reads the records namespace. Missing or corrupt data yields an empty
// collection. Medium read failures and blobs from a newer schema are returned
// as errors so that writers never overwrite data they could not read.
func (s *RepositoryStore) load() ([]model.SavedRepository, error) {
	data, err := s.medium.Get(NamespaceRecords)
	if errors.Is(err, medium.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	recs, version, err := decodeRecords(data)
	if errors.Is(err, errCorrupt) {
		s.logger.Warn("discarding unreadable saved repositories",
			slog.String("namespace", NamespaceRecords),
			slog.String("error", err.Error()))

		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if version < recordsSchemaVersion {
		s.logger.Info("migrating saved repositories",
			slog.Int("from", version),
			slog.Int("to", recordsSchemaVersion),
			slog.Int("records", len(recs)))
	}

	return recs, nil
}

// loadForWrite is load with errors wrapped for a mutating operation.
func (s *RepositoryStore) loadForWrite() ([]model.SavedRepository, error) {
	recs, err := s.load()
	if err == nil {
		return recs, nil
	}

	if errors.Is(err, ErrUnsupportedVersion) {
		return nil, err
	}

	return nil, &PersistError{Namespace: NamespaceRecords, Op: "read", Err: err}
}

func (s *RepositoryStore) persist(recs []model.SavedRepository) error {
	data, err := encodeRecords(recs)
	if err != nil {
		return &PersistError{Namespace: NamespaceRecords, Op: "encode", Err: err}
	}

	if err := s.medium.Put(NamespaceRecords, data); err != nil {
		return &PersistError{Namespace: NamespaceRecords, Op: "write", Err: err}
	}

	return nil
}

// ListAll returns every saved repository in storage order. It never fails:
// unreadable storage yields an empty slice.
func (s *RepositoryStore) ListAll() []model.SavedRepository {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listAll()
}

func (s *RepositoryStore) listAll() []model.SavedRepository {
	recs, err := s.load()
	if err != nil {
		s.logger.Warn("reading saved repositories",
			slog.String("namespace", NamespaceRecords),
			slog.String("error", err.Error()))

		return []model.SavedRepository{}
	}

	if recs == nil {
		return []model.SavedRepository{}
	}

	return recs
}

// Get returns the record with the given id.
func (s *RepositoryStore) Get(id string) (model.SavedRepository, bool) {
	for _, r := range s.ListAll() {
		if r.ID == id {
			return r, true
		}
	}

	return model.SavedRepository{}, false
}

// Save bookmarks origin. Saving an origin that is already stored updates the
// existing record in place: id and savedAt are kept, every snapshot field,
// notes, tags and lastViewedAt are overwritten.
func (s *RepositoryStore) Save(origin model.Origin, notes string, tags []string) (model.SavedRepository, error) {
	origin, err := origin.Normalize()
	if err != nil {
		return model.SavedRepository{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.loadForWrite()
	if err != nil {
		return model.SavedRepository{}, err
	}

	now := s.now()
	idx := indexOfSource(recs, origin.ID)

	var rec model.SavedRepository

	if idx >= 0 {
		rec = recs[idx]
	} else {
		id, err := s.allocateID(recs)
		if err != nil {
			return model.SavedRepository{}, err
		}

		rec = model.SavedRepository{ID: id, SavedAt: now}
	}

	rec.ApplyOrigin(origin)
	rec.Notes = notes
	rec.Tags = model.NormalizeTags(tags)
	rec.LastViewedAt = &now

	next := make([]model.SavedRepository, len(recs), len(recs)+1)
	copy(next, recs)

	if idx >= 0 {
		next[idx] = rec
	} else {
		next = append(next, rec)
	}

	if err := s.persist(next); err != nil {
		return model.SavedRepository{}, err
	}

	s.logger.Debug("saved repository",
		slog.String("id", rec.ID),
		slog.String("full_name", rec.FullName),
		slog.Bool("updated", idx >= 0))

	return rec.Clone(), nil
}

// Remove deletes the record with the given id. It reports false, with a nil
// error, when no such record exists.
func (s *RepositoryStore) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.loadForWrite()
	if err != nil {
		return false, err
	}

	idx := indexOfID(recs, id)
	if idx < 0 {
		return false, nil
	}

	next := make([]model.SavedRepository, 0, len(recs)-1)
	next = append(next, recs[:idx]...)
	next = append(next, recs[idx+1:]...)

	if err := s.persist(next); err != nil {
		return false, err
	}

	return true, nil
}

// Update applies patch to the record with the given id. Tags, when present,
// replace the existing set. It reports false when no such record exists.
func (s *RepositoryStore) Update(id string, patch model.RecordPatch) (bool, error) {
	return s.mutate(id, func(r *model.SavedRepository) {
		if patch.Notes != nil {
			r.Notes = *patch.Notes
		}

		if patch.Tags != nil {
			r.Tags = model.NormalizeTags(*patch.Tags)
		}
	})
}

// MarkViewed sets lastViewedAt to now on the record with the given id.
func (s *RepositoryStore) MarkViewed(id string) (bool, error) {
	return s.mutate(id, func(r *model.SavedRepository) {
		now := s.now()
		r.LastViewedAt = &now
	})
}

func (s *RepositoryStore) mutate(id string, fn func(*model.SavedRepository)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.loadForWrite()
	if err != nil {
		return false, err
	}

	idx := indexOfID(recs, id)
	if idx < 0 {
		return false, nil
	}

	next := make([]model.SavedRepository, len(recs))
	copy(next, recs)

	rec := next[idx].Clone()
	fn(&rec)

	// id and savedAt are immutable
	rec.ID = recs[idx].ID
	rec.SavedAt = recs[idx].SavedAt
	next[idx] = rec

	if err := s.persist(next); err != nil {
		return false, err
	}

	return true, nil
}

func (s *RepositoryStore) allocateID(recs []model.SavedRepository) (string, error) {
	for range maxIDAttempts {
		id := s.newID()
		if id != "" && indexOfID(recs, id) < 0 {
			return id, nil
		}
	}

	return "", fmt.Errorf("could not allocate a unique record id after %d attempts", maxIDAttempts)
}

func indexOfID(recs []model.SavedRepository, id string) int {
	for i := range recs {
		if recs[i].ID == id {
			return i
		}
	}

	return -1
}

func indexOfSource(recs []model.SavedRepository, sourceID int64) int {
	for i := range recs {
		if recs[i].SourceRepositoryID == sourceID {
			return i
		}
	}

	return -1
}
