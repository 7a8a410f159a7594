package store

import (
	"log/slog"

	"github.com/inovacc/repovault/internal/model"
)

// RestoreResult counts the outcome of Restore.
type RestoreResult struct {
	Added   int
	Updated int
	Skipped int
}

// Restore merges previously exported records into the store in a single
// write. Records are matched by sourceRepositoryId: a match keeps its id and
// savedAt and takes notes, tags, snapshot fields and lastViewedAt from the
// incoming record. Unmatched records keep their incoming id unless it is
// taken. Records whose snapshot does not validate are skipped.
func (s *RepositoryStore) Restore(incoming []model.SavedRepository) (RestoreResult, error) {
	var res RestoreResult

	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.loadForWrite()
	if err != nil {
		return res, err
	}

	next := make([]model.SavedRepository, len(recs), len(recs)+len(incoming))
	copy(next, recs)

	now := s.now()

	for _, in := range incoming {
		origin, err := in.Origin().Normalize()
		if err != nil {
			s.logger.Warn("skipping imported record",
				slog.String("id", in.ID),
				slog.String("error", err.Error()))

			res.Skipped++

			continue
		}

		rec := in.Clone()
		rec.ApplyOrigin(origin)
		rec.Tags = model.NormalizeTags(rec.Tags)

		if idx := indexOfSource(next, origin.ID); idx >= 0 {
			rec.ID = next[idx].ID
			rec.SavedAt = next[idx].SavedAt

			if rec.LastViewedAt == nil {
				rec.LastViewedAt = next[idx].LastViewedAt
			}

			next[idx] = rec
			res.Updated++

			continue
		}

		if rec.ID == "" || indexOfID(next, rec.ID) >= 0 {
			id, err := s.allocateID(next)
			if err != nil {
				return RestoreResult{}, err
			}

			rec.ID = id
		}

		if rec.SavedAt.IsZero() {
			rec.SavedAt = now
		}

		next = append(next, rec)
		res.Added++
	}

	if res.Added == 0 && res.Updated == 0 {
		return res, nil
	}

	if err := s.persist(next); err != nil {
		return RestoreResult{}, err
	}

	s.logger.Debug("restored saved repositories",
		slog.Int("added", res.Added),
		slog.Int("updated", res.Updated),
		slog.Int("skipped", res.Skipped))

	return res, nil
}
