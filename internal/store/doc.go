// Package store implements the saved-repository store.
//
// A [RepositoryStore] owns three namespaces in a single [medium.Medium]:
// the saved repository records, the settings object and the auth token.
// Each namespace is read and written independently and always as a whole
// value, so a write never exposes a partial collection.
//
// # Failure semantics
//
// Reads never fail. Missing, unreadable or corrupt data degrades to an empty
// collection, the default settings or an absent token. Writes always report
// failure: medium errors come back as a [*PersistError] and leave the
// previously persisted value in place.
//
// # Schema versions
//
// Records are persisted as {"version":N,"records":[...]}. Older blobs,
// including the unversioned bare array, are migrated when loaded and
// rewritten on the next write. A blob from a newer schema reads as empty and
// makes every record write fail with [ErrUnsupportedVersion].
//
// # Usage
//
//	m, err := medium.Open(medium.Options{Backend: medium.BackendBolt, Dir: dir})
//	if err != nil {
//	    return err
//	}
//	s := store.New(m, store.WithLogger(logger))
//	defer s.Close()
//
//	rec, err := s.Save(origin, "", []string{"go"})
package store
