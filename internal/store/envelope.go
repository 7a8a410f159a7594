package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/inovacc/repovault/internal/encoding"
	"github.com/inovacc/repovault/internal/model"
)

// recordsSchemaVersion is the version written by this build.
const recordsSchemaVersion = 1

// recordsEnvelope is the persisted shape of the records namespace.
type recordsEnvelope struct {
	Version int                     `json:"version"`
	Records []model.SavedRepository `json:"records"`
}

var errCorrupt = errors.New("corrupt records blob")

// migrations upgrade records from version n to n+1, keyed by n.
var migrations = map[int]func([]model.SavedRepository) []model.SavedRepository{
	// version 0 was a bare JSON array with unchecked tags
	0: func(recs []model.SavedRepository) []model.SavedRepository {
		for i := range recs {
			recs[i].Tags = model.NormalizeTags(recs[i].Tags)
		}

		return recs
	},
}

// decodeRecords parses a records blob of any supported version and migrates
// it to recordsSchemaVersion. It returns the version found on disk.
func decodeRecords(data []byte) ([]model.SavedRepository, int, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty", errCorrupt)
	}

	var (
		recs    []model.SavedRepository
		version int
	)

	if data[0] == '[' {
		legacy, err := encoding.ParseJSON[[]model.SavedRepository](data)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", errCorrupt, err)
		}

		recs = *legacy
	} else {
		env, err := encoding.ParseJSON[recordsEnvelope](data)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", errCorrupt, err)
		}

		if env.Version < 1 {
			return nil, env.Version, fmt.Errorf("%w: missing version", errCorrupt)
		}

		if env.Version > recordsSchemaVersion {
			return nil, env.Version, fmt.Errorf("%w: %d (this build writes %d)",
				ErrUnsupportedVersion, env.Version, recordsSchemaVersion)
		}

		recs, version = env.Records, env.Version
	}

	for v := version; v < recordsSchemaVersion; v++ {
		migrate, ok := migrations[v]
		if !ok {
			return nil, version, fmt.Errorf("%w: no migration from version %d", ErrUnsupportedVersion, v)
		}

		recs = migrate(recs)
	}

	for i := range recs {
		if recs[i].Tags == nil {
			recs[i].Tags = []string{}
		}
	}

	return recs, version, nil
}

// encodeRecords serialises recs as a current-version envelope.
func encodeRecords(recs []model.SavedRepository) ([]byte, error) {
	if recs == nil {
		recs = []model.SavedRepository{}
	}

	return encoding.ToJSON(recordsEnvelope{Version: recordsSchemaVersion, Records: recs})
}
