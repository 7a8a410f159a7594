package core

import (
	"bytes"
	"encoding/json"

	"github.com/inovacc/repovault/internal/encoding"
	"github.com/inovacc/repovault/internal/model"
	"github.com/inovacc/repovault/internal/store"
	"github.com/inovacc/repovault/internal/upstream"
)

// Restorer is the store surface used by Import.
type Restorer interface {
	Lister
	Restore(recs []model.SavedRepository) (store.RestoreResult, error)
}

// Import merges data into s. JSON input may be a Bundle, a bare array of
// exported records, or GitHub API repository objects (one or many). YAML
// input must be a Bundle.
//
// Repositories imported from GitHub API objects keep the notes and tags
// already stored for them.
func Import(s Restorer, data []byte, format Format) (store.RestoreResult, error) {
	var (
		recs []model.SavedRepository
		err  error
	)

	switch format {
	case FormatJSON:
		recs, err = decodeJSON(s, data)
	case FormatYAML:
		recs, err = decodeYAML(data)
	default:
		return store.RestoreResult{}, &UnsupportedFormatError{Format: string(format)}
	}

	if err != nil {
		return store.RestoreResult{}, err
	}

	return s.Restore(recs)
}

func decodeYAML(data []byte) ([]model.SavedRepository, error) {
	bundle, err := encoding.ParseYAML[Bundle](data)
	if err != nil {
		return nil, &DecodeError{Format: FormatYAML, Err: err}
	}

	if bundle.Version > BundleVersion {
		return nil, &BundleVersionError{Version: bundle.Version}
	}

	return bundle.Records, nil
}

func decodeJSON(s Lister, data []byte) ([]model.SavedRepository, error) {
	data = bytes.TrimSpace(data)

	switch shapeOf(data) {
	case shapeBundle:
		bundle, err := encoding.ParseJSON[Bundle](data)
		if err != nil {
			return nil, &DecodeError{Format: FormatJSON, Err: err}
		}

		if bundle.Version > BundleVersion {
			return nil, &BundleVersionError{Version: bundle.Version}
		}

		return bundle.Records, nil
	case shapeRecords:
		recs, err := encoding.ParseJSON[[]model.SavedRepository](data)
		if err != nil {
			return nil, &DecodeError{Format: FormatJSON, Err: err}
		}

		return *recs, nil
	default:
		origins, err := upstream.DecodeList(data)
		if err != nil {
			return nil, &DecodeError{Format: FormatJSON, Err: err}
		}

		return fromOrigins(s, origins), nil
	}
}

// fromOrigins turns upstream snapshots into records carrying any notes and
// tags already stored for the same repository.
func fromOrigins(s Lister, origins []model.Origin) []model.SavedRepository {
	existing := make(map[int64]model.SavedRepository)
	for _, r := range s.ListAll() {
		existing[r.SourceRepositoryID] = r
	}

	out := make([]model.SavedRepository, 0, len(origins))

	for _, o := range origins {
		rec := model.SavedRepository{}
		if prev, ok := existing[o.ID]; ok {
			rec = prev.Clone()
		}

		rec.ApplyOrigin(o)
		out = append(out, rec)
	}

	return out
}

type shape int

const (
	shapeUpstream shape = iota
	shapeBundle
	shapeRecords
)

// shapeOf sniffs the top-level JSON layout without decoding it fully.
func shapeOf(data []byte) shape {
	if len(data) == 0 {
		return shapeUpstream
	}

	switch data[0] {
	case '{':
		var probe map[string]json.RawMessage
		if json.Unmarshal(data, &probe) != nil {
			return shapeUpstream
		}

		if _, ok := probe["records"]; ok {
			return shapeBundle
		}
	case '[':
		var probe []map[string]json.RawMessage
		if json.Unmarshal(data, &probe) != nil || len(probe) == 0 {
			return shapeUpstream
		}

		if _, ok := probe[0]["sourceRepositoryId"]; ok {
			return shapeRecords
		}
	}

	return shapeUpstream
}
