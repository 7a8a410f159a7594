package core

import (
	"fmt"
	"io"
	"time"

	"github.com/inovacc/repovault/internal/encoding"
	"github.com/inovacc/repovault/internal/model"
)

// BundleVersion is the export document version written by Export.
const BundleVersion = 1

// Bundle is the portable export document.
type Bundle struct {
	Version    int                     `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exportedAt" yaml:"exportedAt"`
	Records    []model.SavedRepository `json:"records" yaml:"records"`
}

// Lister is the read side of the store used by Export.
type Lister interface {
	ListAll() []model.SavedRepository
}

// Export writes every saved repository to w as a Bundle.
func Export(w io.Writer, s Lister, format Format, now time.Time) (int, error) {
	recs := s.ListAll()

	bundle := Bundle{
		Version:    BundleVersion,
		ExportedAt: now.UTC(),
		Records:    recs,
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case FormatJSON:
		data, err = encoding.ToJSONIndent(bundle)
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = encoding.ToYAML(bundle)
	default:
		return 0, &UnsupportedFormatError{Format: string(format)}
	}

	if err != nil {
		return 0, fmt.Errorf("encoding export: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return 0, fmt.Errorf("writing export: %w", err)
	}

	return len(recs), nil
}
