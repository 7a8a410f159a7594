package core

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/inovacc/repovault/internal/medium"
	"github.com/inovacc/repovault/internal/model"
	"github.com/inovacc/repovault/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportTime = time.Date(2025, 5, 4, 3, 2, 1, 0, time.UTC)

func setupTestStore(t *testing.T) *store.RepositoryStore {
	t.Helper()

	s := store.New(medium.NewMemory(), store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func origin(id int64, name string) model.Origin {
	return model.Origin{
		ID:        id,
		Name:      name,
		FullName:  "user/" + name,
		URL:       "https://github.com/user/" + name,
		StarCount: int(id),
		Owner:     model.Owner{Login: "user"},
	}
}

func seed(t *testing.T, s *store.RepositoryStore) {
	t.Helper()

	_, err := s.Save(origin(1, "alpha"), "first", []string{"go"})
	require.NoError(t, err)

	_, err = s.Save(origin(2, "beta"), "second", []string{"cli", "go"})
	require.NoError(t, err)
}

func TestExport_JSON(t *testing.T) {
	s := setupTestStore(t)
	seed(t, s)

	var buf bytes.Buffer

	n, err := Export(&buf, s, FormatJSON, exportTime)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var bundle Bundle
	require.NoError(t, json.Unmarshal(buf.Bytes(), &bundle))
	assert.Equal(t, BundleVersion, bundle.Version)
	assert.True(t, exportTime.Equal(bundle.ExportedAt))
	require.Len(t, bundle.Records, 2)
	assert.Equal(t, "second", bundle.Records[1].Notes)
}

func TestExport_EmptyStore(t *testing.T) {
	var buf bytes.Buffer

	n, err := Export(&buf, setupTestStore(t), FormatJSON, exportTime)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), `"records": []`)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, err := Export(io.Discard, setupTestStore(t), Format("csv"), exportTime)

	var fe *UnsupportedFormatError
	require.ErrorAs(t, err, &fe)
}

func TestExportImport_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			src := setupTestStore(t)
			seed(t, src)

			var buf bytes.Buffer

			_, err := Export(&buf, src, format, exportTime)
			require.NoError(t, err)

			dst := setupTestStore(t)

			res, err := Import(dst, buf.Bytes(), format)
			require.NoError(t, err)
			assert.Equal(t, store.RestoreResult{Added: 2}, res)

			want := src.ListAll()
			got := dst.ListAll()
			require.Len(t, got, len(want))

			for i := range want {
				assert.Equal(t, want[i].ID, got[i].ID)
				assert.Equal(t, want[i].Notes, got[i].Notes)
				assert.Equal(t, want[i].Tags, got[i].Tags)
				assert.True(t, want[i].SavedAt.Equal(got[i].SavedAt))
				require.NotNil(t, got[i].LastViewedAt)
				assert.True(t, want[i].LastViewedAt.Equal(*got[i].LastViewedAt))
			}
		})
	}
}
