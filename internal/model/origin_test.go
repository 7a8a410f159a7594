package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigin_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Origin
		want      Origin
		wantField string
	}{
		{
			name: "full name from owner",
			in:   Origin{ID: 1, Name: "repo", Owner: Owner{Login: "user"}},
			want: Origin{ID: 1, Name: "repo", FullName: "user/repo", Owner: Owner{Login: "user"}},
		},
		{
			name: "owner from full name",
			in:   Origin{ID: 2, Name: "repo", FullName: "org/repo"},
			want: Origin{ID: 2, Name: "repo", FullName: "org/repo", Owner: Owner{Login: "org"}},
		},
		{
			name: "name only",
			in:   Origin{ID: 3, Name: " solo "},
			want: Origin{ID: 3, Name: "solo", FullName: "solo"},
		},
		{name: "missing id", in: Origin{Name: "repo"}, wantField: "id"},
		{name: "missing name", in: Origin{ID: 4, Name: "  "}, wantField: "name"},
		{name: "negative stars", in: Origin{ID: 5, Name: "r", StarCount: -1}, wantField: "starCount"},
		{name: "negative forks", in: Origin{ID: 6, Name: "r", ForkCount: -3}, wantField: "forkCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			if tt.wantField != "" {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "error = %v, want *ValidationError", err)
				assert.Equal(t, tt.wantField, verr.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "id", Reason: "is required"}
	assert.Equal(t, "invalid repository id: is required", err.Error())
}
