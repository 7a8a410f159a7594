package model

import (
	"strings"
	"time"
)

// Owner is the account that owns an upstream repository.
type Owner struct {
	// Login is the account name (e.g., "golang")
	Login string `json:"login" yaml:"login"`

	// AvatarURL is the account avatar image URL
	AvatarURL string `json:"avatarUrl" yaml:"avatarUrl"`
}

// Origin is a snapshot of an upstream repository as handed to the store.
// It is produced by the upstream package and never read back from storage.
type Origin struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	FullName    string `json:"fullName" yaml:"fullName"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
	Language    string `json:"language" yaml:"language"`
	StarCount   int    `json:"starCount" yaml:"starCount"`
	ForkCount   int    `json:"forkCount" yaml:"forkCount"`
	Owner       Owner  `json:"owner" yaml:"owner"`
}

// SavedRepository is a bookmarked upstream repository with user annotations.
type SavedRepository struct {
	// ID is the store-assigned identifier, stable across edits
	ID string `json:"id" yaml:"id"`

	// SourceRepositoryID is the upstream repository's numeric id, unique per store
	SourceRepositoryID int64 `json:"sourceRepositoryId" yaml:"sourceRepositoryId"`

	// Snapshot fields copied from the origin at save time
	Name        string `json:"name" yaml:"name"`
	FullName    string `json:"fullName" yaml:"fullName"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
	Language    string `json:"language" yaml:"language"`
	StarCount   int    `json:"starCount" yaml:"starCount"`
	ForkCount   int    `json:"forkCount" yaml:"forkCount"`
	Owner       Owner  `json:"owner" yaml:"owner"`

	// Notes is free-text user annotation
	Notes string `json:"notes" yaml:"notes"`

	// Tags are short labels, unique within the record
	Tags []string `json:"tags" yaml:"tags"`

	// SavedAt is fixed at first save
	SavedAt time.Time `json:"savedAt" yaml:"savedAt"`

	// LastViewedAt is nil until the record is opened
	LastViewedAt *time.Time `json:"lastViewedAt" yaml:"lastViewedAt"`
}

// ApplyOrigin overwrites the snapshot fields with the values from o.
func (r *SavedRepository) ApplyOrigin(o Origin) {
	r.SourceRepositoryID = o.ID
	r.Name = o.Name
	r.FullName = o.FullName
	r.Description = o.Description
	r.URL = o.URL
	r.Language = o.Language
	r.StarCount = o.StarCount
	r.ForkCount = o.ForkCount
	r.Owner = o.Owner
}

// Origin returns the snapshot fields of the record as an Origin.
func (r SavedRepository) Origin() Origin {
	return Origin{
		ID:          r.SourceRepositoryID,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		URL:         r.URL,
		Language:    r.Language,
		StarCount:   r.StarCount,
		ForkCount:   r.ForkCount,
		Owner:       r.Owner,
	}
}

// HasTag reports whether the record carries tag (exact match).
func (r *SavedRepository) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the record.
func (r SavedRepository) Clone() SavedRepository {
	out := r

	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}

	if r.LastViewedAt != nil {
		t := *r.LastViewedAt
		out.LastViewedAt = &t
	}

	return out
}

// RecordPatch is a partial update of the user-editable fields.
// Nil fields are left untouched; Tags replaces the whole tag set.
type RecordPatch struct {
	Notes *string
	Tags  *[]string
}

// NormalizeTags trims tags, drops empty entries and removes duplicates
// while keeping the first occurrence order. It never returns nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}

		if _, ok := seen[t]; ok {
			continue
		}

		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
