package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned when a settings value is out of range.
var ErrInvalidSettings = errors.New("invalid settings")

// SortField names a sortable record attribute.
type SortField string

const (
	SortByName         SortField = "name"
	SortByStars        SortField = "starCount"
	SortBySavedAt      SortField = "savedAt"
	SortByLastViewedAt SortField = "lastViewedAt"
)

// SortFields lists every valid SortField.
var SortFields = []SortField{SortByName, SortByStars, SortBySavedAt, SortByLastViewedAt}

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	for _, v := range SortFields {
		if f == v {
			return true
		}
	}

	return false
}

// ParseSortField converts a string to a SortField. The aliases "stars",
// "saved" and "viewed" are accepted for command-line use.
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "stars":
		return SortByStars, nil
	case "saved":
		return SortBySavedAt, nil
	case "viewed":
		return SortByLastViewedAt, nil
	}

	f := SortField(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: unknown sort field %q", ErrInvalidSettings, s)
	}

	return f, nil
}

// SortOrder is the sort direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	return o == Ascending || o == Descending
}

// ParseSortOrder converts a string to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidSettings, s)
	}
}

const (
	MinResultsPerPage = 1
	MaxResultsPerPage = 100
)

// Settings holds the user display preferences.
type Settings struct {
	// DefaultSortField is the field used when a query does not name one
	DefaultSortField SortField `json:"defaultSortField" yaml:"defaultSortField"`

	// DefaultSortOrder is the direction used when a query does not name one
	DefaultSortOrder SortOrder `json:"defaultSortOrder" yaml:"defaultSortOrder"`

	// ResultsPerPage is the page size for paginated listings
	ResultsPerPage int `json:"resultsPerPage" yaml:"resultsPerPage"`

	// ShowDescriptions toggles repository descriptions in listings
	ShowDescriptions bool `json:"showDescriptions" yaml:"showDescriptions"`

	// ShowLanguage toggles the language column in listings
	ShowLanguage bool `json:"showLanguage" yaml:"showLanguage"`

	// CompactView renders one line per record
	CompactView bool `json:"compactView" yaml:"compactView"`
}

// DefaultSettings returns the settings used before any override is saved.
func DefaultSettings() Settings {
	return Settings{
		DefaultSortField: SortBySavedAt,
		DefaultSortOrder: Descending,
		ResultsPerPage:   20,
		ShowDescriptions: true,
		ShowLanguage:     true,
		CompactView:      false,
	}
}

// Validate checks every key against its allowed range.
func (s Settings) Validate() error {
	if !s.DefaultSortField.Valid() {
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidSettings, s.DefaultSortField)
	}

	if !s.DefaultSortOrder.Valid() {
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidSettings, s.DefaultSortOrder)
	}

	if s.ResultsPerPage < MinResultsPerPage || s.ResultsPerPage > MaxResultsPerPage {
		return fmt.Errorf("%w: resultsPerPage must be between %d and %d, got %d",
			ErrInvalidSettings, MinResultsPerPage, MaxResultsPerPage, s.ResultsPerPage)
	}

	return nil
}

// SettingsPatch is a partial settings update. Nil fields keep their value.
type SettingsPatch struct {
	DefaultSortField *SortField `json:"defaultSortField,omitempty" yaml:"defaultSortField,omitempty"`
	DefaultSortOrder *SortOrder `json:"defaultSortOrder,omitempty" yaml:"defaultSortOrder,omitempty"`
	ResultsPerPage   *int       `json:"resultsPerPage,omitempty" yaml:"resultsPerPage,omitempty"`
	ShowDescriptions *bool      `json:"showDescriptions,omitempty" yaml:"showDescriptions,omitempty"`
	ShowLanguage     *bool      `json:"showLanguage,omitempty" yaml:"showLanguage,omitempty"`
	CompactView      *bool      `json:"compactView,omitempty" yaml:"compactView,omitempty"`
}

// Empty reports whether the patch sets no key.
func (p SettingsPatch) Empty() bool {
	return p == SettingsPatch{}
}

// Merge returns s with every non-nil field of p applied.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.DefaultSortField != nil {
		s.DefaultSortField = *p.DefaultSortField
	}

	if p.DefaultSortOrder != nil {
		s.DefaultSortOrder = *p.DefaultSortOrder
	}

	if p.ResultsPerPage != nil {
		s.ResultsPerPage = *p.ResultsPerPage
	}

	if p.ShowDescriptions != nil {
		s.ShowDescriptions = *p.ShowDescriptions
	}

	if p.ShowLanguage != nil {
		s.ShowLanguage = *p.ShowLanguage
	}

	if p.CompactView != nil {
		s.CompactView = *p.CompactView
	}

	return s
}
