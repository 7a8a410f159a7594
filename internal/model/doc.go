// Package model defines the data structures used throughout repovault.
//
// # SavedRepository
//
// The [SavedRepository] struct is a bookmarked upstream repository. Its
// snapshot fields are copied from an [Origin] when the record is saved and
// are not kept in sync afterwards:
//
//	type SavedRepository struct {
//	    ID                 string     // store-assigned, immutable
//	    SourceRepositoryID int64      // upstream id, unique per store
//	    Name, FullName     string     // snapshot
//	    Notes              string     // user annotation
//	    Tags               []string   // unique, non-empty labels
//	    SavedAt            time.Time  // fixed at first save
//	    LastViewedAt       *time.Time // nil until opened
//	}
//
// # Settings
//
// The [Settings] struct holds display preferences. [DefaultSettings] returns
// the factory values and [Settings.Merge] applies a [SettingsPatch].
package model
