package store

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/inovacc/repovault/internal/encoding"
	"github.com/inovacc/repovault/internal/medium"
	"github.com/inovacc/repovault/internal/model"
)

// GetSettings returns the persisted settings. Keys that were never saved take
// their default value; unreadable or invalid data yields the defaults.
func (s *RepositoryStore) GetSettings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getSettings()
}

func (s *RepositoryStore) getSettings() model.Settings {
	data, err := s.medium.Get(NamespaceSettings)
	if errors.Is(err, medium.ErrNotFound) {
		return model.DefaultSettings()
	}

	if err != nil {
		s.logger.Warn("reading settings", slog.String("error", err.Error()))
		return model.DefaultSettings()
	}

	settings := model.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn("discarding unreadable settings", slog.String("error", err.Error()))
		return model.DefaultSettings()
	}

	if err := settings.Validate(); err != nil {
		s.logger.Warn("discarding invalid settings", slog.String("error", err.Error()))
		return model.DefaultSettings()
	}

	return settings
}

// SaveSettings merges patch onto the current settings and persists the
// result. An invalid result is rejected and nothing is written.
func (s *RepositoryStore) SaveSettings(patch model.SettingsPatch) (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.getSettings().Merge(patch)
	if err := merged.Validate(); err != nil {
		return model.Settings{}, err
	}

	if err := s.putSettings(merged); err != nil {
		return model.Settings{}, err
	}

	return merged, nil
}

// ResetSettings persists the default settings, discarding every override.
func (s *RepositoryStore) ResetSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.putSettings(model.DefaultSettings())
}

func (s *RepositoryStore) putSettings(settings model.Settings) error {
	data, err := encoding.ToJSON(settings)
	if err != nil {
		return &PersistError{Namespace: NamespaceSettings, Op: "encode", Err: err}
	}

	if err := s.medium.Put(NamespaceSettings, data); err != nil {
		return &PersistError{Namespace: NamespaceSettings, Op: "write", Err: err}
	}

	return nil
}
