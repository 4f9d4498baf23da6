//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=../mocks/mock_settings_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"gantt-lab/domain"
	domainerrors "gantt-lab/errors"
	"gantt-lab/storage"
)

const settingsKey = "settings"

type ISettingsRepository interface {
	Get() (*domain.DisplaySettings, error)
	Save(settings domain.DisplaySettings) error
	Clear() error
}

// SettingsRepository persists the active display settings as a single value.
// Unlike the collections there is no identity; Save is a full replace.
type SettingsRepository struct {
	store storage.Service
	log   *slog.Logger
}

func NewSettingsRepository(store storage.Service, log *slog.Logger) *SettingsRepository {
	return &SettingsRepository{store: store, log: log}
}

// Get returns nil when no settings have been saved yet.
func (r SettingsRepository) Get() (*domain.DisplaySettings, error) {
	if !r.store.IsAvailable() {
		return nil, &domainerrors.StorageUnavailableError{}
	}
	settings, ok, err := storage.GetJSON[domain.DisplaySettings](r.store, settingsKey)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &settings, nil
}

func (r SettingsRepository) Save(settings domain.DisplaySettings) error {
	if !r.store.IsAvailable() {
		return &domainerrors.StorageUnavailableError{}
	}
	if err := storage.SetJSON(r.store, settingsKey, settings); err != nil {
		return err
	}
	r.log.Debug("settings saved",
		"visibleStart", settings.VisibleStart, "visibleEnd", settings.VisibleEnd)
	return nil
}

func (r SettingsRepository) Clear() error {
	return r.store.Remove(settingsKey)
}
