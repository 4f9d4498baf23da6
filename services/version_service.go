package services

import (
	"log/slog"

	"gantt-lab/domain"
	domainerrors "gantt-lab/errors"
	"gantt-lab/projection"
	"gantt-lab/repositories"
)

type VersionService struct {
	versions repositories.IVersionRepository
	events   repositories.IEventRepository
	groups   repositories.IGroupRepository
	settings repositories.ISettingsRepository
	log      *slog.Logger
}

func NewVersionService(
	versions repositories.IVersionRepository,
	events repositories.IEventRepository,
	groups repositories.IGroupRepository,
	settings repositories.ISettingsRepository,
	log *slog.Logger,
) *VersionService {
	return &VersionService{
		versions: versions, events: events, groups: groups, settings: settings, log: log,
	}
}

// Save captures the current events and groups into a new numbered version.
// Explicit settings win; a nil argument captures the stored display
// settings instead. The repository deep-copies the snapshot, so the live
// collections stay independent of the stored one.
func (s *VersionService) Save(note string, settings *domain.DisplaySettings) (domain.Version, error) {
	events, err := s.events.GetAll()
	if err != nil {
		return domain.Version{}, err
	}
	groups, err := s.groups.GetAll()
	if err != nil {
		return domain.Version{}, err
	}
	if settings == nil && s.settings != nil {
		if settings, err = s.settings.Get(); err != nil {
			return domain.Version{}, err
		}
	}
	return s.versions.Create(domain.CreateVersionData{
		Note: note,
		Snapshot: domain.VersionSnapshot{
			Events:   events,
			Groups:   groups,
			Settings: settings,
		},
	})
}

func (s *VersionService) List() ([]domain.Version, error) {
	return s.versions.GetAll()
}

func (s *VersionService) Delete(id string) (bool, error) {
	return s.versions.Delete(id)
}

// NextNumber previews the number the next Save would assign.
func (s *VersionService) NextNumber() (int, error) {
	return s.versions.GetNextVersionNumber()
}

// Compare resolves both versions and computes their structural diff. The
// argument order does not matter; the diff is always older → newer.
func (s *VersionService) Compare(id1, id2 string) (domain.VersionDiff, error) {
	v1, err := s.versions.GetByID(id1)
	if err != nil {
		return domain.VersionDiff{}, err
	}
	if v1 == nil {
		return domain.VersionDiff{}, domainerrors.NewNotFoundError("Version", id1)
	}
	v2, err := s.versions.GetByID(id2)
	if err != nil {
		return domain.VersionDiff{}, err
	}
	if v2 == nil {
		return domain.VersionDiff{}, domainerrors.NewNotFoundError("Version", id2)
	}
	return projection.Diff(*v1, *v2), nil
}
