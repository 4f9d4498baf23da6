//go:generate go run go.uber.org/mock/mockgen -source=version.go -destination=../mocks/mock_version_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gantt-lab/domain"
	domainerrors "gantt-lab/errors"
	"gantt-lab/storage"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const versionsKey = "versions"

type IVersionRepository interface {
	GetAll() ([]domain.Version, error)
	GetByID(id string) (*domain.Version, error)
	GetByNumber(number int) (*domain.Version, error)
	Create(data domain.CreateVersionData) (domain.Version, error)
	Delete(id string) (bool, error)
	GetNextVersionNumber() (int, error)
}

type VersionRepository struct {
	store storage.Service
	log   *slog.Logger
}

func NewVersionRepository(store storage.Service, log *slog.Logger) *VersionRepository {
	return &VersionRepository{store: store, log: log}
}

// GetAll returns all versions sorted by number descending, newest first.
func (r VersionRepository) GetAll() ([]domain.Version, error) {
	versions, err := r.collection()
	if err != nil {
		return nil, err
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Number > versions[j].Number
	})
	return versions, nil
}

func (r VersionRepository) GetByID(id string) (*domain.Version, error) {
	versions, err := r.collection()
	if err != nil {
		return nil, err
	}
	for i := range versions {
		if versions[i].ID == id {
			version := versions[i]
			return &version, nil
		}
	}
	return nil, nil
}

func (r VersionRepository) GetByNumber(number int) (*domain.Version, error) {
	versions, err := r.collection()
	if err != nil {
		return nil, err
	}
	for i := range versions {
		if versions[i].Number == number {
			version := versions[i]
			return &version, nil
		}
	}
	return nil, nil
}

// Create assigns the next number and stores a deep copy of the snapshot, so
// later mutation of the caller's live collections cannot alter the version.
func (r VersionRepository) Create(data domain.CreateVersionData) (domain.Version, error) {
	if err := validateStruct(data); err != nil {
		return domain.Version{}, err
	}

	versions, err := r.collection()
	if err != nil {
		return domain.Version{}, err
	}

	version := domain.Version{
		ID:        uuid.NewString(),
		Number:    nextNumber(versions),
		CreatedAt: time.Now().UTC(),
		Note:      data.Note,
		Snapshot:  data.Snapshot.Clone(),
	}
	if err := storage.SetJSON(r.store, versionsKey, append(versions, version)); err != nil {
		return domain.Version{}, err
	}
	r.log.Debug("version created", "id", version.ID, "number", version.Number,
		"events", len(version.Snapshot.Events), "groups", len(version.Snapshot.Groups))
	return version, nil
}

// Delete removes one version without renumbering the rest; number gaps are
// permitted after deletion.
func (r VersionRepository) Delete(id string) (bool, error) {
	versions, err := r.collection()
	if err != nil {
		return false, err
	}
	remaining := lo.Filter(versions, func(v domain.Version, _ int) bool {
		return v.ID != id
	})
	if len(remaining) == len(versions) {
		return false, nil
	}
	if err := storage.SetJSON(r.store, versionsKey, remaining); err != nil {
		return false, err
	}
	r.log.Debug("version deleted", "id", id)
	return true, nil
}

// GetNextVersionNumber previews the number the next Create would assign.
func (r VersionRepository) GetNextVersionNumber() (int, error) {
	versions, err := r.collection()
	if err != nil {
		return 0, err
	}
	return nextNumber(versions), nil
}

// nextNumber is 1 + the highest stored number, 1 for an empty collection.
func nextNumber(versions []domain.Version) int {
	highest := 0
	for _, v := range versions {
		if v.Number > highest {
			highest = v.Number
		}
	}
	return highest + 1
}

func (r VersionRepository) collection() ([]domain.Version, error) {
	if !r.store.IsAvailable() {
		return nil, &domainerrors.StorageUnavailableError{}
	}
	versions, ok, err := storage.GetJSON[[]domain.Version](r.store, versionsKey)
	if err != nil {
		return nil, fmt.Errorf("reading versions collection: %w", err)
	}
	if !ok {
		return []domain.Version{}, nil
	}
	return versions, nil
}
