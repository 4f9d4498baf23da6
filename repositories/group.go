//go:generate go run go.uber.org/mock/mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"gantt-lab/domain"
	domainerrors "gantt-lab/errors"
	"gantt-lab/storage"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const groupsKey = "groups"

// HasEventsInGroupFunc answers whether any event still references the group.
type HasEventsInGroupFunc func(groupID string) (bool, error)

type IGroupRepository interface {
	GetAll() ([]domain.Group, error)
	GetByID(id string) (*domain.Group, error)
	Create(data domain.CreateGroupData) (domain.Group, error)
	Update(id string, data domain.UpdateGroupData) (domain.Group, error)
	Delete(id string) (bool, error)
}

type GroupRepository struct {
	store     storage.Service
	log       *slog.Logger
	hasEvents HasEventsInGroupFunc
}

func NewGroupRepository(store storage.Service, log *slog.Logger, hasEvents HasEventsInGroupFunc) *GroupRepository {
	return &GroupRepository{store: store, log: log, hasEvents: hasEvents}
}

func (r GroupRepository) GetAll() ([]domain.Group, error) {
	return r.collection()
}

func (r GroupRepository) GetByID(id string) (*domain.Group, error) {
	groups, err := r.collection()
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			group := groups[i]
			return &group, nil
		}
	}
	return nil, nil
}

// Create appends a new group. The first group of an empty collection becomes
// the default fallback bucket; an omitted order slots the group after the
// current maximum.
func (r GroupRepository) Create(data domain.CreateGroupData) (domain.Group, error) {
	if err := validateStruct(data); err != nil {
		return domain.Group{}, err
	}
	if err := validateNonEmpty(data.Name, "name"); err != nil {
		return domain.Group{}, err
	}

	groups, err := r.collection()
	if err != nil {
		return domain.Group{}, err
	}

	order := 0
	if data.Order != nil {
		order = *data.Order
	} else if len(groups) > 0 {
		order = lo.MaxBy(groups, func(a, b domain.Group) bool {
			return a.Order > b.Order
		}).Order + 1
	}

	group := domain.Group{
		ID:        uuid.NewString(),
		Name:      data.Name,
		Color:     data.Color,
		Visible:   true,
		Order:     order,
		IsDefault: len(groups) == 0,
	}
	if err := storage.SetJSON(r.store, groupsKey, append(groups, group)); err != nil {
		return domain.Group{}, err
	}
	r.log.Debug("group created", "id", group.ID, "name", group.Name, "default", group.IsDefault)
	return group, nil
}

func (r GroupRepository) Update(id string, data domain.UpdateGroupData) (domain.Group, error) {
	if err := validateStruct(data); err != nil {
		return domain.Group{}, err
	}

	groups, err := r.collection()
	if err != nil {
		return domain.Group{}, err
	}
	index := -1
	for i := range groups {
		if groups[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.Group{}, domainerrors.NewNotFoundError("Group", id)
	}

	group := groups[index]
	if data.Name != nil {
		if err := validateNonEmpty(*data.Name, "name"); err != nil {
			return domain.Group{}, err
		}
		group.Name = *data.Name
	}
	if data.Color != nil {
		group.Color = *data.Color
	}
	if data.Visible != nil {
		group.Visible = *data.Visible
	}
	if data.Order != nil {
		group.Order = *data.Order
	}

	groups[index] = group
	if err := storage.SetJSON(r.store, groupsKey, groups); err != nil {
		return domain.Group{}, err
	}
	r.log.Debug("group updated", "id", group.ID)
	return group, nil
}

// Delete refuses the default group and any group still referenced by events.
func (r GroupRepository) Delete(id string) (bool, error) {
	groups, err := r.collection()
	if err != nil {
		return false, err
	}
	index := -1
	for i := range groups {
		if groups[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}
	if groups[index].IsDefault {
		return false, domainerrors.NewBusinessRuleViolationError(
			"the default group cannot be deleted", "defaultGroupNotDeletable")
	}
	inUse, err := r.hasEvents(id)
	if err != nil {
		return false, fmt.Errorf("checking events in group %s: %w", id, err)
	}
	if inUse {
		return false, domainerrors.NewBusinessRuleViolationError(
			fmt.Sprintf("group %s still has events", id), "groupInUse")
	}

	remaining := append(groups[:index:index], groups[index+1:]...)
	if err := storage.SetJSON(r.store, groupsKey, remaining); err != nil {
		return false, err
	}
	r.log.Debug("group deleted", "id", id)
	return true, nil
}

func (r GroupRepository) collection() ([]domain.Group, error) {
	if !r.store.IsAvailable() {
		return nil, &domainerrors.StorageUnavailableError{}
	}
	groups, ok, err := storage.GetJSON[[]domain.Group](r.store, groupsKey)
	if err != nil {
		return nil, fmt.Errorf("reading groups collection: %w", err)
	}
	if !ok {
		return []domain.Group{}, nil
	}
	return groups, nil
}
