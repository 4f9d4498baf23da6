//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../mocks/mock_event_repository.go -package=mocks

// Package repositories owns the mutation path of every entity collection.
// Each repository reads its whole collection from the storage capability,
// mutates it in memory and writes it back as one JSON value. Cross-entity
// checks are injected as predicate functions so the Event and Group
// repositories never reference each other directly.
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"gantt-lab/domain"
	domainerrors "gantt-lab/errors"
	"gantt-lab/storage"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const eventsKey = "events"

// GroupExistsFunc answers whether a group id resolves to a stored group.
type GroupExistsFunc func(groupID string) (bool, error)

type IEventRepository interface {
	GetAll() ([]domain.Event, error)
	GetByID(id string) (*domain.Event, error)
	GetByGroupID(groupID string) ([]domain.Event, error)
	Create(data domain.CreateEventData) (domain.Event, error)
	Update(id string, data domain.UpdateEventData) (domain.Event, error)
	Delete(id string) (bool, error)
}

type EventRepository struct {
	store       storage.Service
	log         *slog.Logger
	groupExists GroupExistsFunc
}

func NewEventRepository(store storage.Service, log *slog.Logger, groupExists GroupExistsFunc) *EventRepository {
	return &EventRepository{store: store, log: log, groupExists: groupExists}
}

// GetAll returns every event in insertion order.
func (r EventRepository) GetAll() ([]domain.Event, error) {
	return r.collection()
}

// GetByID returns nil without error when the id is unknown.
func (r EventRepository) GetByID(id string) (*domain.Event, error) {
	events, err := r.collection()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			event := events[i]
			return &event, nil
		}
	}
	return nil, nil
}

// GetByGroupID backs the "group in use" check of the Group repository.
func (r EventRepository) GetByGroupID(groupID string) ([]domain.Event, error) {
	events, err := r.collection()
	if err != nil {
		return nil, err
	}
	return lo.Filter(events, func(e domain.Event, _ int) bool {
		return e.GroupID == groupID
	}), nil
}

// Create validates the input and the referenced group before any write.
func (r EventRepository) Create(data domain.CreateEventData) (domain.Event, error) {
	if err := validateStruct(data); err != nil {
		return domain.Event{}, err
	}
	if err := validateNonEmpty(data.Name, "name"); err != nil {
		return domain.Event{}, err
	}
	if err := validateDateRange(data.StartDate, data.EndDate); err != nil {
		return domain.Event{}, err
	}
	if err := r.checkGroupExists(data.GroupID); err != nil {
		return domain.Event{}, err
	}

	events, err := r.collection()
	if err != nil {
		return domain.Event{}, err
	}

	now := time.Now().UTC()
	event := domain.Event{
		ID:          uuid.NewString(),
		Name:        data.Name,
		Description: data.Description,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		GroupID:     data.GroupID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := storage.SetJSON(r.store, eventsKey, append(events, event)); err != nil {
		return domain.Event{}, err
	}
	r.log.Debug("event created", "id", event.ID, "name", event.Name)
	return event, nil
}

// Update re-validates only the supplied fields, merges them into the stored
// record and restamps updatedAt.
func (r EventRepository) Update(id string, data domain.UpdateEventData) (domain.Event, error) {
	if err := validateStruct(data); err != nil {
		return domain.Event{}, err
	}

	events, err := r.collection()
	if err != nil {
		return domain.Event{}, err
	}
	index := -1
	for i := range events {
		if events[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.Event{}, domainerrors.NewNotFoundError("Event", id)
	}

	event := events[index]
	if data.Name != nil {
		if err := validateNonEmpty(*data.Name, "name"); err != nil {
			return domain.Event{}, err
		}
		event.Name = *data.Name
	}
	if data.Description != nil {
		event.Description = *data.Description
	}
	if data.StartDate != nil {
		event.StartDate = *data.StartDate
	}
	if data.EndDate != nil {
		event.EndDate = *data.EndDate
	}
	if data.StartDate != nil || data.EndDate != nil {
		if err := validateDateRange(event.StartDate, event.EndDate); err != nil {
			return domain.Event{}, err
		}
	}
	if data.GroupID != nil {
		if err := r.checkGroupExists(*data.GroupID); err != nil {
			return domain.Event{}, err
		}
		event.GroupID = *data.GroupID
	}
	event.UpdatedAt = time.Now().UTC()

	events[index] = event
	if err := storage.SetJSON(r.store, eventsKey, events); err != nil {
		return domain.Event{}, err
	}
	r.log.Debug("event updated", "id", event.ID)
	return event, nil
}

// Delete reports whether a record existed; repeating it is harmless.
func (r EventRepository) Delete(id string) (bool, error) {
	events, err := r.collection()
	if err != nil {
		return false, err
	}
	remaining := lo.Filter(events, func(e domain.Event, _ int) bool {
		return e.ID != id
	})
	if len(remaining) == len(events) {
		return false, nil
	}
	if err := storage.SetJSON(r.store, eventsKey, remaining); err != nil {
		return false, err
	}
	r.log.Debug("event deleted", "id", id)
	return true, nil
}

func (r EventRepository) collection() ([]domain.Event, error) {
	if !r.store.IsAvailable() {
		return nil, &domainerrors.StorageUnavailableError{}
	}
	events, ok, err := storage.GetJSON[[]domain.Event](r.store, eventsKey)
	if err != nil {
		return nil, fmt.Errorf("reading events collection: %w", err)
	}
	if !ok {
		return []domain.Event{}, nil
	}
	return events, nil
}

func (r EventRepository) checkGroupExists(groupID string) error {
	exists, err := r.groupExists(groupID)
	if err != nil {
		return fmt.Errorf("checking group %s: %w", groupID, err)
	}
	if !exists {
		return domainerrors.NewBusinessRuleViolationError(
			fmt.Sprintf("group %s does not exist", groupID),
			"eventGroupMustExist")
	}
	return nil
}
