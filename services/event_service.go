// Package services wires repositories, the search index and the pure
// projections into the operations the UI layer calls. Services do not catch
// domain errors; they propagate them verbatim to the caller.
package services

import (
	"context"
	"log/slog"

	"gantt-lab/domain"
	"gantt-lab/projection"
	"gantt-lab/repositories"
	"gantt-lab/search"

	"github.com/samber/lo"
)

type EventService struct {
	events repositories.IEventRepository
	index  *search.EventIndex
	log    *slog.Logger
}

func NewEventService(events repositories.IEventRepository, index *search.EventIndex, log *slog.Logger) *EventService {
	return &EventService{events: events, index: index, log: log}
}

func (s *EventService) GetAll() ([]domain.Event, error) {
	return s.events.GetAll()
}

func (s *EventService) Create(data domain.CreateEventData) (domain.Event, error) {
	event, err := s.events.Create(data)
	if err != nil {
		return domain.Event{}, err
	}
	s.indexEvent(event)
	return event, nil
}

func (s *EventService) Update(id string, data domain.UpdateEventData) (domain.Event, error) {
	event, err := s.events.Update(id, data)
	if err != nil {
		return domain.Event{}, err
	}
	s.indexEvent(event)
	return event, nil
}

func (s *EventService) Delete(id string) (bool, error) {
	deleted, err := s.events.Delete(id)
	if err != nil || !deleted {
		return deleted, err
	}
	if s.index != nil {
		if err := s.index.Remove(id); err != nil {
			s.log.Warn("removing event from index failed", "id", id, "error", err)
		}
	}
	return true, nil
}

// TimelineRange computes the visible window over the current events.
func (s *EventService) TimelineRange() (domain.TimelineRange, error) {
	events, err := s.events.GetAll()
	if err != nil {
		return domain.TimelineRange{}, err
	}
	return projection.Timeline(events), nil
}

// Filter narrows the event listing by keyword, visible groups and date
// range. Empty criteria are skipped entirely; in particular an empty
// keyword never consults the index, which would match every document.
func (s *EventService) Filter(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	events, err := s.events.GetAll()
	if err != nil {
		return nil, err
	}

	if filter.SearchKeyword != "" && s.index != nil {
		ids, err := s.index.Search(ctx, filter.SearchKeyword)
		if err != nil {
			return nil, err
		}
		matching := lo.SliceToMap(ids, func(id string) (string, struct{}) {
			return id, struct{}{}
		})
		events = lo.Filter(events, func(e domain.Event, _ int) bool {
			_, ok := matching[e.ID]
			return ok
		})
	}

	if len(filter.VisibleGroupIDs) > 0 {
		visible := lo.SliceToMap(filter.VisibleGroupIDs, func(id string) (string, struct{}) {
			return id, struct{}{}
		})
		events = lo.Filter(events, func(e domain.Event, _ int) bool {
			_, ok := visible[e.GroupID]
			return ok
		})
	}

	if filter.DateRange != nil {
		events = lo.Filter(events, func(e domain.Event, _ int) bool {
			return e.Overlaps(*filter.DateRange)
		})
	}
	return events, nil
}

// ReindexAll rebuilds the search index from the stored collection.
func (s *EventService) ReindexAll() error {
	if s.index == nil {
		return nil
	}
	events, err := s.events.GetAll()
	if err != nil {
		return err
	}
	return s.index.Reindex(events)
}

func (s *EventService) indexEvent(event domain.Event) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(event); err != nil {
		// The index is rebuildable; a failed write must not undo a
		// successful persistence.
		s.log.Warn("indexing event failed", "id", event.ID, "error", err)
	}
}
