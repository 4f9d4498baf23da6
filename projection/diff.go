package projection

import (
	"gantt-lab/domain"

	"github.com/samber/lo"
)

// Diff compares two versions and returns the structural difference between
// their snapshots, always expressed older → newer regardless of argument
// order. The comparison is total: every category is computed even when the
// result is empty, and an empty diff is a meaningful "no changes" answer.
func Diff(a, b domain.Version) domain.VersionDiff {
	older, newer := a, b
	if b.Number < a.Number {
		older, newer = b, a
	}

	added, deleted, modified, reordered := diffEvents(
		older.Snapshot.Events, newer.Snapshot.Events)

	return domain.VersionDiff{
		AddedEvents:     added,
		DeletedEvents:   deleted,
		ModifiedEvents:  modified,
		ReorderedEvents: reordered,
		GroupChanges:    diffGroups(older.Snapshot.Groups, newer.Snapshot.Groups),
	}
}

func diffEvents(oldEvents, newEvents []domain.Event) (
	added, deleted []domain.Event,
	modified []domain.ModifiedEvent,
	reordered []domain.ReorderedEvent,
) {
	oldByID := lo.KeyBy(oldEvents, func(e domain.Event) string { return e.ID })
	newByID := lo.KeyBy(newEvents, func(e domain.Event) string { return e.ID })

	added = lo.Filter(newEvents, func(e domain.Event, _ int) bool {
		_, ok := oldByID[e.ID]
		return !ok
	})
	deleted = lo.Filter(oldEvents, func(e domain.Event, _ int) bool {
		_, ok := newByID[e.ID]
		return !ok
	})

	modified = []domain.ModifiedEvent{}
	for _, newEvent := range newEvents {
		oldEvent, ok := oldByID[newEvent.ID]
		if !ok {
			continue
		}
		changes := detectEventChanges(oldEvent, newEvent)
		if changes.Any() {
			modified = append(modified, domain.ModifiedEvent{
				EventID:  newEvent.ID,
				OldValue: oldEvent,
				NewValue: newEvent,
				Changes:  changes,
			})
		}
	}

	reordered = detectReordered(oldEvents, newEvents, oldByID, newByID)
	return added, deleted, modified, reordered
}

func detectEventChanges(oldEvent, newEvent domain.Event) domain.EventChanges {
	var changes domain.EventChanges
	if oldEvent.Name != newEvent.Name {
		changes.Name = &domain.FieldChange[string]{Old: oldEvent.Name, New: newEvent.Name}
	}
	if oldEvent.Description != newEvent.Description {
		changes.Description = &domain.FieldChange[string]{Old: oldEvent.Description, New: newEvent.Description}
	}
	if !oldEvent.StartDate.Equal(newEvent.StartDate.Time) {
		changes.StartDate = &domain.FieldChange[domain.Date]{Old: oldEvent.StartDate, New: newEvent.StartDate}
	}
	if !oldEvent.EndDate.Equal(newEvent.EndDate.Time) {
		changes.EndDate = &domain.FieldChange[domain.Date]{Old: oldEvent.EndDate, New: newEvent.EndDate}
	}
	if oldEvent.GroupID != newEvent.GroupID {
		changes.GroupID = &domain.FieldChange[string]{Old: oldEvent.GroupID, New: newEvent.GroupID}
	}
	return changes
}

// detectReordered compares positions only within the set of ids present in
// both snapshots. Filtering out inserted and deleted events first is what
// keeps an insertion from shifting every later event into a false positive.
func detectReordered(
	oldEvents, newEvents []domain.Event,
	oldByID, newByID map[string]domain.Event,
) []domain.ReorderedEvent {
	commonOld := lo.Filter(oldEvents, func(e domain.Event, _ int) bool {
		_, ok := newByID[e.ID]
		return ok
	})
	commonNew := lo.Filter(newEvents, func(e domain.Event, _ int) bool {
		_, ok := oldByID[e.ID]
		return ok
	})

	newIndex := make(map[string]int, len(commonNew))
	for i, e := range commonNew {
		newIndex[e.ID] = i
	}

	reordered := []domain.ReorderedEvent{}
	for oldPos, e := range commonOld {
		newPos := newIndex[e.ID]
		if newPos == oldPos {
			continue
		}
		reordered = append(reordered, domain.ReorderedEvent{
			EventID:   e.ID,
			FromIndex: oldPos,
			ToIndex:   newPos,
			Name:      newByID[e.ID].Name,
		})
	}
	return reordered
}

func diffGroups(oldGroups, newGroups []domain.Group) []domain.GroupChange {
	oldByID := lo.KeyBy(oldGroups, func(g domain.Group) string { return g.ID })
	newByID := lo.KeyBy(newGroups, func(g domain.Group) string { return g.ID })

	changes := []domain.GroupChange{}
	for _, newGroup := range newGroups {
		if _, ok := oldByID[newGroup.ID]; !ok {
			group := newGroup
			changes = append(changes, domain.GroupChange{
				Type:     domain.GroupAdded,
				GroupID:  group.ID,
				NewValue: &group,
			})
		}
	}
	for _, oldGroup := range oldGroups {
		if _, ok := newByID[oldGroup.ID]; !ok {
			group := oldGroup
			changes = append(changes, domain.GroupChange{
				Type:     domain.GroupDeleted,
				GroupID:  group.ID,
				OldValue: &group,
			})
		}
	}
	for _, newGroup := range newGroups {
		oldGroup, ok := oldByID[newGroup.ID]
		if !ok {
			continue
		}
		fieldChanges := detectGroupChanges(oldGroup, newGroup)
		if fieldChanges.Any() {
			oldCopy, newCopy := oldGroup, newGroup
			changes = append(changes, domain.GroupChange{
				Type:     domain.GroupModified,
				GroupID:  newGroup.ID,
				OldValue: &oldCopy,
				NewValue: &newCopy,
				Changes:  &fieldChanges,
			})
		}
	}
	return changes
}

func detectGroupChanges(oldGroup, newGroup domain.Group) domain.GroupFieldChanges {
	var changes domain.GroupFieldChanges
	if oldGroup.Name != newGroup.Name {
		changes.Name = &domain.FieldChange[string]{Old: oldGroup.Name, New: newGroup.Name}
	}
	if oldGroup.Color != newGroup.Color {
		changes.Color = &domain.FieldChange[string]{Old: oldGroup.Color, New: newGroup.Color}
	}
	return changes
}
