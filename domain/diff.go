package domain

// VersionDiff is the structured difference between two snapshots, always
// expressed older → newer. It is derived on demand and never persisted.
type VersionDiff struct {
	AddedEvents     []Event          `json:"addedEvents"`
	DeletedEvents   []Event          `json:"deletedEvents"`
	ModifiedEvents  []ModifiedEvent  `json:"modifiedEvents"`
	ReorderedEvents []ReorderedEvent `json:"reorderedEvents"`
	GroupChanges    []GroupChange    `json:"groupChanges"`
}

// Empty reports whether the diff carries no change in any category.
func (d VersionDiff) Empty() bool {
	return len(d.AddedEvents) == 0 &&
		len(d.DeletedEvents) == 0 &&
		len(d.ModifiedEvents) == 0 &&
		len(d.ReorderedEvents) == 0 &&
		len(d.GroupChanges) == 0
}

// FieldChange carries the old and new value of a single field.
type FieldChange[T any] struct {
	Old T `json:"old"`
	New T `json:"new"`
}

// EventChanges is a sparse map of the event fields that differ; fields that
// did not change stay nil and are omitted from JSON.
type EventChanges struct {
	Name        *FieldChange[string] `json:"name,omitempty"`
	Description *FieldChange[string] `json:"description,omitempty"`
	StartDate   *FieldChange[Date]   `json:"startDate,omitempty"`
	EndDate     *FieldChange[Date]   `json:"endDate,omitempty"`
	GroupID     *FieldChange[string] `json:"groupId,omitempty"`
}

// Any reports whether at least one field changed.
func (c EventChanges) Any() bool {
	return c.Name != nil || c.Description != nil || c.StartDate != nil ||
		c.EndDate != nil || c.GroupID != nil
}

// ModifiedEvent is an event present in both snapshots with differing fields.
type ModifiedEvent struct {
	EventID  string       `json:"eventId"`
	OldValue Event        `json:"oldValue"`
	NewValue Event        `json:"newValue"`
	Changes  EventChanges `json:"changes"`
}

// ReorderedEvent is an event whose position moved among the events present
// in both snapshots. Indexes are 0-based positions within the common subset,
// so insertions and deletions on either side never shift them.
type ReorderedEvent struct {
	EventID   string `json:"eventId"`
	FromIndex int    `json:"fromIndex"`
	ToIndex   int    `json:"toIndex"`
	Name      string `json:"name"`
}

type GroupChangeType string

const (
	GroupAdded    GroupChangeType = "added"
	GroupDeleted  GroupChangeType = "deleted"
	GroupModified GroupChangeType = "modified"
)

// GroupFieldChanges is the sparse change set for a modified group.
type GroupFieldChanges struct {
	Name  *FieldChange[string] `json:"name,omitempty"`
	Color *FieldChange[string] `json:"color,omitempty"`
}

func (c GroupFieldChanges) Any() bool {
	return c.Name != nil || c.Color != nil
}

// GroupChange is one added, deleted or modified group between snapshots.
type GroupChange struct {
	Type     GroupChangeType    `json:"type"`
	GroupID  string             `json:"groupId"`
	OldValue *Group             `json:"oldValue,omitempty"`
	NewValue *Group             `json:"newValue,omitempty"`
	Changes  *GroupFieldChanges `json:"changes,omitempty"`
}
