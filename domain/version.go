package domain

import "time"

// Version is a named, numbered snapshot of the whole schedule. Versions are
// immutable after creation; the only permitted mutation is deletion.
// Numbers are assigned by the repository, strictly increasing and never
// reused, so gaps appear after deletions.
type Version struct {
	ID        string          `json:"id"`
	Number    int             `json:"number"`
	CreatedAt time.Time       `json:"createdAt"`
	Note      string          `json:"note"`
	Snapshot  VersionSnapshot `json:"snapshot"`
}

// VersionSnapshot is a deep, independent copy of all events and groups at
// one point in time, plus the display settings active when it was taken.
type VersionSnapshot struct {
	Events   []Event          `json:"events"`
	Groups   []Group          `json:"groups"`
	Settings *DisplaySettings `json:"settings,omitempty"`
}

// DisplaySettings captures the visible window and filters of the timeline.
type DisplaySettings struct {
	VisibleStart  Date         `json:"visibleStart"`
	VisibleEnd    Date         `json:"visibleEnd"`
	SearchKeyword string       `json:"searchKeyword"`
	FocusPeriod   *FocusPeriod `json:"focusPeriod"`
}

type FocusPeriod struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// CreateVersionData carries user input for a new version. The snapshot is
// deep-copied by the repository, so callers may keep mutating their live
// collections afterward.
type CreateVersionData struct {
	Note     string          `json:"note" validate:"max=500"`
	Snapshot VersionSnapshot `json:"snapshot"`
}

// Clone returns a copy sharing no mutable state with the receiver. Events
// and groups hold only value fields, so copying the slices is enough; the
// settings pointer chain is re-allocated.
func (s VersionSnapshot) Clone() VersionSnapshot {
	out := VersionSnapshot{
		Events: make([]Event, len(s.Events)),
		Groups: make([]Group, len(s.Groups)),
	}
	copy(out.Events, s.Events)
	copy(out.Groups, s.Groups)
	if s.Settings != nil {
		settings := *s.Settings
		if s.Settings.FocusPeriod != nil {
			period := *s.Settings.FocusPeriod
			settings.FocusPeriod = &period
		}
		out.Settings = &settings
	}
	return out
}
