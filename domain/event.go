// Package domain contains the core concepts of the schedule: time-boxed
// events organized into colored groups, and numbered version snapshots of
// the whole schedule. Entities are mutated only through their repositories.
package domain

import "time"

// Event is a named, time-boxed entry on the schedule. EndDate is always on
// or after StartDate, and GroupID references an existing Group.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   Date      `json:"startDate"`
	EndDate     Date      `json:"endDate"`
	GroupID     string    `json:"groupId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateEventData carries user input for a new event.
type CreateEventData struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
	GroupID     string `json:"groupId" validate:"required"`
}

// UpdateEventData is a partial patch; nil fields are left untouched.
type UpdateEventData struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	StartDate   *Date   `json:"startDate,omitempty"`
	EndDate     *Date   `json:"endDate,omitempty"`
	GroupID     *string `json:"groupId,omitempty"`
}

// DateRange is an inclusive calendar interval.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// EventFilter narrows a listing of events. Zero-valued criteria are ignored.
type EventFilter struct {
	SearchKeyword   string     `json:"searchKeyword,omitempty"`
	VisibleGroupIDs []string   `json:"visibleGroupIds,omitempty"`
	DateRange       *DateRange `json:"dateRange,omitempty"`
}

// TimelineRange is the visible date window computed from a set of events.
type TimelineRange struct {
	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`
	TotalDays int  `json:"totalDays"`
}

// Overlaps reports whether the event intersects the given range.
func (e Event) Overlaps(r DateRange) bool {
	return !e.StartDate.After(r.End) && !e.EndDate.Before(r.Start)
}
