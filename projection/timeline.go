// Package projection holds the pure read-side computations of the schedule:
// the visible timeline window and the structural diff between two version
// snapshots. Nothing in here owns state or touches storage.
package projection

import "gantt-lab/domain"

// BufferDays is the fixed padding added on each side of the visible window.
const BufferDays = 7

// Timeline computes the visible date window from a set of events. With no
// events the window is today plus/minus the buffer. TotalDays counts both
// ends inclusively.
func Timeline(events []domain.Event) domain.TimelineRange {
	if len(events) == 0 {
		today := domain.Today()
		start := today.SubDays(BufferDays)
		end := today.AddDays(BufferDays)
		return domain.TimelineRange{
			StartDate: start,
			EndDate:   end,
			TotalDays: domain.DaysBetween(start, end) + 1,
		}
	}

	earliest := events[0].StartDate
	latest := events[0].EndDate
	for _, event := range events[1:] {
		if event.StartDate.Before(earliest) {
			earliest = event.StartDate
		}
		if event.EndDate.After(latest) {
			latest = event.EndDate
		}
	}

	start := earliest.SubDays(BufferDays)
	end := latest.AddDays(BufferDays)
	return domain.TimelineRange{
		StartDate: start,
		EndDate:   end,
		TotalDays: domain.DaysBetween(start, end) + 1,
	}
}
