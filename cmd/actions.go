package main

import (
	"context"
	"fmt"

	"gantt-lab/domain"
	"gantt-lab/services"
)

func listEvents(events *services.EventService, keyword string) error {
	listing, err := events.Filter(context.Background(), domain.EventFilter{SearchKeyword: keyword})
	if err != nil {
		return err
	}
	window := domain.TimelineRange{}
	if window, err = events.TimelineRange(); err != nil {
		return err
	}
	fmt.Printf("Timeline %s → %s (%d days), %d event(s)\n",
		window.StartDate.Format("2006-01-02"), window.EndDate.Format("2006-01-02"),
		window.TotalDays, len(listing))
	for _, e := range listing {
		fmt.Printf("  %s  %s → %s  %s\n",
			e.ID, e.StartDate.Format("2006-01-02"), e.EndDate.Format("2006-01-02"), e.Name)
	}
	return nil
}

func compareVersions(versions *services.VersionService, from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("compare requires -from and -to version ids")
	}
	diff, err := versions.Compare(from, to)
	if err != nil {
		return err
	}
	if diff.Empty() {
		fmt.Println("No differences")
		return nil
	}
	for _, e := range diff.AddedEvents {
		fmt.Printf("+ event %s (%s)\n", e.Name, e.ID)
	}
	for _, e := range diff.DeletedEvents {
		fmt.Printf("- event %s (%s)\n", e.Name, e.ID)
	}
	for _, m := range diff.ModifiedEvents {
		fmt.Printf("~ event %s (%s)\n", m.NewValue.Name, m.EventID)
	}
	for _, r := range diff.ReorderedEvents {
		fmt.Printf("⇅ event %s moved %d → %d\n", r.Name, r.FromIndex, r.ToIndex)
	}
	for _, g := range diff.GroupChanges {
		fmt.Printf("%s group %s\n", g.Type, g.GroupID)
	}
	return nil
}
