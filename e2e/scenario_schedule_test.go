package e2e

import (
	"context"
	"testing"

	"gantt-lab/domain"
	domainerrors "gantt-lab/errors"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type testScheduleSuite struct {
	BaseSuite
}

func TestScheduleSuite(t *testing.T) {
	suite.Run(t, &testScheduleSuite{})
}

func (s *testScheduleSuite) date(value string) domain.Date {
	d, err := domain.ParseDate(value)
	s.Require().NoError(err)
	return d
}

func (s *testScheduleSuite) TestFullScheduleLifecycle() {
	ctx := context.Background()

	var core, stretch domain.Group
	var design, build, review domain.Event

	// --- STEP 1: GROUPS ---
	s.Step("Step 1: Create groups")
	s.Run("first group becomes the default", func() {
		var err error
		core, err = s.Groups.Create(domain.CreateGroupData{Name: "Core", Color: "#FF0000"})
		s.Require().NoError(err)
		s.Require().True(core.IsDefault)
		s.Require().Equal(0, core.Order)

		stretch, err = s.Groups.Create(domain.CreateGroupData{Name: "Stretch", Color: "#0000FF"})
		s.Require().NoError(err)
		s.Require().False(stretch.IsDefault)
		s.Require().Equal(1, stretch.Order)
	})

	// --- STEP 2: EVENTS ---
	s.Step("Step 2: Create events")
	s.Run("events persist and drive the timeline window", func() {
		var err error
		design, err = s.Events.Create(domain.CreateEventData{
			Name: "Design review", StartDate: s.date("2024-02-01"), EndDate: s.date("2024-02-05"), GroupID: core.ID,
		})
		s.Require().NoError(err)
		build, err = s.Events.Create(domain.CreateEventData{
			Name: "Build phase", StartDate: s.date("2024-02-06"), EndDate: s.date("2024-02-20"), GroupID: core.ID,
		})
		s.Require().NoError(err)
		review, err = s.Events.Create(domain.CreateEventData{
			Name: "Stretch review", StartDate: s.date("2024-02-21"), EndDate: s.date("2024-02-25"), GroupID: stretch.ID,
		})
		s.Require().NoError(err)

		window, err := s.Events.TimelineRange()
		s.Require().NoError(err)
		s.Require().Equal(s.date("2024-01-25"), window.StartDate)
		s.Require().Equal(s.date("2024-03-03"), window.EndDate)
	})

	// --- STEP 3: INTEGRITY ---
	s.Step("Step 3: Referential integrity")
	s.Run("groups in use and the default group cannot be deleted", func() {
		_, err := s.Groups.Delete(core.ID)
		var violation *domainerrors.BusinessRuleViolationError
		s.Require().ErrorAs(err, &violation)

		_, err = s.Events.Create(domain.CreateEventData{
			Name: "Orphan", StartDate: s.date("2024-02-01"), EndDate: s.date("2024-02-02"), GroupID: "ghost",
		})
		s.Require().ErrorAs(err, &violation)
	})

	// --- STEP 4: SEARCH ---
	s.Step("Step 4: Keyword filter")
	s.Run("full-text filter narrows the listing", func() {
		events, err := s.Events.Filter(ctx, domain.EventFilter{SearchKeyword: "review"})
		s.Require().NoError(err)
		ids := lo.Map(events, func(e domain.Event, _ int) string { return e.ID })
		s.Require().ElementsMatch([]string{design.ID, review.ID}, ids)
	})

	// --- STEP 5: VERSIONS ---
	s.Step("Step 5: Save, mutate, compare")
	v1, err := s.Versions.Save("baseline", nil)
	s.Require().NoError(err)
	s.Require().Equal(1, v1.Number)

	_, err = s.Events.Update(build.ID, domain.UpdateEventData{EndDate: lo.ToPtr(s.date("2024-02-28"))})
	s.Require().NoError(err)
	_, err = s.Events.Delete(review.ID)
	s.Require().NoError(err)
	added, err := s.Events.Create(domain.CreateEventData{
		Name: "Launch", StartDate: s.date("2024-03-01"), EndDate: s.date("2024-03-02"), GroupID: core.ID,
	})
	s.Require().NoError(err)

	v2, err := s.Versions.Save("rework", nil)
	s.Require().NoError(err)
	s.Require().Equal(2, v2.Number)

	s.Run("the diff reports each category once", func() {
		diff, err := s.Versions.Compare(v1.ID, v2.ID)
		s.Require().NoError(err)

		s.Require().Len(diff.AddedEvents, 1)
		s.Require().Equal(added.ID, diff.AddedEvents[0].ID)
		s.Require().Len(diff.DeletedEvents, 1)
		s.Require().Equal(review.ID, diff.DeletedEvents[0].ID)
		s.Require().Len(diff.ModifiedEvents, 1)
		s.Require().Equal(build.ID, diff.ModifiedEvents[0].EventID)
		s.Require().NotNil(diff.ModifiedEvents[0].Changes.EndDate)
		s.Require().Empty(diff.ReorderedEvents)
		s.Require().Empty(diff.GroupChanges)
	})

	// --- STEP 6: VERSION LIFECYCLE ---
	s.Step("Step 6: Version numbering survives deletion")
	s.Run("deleting a version leaves a gap", func() {
		deleted, err := s.Versions.Delete(v1.ID)
		s.Require().NoError(err)
		s.Require().True(deleted)

		next, err := s.Versions.NextNumber()
		s.Require().NoError(err)
		s.Require().Equal(3, next)
	})

	// --- STEP 7: STORAGE HEALTH ---
	s.Step("Step 7: Storage availability and usage")
	s.Run("the store reports availability and usage", func() {
		s.Require().True(s.Store.IsAvailable())
		usage, err := s.Store.Usage()
		s.Require().NoError(err)
		s.Require().GreaterOrEqual(usage.Percentage, 0.0)
		s.Require().LessOrEqual(usage.Percentage, 100.0)
	})
}
