package repositories

import (
	"log/slog"
	"strings"
	"testing"

	"gantt-lab/domain"
	domainerrors "gantt-lab/errors"
	"gantt-lab/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.Service {
	t.Helper()
	dir := t.TempDir()
	db, err := badger.Open(badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewBadgerStore(db, dir, 0, slog.Default())
}

func groupAlwaysExists(string) (bool, error) { return true, nil }

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func validEventData(t *testing.T) domain.CreateEventData {
	return domain.CreateEventData{
		Name:      "Design review",
		StartDate: mustDate(t, "2024-01-10"),
		EndDate:   mustDate(t, "2024-01-12"),
		GroupID:   "g1",
	}
}

func Test_EventRepository_Create_Then_GetByID_Roundtrip(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	created, err := repo.Create(validEventData(t))
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.False(created.CreatedAt.IsZero())
	req.Equal(created.CreatedAt, created.UpdatedAt)

	fetched, err := repo.GetByID(created.ID)
	req.NoError(err)
	req.NotNil(fetched)
	req.Equal(created, *fetched)
}

func Test_EventRepository_GetByID_Unknown_Returns_Nil(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	fetched, err := repo.GetByID("nope")
	req.NoError(err)
	req.Nil(fetched)
}

func Test_EventRepository_GetAll_Preserves_Insertion_Order(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		data := validEventData(t)
		data.Name = name
		_, err := repo.Create(data)
		req.NoError(err)
	}

	events, err := repo.GetAll()
	req.NoError(err)
	req.Equal(names, lo.Map(events, func(e domain.Event, _ int) string { return e.Name }))
}

func Test_EventRepository_Create_Validation(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	tests := []struct {
		description string
		modify      func(d *domain.CreateEventData)
		field       string
	}{
		{
			"Should fail on empty name",
			func(d *domain.CreateEventData) { d.Name = "" },
			"name",
		},
		{
			"Should fail on whitespace-only name",
			func(d *domain.CreateEventData) { d.Name = "   " },
			"name",
		},
		{
			"Should fail when name exceeds 100 characters",
			func(d *domain.CreateEventData) { d.Name = strings.Repeat("x", 101) },
			"name",
		},
		{
			"Should fail when description exceeds 500 characters",
			func(d *domain.CreateEventData) { d.Description = strings.Repeat("x", 501) },
			"description",
		},
		{
			"Should fail when end date precedes start date",
			func(d *domain.CreateEventData) {
				d.StartDate = mustDate(t, "2024-01-12")
				d.EndDate = mustDate(t, "2024-01-10")
			},
			"endDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			data := validEventData(t)
			tt.modify(&data)

			_, err := repo.Create(data)
			var verr *domainerrors.ValidationError
			req.ErrorAs(err, &verr)
			req.Equal(tt.field, verr.Field)

			// Failed creates must leave nothing behind.
			events, err := repo.GetAll()
			req.NoError(err)
			req.Empty(events)
		})
	}
}

func Test_EventRepository_Create_Rejects_Missing_Group(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(),
		func(string) (bool, error) { return false, nil })

	_, err := repo.Create(validEventData(t))
	var bizErr *domainerrors.BusinessRuleViolationError
	req.ErrorAs(err, &bizErr)
	req.Equal("eventGroupMustExist", bizErr.Rule)
}

func Test_EventRepository_Update_Patches_Only_Supplied_Fields(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	created, err := repo.Create(validEventData(t))
	req.NoError(err)

	updated, err := repo.Update(created.ID, domain.UpdateEventData{
		Name: lo.ToPtr("Design review v2"),
	})
	req.NoError(err)
	req.Equal("Design review v2", updated.Name)
	req.Equal(created.Description, updated.Description)
	req.Equal(created.StartDate, updated.StartDate)
	req.Equal(created.EndDate, updated.EndDate)
	req.Equal(created.GroupID, updated.GroupID)
	req.Equal(created.CreatedAt, updated.CreatedAt)
	req.False(updated.UpdatedAt.Before(created.UpdatedAt))

	fetched, err := repo.GetByID(created.ID)
	req.NoError(err)
	req.Equal(updated, *fetched)
}

func Test_EventRepository_Update_Validates_Merged_Date_Range(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	created, err := repo.Create(validEventData(t))
	req.NoError(err)

	// Pushing the start past the stored end must fail even though the end
	// itself was not part of the patch.
	_, err = repo.Update(created.ID, domain.UpdateEventData{
		StartDate: lo.ToPtr(mustDate(t, "2024-02-01")),
	})
	var verr *domainerrors.ValidationError
	req.ErrorAs(err, &verr)
	req.Equal("dateRange", verr.Constraint)
}

func Test_EventRepository_Update_Rechecks_Group_Only_When_Changed(t *testing.T) {
	req := require.New(t)
	calls := 0
	repo := NewEventRepository(newTestStore(t), slog.Default(),
		func(string) (bool, error) { calls++; return true, nil })

	created, err := repo.Create(validEventData(t))
	req.NoError(err)
	req.Equal(1, calls)

	_, err = repo.Update(created.ID, domain.UpdateEventData{Name: lo.ToPtr("Renamed")})
	req.NoError(err)
	req.Equal(1, calls)

	_, err = repo.Update(created.ID, domain.UpdateEventData{GroupID: lo.ToPtr("g2")})
	req.NoError(err)
	req.Equal(2, calls)
}

func Test_EventRepository_Update_Unknown_Fails_With_NotFound(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	_, err := repo.Update("missing", domain.UpdateEventData{Name: lo.ToPtr("x")})
	var notFound *domainerrors.NotFoundError
	req.ErrorAs(err, &notFound)
	req.Equal("Event", notFound.EntityType)
	req.Equal("missing", notFound.EntityID)
}

func Test_EventRepository_Delete_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	created, err := repo.Create(validEventData(t))
	req.NoError(err)

	deleted, err := repo.Delete(created.ID)
	req.NoError(err)
	req.True(deleted)

	deleted, err = repo.Delete(created.ID)
	req.NoError(err)
	req.False(deleted)
}

func Test_EventRepository_GetByGroupID_Filters_By_Reference(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(newTestStore(t), slog.Default(), groupAlwaysExists)

	first := validEventData(t)
	first.GroupID = "g1"
	second := validEventData(t)
	second.Name = "Other work"
	second.GroupID = "g2"
	_, err := repo.Create(first)
	req.NoError(err)
	_, err = repo.Create(second)
	req.NoError(err)

	events, err := repo.GetByGroupID("g2")
	req.NoError(err)
	req.Len(events, 1)
	req.Equal("Other work", events[0].Name)
}
