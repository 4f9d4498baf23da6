package repositories

import (
	"log/slog"
	"testing"

	"gantt-lab/domain"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_SettingsRepository_Get_Returns_Nil_Before_First_Save(t *testing.T) {
	req := require.New(t)
	repo := NewSettingsRepository(newTestStore(t), slog.Default())

	settings, err := repo.Get()
	req.NoError(err)
	req.Nil(settings)
}

func Test_SettingsRepository_Save_Replaces_Previous_Value(t *testing.T) {
	req := require.New(t)
	repo := NewSettingsRepository(newTestStore(t), slog.Default())

	first := domain.DisplaySettings{
		VisibleStart:  mustDate(t, "2024-01-01"),
		VisibleEnd:    mustDate(t, "2024-02-01"),
		SearchKeyword: "alpha",
	}
	req.NoError(repo.Save(first))

	second := domain.DisplaySettings{
		VisibleStart: mustDate(t, "2024-03-01"),
		VisibleEnd:   mustDate(t, "2024-04-01"),
		FocusPeriod: &domain.FocusPeriod{
			Start: mustDate(t, "2024-03-10"),
			End:   mustDate(t, "2024-03-20"),
		},
	}
	req.NoError(repo.Save(second))

	got, err := repo.Get()
	req.NoError(err)
	req.Equal(lo.ToPtr(second), got)
}

func Test_SettingsRepository_Clear_Removes_Settings(t *testing.T) {
	req := require.New(t)
	repo := NewSettingsRepository(newTestStore(t), slog.Default())

	req.NoError(repo.Save(domain.DisplaySettings{SearchKeyword: "alpha"}))
	req.NoError(repo.Clear())

	got, err := repo.Get()
	req.NoError(err)
	req.Nil(got)
}
