package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/infra/repository"
	"github.com/gtkpad369/LegalSch/internal/models"
)

func seedTemplate(t *testing.T, repo *repository.ScheduleMemoryRepository, lawyerID uint) *models.ScheduleTemplate {
	t.Helper()

	tpl, err := repo.SaveTemplate(context.Background(), &models.ScheduleTemplate{
		LawyerID: lawyerID,
		Name:     "Semana padrão",
		TimeSlots: models.TemplateSlotList{
			{Day: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
			{Day: 5, StartTime: "14:00", EndTime: "17:00", IsAvailable: true},
		},
	})
	require.NoError(t, err)
	return tpl
}

func TestGenerateWeekFromTemplate(t *testing.T) {
	repo := repository.NewScheduleMemoryRepository()
	uc := NewGenerateWeek(repo)

	tpl := seedTemplate(t, repo, 7)

	weekStart := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	week, err := uc.FromTemplate(context.Background(), 7, tpl.ID, weekStart)
	require.NoError(t, err)

	assert.NotZero(t, week.ID)
	assert.Equal(t, weekStart, week.WeekStartDate)
	require.Len(t, week.TimeSlots, 2)
	assert.Equal(t, "2026-09-14", week.TimeSlots[0].Date)
	assert.Equal(t, "2026-09-18", week.TimeSlots[1].Date)

	stored, err := repo.FindWeeklyByID(context.Background(), week.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestGenerateWeekTemplateScopedToOwner(t *testing.T) {
	repo := repository.NewScheduleMemoryRepository()
	uc := NewGenerateWeek(repo)

	tpl := seedTemplate(t, repo, 7)

	var nf *shared.NotFoundError

	_, err := uc.FromTemplate(context.Background(), 8, tpl.ID, time.Now())
	require.ErrorAs(t, err, &nf)

	_, err = uc.FromTemplate(context.Background(), 7, 999, time.Now())
	require.ErrorAs(t, err, &nf)
}

func TestRollForward(t *testing.T) {
	repo := repository.NewScheduleMemoryRepository()
	uc := NewGenerateWeek(repo)

	tpl := seedTemplate(t, repo, 7)

	weekStart := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	week, err := uc.FromTemplate(context.Background(), 7, tpl.ID, weekStart)
	require.NoError(t, err)

	next, err := uc.RollForward(context.Background(), 7, week.ID)
	require.NoError(t, err)

	assert.NotEqual(t, week.ID, next.ID)
	assert.Equal(t, weekStart.AddDate(0, 0, 7), next.WeekStartDate)
	require.Len(t, next.TimeSlots, 2)
	assert.Equal(t, "2026-09-21", next.TimeSlots[0].Date)
	assert.Equal(t, "2026-09-25", next.TimeSlots[1].Date)

	// The source week is untouched.
	prev, err := repo.FindWeeklyByID(context.Background(), week.ID)
	require.NoError(t, err)
	assert.Equal(t, weekStart, prev.WeekStartDate)
}

func TestRollForwardScopedToOwner(t *testing.T) {
	repo := repository.NewScheduleMemoryRepository()
	uc := NewGenerateWeek(repo)

	tpl := seedTemplate(t, repo, 7)
	week, err := uc.FromTemplate(context.Background(), 7, tpl.ID, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var nf *shared.NotFoundError

	_, err = uc.RollForward(context.Background(), 8, week.ID)
	require.ErrorAs(t, err, &nf)

	_, err = uc.RollForward(context.Background(), 7, 999)
	require.ErrorAs(t, err, &nf)
}
