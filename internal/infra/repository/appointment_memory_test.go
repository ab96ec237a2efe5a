package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

func scheduledAt(lawyerID uint, date time.Time, start, end string) *models.Appointment {
	return &models.Appointment{
		LawyerID:  lawyerID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    "scheduled",
	}
}

func TestExistsAtSameTime(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	saved, err := repo.Save(ctx, scheduledAt(1, day, "09:00", "10:00"))
	require.NoError(t, err)

	// Overlap on the same day conflicts.
	conflict, err := repo.ExistsAtSameTime(ctx, 1, day, "09:30", "10:30", 0)
	require.NoError(t, err)
	assert.True(t, conflict)

	// Back-to-back does not.
	conflict, err = repo.ExistsAtSameTime(ctx, 1, day, "10:00", "11:00", 0)
	require.NoError(t, err)
	assert.False(t, conflict)

	// Another lawyer's calendar is independent.
	conflict, err = repo.ExistsAtSameTime(ctx, 2, day, "09:30", "10:30", 0)
	require.NoError(t, err)
	assert.False(t, conflict)

	// Same time on another day is free.
	conflict, err = repo.ExistsAtSameTime(ctx, 1, day.AddDate(0, 0, 1), "09:30", "10:30", 0)
	require.NoError(t, err)
	assert.False(t, conflict)

	// Excluding the matching appointment suppresses the conflict.
	conflict, err = repo.ExistsAtSameTime(ctx, 1, day, "09:30", "10:30", saved.ID)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestExistsAtSameTimeIgnoresTerminalStatuses(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	for _, status := range []string{"cancelled", "completed", "no-show"} {
		ap := scheduledAt(1, day, "09:00", "10:00")
		ap.Status = status
		_, err := repo.Save(ctx, ap)
		require.NoError(t, err)
	}

	conflict, err := repo.ExistsAtSameTime(ctx, 1, day, "09:00", "10:00", 0)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestSaveRejectsDoubleBookingInsert(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	_, err := repo.Save(ctx, scheduledAt(1, day, "09:00", "10:00"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, scheduledAt(1, day, "09:30", "10:30"))
	require.Error(t, err)

	var ce *shared.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Report, "timeSlot")
}

func TestFindByLawyerIDAndWeekBoundaries(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()
	weekStart := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// Last day inside the week.
	_, err := repo.Save(ctx, scheduledAt(1, weekStart.AddDate(0, 0, 6), "09:00", "10:00"))
	require.NoError(t, err)
	// First day of the next week: excluded.
	_, err = repo.Save(ctx, scheduledAt(1, weekStart.AddDate(0, 0, 7), "09:00", "10:00"))
	require.NoError(t, err)
	// Day before the week: excluded.
	_, err = repo.Save(ctx, scheduledAt(1, weekStart.AddDate(0, 0, -1), "09:00", "10:00"))
	require.NoError(t, err)
	// Week start itself.
	_, err = repo.Save(ctx, scheduledAt(1, weekStart, "11:00", "12:00"))
	require.NoError(t, err)

	week, err := repo.FindByLawyerIDAndWeek(ctx, 1, weekStart)
	require.NoError(t, err)
	require.Len(t, week, 2)

	// Ordered by date, then start time.
	assert.True(t, week[0].Date.Equal(weekStart))
	assert.True(t, week[1].Date.Equal(weekStart.AddDate(0, 0, 6)))
}

func TestUpdateAppliesOnlyNonNilFields(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	ap := scheduledAt(1, day, "09:00", "10:00")
	ap.Title = "Reunião"
	saved, err := repo.Save(ctx, ap)
	require.NoError(t, err)

	newStart := "11:00"
	newEnd := "12:00"
	updated, err := repo.Update(ctx, saved.ID, domain.Patch{StartTime: &newStart, EndTime: &newEnd})
	require.NoError(t, err)

	assert.Equal(t, "11:00", updated.StartTime)
	assert.Equal(t, "12:00", updated.EndTime)
	assert.Equal(t, "Reunião", updated.Title)

	missing, err := repo.Update(ctx, 999, domain.Patch{})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
