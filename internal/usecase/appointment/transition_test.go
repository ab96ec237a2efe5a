package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/timezone"
)

func TestTransitionLifecycle(t *testing.T) {
	createUC, repo, lw := newCreateFixture(t)
	uc := NewTransitionAppointment(repo, nil)

	ap, err := createUC.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	completed, err := uc.Complete(context.Background(), lw.ID, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	// Terminal: no further transitions in any direction.
	_, err = uc.Cancel(context.Background(), lw.ID, ap.ID)
	var ce *shared.ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, shared.PreconditionViolation, ce.Kind)

	_, err = uc.MarkNoShow(context.Background(), lw.ID, ap.ID)
	require.Error(t, err)
}

func TestCancelAndNoShowSetTimestamps(t *testing.T) {
	createUC, repo, lw := newCreateFixture(t)
	uc := NewTransitionAppointment(repo, nil)

	first, err := createUC.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	second := publicBooking(lw.ID)
	second.StartTime = "14:00"
	second.EndTime = "15:00"
	secondAp, err := createUC.Execute(context.Background(), second)
	require.NoError(t, err)

	cancelled, err := uc.Cancel(context.Background(), lw.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	noShow, err := uc.MarkNoShow(context.Background(), lw.ID, secondAp.ID)
	require.NoError(t, err)
	assert.Equal(t, "no-show", noShow.Status)
	require.NotNil(t, noShow.NoShowAt)
}

func TestTransitionScopedToOwner(t *testing.T) {
	createUC, repo, lw := newCreateFixture(t)
	uc := NewTransitionAppointment(repo, nil)

	ap, err := createUC.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	var nf *shared.NotFoundError
	_, err = uc.Cancel(context.Background(), lw.ID+1, ap.ID)
	require.ErrorAs(t, err, &nf)

	_, err = uc.Complete(context.Background(), lw.ID, 999)
	require.ErrorAs(t, err, &nf)
}

func TestListAppointments(t *testing.T) {
	createUC, repo, lw := newCreateFixture(t)
	uc := NewListAppointments(repo)

	inWeek := publicBooking(lw.ID)
	_, err := createUC.Execute(context.Background(), inWeek)
	require.NoError(t, err)

	nextWeek := publicBooking(lw.ID)
	nextWeek.Date = inWeek.Date.AddDate(0, 0, 9)
	_, err = createUC.Execute(context.Background(), nextWeek)
	require.NoError(t, err)

	all, err := uc.All(context.Background(), lw.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	weekStart := time.Date(2026, 9, 14, 0, 0, 0, 0, timezone.Location())
	week, err := uc.Week(context.Background(), lw.ID, weekStart)
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.True(t, week[0].Date.Equal(inWeek.Date))

	none, err := uc.All(context.Background(), lw.ID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListByIDScopedToOwner(t *testing.T) {
	createUC, repo, lw := newCreateFixture(t)
	uc := NewListAppointments(repo)

	ap, err := createUC.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	found, err := uc.ByID(context.Background(), lw.ID, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, found.ID)

	var nf *shared.NotFoundError
	_, err = uc.ByID(context.Background(), lw.ID+1, ap.ID)
	require.ErrorAs(t, err, &nf)
}

func TestDeleteAppointment(t *testing.T) {
	createUC, repo, lw := newCreateFixture(t)
	transitionUC := NewTransitionAppointment(repo, nil)
	uc := NewDeleteAppointment(repo, nil)

	ap, err := createUC.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	// Removal works even from a terminal status.
	_, err = transitionUC.Cancel(context.Background(), lw.ID, ap.ID)
	require.NoError(t, err)

	require.NoError(t, uc.Execute(context.Background(), lw.ID, ap.ID))

	gone, err := repo.FindByID(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var nf *shared.NotFoundError
	err = uc.Execute(context.Background(), lw.ID, ap.ID)
	require.ErrorAs(t, err, &nf)
}
