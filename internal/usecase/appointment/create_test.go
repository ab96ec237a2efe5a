package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/infra/repository"
	"github.com/gtkpad369/LegalSch/internal/models"
	"github.com/gtkpad369/LegalSch/internal/timezone"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, timezone.Location())
}

func newCreateFixture(t *testing.T) (*CreateAppointment, *repository.AppointmentMemoryRepository, *models.Lawyer) {
	t.Helper()

	lawyerRepo := repository.NewLawyerMemoryRepository()
	lw, err := lawyerRepo.Save(context.Background(), &models.Lawyer{
		Name:           "Dra. Ana Costa",
		OabNumber:      "SP123456",
		Email:          "ana@escritorio.adv.br",
		Phone:          "+55 11 98888-7777",
		Address:        "Av. Paulista, 1000",
		Slug:           "ana-costa",
		HashedPassword: "pbkdf2_sha512$10000$00$00",
	})
	require.NoError(t, err)

	repo := repository.NewAppointmentMemoryRepository()

	uc := NewCreateAppointment(repo, lawyerRepo, nil, nil)
	uc.now = fixedNow

	return uc, repo, lw
}

func publicBooking(lawyerID uint) CreateAppointmentInput {
	return CreateAppointmentInput{
		LawyerID:          lawyerID,
		Date:              time.Date(2026, 9, 14, 0, 0, 0, 0, timezone.Location()),
		StartTime:         "09:00",
		EndTime:           "10:00",
		IsPublic:          true,
		ClientName:        "Maria Silva",
		ClientCpf:         "123.456.789-00",
		ClientEmail:       "maria@example.com",
		ClientPhone:       "+55 11 91234-5678",
		ClientAddress:     "Rua das Flores, 100",
		AppointmentReason: "Consulta trabalhista",
	}
}

func TestCreateAppointment(t *testing.T) {
	uc, _, lw := newCreateFixture(t)

	ap, err := uc.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, "scheduled", ap.Status)
	assert.Equal(t, lw.ID, ap.LawyerID)
}

func TestCreateAppointmentUnknownLawyer(t *testing.T) {
	uc, _, _ := newCreateFixture(t)

	in := publicBooking(999)
	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "lawyerId")
}

func TestCreateAppointmentRejectsOverlap(t *testing.T) {
	uc, _, lw := newCreateFixture(t)

	_, err := uc.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	// 09:30-10:30 overlaps the existing 09:00-10:00.
	in := publicBooking(lw.ID)
	in.StartTime = "09:30"
	in.EndTime = "10:30"

	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)

	var ce *shared.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Report, "timeSlot")
}

func TestCreateAppointmentAllowsBackToBack(t *testing.T) {
	uc, _, lw := newCreateFixture(t)

	_, err := uc.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	// 10:00-11:00 starts exactly when the first one ends.
	in := publicBooking(lw.ID)
	in.StartTime = "10:00"
	in.EndTime = "11:00"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointmentAllowsSlotFreedByCancellation(t *testing.T) {
	uc, repo, lw := newCreateFixture(t)

	first, err := uc.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)

	first.Status = "cancelled"
	_, err = repo.Save(context.Background(), first)
	require.NoError(t, err)

	ap, err := uc.Execute(context.Background(), publicBooking(lw.ID))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, ap.ID)
}

func TestCreateAppointmentRejectsPastStart(t *testing.T) {
	uc, _, lw := newCreateFixture(t)

	in := publicBooking(lw.ID)
	in.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, timezone.Location())

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "date")
}

func TestCreateAppointmentAllowsLaterToday(t *testing.T) {
	uc, _, lw := newCreateFixture(t)

	// Fixed now is 12:00; a 15:00 slot the same day is still bookable.
	in := publicBooking(lw.ID)
	in.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, timezone.Location())
	in.StartTime = "15:00"
	in.EndTime = "16:00"

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
}

func TestCreateAppointmentAllowsBackDatedHistoricalRecord(t *testing.T) {
	uc, _, lw := newCreateFixture(t)

	in := publicBooking(lw.ID)
	in.Date = time.Date(2026, 8, 20, 0, 0, 0, 0, timezone.Location())
	in.Status = "completed"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
}

func TestCreateAppointmentSanitizesFreeText(t *testing.T) {
	uc, _, lw := newCreateFixture(t)

	in := publicBooking(lw.ID)
	in.ClientName = "<b>Maria</b>"
	in.AppointmentReason = "Ação c/ <script>"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "&lt;b&gt;Maria&lt;&#x2F;b&gt;", ap.ClientName)
	assert.NotContains(t, ap.AppointmentReason, "<script>")
}

func TestConcurrentBookingsOnlyOneWins(t *testing.T) {
	uc, _, lw := newCreateFixture(t)

	const attempts = 16

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), publicBooking(lw.ID))
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		var ce *shared.ConflictError
		require.ErrorAs(t, err, &ce)
		conflicts++
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
}
