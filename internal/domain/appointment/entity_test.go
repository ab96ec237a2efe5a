package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
)

func validPublicParams() NewAppointmentParams {
	return NewAppointmentParams{
		LawyerID:          1,
		Date:              time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
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

func TestNewPublicAppointment(t *testing.T) {
	ap, err := New(validPublicParams())
	require.NoError(t, err)

	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.True(t, ap.IsPublic)
}

func TestNewFailsFastOnMissingStructure(t *testing.T) {
	p := validPublicParams()
	p.LawyerID = 0

	_, err := New(p)
	require.Error(t, err)

	var ce *shared.ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, shared.PreconditionViolation, ce.Kind)
	assert.Equal(t, "lawyerId", ce.Field)
}

func TestNewRejectsInvertedTimeSlot(t *testing.T) {
	p := validPublicParams()
	p.StartTime = "10:00"
	p.EndTime = "09:00"

	_, err := New(p)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "timeSlot")
}

func TestNewRejectsZeroLengthSlot(t *testing.T) {
	p := validPublicParams()
	p.EndTime = p.StartTime

	_, err := New(p)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "timeSlot")
}

func TestPublicAppointmentAccumulatesAllMissingClientFields(t *testing.T) {
	p := validPublicParams()
	p.ClientEmail = ""
	p.ClientPhone = ""
	p.AppointmentReason = ""

	_, err := New(p)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "clientEmail")
	assert.Contains(t, ve.Report, "clientPhone")
	assert.Contains(t, ve.Report, "appointmentReason")
	assert.NotContains(t, ve.Report, "clientName")
}

func TestPublicAppointmentRejectsMalformedEmail(t *testing.T) {
	p := validPublicParams()
	p.ClientEmail = "not-an-email"

	_, err := New(p)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "clientEmail")
}

func TestPrivateAppointmentRequiresTitleOnly(t *testing.T) {
	p := NewAppointmentParams{
		LawyerID:  1,
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "15:00",
		IsPublic:  false,
	}

	_, err := New(p)
	require.Error(t, err)

	var ve *shared.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Report, "title")
	assert.NotContains(t, ve.Report, "clientName")

	p.Title = "Audiência no fórum"
	ap, err := New(p)
	require.NoError(t, err)
	assert.Empty(t, ap.ClientName)
}

func TestTransitionsFromScheduled(t *testing.T) {
	now := time.Now()

	ap, err := New(validPublicParams())
	require.NoError(t, err)

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestTerminalStatusesRejectFurtherTransitions(t *testing.T) {
	now := time.Now()

	ap, err := New(validPublicParams())
	require.NoError(t, err)
	require.NoError(t, Complete(ap, now))

	var ce *shared.ContractError
	err = Cancel(ap, now)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, shared.PreconditionViolation, ce.Kind)

	err = MarkNoShow(ap, now)
	require.Error(t, err)

	err = Complete(ap, now)
	require.Error(t, err)
}

func TestCancelledIsTerminal(t *testing.T) {
	now := time.Now()

	ap, err := New(validPublicParams())
	require.NoError(t, err)
	require.NoError(t, Cancel(ap, now))

	assert.Error(t, Complete(ap, now))
	assert.Error(t, MarkNoShow(ap, now))
	assert.Error(t, Cancel(ap, now))
}
