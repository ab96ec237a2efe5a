package appointment

import (
	"context"
	"time"

	"github.com/gtkpad369/LegalSch/internal/audit"
	domain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	LawyerID      uint

	Date      *time.Time
	StartTime *string
	EndTime   *string

	Title             *string
	Description       *string
	ClientName        *string
	ClientEmail       *string
	ClientPhone       *string
	ClientAddress     *string
	AppointmentReason *string
}

// RescheduleAppointment is the only write path for time/date changes.
// It always re-runs the conflict check with the merged prospective
// values, excluding the appointment itself, before touching storage.
type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	current, err := uc.repo.FindByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if current == nil || current.LawyerID != in.LawyerID {
		return nil, &shared.NotFoundError{Entity: "appointment", ID: in.AppointmentID}
	}

	// Merge the prospective slot before validating it.
	merged := *current
	if in.Date != nil {
		merged.Date = *in.Date
	}
	if in.StartTime != nil {
		merged.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		merged.EndTime = *in.EndTime
	}
	if in.Title != nil {
		merged.Title = shared.SanitizeInput(*in.Title)
	}
	if in.Description != nil {
		merged.Description = shared.SanitizeInput(*in.Description)
	}
	if in.ClientName != nil {
		merged.ClientName = shared.SanitizeInput(*in.ClientName)
	}
	if in.ClientEmail != nil {
		merged.ClientEmail = *in.ClientEmail
	}
	if in.ClientPhone != nil {
		merged.ClientPhone = *in.ClientPhone
	}
	if in.ClientAddress != nil {
		merged.ClientAddress = shared.SanitizeInput(*in.ClientAddress)
	}
	if in.AppointmentReason != nil {
		merged.AppointmentReason = shared.SanitizeInput(*in.AppointmentReason)
	}

	if err := domain.Validate(&merged).Err(); err != nil {
		return nil, err
	}

	conflict, err := uc.repo.ExistsAtSameTime(
		ctx,
		merged.LawyerID,
		merged.Date,
		merged.StartTime,
		merged.EndTime,
		merged.ID,
	)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, &shared.ConflictError{Report: map[string][]string{
			"timeSlot": {"an appointment already exists at this time"},
		}}
	}

	patch := domain.Patch{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if in.Title != nil {
		patch.Title = &merged.Title
	}
	if in.Description != nil {
		patch.Description = &merged.Description
	}
	if in.ClientName != nil {
		patch.ClientName = &merged.ClientName
	}
	if in.ClientEmail != nil {
		patch.ClientEmail = &merged.ClientEmail
	}
	if in.ClientPhone != nil {
		patch.ClientPhone = &merged.ClientPhone
	}
	if in.ClientAddress != nil {
		patch.ClientAddress = &merged.ClientAddress
	}
	if in.AppointmentReason != nil {
		patch.AppointmentReason = &merged.AppointmentReason
	}

	updated, err := uc.repo.Update(ctx, in.AppointmentID, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &shared.NotFoundError{Entity: "appointment", ID: in.AppointmentID}
	}

	uc.audit.Dispatch(audit.Event{
		LawyerID: in.LawyerID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &updated.ID,
	})

	return updated, nil
}
