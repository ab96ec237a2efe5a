package appointment

import (
	"context"
	"time"

	"github.com/gtkpad369/LegalSch/internal/audit"
	domain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	lawyerdomain "github.com/gtkpad369/LegalSch/internal/domain/lawyer"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/infra/notify"
	"github.com/gtkpad369/LegalSch/internal/models"
	"github.com/gtkpad369/LegalSch/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	LawyerID uint

	Date      time.Time
	StartTime string
	EndTime   string

	IsPublic bool
	Status   string // empty means scheduled

	Title       string
	Description string

	ClientName        string
	ClientCpf         string
	ClientBirthDate   *time.Time
	ClientEmail       string
	ClientPhone       string
	ClientAddress     string
	AppointmentReason string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo       domain.Repository
	lawyerRepo lawyerdomain.Repository
	audit      *audit.Dispatcher
	notifier   *notify.Dispatcher

	now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	lawyerRepo lawyerdomain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:       repo,
		lawyerRepo: lawyerRepo,
		audit:      auditDispatcher,
		notifier:   notifier,
		now:        timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking sequence: lawyer exists, no overlap, no
// back-dated active booking. Failures from those checks come back as
// one accumulated field report; a detected overlap alone surfaces as a
// ConflictError so the transport layer can answer 409 instead of 400.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	n := shared.NewNotification()

	lw, err := uc.lawyerRepo.FindByID(ctx, in.LawyerID)
	if err != nil {
		return nil, err
	}
	if lw == nil {
		n.AddError("lawyerId", "lawyer not found")
	}

	conflict := false
	if lw != nil {
		conflict, err = uc.repo.ExistsAtSameTime(
			ctx,
			in.LawyerID,
			in.Date,
			in.StartTime,
			in.EndTime,
			0,
		)
		if err != nil {
			return nil, err
		}
		if conflict {
			n.AddError("timeSlot", "an appointment already exists at this time")
		}
	}

	// Back-dated bookings are only forbidden for active (scheduled)
	// appointments; historical records keep their original dates.
	status := in.Status
	if status == "" {
		status = string(domain.StatusScheduled)
	}
	if status == string(domain.StatusScheduled) && uc.startsInThePast(in) {
		n.AddError("date", "appointment date must be in the future")
	}

	if n.HasErrors() {
		if conflict {
			return nil, &shared.ConflictError{Report: n.Errors()}
		}
		return nil, n.Err()
	}

	ap, err := domain.New(domain.NewAppointmentParams{
		LawyerID:          in.LawyerID,
		Date:              in.Date,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		IsPublic:          in.IsPublic,
		Status:            domain.Status(status),
		Title:             shared.SanitizeInput(in.Title),
		Description:       shared.SanitizeInput(in.Description),
		ClientName:        shared.SanitizeInput(in.ClientName),
		ClientCpf:         in.ClientCpf,
		ClientBirthDate:   in.ClientBirthDate,
		ClientEmail:       in.ClientEmail,
		ClientPhone:       in.ClientPhone,
		ClientAddress:     shared.SanitizeInput(in.ClientAddress),
		AppointmentReason: shared.SanitizeInput(in.AppointmentReason),
	})
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, ap)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LawyerID: in.LawyerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &saved.ID,
	})

	if lw != nil {
		uc.notifier.NotifyNewBooking(saved, lw.Phone)
	}

	return saved, nil
}

// startsInThePast combines the calendar day with the start time and
// compares the resulting instant against now, so a booking later today
// is still valid.
func (uc *CreateAppointment) startsInThePast(in CreateAppointmentInput) bool {
	minutes, ok := domain.ParseTime(in.StartTime)
	if !ok || in.Date.IsZero() {
		// Malformed input fails entity validation instead.
		return false
	}

	start := timezone.StartOfDay(in.Date).Add(time.Duration(minutes) * time.Minute)
	return start.Before(uc.now())
}
