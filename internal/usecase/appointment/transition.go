package appointment

import (
	"context"
	"time"

	"github.com/gtkpad369/LegalSch/internal/audit"
	domain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
	"github.com/gtkpad369/LegalSch/internal/timezone"
)

// TransitionAppointment drives the scheduled -> terminal state moves.
// One use case covers cancel, complete and no-show: they share the
// fetch/guard/persist shape and differ only in the domain transition.
type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *TransitionAppointment) Cancel(ctx context.Context, lawyerID, appointmentID uint) (*models.Appointment, error) {
	return uc.run(ctx, lawyerID, appointmentID, "appointment_cancelled", domain.Cancel)
}

func (uc *TransitionAppointment) Complete(ctx context.Context, lawyerID, appointmentID uint) (*models.Appointment, error) {
	return uc.run(ctx, lawyerID, appointmentID, "appointment_completed", domain.Complete)
}

func (uc *TransitionAppointment) MarkNoShow(ctx context.Context, lawyerID, appointmentID uint) (*models.Appointment, error) {
	return uc.run(ctx, lawyerID, appointmentID, "appointment_no_show", domain.MarkNoShow)
}

func (uc *TransitionAppointment) run(
	ctx context.Context,
	lawyerID uint,
	appointmentID uint,
	action string,
	transition func(*models.Appointment, time.Time) error,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil || ap.LawyerID != lawyerID {
		return nil, &shared.NotFoundError{Entity: "appointment", ID: appointmentID}
	}

	if err := transition(ap, timezone.Now()); err != nil {
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, ap)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		LawyerID: lawyerID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &saved.ID,
	})

	return saved, nil
}
