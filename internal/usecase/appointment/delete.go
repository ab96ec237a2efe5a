package appointment

import (
	"context"

	"github.com/gtkpad369/LegalSch/internal/audit"
	domain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
)

// DeleteAppointment removes an appointment outright, regardless of
// status. Terminal states block transitions, not removal.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, lawyerID, appointmentID uint) error {
	ap, err := uc.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if ap == nil || ap.LawyerID != lawyerID {
		return &shared.NotFoundError{Entity: "appointment", ID: appointmentID}
	}

	deleted, err := uc.repo.Delete(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return &shared.NotFoundError{Entity: "appointment", ID: appointmentID}
	}

	uc.audit.Dispatch(audit.Event{
		LawyerID: lawyerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
