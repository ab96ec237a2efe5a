package appointment

import (
	"context"
	"time"

	domain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// All returns every appointment owned by the lawyer.
func (uc *ListAppointments) All(ctx context.Context, lawyerID uint) ([]models.Appointment, error) {
	return uc.repo.FindByLawyerID(ctx, lawyerID)
}

// Week returns appointments within [weekStart, weekStart+7d).
func (uc *ListAppointments) Week(ctx context.Context, lawyerID uint, weekStart time.Time) ([]models.Appointment, error) {
	return uc.repo.FindByLawyerIDAndWeek(ctx, lawyerID, weekStart)
}

// ByID fetches a single appointment, scoped to its owner.
func (uc *ListAppointments) ByID(ctx context.Context, lawyerID, appointmentID uint) (*models.Appointment, error) {
	ap, err := uc.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil || ap.LawyerID != lawyerID {
		return nil, &shared.NotFoundError{Entity: "appointment", ID: appointmentID}
	}
	return ap, nil
}
