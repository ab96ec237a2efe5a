package appointment

import (
	"context"
	"time"

	"github.com/gtkpad369/LegalSch/internal/models"
)

// Patch carries a partial update; nil fields are left untouched.
// Callers changing Date/StartTime/EndTime must re-run the conflict
// check with the merged prospective values first; Update itself does
// not validate conflicts. The reschedule use case does this.
type Patch struct {
	Date      *time.Time
	StartTime *string
	EndTime   *string

	Title       *string
	Description *string

	ClientName        *string
	ClientEmail       *string
	ClientPhone       *string
	ClientAddress     *string
	AppointmentReason *string
}

// Repository is the sole contract between the scheduling core and any
// persistence technology. Lookups return (nil, nil) when the id does
// not exist; infrastructure failures come back as plain errors.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)

	FindByLawyerID(ctx context.Context, lawyerID uint) ([]models.Appointment, error)

	// FindByLawyerIDAndWeek covers [weekStart, weekStart+7d).
	FindByLawyerIDAndWeek(ctx context.Context, lawyerID uint, weekStart time.Time) ([]models.Appointment, error)

	// ExistsAtSameTime scopes to the lawyer's scheduled appointments on
	// the same calendar day and applies the half-open overlap test.
	// excludeID (0 = none) lets an update skip comparing an appointment
	// against itself. Returns true on the first conflicting match.
	ExistsAtSameTime(ctx context.Context, lawyerID uint, date time.Time, startTime, endTime string, excludeID uint) (bool, error)

	// Save inserts when ID is zero, otherwise fully replaces. As a
	// backstop against the check-then-save race, implementations must
	// reject an insert that would double-book a scheduled slot with a
	// ConflictError.
	Save(ctx context.Context, ap *models.Appointment) (*models.Appointment, error)

	Update(ctx context.Context, id uint, patch Patch) (*models.Appointment, error)

	Delete(ctx context.Context, id uint) (bool, error)
}
