package schedule

import (
	"context"
	"time"

	"github.com/gtkpad369/LegalSch/internal/models"
)

// Lookups return (nil, nil) when nothing matches.
type Repository interface {
	FindTemplateByID(ctx context.Context, id uint) (*models.ScheduleTemplate, error)
	FindTemplatesByLawyerID(ctx context.Context, lawyerID uint) ([]models.ScheduleTemplate, error)
	SaveTemplate(ctx context.Context, t *models.ScheduleTemplate) (*models.ScheduleTemplate, error)

	FindWeeklyByID(ctx context.Context, id uint) (*models.WeeklySchedule, error)
	FindWeeklyByLawyerID(ctx context.Context, lawyerID uint) ([]models.WeeklySchedule, error)

	// FindWeeklyByDate returns the schedule whose week contains date.
	FindWeeklyByDate(ctx context.Context, lawyerID uint, date time.Time) (*models.WeeklySchedule, error)

	SaveWeekly(ctx context.Context, w *models.WeeklySchedule) (*models.WeeklySchedule, error)
}
