package schedule

import (
	"context"
	"time"

	domain "github.com/gtkpad369/LegalSch/internal/domain/schedule"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

// GenerateWeek derives concrete dated weeks, either from a reusable
// template or by rolling an existing week forward.
type GenerateWeek struct {
	repo domain.Repository
}

func NewGenerateWeek(repo domain.Repository) *GenerateWeek {
	return &GenerateWeek{repo: repo}
}

// FromTemplate instantiates a template against weekStart and persists
// the resulting weekly schedule.
func (uc *GenerateWeek) FromTemplate(
	ctx context.Context,
	lawyerID uint,
	templateID uint,
	weekStart time.Time,
) (*models.WeeklySchedule, error) {

	t, err := uc.repo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.LawyerID != lawyerID {
		return nil, &shared.NotFoundError{Entity: "schedule template", ID: templateID}
	}

	week, err := domain.FromTemplate(t, weekStart)
	if err != nil {
		return nil, err
	}

	return uc.repo.SaveWeekly(ctx, week)
}

// RollForward builds next week's schedule from an existing one,
// keeping slot shape and availability.
func (uc *GenerateWeek) RollForward(
	ctx context.Context,
	lawyerID uint,
	weeklyID uint,
) (*models.WeeklySchedule, error) {

	prev, err := uc.repo.FindWeeklyByID(ctx, weeklyID)
	if err != nil {
		return nil, err
	}
	if prev == nil || prev.LawyerID != lawyerID {
		return nil, &shared.NotFoundError{Entity: "weekly schedule", ID: weeklyID}
	}

	next, err := domain.FromPreviousWeek(prev)
	if err != nil {
		return nil, err
	}

	return uc.repo.SaveWeekly(ctx, next)
}
