package schedule

import (
	"time"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

const dateLayout = "2006-01-02"

// Template slot days are 1-indexed from the week start (1 = Monday,
// 7 = Sunday); a slot's concrete date is weekStart + (day-1) days.

func validateSlotDay(day int) error {
	return shared.Require(day >= 1 && day <= 7, "day", "slot day must be between 1 and 7")
}

// FromTemplate instantiates a reusable template against a concrete
// week. The template itself is never mutated.
func FromTemplate(template *models.ScheduleTemplate, weekStart time.Time) (*models.WeeklySchedule, error) {
	slots := make(models.ScheduleSlotList, 0, len(template.TimeSlots))

	for _, s := range template.TimeSlots {
		if err := validateSlotDay(s.Day); err != nil {
			return nil, err
		}

		slots = append(slots, models.ScheduleSlot{
			Day:         s.Day,
			Date:        weekStart.AddDate(0, 0, s.Day-1).Format(dateLayout),
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
		})
	}

	return &models.WeeklySchedule{
		LawyerID:      template.LawyerID,
		WeekStartDate: weekStart,
		TimeSlots:     slots,
	}, nil
}

// FromPreviousWeek rolls a week forward by 7 days: slot shape and
// availability carry over, dates are recomputed from the new start.
func FromPreviousWeek(previous *models.WeeklySchedule) (*models.WeeklySchedule, error) {
	nextWeekStart := previous.WeekStartDate.AddDate(0, 0, 7)

	slots := make(models.ScheduleSlotList, 0, len(previous.TimeSlots))
	for _, s := range previous.TimeSlots {
		if err := validateSlotDay(s.Day); err != nil {
			return nil, err
		}

		slots = append(slots, models.ScheduleSlot{
			Day:         s.Day,
			Date:        nextWeekStart.AddDate(0, 0, s.Day-1).Format(dateLayout),
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
		})
	}

	return &models.WeeklySchedule{
		LawyerID:      previous.LawyerID,
		WeekStartDate: nextWeekStart,
		TimeSlots:     slots,
	}, nil
}
