package schedule

import (
	"fmt"

	appointmentdomain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

// ValidateTemplate accumulates every problem in a template before it
// is persisted: name, slot days and slot time ranges.
func ValidateTemplate(t *models.ScheduleTemplate) error {
	n := shared.NewNotification()

	if len(t.Name) < 3 {
		n.AddError("name", "name must be at least 3 characters long")
	}
	if len(t.TimeSlots) == 0 {
		n.AddError("timeSlots", "template must have at least one time slot")
	}

	for i, s := range t.TimeSlots {
		field := fmt.Sprintf("timeSlots[%d]", i)

		if s.Day < 1 || s.Day > 7 {
			n.AddError(field, "slot day must be between 1 and 7")
		}

		start, okStart := appointmentdomain.ParseTime(s.StartTime)
		end, okEnd := appointmentdomain.ParseTime(s.EndTime)
		if !okStart {
			n.AddError(field, "start time must be in HH:MM format")
		}
		if !okEnd {
			n.AddError(field, "end time must be in HH:MM format")
		}
		if okStart && okEnd && start >= end {
			n.AddError(field, "start time must be before end time")
		}
	}

	return n.Err()
}
