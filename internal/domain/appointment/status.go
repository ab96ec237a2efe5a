package appointment

import (
	"fmt"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Transition guards
// ===============================

// All transitions leave "scheduled"; completed, cancelled and no-show
// are terminal.

func canTransition(op string, current Status) error {
	return shared.Require(
		current == StatusScheduled,
		"status",
		fmt.Sprintf("cannot %s an appointment with status %q", op, current),
	)
}

func CanCancel(current Status) error   { return canTransition("cancel", current) }
func CanComplete(current Status) error { return canTransition("complete", current) }
func CanMarkNoShow(current Status) error {
	return canTransition("mark as no-show", current)
}
