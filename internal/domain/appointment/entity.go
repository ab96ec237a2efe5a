package appointment

import (
	"strings"
	"time"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

// ======================================================
// Factory
// ======================================================

type NewAppointmentParams struct {
	ID       uint
	LawyerID uint

	Date      time.Time
	StartTime string
	EndTime   string

	IsPublic bool
	Status   Status

	Title       string
	Description string

	ClientName        string
	ClientCpf         string
	ClientBirthDate   *time.Time
	ClientEmail       string
	ClientPhone       string
	ClientAddress     string
	AppointmentReason string

	CreatedAt time.Time
}

// New builds a validated appointment. Structural prerequisites fail
// fast with a single ContractError; once the shape is sound, semantic
// rules accumulate into one Notification report.
func New(p NewAppointmentParams) (*models.Appointment, error) {
	if err := shared.Require(p.LawyerID > 0, "lawyerId", "lawyer id must be greater than zero"); err != nil {
		return nil, err
	}
	if err := shared.Require(!p.Date.IsZero(), "date", "date is required"); err != nil {
		return nil, err
	}
	if err := shared.RequireNotEmpty(p.StartTime, "startTime", "start time is required"); err != nil {
		return nil, err
	}
	if err := shared.RequireNotEmpty(p.EndTime, "endTime", "end time is required"); err != nil {
		return nil, err
	}

	status := p.Status
	if status == "" {
		status = InitialStatus()
	}

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	ap := &models.Appointment{
		ID:                p.ID,
		LawyerID:          p.LawyerID,
		Date:              p.Date,
		StartTime:         p.StartTime,
		EndTime:           p.EndTime,
		IsPublic:          p.IsPublic,
		Status:            string(status),
		Title:             p.Title,
		Description:       p.Description,
		ClientName:        p.ClientName,
		ClientCpf:         p.ClientCpf,
		ClientBirthDate:   p.ClientBirthDate,
		ClientEmail:       p.ClientEmail,
		ClientPhone:       p.ClientPhone,
		ClientAddress:     p.ClientAddress,
		AppointmentReason: p.AppointmentReason,
		CreatedAt:         createdAt,
	}

	if err := Validate(ap).Err(); err != nil {
		return nil, err
	}

	return ap, nil
}

// Validate runs the accumulate-all semantic validation and returns the
// full report. Never stops at the first violation.
func Validate(ap *models.Appointment) *shared.Notification {
	n := shared.NewNotification()

	if ap.LawyerID == 0 {
		n.AddError("lawyerId", "invalid lawyer id")
	}

	if ap.Date.IsZero() {
		n.AddError("date", "date is required")
	}

	if !IsValidStatus(ap.Status) {
		n.AddError("status", "invalid status")
	}

	validateTimeSlot(ap, n)

	if ap.IsPublic {
		validateClientFields(ap, n)
	} else if strings.TrimSpace(ap.Title) == "" {
		n.AddError("title", "title is required for private appointments")
	}

	return n
}

func validateTimeSlot(ap *models.Appointment, n *shared.Notification) {
	start, okStart := ParseTime(ap.StartTime)
	if !okStart {
		n.AddError("startTime", "start time must be in HH:MM format")
	}

	end, okEnd := ParseTime(ap.EndTime)
	if !okEnd {
		n.AddError("endTime", "end time must be in HH:MM format")
	}

	if okStart && okEnd && start >= end {
		n.AddError("timeSlot", "start time must be before end time")
	}
}

func validateClientFields(ap *models.Appointment, n *shared.Notification) {
	if strings.TrimSpace(ap.ClientName) == "" {
		n.AddError("clientName", "client name is required for public appointments")
	}
	if strings.TrimSpace(ap.ClientCpf) == "" {
		n.AddError("clientCpf", "client CPF is required for public appointments")
	}
	if strings.TrimSpace(ap.ClientEmail) == "" {
		n.AddError("clientEmail", "client email is required for public appointments")
	} else if !shared.ValidEmail(ap.ClientEmail) {
		n.AddError("clientEmail", "client email is invalid")
	}
	if strings.TrimSpace(ap.ClientPhone) == "" {
		n.AddError("clientPhone", "client phone is required for public appointments")
	}
	if strings.TrimSpace(ap.ClientAddress) == "" {
		n.AddError("clientAddress", "client address is required for public appointments")
	}
	if strings.TrimSpace(ap.AppointmentReason) == "" {
		n.AddError("appointmentReason", "appointment reason is required for public appointments")
	}
}

// ======================================================
// Transitions (side effects on status only)
// ======================================================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now

	return shared.Ensure(ap.Status == string(StatusCancelled), "status", "failed to set status to cancelled")
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now

	return shared.Ensure(ap.Status == string(StatusCompleted), "status", "failed to set status to completed")
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	ap.NoShowAt = &now

	return shared.Ensure(ap.Status == string(StatusNoShow), "status", "failed to set status to no-show")
}
