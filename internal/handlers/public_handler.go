package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	appointmentdomain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	lawyerdomain "github.com/gtkpad369/LegalSch/internal/domain/lawyer"
	scheduledomain "github.com/gtkpad369/LegalSch/internal/domain/schedule"
	"github.com/gtkpad369/LegalSch/internal/httperr"
	"github.com/gtkpad369/LegalSch/internal/httpresp"
	"github.com/gtkpad369/LegalSch/internal/infra/caselookup"
	"github.com/gtkpad369/LegalSch/internal/models"
	"github.com/gtkpad369/LegalSch/internal/timezone"
	appointmentuc "github.com/gtkpad369/LegalSch/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the booking page API: everything here is
// reachable without a token and keyed by the lawyer's slug.
type PublicHandler struct {
	lawyerRepo      lawyerdomain.Repository
	scheduleRepo    scheduledomain.Repository
	appointmentRepo appointmentdomain.Repository
	create          *appointmentuc.CreateAppointment
	caseLookup      *caselookup.JusBrasilClient
}

func NewPublicHandler(
	lawyerRepo lawyerdomain.Repository,
	scheduleRepo scheduledomain.Repository,
	appointmentRepo appointmentdomain.Repository,
	create *appointmentuc.CreateAppointment,
	caseLookup *caselookup.JusBrasilClient,
) *PublicHandler {
	return &PublicHandler{
		lawyerRepo:      lawyerRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		create:          create,
		caseLookup:      caseLookup,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	ClientName        string `json:"client_name"`
	ClientCpf         string `json:"client_cpf"`
	ClientBirthDate   string `json:"client_birth_date"`
	ClientEmail       string `json:"client_email"`
	ClientPhone       string `json:"client_phone"`
	ClientAddress     string `json:"client_address"`
	AppointmentReason string `json:"appointment_reason"`
}

// ======================================================
// PROFILE
// ======================================================

func (h *PublicHandler) lawyerBySlug(c *gin.Context) *models.Lawyer {
	slug := c.Param("slug")

	lw, err := h.lawyerRepo.FindBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.Internal(c, "internal_error", "something went wrong")
		return nil
	}
	if lw == nil {
		httperr.NotFound(c, "lawyer_not_found", "Advogado não encontrado.")
		return nil
	}
	return lw
}

func (h *PublicHandler) GetProfile(c *gin.Context) {
	lw := h.lawyerBySlug(c)
	if lw == nil {
		return
	}

	httpresp.OK(c, lawyerdomain.ToPublicView(lw))
}

// ======================================================
// SCHEDULE
// ======================================================

// GetSchedule answers the week containing today, or the week starting
// at ?weekStart=. Slots overlapping a scheduled appointment come back
// with is_available forced to false.
func (h *PublicHandler) GetSchedule(c *gin.Context) {
	lw := h.lawyerBySlug(c)
	if lw == nil {
		return
	}

	ref := timezone.Now()
	if weekStr := c.Query("weekStart"); weekStr != "" {
		parsed, err := parseDate(weekStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_week_start", "Data inválida.")
			return
		}
		ref = parsed
	}

	week, err := h.scheduleRepo.FindWeeklyByDate(c.Request.Context(), lw.ID, ref)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	if week == nil {
		httperr.NotFound(c, "schedule_not_found", "Agenda não encontrada para esta semana.")
		return
	}

	booked, err := h.appointmentRepo.FindByLawyerIDAndWeek(c.Request.Context(), lw.ID, week.WeekStartDate)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	week.TimeSlots = maskBookedSlots(week.TimeSlots, booked)

	httpresp.OK(c, week)
}

func maskBookedSlots(slots models.ScheduleSlotList, booked []models.Appointment) models.ScheduleSlotList {
	out := make(models.ScheduleSlotList, 0, len(slots))
	for _, s := range slots {
		for _, ap := range booked {
			if ap.Status != string(appointmentdomain.StatusScheduled) {
				continue
			}
			if ap.Date.Format("2006-01-02") != s.Date {
				continue
			}
			if appointmentdomain.TimesOverlap(s.StartTime, s.EndTime, ap.StartTime, ap.EndTime) {
				s.IsAvailable = false
				break
			}
		}
		out = append(out, s)
	}
	return out
}

// ======================================================
// BOOKING
// ======================================================

func (h *PublicHandler) Book(c *gin.Context) {
	lw := h.lawyerBySlug(c)
	if lw == nil {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var birthDate *time.Time
	if req.ClientBirthDate != "" {
		bd, err := parseDate(req.ClientBirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		birthDate = &bd
	}

	ap, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		LawyerID:          lw.ID,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		IsPublic:          true,
		ClientName:        req.ClientName,
		ClientCpf:         req.ClientCpf,
		ClientBirthDate:   birthDate,
		ClientEmail:       req.ClientEmail,
		ClientPhone:       req.ClientPhone,
		ClientAddress:     req.ClientAddress,
		AppointmentReason: req.AppointmentReason,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	// Best effort: failures inside the lookup come back as nil.
	processes := h.caseLookup.SearchProcesses(c.Request.Context(), req.ClientCpf)

	c.JSON(201, gin.H{
		"appointment": ap,
		"processes":   processes,
	})
}
