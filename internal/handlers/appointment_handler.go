package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gtkpad369/LegalSch/internal/dto"
	"github.com/gtkpad369/LegalSch/internal/httperr"
	"github.com/gtkpad369/LegalSch/internal/httpresp"
	"github.com/gtkpad369/LegalSch/internal/middleware"
	"github.com/gtkpad369/LegalSch/internal/models"
	appointmentuc "github.com/gtkpad369/LegalSch/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *appointmentuc.CreateAppointment
	reschedule *appointmentuc.RescheduleAppointment
	transition *appointmentuc.TransitionAppointment
	list       *appointmentuc.ListAppointments
	remove     *appointmentuc.DeleteAppointment
}

func NewAppointmentHandler(
	create *appointmentuc.CreateAppointment,
	reschedule *appointmentuc.RescheduleAppointment,
	transition *appointmentuc.TransitionAppointment,
	list *appointmentuc.ListAppointments,
	remove *appointmentuc.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		reschedule: reschedule,
		transition: transition,
		list:       list,
		remove:     remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	IsPublic *bool  `json:"is_public"`
	Status   string `json:"status"`

	Title       string `json:"title"`
	Description string `json:"description"`

	ClientName        string `json:"client_name"`
	ClientCpf         string `json:"client_cpf"`
	ClientBirthDate   string `json:"client_birth_date"`
	ClientEmail       string `json:"client_email"`
	ClientPhone       string `json:"client_phone"`
	ClientAddress     string `json:"client_address"`
	AppointmentReason string `json:"appointment_reason"`
}

type RescheduleAppointmentRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	Title             *string `json:"title"`
	Description       *string `json:"description"`
	ClientName        *string `json:"client_name"`
	ClientEmail       *string `json:"client_email"`
	ClientPhone       *string `json:"client_phone"`
	ClientAddress     *string `json:"client_address"`
	AppointmentReason *string `json:"appointment_reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	var req CreateAppointmentRequest
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

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	ap, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		LawyerID:          lawyerID,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		IsPublic:          isPublic,
		Status:            req.Status,
		Title:             req.Title,
		Description:       req.Description,
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

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	if weekStr := c.Query("weekStart"); weekStr != "" {
		weekStart, err := parseDate(weekStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_week_start", "Data inválida.")
			return
		}
		items, err := h.list.Week(c.Request.Context(), lawyerID, weekStart)
		if err != nil {
			httperr.FromDomain(c, err)
			return
		}
		httpresp.List(c, dto.ToAppointmentList(items))
		return
	}

	items, err := h.list.All(c.Request.Context(), lawyerID)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, dto.ToAppointmentList(items))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.list.ByID(c.Request.Context(), lawyerID, id)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := appointmentuc.RescheduleAppointmentInput{
		AppointmentID:     id,
		LawyerID:          lawyerID,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Title:             req.Title,
		Description:       req.Description,
		ClientName:        req.ClientName,
		ClientEmail:       req.ClientEmail,
		ClientPhone:       req.ClientPhone,
		ClientAddress:     req.ClientAddress,
		AppointmentReason: req.AppointmentReason,
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		in.Date = &date
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.runTransition(c, h.transition.Cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.runTransition(c, h.transition.Complete)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.runTransition(c, h.transition.MarkNoShow)
}

func (h *AppointmentHandler) runTransition(
	c *gin.Context,
	fn func(ctx context.Context, lawyerID, appointmentID uint) (*models.Appointment, error),
) {
	lawyerID := middleware.LawyerID(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := fn(c.Request.Context(), lawyerID, id)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), lawyerID, id); err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
