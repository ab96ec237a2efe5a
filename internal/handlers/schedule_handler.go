package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gtkpad369/LegalSch/internal/audit"
	scheduledomain "github.com/gtkpad369/LegalSch/internal/domain/schedule"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/httperr"
	"github.com/gtkpad369/LegalSch/internal/httpresp"
	"github.com/gtkpad369/LegalSch/internal/middleware"
	"github.com/gtkpad369/LegalSch/internal/models"
	scheduleuc "github.com/gtkpad369/LegalSch/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	repo     scheduledomain.Repository
	generate *scheduleuc.GenerateWeek
	audit    *audit.Dispatcher
}

func NewScheduleHandler(
	repo scheduledomain.Repository,
	generate *scheduleuc.GenerateWeek,
	auditDispatcher *audit.Dispatcher,
) *ScheduleHandler {
	return &ScheduleHandler{
		repo:     repo,
		generate: generate,
		audit:    auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TemplateSlotRequest struct {
	Day         int    `json:"day" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable bool   `json:"is_available"`
}

type CreateTemplateRequest struct {
	Name      string                `json:"name" binding:"required"`
	TimeSlots []TemplateSlotRequest `json:"time_slots" binding:"required"`
}

type GenerateWeekRequest struct {
	TemplateID uint   `json:"template_id" binding:"required"`
	WeekStart  string `json:"week_start" binding:"required"`
}

// ======================================================
// TEMPLATES
// ======================================================

func (h *ScheduleHandler) CreateTemplate(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	slots := make(models.TemplateSlotList, 0, len(req.TimeSlots))
	for _, s := range req.TimeSlots {
		slots = append(slots, models.TemplateSlot{
			Day:         s.Day,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
		})
	}

	t := &models.ScheduleTemplate{
		LawyerID:  lawyerID,
		Name:      shared.SanitizeInput(req.Name),
		TimeSlots: slots,
	}

	if err := scheduledomain.ValidateTemplate(t); err != nil {
		httperr.FromDomain(c, err)
		return
	}

	saved, err := h.repo.SaveTemplate(c.Request.Context(), t)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		LawyerID: lawyerID,
		Action:   "schedule_template_created",
		Entity:   "schedule_template",
		EntityID: &saved.ID,
	})

	httpresp.Created(c, saved)
}

func (h *ScheduleHandler) GetTemplate(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	t, err := h.repo.FindTemplateByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	if t == nil || t.LawyerID != lawyerID {
		httperr.NotFound(c, "not_found", "Modelo de agenda não encontrado.")
		return
	}

	httpresp.OK(c, t)
}

func (h *ScheduleHandler) ListTemplates(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	items, err := h.repo.FindTemplatesByLawyerID(c.Request.Context(), lawyerID)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// WEEKLY SCHEDULES
// ======================================================

func (h *ScheduleHandler) ListWeekly(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	items, err := h.repo.FindWeeklyByLawyerID(c.Request.Context(), lawyerID)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *ScheduleHandler) GenerateWeek(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	var req GenerateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	weekStart, err := parseDate(req.WeekStart)
	if err != nil {
		httperr.BadRequest(c, "invalid_week_start", "Data inválida.")
		return
	}

	week, err := h.generate.FromTemplate(c.Request.Context(), lawyerID, req.TemplateID, weekStart)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		LawyerID: lawyerID,
		Action:   "weekly_schedule_generated",
		Entity:   "weekly_schedule",
		EntityID: &week.ID,
	})

	httpresp.Created(c, week)
}

func (h *ScheduleHandler) RollForward(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	week, err := h.generate.RollForward(c.Request.Context(), lawyerID, id)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		LawyerID: lawyerID,
		Action:   "weekly_schedule_rolled",
		Entity:   "weekly_schedule",
		EntityID: &week.ID,
	})

	httpresp.Created(c, week)
}
