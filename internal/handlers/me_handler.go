package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gtkpad369/LegalSch/internal/audit"
	lawyerdomain "github.com/gtkpad369/LegalSch/internal/domain/lawyer"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/httperr"
	"github.com/gtkpad369/LegalSch/internal/httpresp"
	"github.com/gtkpad369/LegalSch/internal/middleware"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type MeHandler struct {
	repo  lawyerdomain.Repository
	audit *audit.Dispatcher
}

func NewMeHandler(repo lawyerdomain.Repository, auditDispatcher *audit.Dispatcher) *MeHandler {
	return &MeHandler{repo: repo, audit: auditDispatcher}
}

// --------- Requests ---------

// Email, OAB number and slug are identity fields and stay immutable
// here; changing them would need the same uniqueness pass as register.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`

	AreasOfExpertise *[]string             `json:"areas_of_expertise"`
	SocialLinks      *models.SocialLinks   `json:"social_links"`
	ExternalLinks    *models.ExternalLinks `json:"external_links"`
}

// --------- Handlers ---------

func (h *MeHandler) Get(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	lw, err := h.repo.FindByID(c.Request.Context(), lawyerID)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	if lw == nil {
		httperr.NotFound(c, "lawyer_not_found", "Advogado não encontrado.")
		return
	}

	httpresp.OK(c, lawyerdomain.ToPublicView(lw))
}

func (h *MeHandler) Update(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = shared.SanitizeInput(*req.Name)
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = shared.SanitizeInput(*req.Address)
	}
	if req.Description != nil {
		fields["description"] = shared.SanitizeInput(*req.Description)
	}
	if req.AreasOfExpertise != nil {
		fields["areas_of_expertise"] = models.StringList(*req.AreasOfExpertise)
	}
	if req.SocialLinks != nil {
		fields["social_links"] = *req.SocialLinks
	}
	if req.ExternalLinks != nil {
		fields["external_links"] = *req.ExternalLinks
	}

	if len(fields) == 0 {
		httperr.BadRequest(c, "empty_update", "Nenhum campo para atualizar.")
		return
	}

	lw, err := h.repo.Update(c.Request.Context(), lawyerID, fields)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}
	if lw == nil {
		httperr.NotFound(c, "lawyer_not_found", "Advogado não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		LawyerID: lawyerID,
		Action:   "profile_updated",
		Entity:   "lawyer",
		EntityID: &lw.ID,
	})

	httpresp.OK(c, lawyerdomain.ToPublicView(lw))
}
