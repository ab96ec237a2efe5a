package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gtkpad369/LegalSch/internal/audit"
	"github.com/gtkpad369/LegalSch/internal/config"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/httperr"
	"github.com/gtkpad369/LegalSch/internal/httpresp"
	"github.com/gtkpad369/LegalSch/internal/infra/docstore"
	"github.com/gtkpad369/LegalSch/internal/middleware"
	"github.com/gtkpad369/LegalSch/internal/models"
	"github.com/gtkpad369/LegalSch/internal/timezone"
)

const maxDocumentSize = 10 << 20 // 10 MiB

var allowedDocumentTypes = map[string]bool{
	"identification":  true,
	"residence_proof": true,
	"other":           true,
}

// ======================================================
// HANDLER
// ======================================================

type DocumentHandler struct {
	db     *gorm.DB
	store  docstore.Store
	config *config.Config
	audit  *audit.Dispatcher
}

func NewDocumentHandler(
	db *gorm.DB,
	store docstore.Store,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
) *DocumentHandler {
	return &DocumentHandler{
		db:     db,
		store:  store,
		config: cfg,
		audit:  auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRequirementRequest struct {
	ProcessType       string   `json:"process_type" binding:"required"`
	RequiredDocuments []string `json:"required_documents" binding:"required"`
}

// ======================================================
// CLIENT DOCUMENT UPLOAD (public booking page)
// ======================================================

// Upload attaches a file to a public appointment belonging to the
// slug's lawyer. The file expires after the configured retention
// window and the cleanup sweep removes it.
func (h *DocumentHandler) Upload(c *gin.Context) {
	slug := c.Param("slug")

	var lw models.Lawyer
	if err := h.db.Where("slug = ?", slug).First(&lw).Error; err != nil {
		httperr.NotFound(c, "lawyer_not_found", "Advogado não encontrado.")
		return
	}

	appointmentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND lawyer_id = ? AND is_public = true", appointmentID, lw.ID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	docType := c.PostForm("document_type")
	if !allowedDocumentTypes[docType] {
		httperr.BadRequest(c, "invalid_document_type", "Tipo de documento inválido.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo não enviado.")
		return
	}
	if fileHeader.Size > maxDocumentSize {
		httperr.BadRequest(c, "file_too_large", "Arquivo excede o tamanho máximo.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Falha ao ler o arquivo.")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.store.Put(c.Request.Context(), file, fileHeader.Size, contentType)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Falha ao armazenar o arquivo.")
		return
	}

	now := timezone.Now()
	doc := models.ClientDocument{
		AppointmentID:  ap.ID,
		FileName:       shared.SanitizeInput(fileHeader.Filename),
		FileType:       contentType,
		FileSize:       fileHeader.Size,
		DocumentType:   docType,
		StorageKey:     key,
		UploadDate:     now,
		ExpirationDate: now.Add(time.Duration(h.config.DocumentRetentionDays) * 24 * time.Hour),
	}

	if err := h.db.Create(&doc).Error; err != nil {
		// Row failed after the object went up; the cleanup sweep will
		// not see it, so remove the object now.
		_ = h.store.Delete(c.Request.Context(), key)
		httperr.Internal(c, "upload_failed", "Falha ao registrar o documento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		LawyerID: lw.ID,
		Action:   "document_uploaded",
		Entity:   "client_document",
		EntityID: &doc.ID,
	})

	c.JSON(http.StatusCreated, doc)
}

// ======================================================
// CLIENT DOCUMENT LISTING (lawyer side)
// ======================================================

func (h *DocumentHandler) ListByAppointment(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	appointmentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND lawyer_id = ?", appointmentID, lawyerID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var docs []models.ClientDocument
	if err := h.db.
		Where("appointment_id = ?", ap.ID).
		Order("upload_date").
		Find(&docs).Error; err != nil {
		httperr.Internal(c, "internal_error", "something went wrong")
		return
	}

	httpresp.List(c, docs)
}

// ======================================================
// DOCUMENT REQUIREMENTS
// ======================================================

func (h *DocumentHandler) CreateRequirement(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)

	var req CreateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	requirement := models.DocumentRequirement{
		LawyerID:          lawyerID,
		ProcessType:       shared.SanitizeInput(req.ProcessType),
		RequiredDocuments: models.StringList(req.RequiredDocuments),
	}

	if err := h.db.Create(&requirement).Error; err != nil {
		httperr.Internal(c, "internal_error", "something went wrong")
		return
	}

	httpresp.Created(c, requirement)
}

func (h *DocumentHandler) ListRequirements(c *gin.Context) {
	lawyerID := middleware.LawyerID(c)
	h.listRequirementsFor(c, lawyerID)
}

// ListRequirementsPublic lets a client see which documents to bring
// before booking.
func (h *DocumentHandler) ListRequirementsPublic(c *gin.Context) {
	slug := c.Param("slug")

	var lw models.Lawyer
	if err := h.db.Where("slug = ?", slug).First(&lw).Error; err != nil {
		httperr.NotFound(c, "lawyer_not_found", "Advogado não encontrado.")
		return
	}

	h.listRequirementsFor(c, lw.ID)
}

func (h *DocumentHandler) listRequirementsFor(c *gin.Context, lawyerID uint) {
	var items []models.DocumentRequirement
	if err := h.db.
		Where("lawyer_id = ?", lawyerID).
		Order("process_type").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "internal_error", "something went wrong")
		return
	}

	httpresp.List(c, items)
}
