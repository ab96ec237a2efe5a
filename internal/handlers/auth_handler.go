package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/gtkpad369/LegalSch/internal/config"
	lawyerdomain "github.com/gtkpad369/LegalSch/internal/domain/lawyer"
	"github.com/gtkpad369/LegalSch/internal/httperr"
	"github.com/gtkpad369/LegalSch/internal/models"
	lawyeruc "github.com/gtkpad369/LegalSch/internal/usecase/lawyer"
	"github.com/gtkpad369/LegalSch/internal/validators"
)

type AuthHandler struct {
	createLawyer *lawyeruc.CreateLawyer
	authenticate *lawyeruc.AuthenticateLawyer
	config       *config.Config
}

func NewAuthHandler(
	create *lawyeruc.CreateLawyer,
	authenticate *lawyeruc.AuthenticateLawyer,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		createLawyer: create,
		authenticate: authenticate,
		config:       cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	OabNumber string `json:"oab_number" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Address   string `json:"address" binding:"required"`
	Slug      string `json:"slug"`

	Description      string               `json:"description"`
	AreasOfExpertise []string             `json:"areas_of_expertise"`
	SocialLinks      models.SocialLinks   `json:"social_links"`
	ExternalLinks    models.ExternalLinks `json:"external_links"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	lw, err := h.createLawyer.Execute(c.Request.Context(), lawyeruc.CreateLawyerInput{
		Name:             req.Name,
		OabNumber:        req.OabNumber,
		Email:            email,
		Phone:            req.Phone,
		Password:         req.Password,
		Address:          req.Address,
		Slug:             req.Slug,
		Description:      req.Description,
		AreasOfExpertise: req.AreasOfExpertise,
		SocialLinks:      req.SocialLinks,
		ExternalLinks:    req.ExternalLinks,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	token, err := h.generateToken(lw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"lawyer": lawyerdomain.ToPublicView(lw),
		"token":  token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	lw, err := h.authenticate.Execute(c.Request.Context(), lawyeruc.AuthenticateLawyerInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Bad email and bad password answer the same way.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(lw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lawyer": lawyerdomain.ToPublicView(lw),
		"token":  token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(lw *models.Lawyer) (string, error) {
	claims := jwt.MapClaims{
		"sub": lw.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
