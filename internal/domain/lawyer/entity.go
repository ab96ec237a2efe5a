package lawyer

import (
	"strings"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type NewLawyerParams struct {
	ID             uint
	Name           string
	OabNumber      string
	Email          string
	Phone          string
	HashedPassword string
	Address        string
	Slug           string

	Description      string
	AreasOfExpertise []string
	SocialLinks      models.SocialLinks
	ExternalLinks    models.ExternalLinks
}

// New builds a validated lawyer. Required identity fields fail fast;
// the length/format rules then accumulate into one report.
func New(p NewLawyerParams) (*models.Lawyer, error) {
	if err := shared.RequireNotEmpty(p.Name, "name", "name is required"); err != nil {
		return nil, err
	}
	if err := shared.RequireNotEmpty(p.OabNumber, "oabNumber", "OAB number is required"); err != nil {
		return nil, err
	}
	if err := shared.RequireNotEmpty(p.Email, "email", "email is required"); err != nil {
		return nil, err
	}
	if err := shared.RequireNotEmpty(p.HashedPassword, "password", "password hash is required"); err != nil {
		return nil, err
	}

	l := &models.Lawyer{
		ID:               p.ID,
		Name:             p.Name,
		OabNumber:        p.OabNumber,
		Email:            p.Email,
		Phone:            p.Phone,
		HashedPassword:   p.HashedPassword,
		Address:          p.Address,
		Slug:             p.Slug,
		Description:      p.Description,
		AreasOfExpertise: models.StringList(p.AreasOfExpertise),
		SocialLinks:      p.SocialLinks,
		ExternalLinks:    p.ExternalLinks,
	}

	if l.AreasOfExpertise == nil {
		l.AreasOfExpertise = models.StringList{}
	}

	if err := Validate(l).Err(); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate accumulates every violated profile rule into one report.
func Validate(l *models.Lawyer) *shared.Notification {
	n := shared.NewNotification()

	if len(strings.TrimSpace(l.Name)) < 3 {
		n.AddError("name", "name must be at least 3 characters")
	}
	if !shared.ValidEmail(l.Email) {
		n.AddError("email", "email is invalid")
	}
	if strings.TrimSpace(l.OabNumber) == "" {
		n.AddError("oabNumber", "OAB number is invalid")
	}
	if len(strings.TrimSpace(l.Phone)) < 10 {
		n.AddError("phone", "phone must be at least 10 characters")
	}
	if len(strings.TrimSpace(l.Address)) < 5 {
		n.AddError("address", "address must be at least 5 characters")
	}
	if len(strings.TrimSpace(l.Slug)) < 3 {
		n.AddError("slug", "slug must be at least 3 characters")
	}

	return n
}

// PublicView is the lawyer's data with the credential field omitted.
// Every external-facing read path must go through it.
type PublicView struct {
	ID               uint                 `json:"id"`
	Name             string               `json:"name"`
	OabNumber        string               `json:"oab_number"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	Address          string               `json:"address"`
	Slug             string               `json:"slug"`
	Description      string               `json:"description,omitempty"`
	AreasOfExpertise []string             `json:"areas_of_expertise"`
	SocialLinks      models.SocialLinks   `json:"social_links"`
	ExternalLinks    models.ExternalLinks `json:"external_links"`
}

func ToPublicView(l *models.Lawyer) PublicView {
	return PublicView{
		ID:               l.ID,
		Name:             l.Name,
		OabNumber:        l.OabNumber,
		Email:            l.Email,
		Phone:            l.Phone,
		Address:          l.Address,
		Slug:             l.Slug,
		Description:      l.Description,
		AreasOfExpertise: append([]string(nil), l.AreasOfExpertise...),
		SocialLinks:      l.SocialLinks,
		ExternalLinks:    l.ExternalLinks,
	}
}

// Slugify derives a URL-safe slug from a display name.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
