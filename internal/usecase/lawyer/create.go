package lawyer

import (
	"context"
	"strings"

	domain "github.com/gtkpad369/LegalSch/internal/domain/lawyer"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type CreateLawyerInput struct {
	Name      string
	OabNumber string
	Email     string
	Phone     string
	Password  string
	Address   string
	Slug      string

	Description      string
	AreasOfExpertise []string
	SocialLinks      models.SocialLinks
	ExternalLinks    models.ExternalLinks
}

type CreateLawyer struct {
	repo domain.Repository
}

func NewCreateLawyer(repo domain.Repository) *CreateLawyer {
	return &CreateLawyer{repo: repo}
}

// Execute checks email, OAB number and slug for prior uniqueness,
// accumulating all three so the caller sees every duplicate at once,
// then hashes the password and builds the entity. The entity never
// sees plaintext.
func (uc *CreateLawyer) Execute(ctx context.Context, in CreateLawyerInput) (*models.Lawyer, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	slug := strings.ToLower(strings.TrimSpace(in.Slug))
	if slug == "" {
		slug = domain.Slugify(in.Name)
	}

	n := shared.NewNotification()

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		n.AddError("email", "email is already in use")
	}

	existing, err = uc.repo.FindByOabNumber(ctx, in.OabNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		n.AddError("oabNumber", "OAB number is already in use")
	}

	existing, err = uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		n.AddError("slug", "slug is already in use")
	}

	if err := n.Err(); err != nil {
		return nil, err
	}

	hashed, err := shared.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	l, err := domain.New(domain.NewLawyerParams{
		Name:             shared.SanitizeInput(in.Name),
		OabNumber:        in.OabNumber,
		Email:            email,
		Phone:            in.Phone,
		HashedPassword:   hashed,
		Address:          shared.SanitizeInput(in.Address),
		Slug:             slug,
		Description:      shared.SanitizeInput(in.Description),
		AreasOfExpertise: in.AreasOfExpertise,
		SocialLinks:      in.SocialLinks,
		ExternalLinks:    in.ExternalLinks,
	})
	if err != nil {
		return nil, err
	}

	return uc.repo.Save(ctx, l)
}
