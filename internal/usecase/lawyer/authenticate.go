package lawyer

import (
	"context"
	"strings"

	domain "github.com/gtkpad369/LegalSch/internal/domain/lawyer"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type AuthenticateLawyerInput struct {
	Email    string
	Password string
}

type AuthenticateLawyer struct {
	repo domain.Repository
}

func NewAuthenticateLawyer(repo domain.Repository) *AuthenticateLawyer {
	return &AuthenticateLawyer{repo: repo}
}

// Execute verifies the credentials and returns the lawyer. Unknown
// email and wrong password produce the same generic report to avoid
// account enumeration.
func (uc *AuthenticateLawyer) Execute(ctx context.Context, in AuthenticateLawyerInput) (*models.Lawyer, error) {
	n := shared.NewNotification()
	if strings.TrimSpace(in.Email) == "" {
		n.AddError("email", "email is required")
	}
	if in.Password == "" {
		n.AddError("password", "password is required")
	}
	if err := n.Err(); err != nil {
		return nil, err
	}

	invalidCredentials := func() error {
		bad := shared.NewNotification()
		bad.AddError("credentials", "invalid credentials")
		return bad.Err()
	}

	lw, err := uc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if lw == nil {
		return nil, invalidCredentials()
	}

	ok, err := shared.VerifyPassword(in.Password, lw.HashedPassword)
	if err != nil || !ok {
		return nil, invalidCredentials()
	}

	return lw, nil
}
