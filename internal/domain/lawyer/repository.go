package lawyer

import (
	"context"

	"github.com/gtkpad369/LegalSch/internal/models"
)

// Lookups return (nil, nil) when no lawyer matches.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.Lawyer, error)
	FindByEmail(ctx context.Context, email string) (*models.Lawyer, error)
	FindByOabNumber(ctx context.Context, oabNumber string) (*models.Lawyer, error)
	FindBySlug(ctx context.Context, slug string) (*models.Lawyer, error)

	Save(ctx context.Context, l *models.Lawyer) (*models.Lawyer, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*models.Lawyer, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
