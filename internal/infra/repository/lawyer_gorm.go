package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/gtkpad369/LegalSch/internal/domain/lawyer"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type LawyerGormRepository struct {
	db *gorm.DB
}

func NewLawyerGormRepository(db *gorm.DB) *LawyerGormRepository {
	return &LawyerGormRepository{db: db}
}

func (r *LawyerGormRepository) findOne(ctx context.Context, query string, arg any) (*models.Lawyer, error) {
	var lw models.Lawyer
	if err := r.db.WithContext(ctx).Where(query, arg).First(&lw).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lw, nil
}

func (r *LawyerGormRepository) FindByID(ctx context.Context, id uint) (*models.Lawyer, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *LawyerGormRepository) FindByEmail(ctx context.Context, email string) (*models.Lawyer, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *LawyerGormRepository) FindByOabNumber(ctx context.Context, oabNumber string) (*models.Lawyer, error) {
	return r.findOne(ctx, "oab_number = ?", oabNumber)
}

func (r *LawyerGormRepository) FindBySlug(ctx context.Context, slug string) (*models.Lawyer, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *LawyerGormRepository) Save(ctx context.Context, l *models.Lawyer) (*models.Lawyer, error) {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LawyerGormRepository) Update(ctx context.Context, id uint, fields map[string]any) (*models.Lawyer, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(&models.Lawyer{}).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.FindByID(ctx, id)
}

func (r *LawyerGormRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Lawyer{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*LawyerGormRepository)(nil)
