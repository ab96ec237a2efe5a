package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/gtkpad369/LegalSch/internal/domain/schedule"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) FindTemplateByID(ctx context.Context, id uint) (*models.ScheduleTemplate, error) {
	var t models.ScheduleTemplate
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *ScheduleGormRepository) FindTemplatesByLawyerID(ctx context.Context, lawyerID uint) ([]models.ScheduleTemplate, error) {
	var ts []models.ScheduleTemplate
	if err := r.db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("id ASC").
		Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *ScheduleGormRepository) SaveTemplate(ctx context.Context, t *models.ScheduleTemplate) (*models.ScheduleTemplate, error) {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *ScheduleGormRepository) FindWeeklyByID(ctx context.Context, id uint) (*models.WeeklySchedule, error) {
	var w models.WeeklySchedule
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *ScheduleGormRepository) FindWeeklyByLawyerID(ctx context.Context, lawyerID uint) ([]models.WeeklySchedule, error) {
	var ws []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("week_start_date DESC").
		Find(&ws).Error; err != nil {
		return nil, err
	}
	return ws, nil
}

func (r *ScheduleGormRepository) FindWeeklyByDate(ctx context.Context, lawyerID uint, date time.Time) (*models.WeeklySchedule, error) {
	day := date.Format(dateLayout)

	var w models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where(
			"lawyer_id = ? AND week_start_date <= ? AND week_start_date > ?",
			lawyerID,
			day,
			date.AddDate(0, 0, -7).Format(dateLayout),
		).
		Order("week_start_date DESC").
		First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *ScheduleGormRepository) SaveWeekly(ctx context.Context, w *models.WeeklySchedule) (*models.WeeklySchedule, error) {
	if err := r.db.WithContext(ctx).Save(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
