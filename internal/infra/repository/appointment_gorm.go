package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

const dateLayout = "2006-01-02"

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByLawyerID(
	ctx context.Context,
	lawyerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) FindByLawyerIDAndWeek(
	ctx context.Context,
	lawyerID uint,
	weekStart time.Time,
) ([]models.Appointment, error) {

	weekEnd := weekStart.AddDate(0, 0, 7)

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"lawyer_id = ? AND date >= ? AND date < ?",
			lawyerID,
			weekStart.Format(dateLayout),
			weekEnd.Format(dateLayout),
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Times are zero-padded HH:MM, so string comparison in SQL matches the
// numeric half-open overlap test.
func (r *AppointmentGormRepository) ExistsAtSameTime(
	ctx context.Context,
	lawyerID uint,
	date time.Time,
	startTime string,
	endTime string,
	excludeID uint,
) (bool, error) {
	return r.existsAtSameTime(r.db.WithContext(ctx), lawyerID, date, startTime, endTime, excludeID, false)
}

func (r *AppointmentGormRepository) existsAtSameTime(
	tx *gorm.DB,
	lawyerID uint,
	date time.Time,
	startTime string,
	endTime string,
	excludeID uint,
	forUpdate bool,
) (bool, error) {

	q := tx.Model(&models.Appointment{}).
		Where(
			"lawyer_id = ? AND date = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			lawyerID,
			date.Format(dateLayout),
			endTime,
			startTime,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var count int64
	if err := q.Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save re-checks the slot inside the insert transaction with a row
// lock, so two racing bookings cannot both commit.
func (r *AppointmentGormRepository) Save(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Appointment, error) {

	if ap.ID != 0 {
		if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
			return nil, err
		}
		return ap, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ap.Status == string(domain.StatusScheduled) {
			conflict, err := r.existsAtSameTime(
				tx, ap.LawyerID, ap.Date, ap.StartTime, ap.EndTime, 0, true,
			)
			if err != nil {
				return err
			}
			if conflict {
				return &shared.ConflictError{Report: map[string][]string{
					"timeSlot": {"an appointment already exists at this time"},
				}}
			}
		}

		return tx.Create(ap).Error
	})
	if err != nil {
		return nil, err
	}

	return ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id uint,
	patch domain.Patch,
) (*models.Appointment, error) {

	fields := map[string]any{}
	if patch.Date != nil {
		fields["date"] = patch.Date.Format(dateLayout)
	}
	if patch.StartTime != nil {
		fields["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		fields["end_time"] = *patch.EndTime
	}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.ClientName != nil {
		fields["client_name"] = *patch.ClientName
	}
	if patch.ClientEmail != nil {
		fields["client_email"] = *patch.ClientEmail
	}
	if patch.ClientPhone != nil {
		fields["client_phone"] = *patch.ClientPhone
	}
	if patch.ClientAddress != nil {
		fields["client_address"] = *patch.ClientAddress
	}
	if patch.AppointmentReason != nil {
		fields["appointment_reason"] = *patch.AppointmentReason
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(&models.Appointment{}).
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

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
