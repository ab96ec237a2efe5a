package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/gtkpad369/LegalSch/internal/domain/appointment"
	"github.com/gtkpad369/LegalSch/internal/domain/shared"
	"github.com/gtkpad369/LegalSch/internal/models"
)

// AppointmentMemoryRepository is a map-backed implementation of the
// repository contract with auto-incrementing ids. The mutex held
// across the conflict re-check inside Save plays the role a uniqueness
// constraint plays in a relational store: a lost check-then-save race
// turns into a ConflictError, never a silent double booking.
type AppointmentMemoryRepository struct {
	mu     sync.Mutex
	items  map[uint]models.Appointment
	nextID uint
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		items:  make(map[uint]models.Appointment),
		nextID: 1,
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *AppointmentMemoryRepository) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &ap, nil
}

func (r *AppointmentMemoryRepository) FindByLawyerID(_ context.Context, lawyerID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.items {
		if ap.LawyerID == lawyerID {
			out = append(out, ap)
		}
	}
	sortAppointments(out)
	return out, nil
}

func (r *AppointmentMemoryRepository) FindByLawyerIDAndWeek(_ context.Context, lawyerID uint, weekStart time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	weekEnd := weekStart.AddDate(0, 0, 7)

	var out []models.Appointment
	for _, ap := range r.items {
		if ap.LawyerID != lawyerID {
			continue
		}
		if ap.Date.Before(weekStart) || !ap.Date.Before(weekEnd) {
			continue
		}
		out = append(out, ap)
	}
	sortAppointments(out)
	return out, nil
}

func sortAppointments(apps []models.Appointment) {
	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].Date.Equal(apps[j].Date) {
			return apps[i].Date.Before(apps[j].Date)
		}
		return apps[i].StartTime < apps[j].StartTime
	})
}

func (r *AppointmentMemoryRepository) ExistsAtSameTime(
	_ context.Context,
	lawyerID uint,
	date time.Time,
	startTime string,
	endTime string,
	excludeID uint,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conflictLocked(lawyerID, date, startTime, endTime, excludeID), nil
}

// conflictLocked must be called with r.mu held.
func (r *AppointmentMemoryRepository) conflictLocked(
	lawyerID uint,
	date time.Time,
	startTime string,
	endTime string,
	excludeID uint,
) bool {
	for _, ap := range r.items {
		if ap.LawyerID != lawyerID || ap.ID == excludeID {
			continue
		}
		if ap.Status != string(domain.StatusScheduled) {
			continue
		}
		if !sameDay(ap.Date, date) {
			continue
		}
		if domain.TimesOverlap(startTime, endTime, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}

func (r *AppointmentMemoryRepository) Save(_ context.Context, ap *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID == 0 {
		if ap.Status == string(domain.StatusScheduled) &&
			r.conflictLocked(ap.LawyerID, ap.Date, ap.StartTime, ap.EndTime, 0) {
			return nil, &shared.ConflictError{Report: map[string][]string{
				"timeSlot": {"an appointment already exists at this time"},
			}}
		}
		ap.ID = r.nextID
		r.nextID++
	}

	r.items[ap.ID] = *ap
	saved := r.items[ap.ID]
	return &saved, nil
}

func (r *AppointmentMemoryRepository) Update(_ context.Context, id uint, patch domain.Patch) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.items[id]
	if !ok {
		return nil, nil
	}

	if patch.Date != nil {
		ap.Date = *patch.Date
	}
	if patch.StartTime != nil {
		ap.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		ap.EndTime = *patch.EndTime
	}
	if patch.Title != nil {
		ap.Title = *patch.Title
	}
	if patch.Description != nil {
		ap.Description = *patch.Description
	}
	if patch.ClientName != nil {
		ap.ClientName = *patch.ClientName
	}
	if patch.ClientEmail != nil {
		ap.ClientEmail = *patch.ClientEmail
	}
	if patch.ClientPhone != nil {
		ap.ClientPhone = *patch.ClientPhone
	}
	if patch.ClientAddress != nil {
		ap.ClientAddress = *patch.ClientAddress
	}
	if patch.AppointmentReason != nil {
		ap.AppointmentReason = *patch.AppointmentReason
	}

	r.items[id] = ap
	return &ap, nil
}

func (r *AppointmentMemoryRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)
