package repository

import (
	"context"
	"sync"
	"time"

	domain "github.com/gtkpad369/LegalSch/internal/domain/schedule"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type ScheduleMemoryRepository struct {
	mu         sync.Mutex
	templates  map[uint]models.ScheduleTemplate
	weeks      map[uint]models.WeeklySchedule
	nextTplID  uint
	nextWeekID uint
}

func NewScheduleMemoryRepository() *ScheduleMemoryRepository {
	return &ScheduleMemoryRepository{
		templates:  make(map[uint]models.ScheduleTemplate),
		weeks:      make(map[uint]models.WeeklySchedule),
		nextTplID:  1,
		nextWeekID: 1,
	}
}

func (r *ScheduleMemoryRepository) FindTemplateByID(_ context.Context, id uint) (*models.ScheduleTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *ScheduleMemoryRepository) FindTemplatesByLawyerID(_ context.Context, lawyerID uint) ([]models.ScheduleTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ScheduleTemplate
	for _, t := range r.templates {
		if t.LawyerID == lawyerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *ScheduleMemoryRepository) SaveTemplate(_ context.Context, t *models.ScheduleTemplate) (*models.ScheduleTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == 0 {
		t.ID = r.nextTplID
		r.nextTplID++
	}
	r.templates[t.ID] = *t
	saved := r.templates[t.ID]
	return &saved, nil
}

func (r *ScheduleMemoryRepository) FindWeeklyByID(_ context.Context, id uint) (*models.WeeklySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.weeks[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *ScheduleMemoryRepository) FindWeeklyByLawyerID(_ context.Context, lawyerID uint) ([]models.WeeklySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.WeeklySchedule
	for _, w := range r.weeks {
		if w.LawyerID == lawyerID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *ScheduleMemoryRepository) FindWeeklyByDate(_ context.Context, lawyerID uint, date time.Time) (*models.WeeklySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, w := range r.weeks {
		if w.LawyerID != lawyerID {
			continue
		}
		if !w.WeekStartDate.After(date) && w.WeekStartDate.AddDate(0, 0, 7).After(date) {
			found := w
			return &found, nil
		}
	}
	return nil, nil
}

func (r *ScheduleMemoryRepository) SaveWeekly(_ context.Context, w *models.WeeklySchedule) (*models.WeeklySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w.ID == 0 {
		w.ID = r.nextWeekID
		r.nextWeekID++
	}
	r.weeks[w.ID] = *w
	saved := r.weeks[w.ID]
	return &saved, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleMemoryRepository)(nil)
