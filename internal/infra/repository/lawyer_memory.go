package repository

import (
	"context"
	"sync"

	domain "github.com/gtkpad369/LegalSch/internal/domain/lawyer"
	"github.com/gtkpad369/LegalSch/internal/models"
)

type LawyerMemoryRepository struct {
	mu     sync.Mutex
	items  map[uint]models.Lawyer
	nextID uint
}

func NewLawyerMemoryRepository() *LawyerMemoryRepository {
	return &LawyerMemoryRepository{
		items:  make(map[uint]models.Lawyer),
		nextID: 1,
	}
}

func (r *LawyerMemoryRepository) FindByID(_ context.Context, id uint) (*models.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lw, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &lw, nil
}

func (r *LawyerMemoryRepository) findBy(match func(models.Lawyer) bool) *models.Lawyer {
	for _, lw := range r.items {
		if match(lw) {
			found := lw
			return &found
		}
	}
	return nil
}

func (r *LawyerMemoryRepository) FindByEmail(_ context.Context, email string) (*models.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findBy(func(lw models.Lawyer) bool { return lw.Email == email }), nil
}

func (r *LawyerMemoryRepository) FindByOabNumber(_ context.Context, oabNumber string) (*models.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findBy(func(lw models.Lawyer) bool { return lw.OabNumber == oabNumber }), nil
}

func (r *LawyerMemoryRepository) FindBySlug(_ context.Context, slug string) (*models.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findBy(func(lw models.Lawyer) bool { return lw.Slug == slug }), nil
}

func (r *LawyerMemoryRepository) Save(_ context.Context, l *models.Lawyer) (*models.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == 0 {
		l.ID = r.nextID
		r.nextID++
	}
	r.items[l.ID] = *l
	saved := r.items[l.ID]
	return &saved, nil
}

func (r *LawyerMemoryRepository) Update(_ context.Context, id uint, fields map[string]any) (*models.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lw, ok := r.items[id]
	if !ok {
		return nil, nil
	}

	for k, v := range fields {
		switch k {
		case "name":
			lw.Name = v.(string)
		case "phone":
			lw.Phone = v.(string)
		case "address":
			lw.Address = v.(string)
		case "description":
			lw.Description = v.(string)
		case "areas_of_expertise":
			switch areas := v.(type) {
			case models.StringList:
				lw.AreasOfExpertise = areas
			case []string:
				lw.AreasOfExpertise = models.StringList(areas)
			}
		case "social_links":
			lw.SocialLinks = v.(models.SocialLinks)
		case "external_links":
			lw.ExternalLinks = v.(models.ExternalLinks)
		case "hashed_password":
			lw.HashedPassword = v.(string)
		}
	}

	r.items[id] = lw
	return &lw, nil
}

func (r *LawyerMemoryRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// Compile-time check
var _ domain.Repository = (*LawyerMemoryRepository)(nil)
