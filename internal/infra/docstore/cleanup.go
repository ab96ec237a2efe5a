package docstore

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gtkpad369/LegalSch/internal/models"
	"github.com/gtkpad369/LegalSch/internal/timezone"
)

// CleanupService removes expired client documents: the object first,
// then the row. Rows whose object deletion fails are retried on the
// next sweep.
type CleanupService struct {
	db    *gorm.DB
	store Store
}

func NewCleanupService(db *gorm.DB, store Store) *CleanupService {
	return &CleanupService{db: db, store: store}
}

// Run sweeps once and returns how many documents were removed.
func (s *CleanupService) Run(ctx context.Context) (int, error) {
	var expired []models.ClientDocument
	if err := s.db.WithContext(ctx).
		Where("expiration_date < ?", timezone.Now()).
		Find(&expired).Error; err != nil {
		return 0, err
	}

	deleted := 0
	for _, doc := range expired {
		if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
			zap.L().Error("failed to delete expired document object",
				zap.Uint("document_id", doc.ID),
				zap.Error(err),
			)
			continue
		}

		if err := s.db.WithContext(ctx).Delete(&models.ClientDocument{}, doc.ID).Error; err != nil {
			zap.L().Error("failed to delete expired document row",
				zap.Uint("document_id", doc.ID),
				zap.Error(err),
			)
			continue
		}

		deleted++
	}

	return deleted, nil
}

// Start sweeps on an interval until ctx is cancelled.
func (s *CleanupService) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := s.Run(ctx); err != nil {
					zap.L().Error("document cleanup sweep failed", zap.Error(err))
				} else if n > 0 {
					zap.L().Info("expired documents removed", zap.Int("count", n))
				}
			}
		}
	}()
}
