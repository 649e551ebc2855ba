package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/repository"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

type predictionRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewPredictionRepository creates the gorm-backed prediction log.
func NewPredictionRepository(db *gorm.DB, log logger.Logger) repository.PredictionRepository {
	return &predictionRepository{
		db:  db,
		log: log,
	}
}

func (r *predictionRepository) Insert(ctx context.Context, record *models.PredictionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *predictionRepository) ListByUser(ctx context.Context, userID string) ([]*models.PredictionRecord, error) {
	var records []*models.PredictionRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *predictionRepository) ListRecent(ctx context.Context, limit int) ([]*models.PredictionRecord, error) {
	var records []*models.PredictionRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *predictionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PredictionRecord{}).Count(&count).Error
	return count, err
}
