package sqlstore

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/repository"
	"github.com/healthpredict/healthpredict/pkg/logger"
	"github.com/healthpredict/healthpredict/pkg/utils"
)

type userRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewUserRepository creates the gorm-backed account repository.
func NewUserRepository(db *gorm.DB, log logger.Logger) repository.UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmailCI matches the stored lowercased email against the normalized
// input, so lookups succeed regardless of the caller's casing or padding.
func (r *userRepository) FindByEmailCI(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", utils.NormalizeEmail(email)).
		First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
