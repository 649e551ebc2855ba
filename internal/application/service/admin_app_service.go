package service

import (
	"context"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/domain/repository"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// recentPredictionsLimit caps the admin panel's activity feed.
const recentPredictionsLimit = 20

// guestDisplayName is shown for anonymous and orphaned records.
const guestDisplayName = "Guest"

// AdminAppService serves the aggregate statistics view.
type AdminAppService interface {
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

var _ AdminAppService = (*adminAppServiceImpl)(nil)

type adminAppServiceImpl struct {
	users       repository.UserRepository
	predictions repository.PredictionRepository
	logger      logger.Logger
}

// NewAdminAppService creates the admin statistics service.
func NewAdminAppService(users repository.UserRepository, predictions repository.PredictionRepository, log logger.Logger) AdminAppService {
	return &adminAppServiceImpl{
		users:       users,
		predictions: predictions,
		logger:      log,
	}
}

// Stats returns platform totals plus the most recent predictions. Records
// without a resolvable account display as guest entries; a record whose
// user was removed is treated the same as an anonymous one.
func (s *adminAppServiceImpl) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		s.logger.Error(ctx, "user count failed", err)
		return nil, errors.ErrInternal("statistics unavailable").WithCause(err)
	}
	totalPredictions, err := s.predictions.Count(ctx)
	if err != nil {
		s.logger.Error(ctx, "prediction count failed", err)
		return nil, errors.ErrInternal("statistics unavailable").WithCause(err)
	}
	recent, err := s.predictions.ListRecent(ctx, recentPredictionsLimit)
	if err != nil {
		s.logger.Error(ctx, "recent predictions listing failed", err)
		return nil, errors.ErrInternal("statistics unavailable").WithCause(err)
	}

	// Resolve display names once per distinct user in the page.
	names := make(map[string]string)
	records := make([]dto.AdminRecordDTO, 0, len(recent))
	for _, rec := range recent {
		records = append(records, dto.AdminRecordDTO{
			ID:             rec.ID,
			UserName:       s.displayName(ctx, names, rec.UserID),
			PredictionType: rec.PredictionType,
			Outcome:        rec.Outcome,
			CreatedAt:      rec.CreatedAt,
		})
	}

	return &dto.AdminStatsResponse{
		TotalUsers:        totalUsers,
		TotalPredictions:  totalPredictions,
		RecentPredictions: records,
	}, nil
}

func (s *adminAppServiceImpl) displayName(ctx context.Context, cache map[string]string, userID *string) string {
	if userID == nil {
		return guestDisplayName
	}
	if name, ok := cache[*userID]; ok {
		return name
	}
	name := guestDisplayName
	user, err := s.users.FindByID(ctx, *userID)
	if err != nil {
		s.logger.Warn(ctx, "account lookup failed for admin panel", logger.Fields{"user_id": *userID})
	} else if user != nil && user.FullName != "" {
		name = user.FullName
	}
	cache[*userID] = name
	return name
}
