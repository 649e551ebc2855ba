package service

import (
	"context"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	domainService "github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// HistoryAppService serves a user's prediction history together with the
// derived wellness score.
type HistoryAppService interface {
	History(ctx context.Context, userID string) (*dto.HistoryResponse, error)
}

var _ HistoryAppService = (*historyAppServiceImpl)(nil)

type historyAppServiceImpl struct {
	wellness domainService.WellnessService
	logger   logger.Logger
}

// NewHistoryAppService creates the history read service.
func NewHistoryAppService(wellness domainService.WellnessService, log logger.Logger) HistoryAppService {
	return &historyAppServiceImpl{
		wellness: wellness,
		logger:   log,
	}
}

// History returns the user's records newest first plus the wellness score.
func (s *historyAppServiceImpl) History(ctx context.Context, userID string) (*dto.HistoryResponse, error) {
	report, err := s.wellness.ReportFor(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "history aggregation failed", err, logger.Fields{"user_id": userID})
		return nil, errors.ErrInternal("history aggregation failed").WithCause(err)
	}

	records := make([]dto.PredictionRecordDTO, 0, len(report.Records))
	for _, rec := range report.Records {
		records = append(records, dto.NewPredictionRecordDTO(rec))
	}
	latest := make(map[string]float64, len(report.LatestRisk))
	for typ, risk := range report.LatestRisk {
		latest[string(typ)] = risk
	}

	return &dto.HistoryResponse{
		Records:       records,
		WellnessScore: report.Wellness,
		LatestRisk:    latest,
	}, nil
}
