package service

import (
	"context"
	"math"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/repository"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// WellnessReport is a user's prediction history plus the derived composite
// wellness score. The score is computed on demand, never stored.
type WellnessReport struct {
	Records  []*models.PredictionRecord `json:"records"`
	Wellness float64                    `json:"wellness_score"`

	// LatestRisk holds the most recent risk percentage per assessment
	// type; types never assessed are absent.
	LatestRisk map[constants.AssessmentType]float64 `json:"latest_risk"`
}

// WellnessService aggregates a user's history into a wellness score.
type WellnessService interface {
	ReportFor(ctx context.Context, userID string) (*WellnessReport, error)
}

var _ WellnessService = (*wellnessService)(nil)

type wellnessService struct {
	predictions repository.PredictionRepository
	log         logger.Logger
}

// NewWellnessService creates the history aggregator.
func NewWellnessService(predictions repository.PredictionRepository, log logger.Logger) WellnessService {
	return &wellnessService{
		predictions: predictions,
		log:         log,
	}
}

// ReportFor fetches the user's records newest-first, picks the most recent
// record per risk-assessment type, extracts each risk percentage and
// averages the wellness contributions. A type with no record, or whose
// outcome cannot be read, contributes zero risk (full wellness).
func (s *wellnessService) ReportFor(ctx context.Context, userID string) (*WellnessReport, error) {
	records, err := s.predictions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	latest := make(map[constants.AssessmentType]float64)
	for _, rec := range records {
		typ := constants.AssessmentType(rec.PredictionType)
		if !rec.IsRiskAssessment() {
			continue
		}
		if _, seen := latest[typ]; seen {
			continue
		}
		risk, ok := riskOf(rec)
		if !ok {
			s.log.Warn(ctx, "unparseable outcome, counting as zero risk", logger.Fields{
				"record_id": rec.ID,
				"type":      rec.PredictionType,
			})
			risk = 0
		}
		latest[typ] = risk
	}

	total := 0.0
	for _, typ := range constants.WellnessTypes {
		total += 100 - latest[typ]
	}
	wellness := round1(total / float64(len(constants.WellnessTypes)))

	return &WellnessReport{
		Records:    records,
		Wellness:   wellness,
		LatestRisk: latest,
	}, nil
}

// riskOf reads the risk percentage from a record, preferring the typed
// column and falling back to parsing the outcome label for legacy rows.
func riskOf(rec *models.PredictionRecord) (float64, bool) {
	if rec.RiskPercent != nil {
		return *rec.RiskPercent, true
	}
	return models.ParseOutcome(rec.Outcome)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
