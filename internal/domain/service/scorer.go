// Package service holds the domain services for the HealthPredict core:
// risk scoring against frozen model artifacts and wellness aggregation.
package service

import (
	"context"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// Scaler reproduces the training-time feature normalization of a frozen
// model artifact.
type Scaler interface {
	Transform(vector []float64) ([]float64, error)
}

// Classifier is a frozen binary classifier. PredictProba returns the class
// probabilities as [p_class0, p_class1]; degenerate artifacts may expose
// only a single probability.
type Classifier interface {
	PredictProba(vector []float64) ([]float64, error)
}

// ArtifactProvider resolves the frozen classifier and optional scaler for
// an assessment type. A nil scaler with a nil error means the type has no
// scaler artifact; scoring then proceeds unscaled at reduced accuracy.
type ArtifactProvider interface {
	Classifier(ctx context.Context, typ constants.AssessmentType) (Classifier, error)
	Scaler(ctx context.Context, typ constants.AssessmentType) (Scaler, error)
}

// RiskScorer produces a calibrated risk percentage for one submission.
type RiskScorer interface {
	Score(ctx context.Context, features models.FeatureSet) models.ScoreResult
}

var _ RiskScorer = (*riskScorer)(nil)

type riskScorer struct {
	artifacts ArtifactProvider
	log       logger.Logger
}

// NewRiskScorer creates the scoring service backed by an artifact provider.
func NewRiskScorer(artifacts ArtifactProvider, log logger.Logger) RiskScorer {
	return &riskScorer{
		artifacts: artifacts,
		log:       log,
	}
}

// Score projects the feature set into its vector, applies the type's scaler
// when one exists, and takes the positive-class probability times 100.
// Failures never propagate as errors: the result carries a zero risk and
// the wrapped cause so the caller can render an explicit failure indicator.
func (s *riskScorer) Score(ctx context.Context, features models.FeatureSet) models.ScoreResult {
	typ := features.AssessmentType()

	vector, err := features.Vector()
	if err != nil {
		// Encoding failures are validation errors and do propagate; they
		// are rejected before scoring, never degraded.
		return models.ScoreResult{Level: constants.RiskLevelLow, Err: err}
	}

	clf, err := s.artifacts.Classifier(ctx, typ)
	if err != nil {
		return s.failed(ctx, typ, errors.ErrScoring("classifier artifact unavailable").WithCause(err))
	}

	degraded := false
	scaler, err := s.artifacts.Scaler(ctx, typ)
	if err != nil {
		return s.failed(ctx, typ, errors.ErrScoring("scaler artifact unavailable").WithCause(err))
	}
	if scaler != nil {
		vector, err = scaler.Transform(vector)
		if err != nil {
			return s.failed(ctx, typ, errors.ErrScoring("scaler transform failed").WithCause(err))
		}
	} else {
		degraded = true
		s.log.Warn(ctx, "scoring without scaler, reduced accuracy", logger.Fields{"type": string(typ)})
	}

	proba, err := clf.PredictProba(vector)
	if err != nil {
		return s.failed(ctx, typ, errors.ErrScoring("classifier inference failed").WithCause(err))
	}

	// A degenerate artifact exposing a single class probability defaults
	// to zero risk.
	risk := 0.0
	if len(proba) > 1 {
		risk = proba[1] * 100
	}

	return models.ScoreResult{
		RiskPercent: risk,
		Level:       models.LevelFor(risk),
		Degraded:    degraded,
	}
}

func (s *riskScorer) failed(ctx context.Context, typ constants.AssessmentType, err error) models.ScoreResult {
	s.log.Error(ctx, "risk scoring failed", err, logger.Fields{"type": string(typ)})
	return models.ScoreResult{
		RiskPercent: 0,
		Level:       constants.RiskLevelLow,
		Err:         err,
	}
}
