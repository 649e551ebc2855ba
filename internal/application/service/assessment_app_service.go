package service

import (
	"context"
	"time"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/domain/models"
	domainService "github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/internal/infrastructure/monitoring"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
	"github.com/healthpredict/healthpredict/pkg/utils"
)

// AssessmentAppService runs the full submission pipeline for each of the
// three risk assessment types: validate, encode, score, record, narrate.
// The caller identity is an email string, empty for anonymous submissions.
type AssessmentAppService interface {
	AssessHeart(ctx context.Context, email string, req *dto.HeartAssessmentRequest) (*dto.AssessmentReport, error)
	AssessDiabetes(ctx context.Context, email string, req *dto.DiabetesAssessmentRequest) (*dto.AssessmentReport, error)
	AssessParkinsons(ctx context.Context, email string, req *dto.ParkinsonsAssessmentRequest) (*dto.AssessmentReport, error)
}

var _ AssessmentAppService = (*assessmentAppServiceImpl)(nil)

type assessmentAppServiceImpl struct {
	scorer    domainService.RiskScorer
	recorder  PredictionRecorder
	narrative domainService.NarrativeClient
	metrics   *monitoring.Metrics
	logger    logger.Logger
}

// NewAssessmentAppService creates the assessment pipeline orchestrator.
func NewAssessmentAppService(
	scorer domainService.RiskScorer,
	recorder PredictionRecorder,
	narrative domainService.NarrativeClient,
	metrics *monitoring.Metrics,
	log logger.Logger,
) AssessmentAppService {
	return &assessmentAppServiceImpl{
		scorer:    scorer,
		recorder:  recorder,
		narrative: narrative,
		metrics:   metrics,
		logger:    log,
	}
}

// AssessHeart scores one heart disease submission.
func (s *assessmentAppServiceImpl) AssessHeart(ctx context.Context, email string, req *dto.HeartAssessmentRequest) (*dto.AssessmentReport, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	features := req.Features()
	return s.assess(ctx, email, features, func(riskPercent float64) string {
		return heartAssessmentPrompt(features, riskPercent, req.Language())
	})
}

// AssessDiabetes scores one diabetes submission.
func (s *assessmentAppServiceImpl) AssessDiabetes(ctx context.Context, email string, req *dto.DiabetesAssessmentRequest) (*dto.AssessmentReport, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	features := req.Features()
	return s.assess(ctx, email, features, func(riskPercent float64) string {
		return diabetesAssessmentPrompt(features, riskPercent, req.Language())
	})
}

// AssessParkinsons scores one voice-analysis submission.
func (s *assessmentAppServiceImpl) AssessParkinsons(ctx context.Context, email string, req *dto.ParkinsonsAssessmentRequest) (*dto.AssessmentReport, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	features := req.Features()
	return s.assess(ctx, email, features, func(riskPercent float64) string {
		return parkinsonsAssessmentPrompt(features, riskPercent, req.Language())
	})
}

// assess runs the shared pipeline. Input errors abort before any side
// effect; scoring failures degrade to a zero-risk report with an explicit
// indicator; recording and narration never fail the request.
func (s *assessmentAppServiceImpl) assess(ctx context.Context, email string, features models.FeatureSet, buildPrompt func(float64) string) (*dto.AssessmentReport, error) {
	typ := features.AssessmentType()
	start := time.Now()

	result := s.scorer.Score(ctx, features)
	if result.Failed() {
		if appErr, ok := errors.AsAppError(result.Err); ok {
			switch appErr.Code() {
			case constants.ErrCodeValidation, constants.ErrCodeUnknownCategory:
				s.recordMetrics(typ, "rejected", start)
				return nil, appErr
			}
		}
		// Scoring infrastructure failed. The submission itself was valid,
		// so the pipeline continues with a zero risk and a visible failure
		// indicator instead of dropping the request.
		s.recordMetrics(typ, "failed", start)
		s.recorder.Record(ctx, email, string(typ), features.InputSummary(), models.FormatOutcome(0), float64Ptr(0))
		return &dto.AssessmentReport{
			AssessmentType: string(typ),
			RiskPercent:    0,
			RiskLevel:      string(constants.RiskLevelLow),
			Outcome:        models.FormatOutcome(0),
			InputSummary:   features.InputSummary(),
			ScoringFailed:  true,
		}, nil
	}

	s.recordMetrics(typ, "ok", start)
	outcome := result.Outcome()
	s.recorder.Record(ctx, email, string(typ), features.InputSummary(), outcome, float64Ptr(result.RiskPercent))

	report := &dto.AssessmentReport{
		AssessmentType: string(typ),
		RiskPercent:    result.RiskPercent,
		RiskLevel:      string(result.Level),
		Outcome:        outcome,
		InputSummary:   features.InputSummary(),
		Degraded:       result.Degraded,
	}
	report.Narrative = s.narrate(ctx, typ, buildPrompt(result.RiskPercent))
	return report, nil
}

// narrate asks the language model for the explanation text. Failures are
// logged and leave the narrative empty; the scored report stands on its own.
func (s *assessmentAppServiceImpl) narrate(ctx context.Context, typ constants.AssessmentType, prompt string) string {
	if s.narrative == nil {
		return ""
	}
	start := time.Now()
	text, err := s.narrative.Complete(ctx, []domainService.ChatMessage{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		s.logger.Warn(ctx, "narrative generation failed", logger.Fields{
			"type": string(typ),
		})
		if s.metrics != nil {
			s.metrics.RecordNarrative("error", time.Since(start))
		}
		return ""
	}
	if s.metrics != nil {
		s.metrics.RecordNarrative("ok", time.Since(start))
	}
	return text
}

func (s *assessmentAppServiceImpl) recordMetrics(typ constants.AssessmentType, result string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordAssessment(typ, result, time.Since(start))
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
