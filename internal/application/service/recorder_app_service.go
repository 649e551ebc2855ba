package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/repository"
	domainService "github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/internal/infrastructure/monitoring"
	"github.com/healthpredict/healthpredict/pkg/logger"
	"github.com/healthpredict/healthpredict/pkg/utils"
)

// PredictionRecorder appends entries to the prediction log. Recording is
// strictly best-effort: a failed write is logged and counted but never
// surfaces to the caller, whose computed result is already final.
type PredictionRecorder interface {
	// Record resolves the email to an account (or anonymous), serializes
	// the input snapshot and inserts one immutable log row. The returned
	// record is nil when the write failed or was skipped.
	Record(ctx context.Context, email string, predictionType string, inputs map[string]interface{}, outcome string, riskPercent *float64) *models.PredictionRecord
}

var _ PredictionRecorder = (*predictionRecorderImpl)(nil)

type predictionRecorderImpl struct {
	users       repository.UserRepository
	predictions repository.PredictionRepository
	audit       domainService.AuditService
	metrics     *monitoring.Metrics
	logger      logger.Logger
}

// NewPredictionRecorder creates the best-effort prediction log writer.
func NewPredictionRecorder(
	users repository.UserRepository,
	predictions repository.PredictionRepository,
	audit domainService.AuditService,
	metrics *monitoring.Metrics,
	log logger.Logger,
) PredictionRecorder {
	return &predictionRecorderImpl{
		users:       users,
		predictions: predictions,
		audit:       audit,
		metrics:     metrics,
		logger:      log,
	}
}

// Record writes one log row. Identity resolution misses are not errors:
// an unknown or empty email yields an anonymous record. Every failure
// path logs and returns nil without propagating.
func (s *predictionRecorderImpl) Record(ctx context.Context, email string, predictionType string, inputs map[string]interface{}, outcome string, riskPercent *float64) *models.PredictionRecord {
	record := &models.PredictionRecord{
		ID:             uuid.New().String(),
		UserID:         s.resolveUser(ctx, email),
		PredictionType: predictionType,
		InputData:      serializeInputs(inputs),
		Outcome:        outcome,
		RiskPercent:    riskPercent,
		CreatedAt:      time.Now(),
	}

	if err := s.predictions.Insert(ctx, record); err != nil {
		s.logger.Error(ctx, "prediction log write failed", err, logger.Fields{
			"prediction_type": predictionType,
			"record_id":       record.ID,
		})
		if s.metrics != nil {
			s.metrics.RecordRecorderFailure(predictionType)
		}
		return nil
	}

	s.publishAudit(ctx, record)
	return record
}

// resolveUser maps an email onto an account reference. Lookups are
// case-insensitive; misses and lookup failures both resolve to nil.
func (s *predictionRecorderImpl) resolveUser(ctx context.Context, email string) *string {
	normalized := utils.NormalizeEmail(email)
	if normalized == "" {
		return nil
	}
	user, err := s.users.FindByEmailCI(ctx, normalized)
	if err != nil {
		s.logger.Warn(ctx, "account resolution failed, recording as anonymous", logger.Fields{
			"email": normalized,
		})
		return nil
	}
	if user == nil {
		return nil
	}
	return &user.ID
}

func (s *predictionRecorderImpl) publishAudit(ctx context.Context, record *models.PredictionRecord) {
	if s.audit == nil {
		return
	}
	event := domainService.PredictionEvent{
		RecordID:       record.ID,
		PredictionType: record.PredictionType,
		Outcome:        record.Outcome,
		RiskPercent:    record.RiskPercent,
		CreatedAt:      record.CreatedAt,
	}
	if record.UserID != nil {
		event.UserID = *record.UserID
	}
	if err := s.audit.PublishPrediction(ctx, event); err != nil {
		s.logger.Warn(ctx, "audit publish failed", logger.Fields{
			"record_id": record.ID,
		})
	}
}

// serializeInputs renders the input snapshot as canonical JSON. A snapshot
// that cannot be marshalled falls back to fmt so the record is still
// written with something readable.
func serializeInputs(inputs map[string]interface{}) string {
	if len(inputs) == 0 {
		return ""
	}
	data, err := json.Marshal(inputs)
	if err != nil {
		return fmt.Sprintf("%v", inputs)
	}
	return string(data)
}
