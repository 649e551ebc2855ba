package audit

import (
	"context"

	"github.com/healthpredict/healthpredict/internal/domain/service"
)

type noopProducer struct{}

// NewNoopProducer creates an AuditService that discards all events, used
// when Kafka publication is disabled.
func NewNoopProducer() service.AuditService {
	return &noopProducer{}
}

func (noopProducer) PublishPrediction(ctx context.Context, event service.PredictionEvent) error {
	return nil
}

func (noopProducer) Close() error {
	return nil
}
