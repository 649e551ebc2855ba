// Package audit implements the AuditService interface using Kafka.
package audit

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/healthpredict/healthpredict/internal/config"
	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// KafkaProducer is a Kafka-backed implementation of the AuditService.
type KafkaProducer struct {
	writer *kafka.Writer
	logger logger.Logger
}

var _ service.AuditService = (*KafkaProducer)(nil)

// NewKafkaProducer creates a new KafkaProducer.
func NewKafkaProducer(cfg *config.KafkaConfig, log logger.Logger) service.AuditService {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: log,
	}
}

// PublishPrediction sends a prediction event to the Kafka topic. Errors are
// returned for the caller to log; the caller never surfaces them.
func (p *KafkaProducer) PublishPrediction(ctx context.Context, event service.PredictionEvent) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal prediction event", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.PredictionType),
		Value: bytes,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to write prediction event to Kafka", err)
	}
	return err
}

// Close closes the underlying Kafka writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
