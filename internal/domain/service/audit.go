package service

import (
	"context"
	"time"
)

// PredictionEvent is the audit payload emitted after a prediction record is
// written. Publication is best-effort: failures are logged and never affect
// the request that produced the record.
type PredictionEvent struct {
	RecordID       string    `json:"record_id"`
	UserID         string    `json:"user_id,omitempty"`
	PredictionType string    `json:"prediction_type"`
	Outcome        string    `json:"outcome"`
	RiskPercent    *float64  `json:"risk_percent,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AuditService publishes prediction events to an external audit stream.
type AuditService interface {
	PublishPrediction(ctx context.Context, event PredictionEvent) error
	Close() error
}
