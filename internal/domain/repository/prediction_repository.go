package repository

import (
	"context"

	"github.com/healthpredict/healthpredict/internal/domain/models"
)

// PredictionRepository defines the interface for the prediction log.
// Records are insert-only; nothing in the service updates or deletes them.
type PredictionRepository interface {
	// Insert appends one immutable record.
	Insert(ctx context.Context, record *models.PredictionRecord) error

	// ListByUser retrieves a user's records ordered newest-first.
	ListByUser(ctx context.Context, userID string) ([]*models.PredictionRecord, error)

	// ListRecent retrieves the most recent records across all users,
	// newest-first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*models.PredictionRecord, error)

	// Count returns the total number of logged records.
	Count(ctx context.Context) (int64, error)
}
