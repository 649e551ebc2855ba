package repository

import (
	"context"

	"github.com/healthpredict/healthpredict/internal/domain/models"
)

// UserRepository defines the interface for interacting with account storage.
type UserRepository interface {
	// Save persists a new account.
	Save(ctx context.Context, user *models.User) error

	// FindByEmailCI retrieves an account by case-insensitive email match.
	// A miss returns (nil, nil) so callers can treat it as anonymous
	// rather than an error.
	FindByEmailCI(ctx context.Context, email string) (*models.User, error)

	// FindByID retrieves an account by its primary key. A miss returns
	// (nil, nil).
	FindByID(ctx context.Context, id string) (*models.User, error)

	// Count returns the total number of registered accounts.
	Count(ctx context.Context) (int64, error)
}
