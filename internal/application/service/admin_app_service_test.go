package service_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appservice "github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/service/mocks"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

func strPtr(s string) *string { return &s }

func TestAdminAppService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves names and attributes guests", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("Count", mock.Anything).Return(int64(12), nil)
		users.On("FindByID", mock.Anything, "u1").
			Return(&models.User{ID: "u1", FullName: "Alice Smith"}, nil)
		users.On("FindByID", mock.Anything, "gone").Return(nil, nil)

		predictions := new(mocks.MockPredictionRepository)
		predictions.On("Count", mock.Anything).Return(int64(40), nil)
		predictions.On("ListRecent", mock.Anything, 20).Return([]*models.PredictionRecord{
			{ID: "r1", UserID: strPtr("u1"), PredictionType: string(constants.AssessmentHeart), Outcome: "63.5% Risk"},
			{ID: "r2", UserID: nil, PredictionType: string(constants.AssessmentDiabetes), Outcome: "10.0% Risk"},
			{ID: "r3", UserID: strPtr("gone"), PredictionType: string(constants.ConversationMedical), Outcome: constants.ChatOutcomeResponded},
			{ID: "r4", UserID: strPtr("u1"), PredictionType: string(constants.AssessmentHeart), Outcome: "20.0% Risk"},
		}, nil)

		svc := appservice.NewAdminAppService(users, predictions, logger.NewNoopLogger())
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(12), stats.TotalUsers)
		assert.Equal(t, int64(40), stats.TotalPredictions)
		require.Len(t, stats.RecentPredictions, 4)
		assert.Equal(t, "Alice Smith", stats.RecentPredictions[0].UserName)
		assert.Equal(t, "Guest", stats.RecentPredictions[1].UserName)
		assert.Equal(t, "Guest", stats.RecentPredictions[2].UserName)
		assert.Equal(t, "Alice Smith", stats.RecentPredictions[3].UserName)
		// Repeated user ids hit the cache, not the repository.
		users.AssertNumberOfCalls(t, "FindByID", 2)
	})

	t.Run("count failure surfaces as internal", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("Count", mock.Anything).Return(int64(0), stderrors.New("db down"))
		predictions := new(mocks.MockPredictionRepository)

		svc := appservice.NewAdminAppService(users, predictions, logger.NewNoopLogger())
		_, err := svc.Stats(ctx)
		require.Error(t, err)
		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, constants.ErrCodeInternal, appErr.Code())
	})
}
