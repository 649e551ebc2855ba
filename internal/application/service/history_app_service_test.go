package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appservice "github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/internal/domain/service/mocks"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

func TestHistoryAppService_History(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	risk := 80.0

	wellness := new(mocks.MockWellnessService)
	wellness.On("ReportFor", mock.Anything, "u1").Return(&service.WellnessReport{
		Records: []*models.PredictionRecord{
			{
				ID:             "r1",
				PredictionType: string(constants.AssessmentHeart),
				InputData:      `{"age":50}`,
				Outcome:        "80.0% Risk",
				RiskPercent:    &risk,
				CreatedAt:      now,
			},
			{
				ID:             "r2",
				PredictionType: string(constants.ConversationMedical),
				InputData:      "not json",
				Outcome:        constants.ChatOutcomeResponded,
				CreatedAt:      now.Add(-time.Hour),
			},
		},
		Wellness: 66.7,
		LatestRisk: map[constants.AssessmentType]float64{
			constants.AssessmentHeart: 80.0,
		},
	}, nil)

	svc := appservice.NewHistoryAppService(wellness, logger.NewNoopLogger())
	resp, err := svc.History(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 66.7, resp.WellnessScore)
	assert.Equal(t, map[string]float64{string(constants.AssessmentHeart): 80.0}, resp.LatestRisk)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, float64(50), resp.Records[0].InputData["age"])
	assert.Nil(t, resp.Records[1].InputData)
	assert.Equal(t, "80.0% Risk", resp.Records[0].Outcome)
}
