package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	appservice "github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/internal/domain/service/mocks"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// recorderMock stands in for the prediction log writer.
type recorderMock struct {
	mock.Mock
}

func (m *recorderMock) Record(ctx context.Context, email string, predictionType string, inputs map[string]interface{}, outcome string, riskPercent *float64) *models.PredictionRecord {
	args := m.Called(ctx, email, predictionType, inputs, outcome, riskPercent)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.PredictionRecord)
}

func validHeartRequest() *dto.HeartAssessmentRequest {
	return &dto.HeartAssessmentRequest{
		Age:            50,
		Sex:            "Male",
		ChestPain:      "Atypical Angina",
		RestingBP:      120,
		Cholesterol:    200,
		FastingBS:      "No",
		RestECG:        "Normal",
		MaxHeartRate:   150,
		ExerciseAngina: "Yes",
		STDepression:   1.5,
		Slope:          "Flat",
		MajorVessels:   2,
		Thalassemia:    "Reversible Defect",
		BMI:            25.0,
		FamilyHistory:  "Yes",
		Smoking:        "No",
	}
}

func TestAssessmentAppService_AssessHeart(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline produces a recorded report with narrative", func(t *testing.T) {
		scorer := new(mocks.MockRiskScorer)
		scorer.On("Score", mock.Anything, mock.Anything).Return(models.ScoreResult{
			RiskPercent: 63.5,
			Level:       constants.RiskLevelModerate,
		})
		recorder := new(recorderMock)
		recorder.On("Record", mock.Anything, "user@example.com", string(constants.AssessmentHeart),
			mock.Anything, "63.5% Risk", mock.MatchedBy(func(p *float64) bool {
				return p != nil && *p == 63.5
			})).Return(&models.PredictionRecord{ID: "r1"})
		narrative := new(mocks.MockNarrativeClient)
		narrative.On("Complete", mock.Anything, mock.MatchedBy(func(msgs []service.ChatMessage) bool {
			return len(msgs) == 1 && strings.Contains(msgs[0].Content, "Risk Percentage: 63.5%")
		})).Return("Your assessment narrative.", nil)

		svc := appservice.NewAssessmentAppService(scorer, recorder, narrative, nil, logger.NewNoopLogger())
		report, err := svc.AssessHeart(ctx, "user@example.com", validHeartRequest())
		require.NoError(t, err)

		assert.Equal(t, string(constants.AssessmentHeart), report.AssessmentType)
		assert.Equal(t, 63.5, report.RiskPercent)
		assert.Equal(t, "moderate", report.RiskLevel)
		assert.Equal(t, "63.5% Risk", report.Outcome)
		assert.Equal(t, "Your assessment narrative.", report.Narrative)
		assert.False(t, report.ScoringFailed)
		recorder.AssertExpectations(t)
	})

	t.Run("unknown category aborts before any side effect", func(t *testing.T) {
		scorer := new(mocks.MockRiskScorer)
		scorer.On("Score", mock.Anything, mock.Anything).Return(models.ScoreResult{
			Level: constants.RiskLevelLow,
			Err:   errors.ErrUnknownCategoryValue("thalassemia", "Unknown"),
		})
		recorder := new(recorderMock)
		narrative := new(mocks.MockNarrativeClient)

		svc := appservice.NewAssessmentAppService(scorer, recorder, narrative, nil, logger.NewNoopLogger())
		req := validHeartRequest()
		req.Thalassemia = "Unknown"
		_, err := svc.AssessHeart(ctx, "", req)

		require.Error(t, err)
		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, constants.ErrCodeUnknownCategory, appErr.Code())
		recorder.AssertNotCalled(t, "Record")
		narrative.AssertNotCalled(t, "Complete")
	})

	t.Run("out-of-range numeric input never reaches the scorer", func(t *testing.T) {
		scorer := new(mocks.MockRiskScorer)
		svc := appservice.NewAssessmentAppService(scorer, new(recorderMock), nil, nil, logger.NewNoopLogger())

		req := validHeartRequest()
		req.Age = 150
		_, err := svc.AssessHeart(ctx, "", req)

		require.Error(t, err)
		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, constants.ErrCodeValidation, appErr.Code())
		scorer.AssertNotCalled(t, "Score")
	})

	t.Run("scoring failure degrades to a zero-risk report with indicator", func(t *testing.T) {
		scorer := new(mocks.MockRiskScorer)
		scorer.On("Score", mock.Anything, mock.Anything).Return(models.ScoreResult{
			Level: constants.RiskLevelLow,
			Err:   errors.ErrScoring("classifier artifact unavailable"),
		})
		recorder := new(recorderMock)
		recorder.On("Record", mock.Anything, "user@example.com", string(constants.AssessmentHeart),
			mock.Anything, "0.0% Risk", mock.Anything).Return(nil)
		narrative := new(mocks.MockNarrativeClient)

		svc := appservice.NewAssessmentAppService(scorer, recorder, narrative, nil, logger.NewNoopLogger())
		report, err := svc.AssessHeart(ctx, "user@example.com", validHeartRequest())
		require.NoError(t, err)

		assert.True(t, report.ScoringFailed)
		assert.Equal(t, 0.0, report.RiskPercent)
		assert.Equal(t, "0.0% Risk", report.Outcome)
		assert.Empty(t, report.Narrative)
		narrative.AssertNotCalled(t, "Complete")
		recorder.AssertExpectations(t)
	})

	t.Run("narrative failure leaves the scored report intact", func(t *testing.T) {
		scorer := new(mocks.MockRiskScorer)
		scorer.On("Score", mock.Anything, mock.Anything).Return(models.ScoreResult{
			RiskPercent: 85.0,
			Level:       constants.RiskLevelHigh,
		})
		recorder := new(recorderMock)
		recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&models.PredictionRecord{ID: "r1"})
		narrative := new(mocks.MockNarrativeClient)
		narrative.On("Complete", mock.Anything, mock.Anything).
			Return("", errors.ErrUnavailable("model gateway timeout"))

		svc := appservice.NewAssessmentAppService(scorer, recorder, narrative, nil, logger.NewNoopLogger())
		report, err := svc.AssessHeart(ctx, "", validHeartRequest())
		require.NoError(t, err)

		assert.Equal(t, 85.0, report.RiskPercent)
		assert.Equal(t, "high", report.RiskLevel)
		assert.Empty(t, report.Narrative)
		assert.False(t, report.ScoringFailed)
	})

	t.Run("degraded scoring is surfaced on the report", func(t *testing.T) {
		scorer := new(mocks.MockRiskScorer)
		scorer.On("Score", mock.Anything, mock.Anything).Return(models.ScoreResult{
			RiskPercent: 20.0,
			Level:       constants.RiskLevelLow,
			Degraded:    true,
		})
		recorder := new(recorderMock)
		recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&models.PredictionRecord{ID: "r1"})

		svc := appservice.NewAssessmentAppService(scorer, recorder, nil, nil, logger.NewNoopLogger())
		report, err := svc.AssessHeart(ctx, "", validHeartRequest())
		require.NoError(t, err)
		assert.True(t, report.Degraded)
	})
}

func TestAssessmentAppService_MarathiNarrative(t *testing.T) {
	scorer := new(mocks.MockRiskScorer)
	scorer.On("Score", mock.Anything, mock.Anything).Return(models.ScoreResult{
		RiskPercent: 30.0,
		Level:       constants.RiskLevelLow,
	})
	recorder := new(recorderMock)
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&models.PredictionRecord{ID: "r1"})
	narrative := new(mocks.MockNarrativeClient)
	narrative.On("Complete", mock.Anything, mock.MatchedBy(func(msgs []service.ChatMessage) bool {
		return len(msgs) == 1 && strings.Contains(msgs[0].Content, "Response MUST be in Marathi language")
	})).Return("narrative", nil)

	svc := appservice.NewAssessmentAppService(scorer, recorder, narrative, nil, logger.NewNoopLogger())
	req := validHeartRequest()
	req.Lang = "mr"
	_, err := svc.AssessHeart(context.Background(), "", req)
	require.NoError(t, err)
	narrative.AssertExpectations(t)
}

func TestAssessmentAppService_AssessDiabetes(t *testing.T) {
	scorer := new(mocks.MockRiskScorer)
	scorer.On("Score", mock.Anything, mock.MatchedBy(func(f models.FeatureSet) bool {
		return f.AssessmentType() == constants.AssessmentDiabetes
	})).Return(models.ScoreResult{RiskPercent: 41.0, Level: constants.RiskLevelModerate})
	recorder := new(recorderMock)
	recorder.On("Record", mock.Anything, "", string(constants.AssessmentDiabetes),
		mock.Anything, "41.0% Risk", mock.Anything).Return(&models.PredictionRecord{ID: "r1"})

	svc := appservice.NewAssessmentAppService(scorer, recorder, nil, nil, logger.NewNoopLogger())
	report, err := svc.AssessDiabetes(context.Background(), "", &dto.DiabetesAssessmentRequest{
		Pregnancies:   0,
		Glucose:       130,
		BloodPressure: 70,
		SkinThickness: 20,
		Insulin:       0,
		BMI:           28.5,
		Pedigree:      0.5,
		Age:           45,
	})
	require.NoError(t, err)
	assert.Equal(t, "41.0% Risk", report.Outcome)
	recorder.AssertExpectations(t)
}

func TestAssessmentAppService_AssessParkinsons(t *testing.T) {
	scorer := new(mocks.MockRiskScorer)
	scorer.On("Score", mock.Anything, mock.MatchedBy(func(f models.FeatureSet) bool {
		return f.AssessmentType() == constants.AssessmentParkinsons
	})).Return(models.ScoreResult{RiskPercent: 75.2, Level: constants.RiskLevelHigh})
	recorder := new(recorderMock)
	recorder.On("Record", mock.Anything, "", string(constants.AssessmentParkinsons),
		mock.Anything, "75.2% Risk", mock.Anything).Return(&models.PredictionRecord{ID: "r1"})

	svc := appservice.NewAssessmentAppService(scorer, recorder, nil, nil, logger.NewNoopLogger())
	report, err := svc.AssessParkinsons(context.Background(), "", &dto.ParkinsonsAssessmentRequest{
		Fo: 150, Fhi: 200, Flo: 100,
		JitterPct: 0.005, JitterAbs: 0.00005,
		RAP: 0.003, PPQ: 0.003, DDP: 0.01,
		Shimmer: 0.03, ShimmerDB: 0.3,
		APQ3: 0.015, APQ5: 0.02, APQ: 0.025, DDA: 0.05,
		NHR: 0.02, HNR: 22.0,
		RPDE: 0.5, DFA: 0.7, Spread1: -5.0, Spread2: 0.2,
		D2: 2.5, PPE: 0.2,
		Age: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "high", report.RiskLevel)
	recorder.AssertExpectations(t)
}
