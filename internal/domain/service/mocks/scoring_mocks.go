package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/pkg/constants"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) PredictProba(vector []float64) ([]float64, error) {
	args := m.Called(vector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

type MockScaler struct {
	mock.Mock
}

func (m *MockScaler) Transform(vector []float64) ([]float64, error) {
	args := m.Called(vector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

type MockArtifactProvider struct {
	mock.Mock
}

func (m *MockArtifactProvider) Classifier(ctx context.Context, typ constants.AssessmentType) (service.Classifier, error) {
	args := m.Called(ctx, typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(service.Classifier), args.Error(1)
}

func (m *MockArtifactProvider) Scaler(ctx context.Context, typ constants.AssessmentType) (service.Scaler, error) {
	args := m.Called(ctx, typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(service.Scaler), args.Error(1)
}

type MockRiskScorer struct {
	mock.Mock
}

func (m *MockRiskScorer) Score(ctx context.Context, features models.FeatureSet) models.ScoreResult {
	args := m.Called(ctx, features)
	return args.Get(0).(models.ScoreResult)
}
