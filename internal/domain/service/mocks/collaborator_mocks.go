package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/healthpredict/healthpredict/internal/domain/service"
)

type MockNarrativeClient struct {
	mock.Mock
}

func (m *MockNarrativeClient) Complete(ctx context.Context, messages []service.ChatMessage) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

type MockChatStore struct {
	mock.Mock
}

func (m *MockChatStore) Append(ctx context.Context, sessionID string, msg service.ChatMessage) error {
	args := m.Called(ctx, sessionID, msg)
	return args.Error(0)
}

func (m *MockChatStore) History(ctx context.Context, sessionID string) ([]service.ChatMessage, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ChatMessage), args.Error(1)
}

type MockWellnessService struct {
	mock.Mock
}

func (m *MockWellnessService) ReportFor(ctx context.Context, userID string) (*service.WellnessReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WellnessReport), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) PublishPrediction(ctx context.Context, event service.PredictionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditService) Close() error {
	args := m.Called()
	return args.Error(0)
}
