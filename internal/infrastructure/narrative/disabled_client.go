package narrative

import (
	"context"

	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

type disabledClient struct{}

// NewDisabledClient creates a NarrativeClient for deployments without an
// API key. Every call fails cleanly, which assessments treat as a missing
// narrative and chat surfaces report as unavailable.
func NewDisabledClient() service.NarrativeClient {
	return &disabledClient{}
}

func (disabledClient) Complete(ctx context.Context, messages []service.ChatMessage) (string, error) {
	return "", errors.ErrUnavailable("narrative generation is disabled")
}
