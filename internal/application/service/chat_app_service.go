package service

import (
	"context"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	domainService "github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/internal/infrastructure/monitoring"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
	"github.com/healthpredict/healthpredict/pkg/utils"
)

// ChatAppService drives the two conversational surfaces. Each turn loads
// the rolling session history, asks the language model, appends both sides
// of the exchange back to the session and logs the interaction.
type ChatAppService interface {
	MedicalChat(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	TriageChat(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

var _ ChatAppService = (*chatAppServiceImpl)(nil)

type chatAppServiceImpl struct {
	narrative domainService.NarrativeClient
	sessions  domainService.ChatStore
	recorder  PredictionRecorder
	metrics   *monitoring.Metrics
	logger    logger.Logger
}

// NewChatAppService creates the conversation orchestrator.
func NewChatAppService(
	narrative domainService.NarrativeClient,
	sessions domainService.ChatStore,
	recorder PredictionRecorder,
	metrics *monitoring.Metrics,
	log logger.Logger,
) ChatAppService {
	return &chatAppServiceImpl{
		narrative: narrative,
		sessions:  sessions,
		recorder:  recorder,
		metrics:   metrics,
		logger:    log,
	}
}

// MedicalChat answers a general medical question.
func (s *chatAppServiceImpl) MedicalChat(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	return s.chat(ctx, email, req, constants.ConversationMedical, constants.ChatOutcomeResponded)
}

// TriageChat maps symptoms onto one of the assessment surfaces.
func (s *chatAppServiceImpl) TriageChat(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	return s.chat(ctx, email, req, constants.ConversationTriage, constants.ChatOutcomeTriage)
}

func (s *chatAppServiceImpl) chat(ctx context.Context, email string, req *dto.ChatRequest, bot constants.ConversationType, outcome string) (*dto.ChatResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if s.narrative == nil {
		return nil, errors.ErrUnavailable("chat is not available")
	}

	history := s.loadHistory(ctx, req.SessionID)

	messages := make([]domainService.ChatMessage, 0, len(history)+2)
	messages = append(messages, domainService.ChatMessage{
		Role:    "system",
		Content: systemPromptFor(bot, req.Language()),
	})
	messages = append(messages, history...)
	userMessage := domainService.ChatMessage{Role: "user", Content: req.Message}
	messages = append(messages, userMessage)

	reply, err := s.narrative.Complete(ctx, messages)
	if err != nil {
		s.logger.Error(ctx, "chat completion failed", err, logger.Fields{
			"bot":        string(bot),
			"session_id": req.SessionID,
		})
		if s.metrics != nil {
			s.metrics.RecordChat(bot, "error")
		}
		return nil, errors.ErrUnavailable("the assistant could not respond, please try again").WithCause(err)
	}

	s.appendToSession(ctx, req.SessionID, userMessage)
	s.appendToSession(ctx, req.SessionID, domainService.ChatMessage{Role: "assistant", Content: reply})

	s.recorder.Record(ctx, email, string(bot), map[string]interface{}{"message": req.Message}, outcome, nil)
	if s.metrics != nil {
		s.metrics.RecordChat(bot, "ok")
	}

	return &dto.ChatResponse{
		SessionID: req.SessionID,
		Reply:     reply,
	}, nil
}

// loadHistory fetches the rolling session. An unreadable session starts
// the conversation fresh rather than failing the turn.
func (s *chatAppServiceImpl) loadHistory(ctx context.Context, sessionID string) []domainService.ChatMessage {
	if s.sessions == nil {
		return nil
	}
	history, err := s.sessions.History(ctx, sessionID)
	if err != nil {
		s.logger.Warn(ctx, "chat history unavailable", logger.Fields{"session_id": sessionID})
		return nil
	}
	return history
}

func (s *chatAppServiceImpl) appendToSession(ctx context.Context, sessionID string, msg domainService.ChatMessage) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Append(ctx, sessionID, msg); err != nil {
		s.logger.Warn(ctx, "chat history write failed", logger.Fields{"session_id": sessionID})
	}
}
