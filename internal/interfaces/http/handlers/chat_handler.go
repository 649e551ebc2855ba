package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/interfaces/http/middleware"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

// ChatHandler serves the two conversational endpoints.
type ChatHandler struct {
	chat service.ChatAppService
}

// NewChatHandler creates the chat handler.
func NewChatHandler(chat service.ChatAppService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Medical answers one general medical question.
func (h *ChatHandler) Medical(c *gin.Context) {
	h.handle(c, h.chat.MedicalChat)
}

// Triage maps symptoms to an assessment recommendation.
func (h *ChatHandler) Triage(c *gin.Context) {
	h.handle(c, h.chat.TriageChat)
}

func (h *ChatHandler) handle(c *gin.Context, turn func(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error)) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation("malformed request body").WithCause(err))
		return
	}
	resp, err := turn(c.Request.Context(), middleware.CallerEmail(c), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, resp)
}
