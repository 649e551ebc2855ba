package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/interfaces/http/middleware"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

// HistoryHandler serves the authenticated user's prediction history.
type HistoryHandler struct {
	history service.HistoryAppService
}

// NewHistoryHandler creates the history handler.
func NewHistoryHandler(history service.HistoryAppService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List returns the caller's records newest first plus the wellness score.
func (h *HistoryHandler) List(c *gin.Context) {
	userID := middleware.CallerID(c)
	if userID == "" {
		dto.SendError(c, errors.ErrUnauthorized("authentication required"))
		return
	}
	resp, err := h.history.History(c.Request.Context(), userID)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, resp)
}
