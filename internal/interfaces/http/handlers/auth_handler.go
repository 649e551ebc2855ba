// Package handlers contains the gin HTTP handlers for the public API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth service.AuthAppService
}

// NewAuthHandler creates the authentication handler.
func NewAuthHandler(auth service.AuthAppService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates an account and returns its first token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation("malformed request body").WithCause(err))
		return
	}
	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusCreated, resp)
}

// Login exchanges credentials for a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation("malformed request body").WithCause(err))
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, resp)
}
