package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/application/service"
)

// AdminHandler serves the aggregate statistics view.
type AdminHandler struct {
	admin service.AdminAppService
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(admin service.AdminAppService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Stats returns platform totals and the recent activity feed.
func (h *AdminHandler) Stats(c *gin.Context) {
	resp, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, resp)
}
