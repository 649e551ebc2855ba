package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/interfaces/http/middleware"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

// AssessmentHandler serves the three risk assessment endpoints. All three
// accept anonymous submissions; an authenticated caller's email attributes
// the logged record.
type AssessmentHandler struct {
	assessments service.AssessmentAppService
}

// NewAssessmentHandler creates the assessment handler.
func NewAssessmentHandler(assessments service.AssessmentAppService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// Heart runs a heart disease assessment.
func (h *AssessmentHandler) Heart(c *gin.Context) {
	var req dto.HeartAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation("malformed request body").WithCause(err))
		return
	}
	report, err := h.assessments.AssessHeart(c.Request.Context(), middleware.CallerEmail(c), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, report)
}

// Diabetes runs a diabetes assessment.
func (h *AssessmentHandler) Diabetes(c *gin.Context) {
	var req dto.DiabetesAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation("malformed request body").WithCause(err))
		return
	}
	report, err := h.assessments.AssessDiabetes(c.Request.Context(), middleware.CallerEmail(c), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, report)
}

// Parkinsons runs a voice-analysis assessment.
func (h *AssessmentHandler) Parkinsons(c *gin.Context) {
	var req dto.ParkinsonsAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.ErrValidation("malformed request body").WithCause(err))
		return
	}
	report, err := h.assessments.AssessParkinsons(c.Request.Context(), middleware.CallerEmail(c), &req)
	if err != nil {
		dto.SendError(c, err)
		return
	}
	dto.SendSuccess(c, http.StatusOK, report)
}
