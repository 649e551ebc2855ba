package dto

import (
	"time"

	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorDTO   `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// ErrorDTO carries a machine-readable code plus human-readable text.
type ErrorDTO struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// SuccessResponse wraps data in the standard envelope.
func SuccessResponse(data interface{}, requestID string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}

// ErrorResponse wraps an error in the standard envelope. Errors that do
// not implement AppError are reported as internal without leaking their
// message to the client.
func ErrorResponse(err error, requestID string) *APIResponse {
	var errorDTO *ErrorDTO
	if appErr, ok := errors.AsAppError(err); ok {
		errorDTO = &ErrorDTO{
			Code:    string(appErr.Code()),
			Message: appErr.Error(),
			Details: appErr.Details(),
		}
	} else {
		errorDTO = &ErrorDTO{
			Code:    string(constants.ErrCodeInternal),
			Message: "internal server error",
		}
	}
	return &APIResponse{
		Success:   false,
		Error:     errorDTO,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}
