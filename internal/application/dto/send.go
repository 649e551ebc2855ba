package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

// SendSuccess writes a success envelope with the given status.
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse(data, requestID(c)))
}

// SendError writes an error envelope. The HTTP status comes from the
// AppError when the chain carries one, 500 otherwise.
func SendError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if appErr, ok := errors.AsAppError(err); ok {
		status = appErr.HTTPStatus()
	}
	c.JSON(status, ErrorResponse(err, requestID(c)))
}

func requestID(c *gin.Context) string {
	return c.GetString(string(constants.ContextKeyRequestID))
}
