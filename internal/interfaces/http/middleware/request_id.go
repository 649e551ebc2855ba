package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthpredict/healthpredict/pkg/constants"
)

// requestIDHeader is echoed back so clients can correlate responses with
// server logs.
const requestIDHeader = "X-Request-ID"

// RequestID assigns every request a correlation ID, reusing the client's
// when one is supplied. The ID lives in both the gin context and the
// request context so logs and responses agree.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(string(constants.ContextKeyRequestID), id)
		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, id)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
