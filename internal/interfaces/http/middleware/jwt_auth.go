package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

// extractBearer pulls the token out of an Authorization header.
func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], constants.TokenTypeBearer) {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// bindIdentity stores the verified identity in the gin context and the
// request context.
func bindIdentity(c *gin.Context, claims *service.IdentityClaims) {
	c.Set(string(constants.ContextKeyUserID), claims.UserID)
	c.Set(string(constants.ContextKeyUserEmail), claims.Email)
	role := constants.RoleUser
	if claims.IsAdmin {
		role = constants.RoleAdmin
	}
	c.Set(string(constants.ContextKeyUserRole), string(role))

	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, constants.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constants.ContextKeyUserEmail, claims.Email)
	c.Request = c.Request.WithContext(ctx)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(auth service.AuthAppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader(constants.AuthorizationHeader))
		if token == "" {
			dto.SendError(c, errors.ErrUnauthorized("missing bearer token"))
			c.Abort()
			return
		}
		claims, err := auth.ValidateToken(c.Request.Context(), token)
		if err != nil {
			dto.SendError(c, err)
			c.Abort()
			return
		}
		bindIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth binds the caller identity when a valid token is present
// and lets the request through anonymously otherwise. An invalid token is
// treated as no token: the assessment surfaces accept guests.
func OptionalAuth(auth service.AuthAppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader(constants.AuthorizationHeader))
		if token != "" {
			if claims, err := auth.ValidateToken(c.Request.Context(), token); err == nil {
				bindIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin guards the statistics surface. It must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(constants.ContextKeyUserRole)) != string(constants.RoleAdmin) {
			dto.SendError(c, errors.ErrForbidden("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerEmail returns the authenticated email, empty for guests.
func CallerEmail(c *gin.Context) string {
	return c.GetString(string(constants.ContextKeyUserEmail))
}

// CallerID returns the authenticated account ID, empty for guests.
func CallerID(c *gin.Context) string {
	return c.GetString(string(constants.ContextKeyUserID))
}
