package middleware

import (
	"github.com/gin-gonic/gin"

	domainUser "contact-manager/internal/domain/user"
	apperrors "contact-manager/pkg/errors"
	"contact-manager/pkg/utils"
)

const (
	// TokenHeader carries the opaque session token issued at login.
	TokenHeader = "X-API-TOKEN"

	userKey = "user"
)

// AuthMiddleware resolves the X-API-TOKEN header to a user identity before
// any protected handler runs. The token is compared for exact match against
// the stored session token; a missing or unknown token is rejected with the
// same fixed message.
func AuthMiddleware(userRepo domainUser.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			utils.ErrorResponse(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := userRepo.GetByToken(c.Request.Context(), token)
		if err != nil {
			utils.ErrorResponse(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user placed by AuthMiddleware.
func CurrentUser(c *gin.Context) *domainUser.User {
	if v, exists := c.Get(userKey); exists {
		if u, ok := v.(*domainUser.User); ok {
			return u
		}
	}
	return nil
}
