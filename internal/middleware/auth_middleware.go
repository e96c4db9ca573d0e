package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware authenticates the custom header pair every portal sends:
// `role: <role>` plus `<role>-token: <JWT>`. The token verifies against the
// secret belonging to that role, so the secret dispatch lives in one place
// instead of being repeated per handler.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Require returns a handler that only admits requests carrying a valid token
// for the given role. Missing role or token header is a 400; a token that
// fails verification or has expired is a 401.
func (m *AuthMiddleware) Require(required auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleHeader := c.GetHeader("role")
		if roleHeader == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Failure("role header missing"))
			return
		}

		role, ok := auth.ParseRole(roleHeader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Failure("unknown role"))
			return
		}
		if role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Failure("insufficient permissions for this operation"))
			return
		}

		tokenString := c.GetHeader(role.TokenHeader())
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Failure("token header missing"))
			return
		}

		claims, err := m.jwtService.ValidateToken(role, tokenString)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "token expired, please log in again"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// UserID reads the authenticated account id set by Require
func UserID(c *gin.Context) int64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(int64)
	return userID
}
