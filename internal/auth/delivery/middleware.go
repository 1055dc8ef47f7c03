package delivery

import (
	"strings"

	"dietdiary-backend/internal/auth/usecase"
	"dietdiary-backend/pkg/apperror"
	"dietdiary-backend/pkg/httpx"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie mirrors the bearer token for cookie-based clients.
	TokenCookie = "token"

	userIDKey = "userID"
)

// AuthMiddleware rejects requests without a valid token and stores the
// verified user id on the context for downstream handlers.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := ExtractToken(c)
		if !ok {
			httpx.Error(c, apperror.Unauthenticated(usecase.MsgNotAuthorized))
			return
		}

		userID, err := authUsecase.ValidateToken(token)
		if err != nil {
			httpx.Error(c, err)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// ExtractToken returns the candidate token from "Authorization: Bearer <t>",
// falling back to the token cookie.
func ExtractToken(c *gin.Context) (string, bool) {
	if parts := strings.Fields(c.GetHeader("Authorization")); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1], true
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, true
	}

	return "", false
}

// UserIDFromContext returns the id set by AuthMiddleware.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}
