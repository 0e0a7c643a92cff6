package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	pkgAuth "github.com/polkiloo/mentorcrm/internal/pkg/auth"
)

const (
	// OperatorContextKey is a gin context key for the authenticated operator.
	OperatorContextKey = "operator"
	authCookieName     = "mentorcrm_token"
)

// Authenticator resolves a token to the operator it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Operator, error)
}

// AuthRequired ensures the request carries a token of a known operator.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		operator, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) || errors.Is(err, domainErrors.ErrInvalidCredentials) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(OperatorContextKey, operator)
		c.Next()
	}
}

// extractToken reads the bearer header, then the cookie, then the token
// query parameter used by websocket clients.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil && cookie != "" {
		return cookie
	}
	return c.Query("token")
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
