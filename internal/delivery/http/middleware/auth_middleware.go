package middleware

import (
	"net/http"
	"strings"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyAccountEmail is the echo.Context key holding the authenticated
// account's email, set by Authenticate.
const ContextKeyAccountEmail = "accountEmail"

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the authenticated
// account's email on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		if claims.Subject == "" {
			return response.Error(c, http.StatusUnauthorized, "TOKEN_INVALID", "Subject missing from token", "")
		}

		c.Set(ContextKeyAccountEmail, claims.Subject)

		return next(c)
	}
}
