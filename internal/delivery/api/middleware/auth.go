package middleware

import (
	"strings"

	"pavilion/internal/delivery/api/response"
	deliverycontext "pavilion/internal/delivery/context"
	domainerrors "pavilion/internal/domain/errors"
	"pavilion/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer access tokens
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its subject as the user ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			return response.AppError(c, domainerrors.ErrUnauthorized.WithMessage("Invalid or expired token"))
		}

		deliverycontext.SetUserID(c, claims.Subject)

		return next(c)
	}
}

// RequireSelf rejects requests whose path parameter differs from the authenticated user.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := deliverycontext.GetUserID(c)
			if !ok || userID != c.Param(param) {
				return response.AppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}
