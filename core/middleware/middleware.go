package middleware

import (
	"net/http"
	"strings"

	"romantic-api/core/controller"
	"romantic-api/core/errors"
	"romantic-api/core/utils"

	"github.com/labstack/echo/v4"
)

// ContextKeyUser is the echo context key holding the authenticated TokenData.
const ContextKeyUser = "user"

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware rejects requests without a valid Bearer token and stores the
// token data on the context for handlers.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrMissingAuthorizationHeader, "authorization header required")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrInvalidTokenFormat, "bearer token required")
			}

			tokenData, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrUnauthorized, "invalid or expired token")
			}

			c.Set(ContextKeyUser, tokenData)
			return next(c)
		}
	}
}

// UserFromContext returns the TokenData stored by AuthMiddleware.
func UserFromContext(c echo.Context) (*utils.TokenData, bool) {
	data, ok := c.Get(ContextKeyUser).(*utils.TokenData)
	return data, ok && data != nil
}
