package middleware

import (
	"log/slog"
	"strings"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/response"
	deliverycontext "github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/context"
	domainerrors "github.com/Bilal-EZ-ZAIM/devopes/internal/domain/errors"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	keyUserID    = "userID"
	bearerPrefix = "Bearer "
)

// AuthMiddleware validates bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid access token and stores the
// token's user ID on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return unauthorized(c, "Invalid or expired token")
		}

		c.Set(keyUserID, claims.UserID)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", claims.UserID))
		ctx = deliverycontext.WithUserID(ctx, claims.UserID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(keyUserID).(string)

	return userID, ok && userID != ""
}

func unauthorized(c echo.Context, details string) error {
	return response.Error(c, domainerrors.ErrUnauthorized.HTTPCode(), domainerrors.ErrUnauthorized.ErrorCode(), details, nil)
}
