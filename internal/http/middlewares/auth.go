package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/auth"
	"task-tracker.com/task-tracker/internal/logging"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextToken  = "authToken"
)

// Auth resolves the Bearer token to a user identity and stores it on the
// request context. Requests with a missing, invalid, expired, or revoked
// token never reach the handlers.
func Auth(jwt *auth.JWTManager, denylist auth.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := jwt.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), token)
			if err != nil {
				logging.Logger.WithError(err).Error("token denylist lookup failed")
				return echo.NewHTTPError(http.StatusInternalServerError, "authentication check failed")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextToken, token)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}
