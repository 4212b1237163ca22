package middleware

import (
	"context"
	"net/http"

	"ballisticmarket/pkg/logger"
	"ballisticmarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "bw_session"

type responseError struct {
	Error string `json:"error"`
}

// AdminChecker re-resolves the admin flag from storage; roles are never
// cached in the session token.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

func resolveSession(c echo.Context, secret string) (*utils.SessionClaims, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	claims, err := utils.ParseSessionToken(cookie.Value, secret)
	if err != nil {
		return nil, false
	}

	return claims, true
}

// SessionMiddleware requires a valid session cookie and exposes the resolved
// identity on the request context.
func SessionMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := resolveSession(c, secret)
			if !ok {
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Authentication required"})
			}

			c.Set("user_id", claims.UserID)
			c.Set("steam_id", claims.SteamID)

			return next(c)
		}
	}
}

// OptionalSession resolves the identity when a valid cookie is present but
// never rejects the request. Used by endpoints that answer for anonymous
// callers too.
func OptionalSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, ok := resolveSession(c, secret); ok {
				c.Set("user_id", claims.UserID)
				c.Set("steam_id", claims.SteamID)
			}

			return next(c)
		}
	}
}

// AdminOnly gates admin routes. The flag is read from storage on each
// request so a revoked admin loses access immediately.
func AdminOnly(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(uint)
			if !ok || userID == 0 {
				return c.JSON(http.StatusUnauthorized, responseError{Error: "Authentication required"})
			}

			isAdmin, err := checker.IsAdmin(c.Request().Context(), userID)
			if err != nil {
				logger.Error("Failed to check admin status", err)
				return c.JSON(http.StatusInternalServerError, responseError{Error: "Database error"})
			}
			if !isAdmin {
				return c.JSON(http.StatusForbidden, responseError{Error: "Admin access required"})
			}

			return next(c)
		}
	}
}

// ErrorHandler is the echo fallback for errors no handler mapped itself. It
// keeps stack traces out of responses.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong!"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "path", c.Path())
	}

	_ = c.JSON(code, responseError{Error: message})
}
