package rest

import (
	"context"
	"net/http"
	"time"

	"ballisticmarket/business/user"
	"ballisticmarket/domain"
	"ballisticmarket/internal/middleware"
	"ballisticmarket/pkg/logger"
	"ballisticmarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

type AuthUserService interface {
	UpsertFromSteam(ctx context.Context, identity user.SteamIdentity) (domain.User, error)
	GetBySteamID(ctx context.Context, steamID string) (domain.User, error)
}

type SteamProvider interface {
	LoginURL() (string, error)
	VerifyCallback(requestURL string) (string, error)
	FetchIdentity(steamID string) (user.SteamIdentity, error)
}

type AuthHandler struct {
	userService   AuthUserService
	steamProvider SteamProvider
	sessionSecret string
	sessionTTL    time.Duration
	serverURL     string
	clientURL     string
	secureCookies bool
	timeout       time.Duration
}

func NewAuthHandler(
	userService AuthUserService,
	steamProvider SteamProvider,
	sessionSecret string,
	sessionTTL time.Duration,
	serverURL string,
	clientURL string,
	secureCookies bool,
) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		steamProvider: steamProvider,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
		serverURL:     serverURL,
		clientURL:     clientURL,
		secureCookies: secureCookies,
		timeout:       10 * time.Second,
	}
}

// Login bounces the browser to the Steam OpenID endpoint.
func (h *AuthHandler) Login(c echo.Context) error {
	url, err := h.steamProvider.LoginURL()
	if err != nil {
		logger.Error("Failed to build steam login url", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Login unavailable"})
	}

	return c.Redirect(http.StatusFound, url)
}

// Callback verifies the provider assertion, upserts the user row and sets the
// signed session cookie before sending the browser back to the storefront.
func (h *AuthHandler) Callback(c echo.Context) error {
	steamID, err := h.steamProvider.VerifyCallback(h.serverURL + c.Request().RequestURI)
	if err != nil {
		logger.Error("Steam callback verification failed", err)
		return c.Redirect(http.StatusFound, h.clientURL+"/login?error=auth")
	}

	identity, err := h.steamProvider.FetchIdentity(steamID)
	if err != nil {
		logger.Error("Failed to fetch steam identity", err, "steam_id", steamID)
		return c.Redirect(http.StatusFound, h.clientURL+"/login?error=auth")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stored, err := h.userService.UpsertFromSteam(ctx, identity)
	if err != nil {
		logger.Error("Failed to store steam user", err, "steam_id", steamID)
		return c.Redirect(http.StatusFound, h.clientURL+"/login?error=database")
	}

	token, err := utils.GenerateSessionToken(stored.ID, stored.SteamID, h.sessionSecret, h.sessionTTL)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Redirect(http.StatusFound, h.clientURL+"/login?error=session")
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.clientURL+"/account?login=success")
}

func (h *AuthHandler) CurrentUser(c echo.Context) error {
	steamID, ok := c.Get("steam_id").(string)
	if !ok || steamID == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Error: "Not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stored, err := h.userService.GetBySteamID(ctx, steamID)
	if err != nil {
		logger.Error("Failed to load current user", err, "steam_id", steamID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, stored)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Logged out successfully",
	})
}

// Status reports the auth state without ever failing the request.
func (h *AuthHandler) Status(c echo.Context) error {
	steamID, ok := c.Get("steam_id").(string)
	if !ok || steamID == "" {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"isAuthenticated": false,
			"user":            nil,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stored, err := h.userService.GetBySteamID(ctx, steamID)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"isAuthenticated": false,
			"user":            nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"isAuthenticated": true,
		"user":            stored,
	})
}
