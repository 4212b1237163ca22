package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ballisticmarket/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

type adminCheckerMock struct{ mock.Mock }

func (m *adminCheckerMock) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func sessionRequest(t *testing.T, userID uint) *http.Request {
	t.Helper()

	token, err := utils.GenerateSessionToken(userID, "76561198000000001", testSecret, time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	return req
}

func TestSessionMiddleware_MissingCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := SessionMiddleware(testSecret)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_BadToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := SessionMiddleware(testSecret)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_ValidCookieExposesIdentity(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(sessionRequest(t, 7), rec)

	var seenUserID uint
	var seenSteamID string
	next := func(c echo.Context) error {
		seenUserID, _ = c.Get("user_id").(uint)
		seenSteamID, _ = c.Get("steam_id").(string)
		return c.NoContent(http.StatusOK)
	}

	err := SessionMiddleware(testSecret)(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), seenUserID)
	assert.Equal(t, "76561198000000001", seenSteamID)
}

func TestOptionalSession_AnonymousPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := OptionalSession(testSecret)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, c.Get("user_id"))
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	checker := new(adminCheckerMock)
	checker.On("IsAdmin", mock.Anything, uint(7)).Return(false, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))

	err := AdminOnly(checker)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	checker := new(adminCheckerMock)
	checker.On("IsAdmin", mock.Anything, uint(7)).Return(true, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))

	err := AdminOnly(checker)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_NoIdentity(t *testing.T) {
	checker := new(adminCheckerMock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := AdminOnly(checker)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	checker.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
}
