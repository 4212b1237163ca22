package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type adminCheckerMock struct{ mock.Mock }

func (m *adminCheckerMock) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func TestCheckAdmin_AnonymousCallerGetsFalse(t *testing.T) {
	checker := new(adminCheckerMock)
	h := NewAdminHandler(nil, nil, checker, t.TempDir())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CheckAdmin(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAdmin": false}`, rec.Body.String())

	// No storage lookup for an anonymous caller.
	checker.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
}

func TestCheckAdmin_AuthenticatedAdmin(t *testing.T) {
	checker := new(adminCheckerMock)
	checker.On("IsAdmin", mock.Anything, uint(7)).Return(true, nil)

	h := NewAdminHandler(nil, nil, checker, t.TempDir())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))

	err := h.CheckAdmin(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAdmin": true}`, rec.Body.String())
}

func TestCheckAdmin_LookupFailureStillAnswers(t *testing.T) {
	checker := new(adminCheckerMock)
	checker.On("IsAdmin", mock.Anything, uint(7)).Return(false, assert.AnError)

	h := NewAdminHandler(nil, nil, checker, t.TempDir())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))

	err := h.CheckAdmin(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAdmin": false}`, rec.Body.String())
}
