package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ballisticmarket/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type shopProductServiceMock struct{ mock.Mock }

func (m *shopProductServiceMock) GetActiveProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *shopProductServiceMock) GetActiveProductByID(ctx context.Context, id uint) (domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(domain.Product)
	return p, args.Error(1)
}

func productDetailContext(e *echo.Echo, rec *httptest.ResponseRecorder, id string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/shop/products/"+id, nil)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestGetProductByID_MissingProduct(t *testing.T) {
	products := new(shopProductServiceMock)
	products.On("GetActiveProductByID", mock.Anything, uint(10)).Return(domain.Product{}, domain.ErrNotFound)

	h := NewShopHandler(products, nil, nil)

	e := echo.New()
	rec := httptest.NewRecorder()

	err := h.GetProductByID(productDetailContext(e, rec, "10"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Product not found"}`, rec.Body.String())
}

func TestGetProductByID_StorageFailureIsNotANotFound(t *testing.T) {
	products := new(shopProductServiceMock)
	products.On("GetActiveProductByID", mock.Anything, uint(10)).
		Return(domain.Product{}, fmt.Errorf("%w: connection reset", domain.ErrStorage))

	h := NewShopHandler(products, nil, nil)

	e := echo.New()
	rec := httptest.NewRecorder()

	err := h.GetProductByID(productDetailContext(e, rec, "10"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Database error"}`, rec.Body.String())
}

func TestGetProductByID_InvalidID(t *testing.T) {
	h := NewShopHandler(new(shopProductServiceMock), nil, nil)

	e := echo.New()
	rec := httptest.NewRecorder()

	err := h.GetProductByID(productDetailContext(e, rec, "abc"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
