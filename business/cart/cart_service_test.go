package cart

import (
	"context"
	"testing"

	"ballisticmarket/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type cartRepoMock struct{ mock.Mock }

func (m *cartRepoMock) Upsert(ctx context.Context, item *domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *cartRepoMock) Delete(ctx context.Context, userID, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *cartRepoMock) ListByUser(ctx context.Context, userID uint) ([]domain.CartRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]domain.CartRow)
	return rows, args.Error(1)
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) FindActiveByID(ctx context.Context, id uint) (domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(domain.Product)
	return p, args.Error(1)
}

func TestAddOrUpdate_RejectsInvalidQuantity(t *testing.T) {
	carts := new(cartRepoMock)
	svc := NewCartService(carts, new(productRepoMock))

	err := svc.AddOrUpdate(context.Background(), 1, 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = svc.AddOrUpdate(context.Background(), 1, 10, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	carts.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAddOrUpdate_InactiveProduct(t *testing.T) {
	products := new(productRepoMock)
	products.On("FindActiveByID", mock.Anything, uint(10)).Return(domain.Product{}, domain.ErrNotFound)

	carts := new(cartRepoMock)
	svc := NewCartService(carts, products)

	err := svc.AddOrUpdate(context.Background(), 1, 10, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	carts.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAddOrUpdate_ReplacesQuantity(t *testing.T) {
	products := new(productRepoMock)
	products.On("FindActiveByID", mock.Anything, uint(10)).Return(domain.Product{ID: 10, IsActive: true}, nil)

	carts := new(cartRepoMock)
	carts.On("Upsert", mock.Anything, &domain.CartItem{UserID: 1, ProductID: 10, Quantity: 5}).Return(nil)

	svc := NewCartService(carts, products)

	err := svc.AddOrUpdate(context.Background(), 1, 10, 5)
	assert.NoError(t, err)
	carts.AssertExpectations(t)
}

func TestRemove_IsIdempotent(t *testing.T) {
	carts := new(cartRepoMock)
	carts.On("Delete", mock.Anything, uint(1), uint(10)).Return(nil)

	svc := NewCartService(carts, new(productRepoMock))

	// A missing row is not an error at the repository level.
	assert.NoError(t, svc.Remove(context.Background(), 1, 10))
	assert.NoError(t, svc.Remove(context.Background(), 1, 10))
}

func TestList_ReturnsEmptySliceNotNil(t *testing.T) {
	carts := new(cartRepoMock)
	carts.On("ListByUser", mock.Anything, uint(1)).Return(nil, nil)

	svc := NewCartService(carts, new(productRepoMock))

	rows, err := svc.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestList_RequiresAuth(t *testing.T) {
	svc := NewCartService(new(cartRepoMock), new(productRepoMock))

	_, err := svc.List(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
