package orders

import (
	"context"
	"testing"

	"ballisticmarket/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) FindAllWithUsers(ctx context.Context) ([]domain.OrderDetail, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]domain.OrderDetail)
	return orders, args.Error(1)
}

func (m *orderRepoMock) FindByID(ctx context.Context, orderID uint) (domain.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(domain.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) UpdateStatus(ctx context.Context, orderID uint, status, adminNotes string) error {
	args := m.Called(ctx, orderID, status, adminNotes)
	return args.Error(0)
}

type orderItemRepoMock struct{ mock.Mock }

func (m *orderItemRepoMock) ListByOrder(ctx context.Context, orderID uint) ([]domain.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]domain.OrderItemDetail)
	return items, args.Error(1)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(orderRepoMock)
	svc := NewOrdersService(repo, new(orderItemRepoMock))

	err := svc.UpdateStatus(context.Background(), 1, "shipped", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// The stored status must not be touched.
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	repo := new(orderRepoMock)
	repo.On("UpdateStatus", mock.Anything, uint(1), domain.OrderStatusCancelled, "refunded by hand").Return(nil)

	svc := NewOrdersService(repo, new(orderItemRepoMock))

	err := svc.UpdateStatus(context.Background(), 1, domain.OrderStatusCancelled, "refunded by hand")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetAllOrders_AttachesItems(t *testing.T) {
	repo := new(orderRepoMock)
	repo.On("FindAllWithUsers", mock.Anything).Return([]domain.OrderDetail{
		{ID: 2, DisplayName: "gordon"},
		{ID: 1, DisplayName: "barney"},
	}, nil)

	items := new(orderItemRepoMock)
	items.On("ListByOrder", mock.Anything, uint(2)).Return([]domain.OrderItemDetail{
		{OrderID: 2, ProductName: "Rifle Kit", Quantity: 2},
	}, nil)
	items.On("ListByOrder", mock.Anything, uint(1)).Return(nil, nil)

	svc := NewOrdersService(repo, items)

	orders, err := svc.GetAllOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Rifle Kit", orders[0].Items[0].ProductName)
	assert.NotNil(t, orders[1].Items)
	assert.Empty(t, orders[1].Items)
}
