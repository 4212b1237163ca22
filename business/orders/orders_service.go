package orders

import (
	"context"
	"fmt"

	"ballisticmarket/domain"
)

// OrderRepository contract interface
type OrderRepository interface {
	FindAllWithUsers(ctx context.Context) ([]domain.OrderDetail, error)
	FindByID(ctx context.Context, orderID uint) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status, adminNotes string) error
}

// OrderItemRepository contract interface
type OrderItemRepository interface {
	ListByOrder(ctx context.Context, orderID uint) ([]domain.OrderItemDetail, error)
}

type OrdersService struct {
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
}

func NewOrdersService(orderRepo OrderRepository, orderItemRepo OrderItemRepository) *OrdersService {
	return &OrdersService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// GetAllOrders returns every order joined with purchaser profile fields and
// its line items, newest first.
func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.OrderDetail, error) {
	orders, err := s.orderRepo.FindAllWithUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := s.orderItemRepo.ListByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []domain.OrderItemDetail{}
		}
		orders[i].Items = items
	}

	return orders, nil
}

// UpdateStatus moves an order to any of the fixed status values. There is no
// state machine on purpose; operators need free movement for manual
// correction. Admin notes ride along unvalidated.
func (s *OrdersService) UpdateStatus(ctx context.Context, orderID uint, status, adminNotes string) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("%w: invalid status %q", domain.ErrInvalidArgument, status)
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status, adminNotes)
}
