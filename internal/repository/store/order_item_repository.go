package store

import (
	"context"
	"fmt"

	"ballisticmarket/domain"

	"gorm.io/gorm"
)

type OrderItemRepository struct {
	DB *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{
		DB: db,
	}
}

func (r *OrderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create order item: %w", wrapErr(err))
	}

	return nil
}

// ListByOrder resolves line items with their product names. The join hits
// products regardless of the active flag, so deactivated products still show
// up in order history.
func (r *OrderItemRepository) ListByOrder(ctx context.Context, orderID uint) ([]domain.OrderItemDetail, error) {
	var items []domain.OrderItemDetail

	err := r.DB.WithContext(ctx).
		Table("order_items").
		Select("order_items.id, order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, products.name AS product_name").
		Joins("JOIN products ON order_items.product_id = products.id").
		Where("order_items.order_id = ?", orderID).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", wrapErr(err))
	}

	return items, nil
}
