package store

import (
	"context"
	"fmt"
	"time"

	"ballisticmarket/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", wrapErr(err))
	}

	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uint, status, adminNotes string) error {
	result := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":      status,
			"admin_notes": adminNotes,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", wrapErr(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID uint) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).First(&order, orderID).Error
	if err != nil {
		return domain.Order{}, wrapErr(err)
	}

	return order, nil
}

// FindAllWithUsers lists every order joined with the purchaser's profile
// fields, newest first. Line items are filled in separately.
func (r *OrderRepository) FindAllWithUsers(ctx context.Context) ([]domain.OrderDetail, error) {
	var orders []domain.OrderDetail

	err := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.user_id, orders.total_amount, orders.status, orders.customer_notes, orders.admin_notes, orders.created_at, orders.updated_at, users.display_name, users.roleplay_name, users.phone_number, users.bank_number, users.email").
		Joins("JOIN users ON orders.user_id = users.id").
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", wrapErr(err))
	}

	return orders, nil
}
