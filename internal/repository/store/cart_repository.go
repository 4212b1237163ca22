package store

import (
	"context"
	"fmt"

	"ballisticmarket/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		DB: db,
	}
}

// Upsert replaces any existing row for the (user, product) pair. Quantities
// are last-write-wins, never summed.
func (r *CartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", wrapErr(err))
	}

	return nil
}

// Delete removes one cart entry. Removing a row that does not exist is not an
// error; the operation is idempotent.
func (r *CartRepository) Delete(ctx context.Context, userID, productID uint) error {
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", wrapErr(err))
	}

	return nil
}

// ListByUser returns cart rows joined with the live product. Products
// deactivated after being added drop out of the result, and the price is the
// current one; nothing has been ordered yet.
func (r *CartRepository) ListByUser(ctx context.Context, userID uint) ([]domain.CartRow, error) {
	var rows []domain.CartRow

	err := r.DB.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id, cart_items.user_id, cart_items.product_id, cart_items.quantity, products.name, products.price, products.image_url").
		Joins("JOIN products ON cart_items.product_id = products.id").
		Where("cart_items.user_id = ? AND products.is_active = ?", userID, true).
		Order("cart_items.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", wrapErr(err))
	}

	return rows, nil
}
