package store

import (
	"context"
	"fmt"

	"ballisticmarket/domain"

	"gorm.io/gorm"
)

type RecentPurchaseRepository struct {
	DB *gorm.DB
}

func NewRecentPurchaseRepository(db *gorm.DB) *RecentPurchaseRepository {
	return &RecentPurchaseRepository{
		DB: db,
	}
}

func (r *RecentPurchaseRepository) Create(ctx context.Context, purchase *domain.RecentPurchase) error {
	if err := r.DB.WithContext(ctx).Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to record purchase: %w", wrapErr(err))
	}

	return nil
}

func (r *RecentPurchaseRepository) FindRecent(ctx context.Context, limit int) ([]domain.RecentPurchase, error) {
	var purchases []domain.RecentPurchase

	err := r.DB.WithContext(ctx).
		Order("purchase_time DESC").
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent purchases: %w", wrapErr(err))
	}

	return purchases, nil
}
