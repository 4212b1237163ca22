package store

import (
	"context"

	"ballisticmarket/business/checkout"

	"gorm.io/gorm"
)

type txRepos struct {
	orders          *OrderRepository
	orderItems      *OrderItemRepository
	cart            *CartRepository
	recentPurchases *RecentPurchaseRepository
}

func (r *txRepos) Orders() checkout.OrderWriter                   { return r.orders }
func (r *txRepos) OrderItems() checkout.OrderItemWriter           { return r.orderItems }
func (r *txRepos) Cart() checkout.CartWriter                      { return r.cart }
func (r *txRepos) RecentPurchases() checkout.RecentPurchaseWriter { return r.recentPurchases }

type TxManager struct {
	DB *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{DB: db}
}

// WithinTx rebuilds the repositories on the transaction handle so everything
// fn does commits or rolls back as one unit.
func (tm *TxManager) WithinTx(ctx context.Context, fn func(r checkout.TxRepos) error) error {
	return tm.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := &txRepos{
			orders:          NewOrderRepository(tx),
			orderItems:      NewOrderItemRepository(tx),
			cart:            NewCartRepository(tx),
			recentPurchases: NewRecentPurchaseRepository(tx),
		}
		return fn(r)
	})
}
