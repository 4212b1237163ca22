package domain

import "time"

// RecentPurchase is a write-only append log for the public storefront feed.
// Product and buyer names are denormalized on purpose; rows are never joined
// back to orders.
type RecentPurchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductName  string    `gorm:"column:product_name;not null" json:"product_name"`
	BuyerName    string    `gorm:"column:buyer_name;not null" json:"buyer_name"`
	PurchaseTime time.Time `gorm:"column:purchase_time;autoCreateTime" json:"purchase_time"`
}

func (RecentPurchase) TableName() string {
	return "recent_purchases"
}
