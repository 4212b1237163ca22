package domain

import (
	"time"
)

// CREATE TABLE products (
//     id             BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name           TEXT NOT NULL,
//     description    TEXT,
//     price          NUMERIC(10,2) NOT NULL,
//     image_url      TEXT,
//     category       TEXT,
//     stock_quantity INTEGER DEFAULT 0,
//     is_active      BOOLEAN DEFAULT TRUE,
//     created_at     TIMESTAMPTZ DEFAULT NOW(),
//     updated_at     TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	Price         float64   `gorm:"column:price;type:numeric" json:"price"`
	ImageURL      string    `gorm:"column:image_url;type:text" json:"image_url"`
	Category      string    `gorm:"column:category;type:text" json:"category"`
	StockQuantity int       `gorm:"column:stock_quantity;default:0" json:"stock_quantity"`
	IsActive      bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
