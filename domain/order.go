package domain

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the fixed status values.
// Any status may transition to any other; manual correction is allowed.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"column:user_id;not null" json:"user_id"`
	TotalAmount   float64   `gorm:"column:total_amount;type:numeric" json:"total_amount"`
	Status        string    `gorm:"column:status;default:pending" json:"status"`
	CustomerNotes string    `gorm:"column:customer_notes;type:text" json:"customer_notes"`
	AdminNotes    string    `gorm:"column:admin_notes;type:text" json:"admin_notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem carries the unit price copied from the product at order time.
// Later product price changes must not alter historical orders.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint      `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	Price     float64   `gorm:"column:price;type:numeric" json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderItemDetail is an order item enriched with the product name, resolved
// through a join so deactivated products still show up in history.
type OrderItemDetail struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
}

// OrderDetail is an order header joined with the purchaser's profile fields
// and its line items, as served to the admin panel.
type OrderDetail struct {
	ID            uint              `json:"id"`
	UserID        uint              `json:"user_id"`
	TotalAmount   float64           `json:"total_amount"`
	Status        string            `json:"status"`
	CustomerNotes string            `json:"customer_notes"`
	AdminNotes    string            `json:"admin_notes"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DisplayName   string            `json:"display_name"`
	RoleplayName  string            `json:"roleplay_name"`
	PhoneNumber   string            `json:"phone_number"`
	BankNumber    string            `json:"bank_number"`
	Email         string            `json:"email"`
	Items         []OrderItemDetail `json:"items" gorm:"-"`
}
