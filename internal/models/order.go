package models

import "time"

// Order is a placed purchase built from a session cart. Item rows snapshot
// the product name and unit price at checkout time.
type Order struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	OrderNo       string    `gorm:"type:varchar(40);uniqueIndex;not null" json:"order_no"`
	SessionID     string    `gorm:"type:varchar(64);index" json:"session_id"`
	UserID        *uint     `gorm:"index" json:"user_id,omitempty"`
	CustomerName  string    `gorm:"type:varchar(200)" json:"customer_name"`
	CustomerPhone string    `gorm:"type:varchar(20);not null" json:"customer_phone"`
	Address       string    `gorm:"type:varchar(500)" json:"address"`
	Comment       string    `gorm:"type:varchar(1000)" json:"comment"`
	Total         Money     `gorm:"type:decimal(20,0);not null;default:0" json:"total"`
	Status        string    `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one purchased line inside an order.
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	ProductID   string    `gorm:"type:varchar(64);not null" json:"product_id"`
	ProductName string    `gorm:"type:varchar(300);not null" json:"product_name"`
	UnitPrice   Money     `gorm:"type:decimal(20,0);not null;default:0" json:"unit_price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
