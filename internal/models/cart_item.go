package models

import "time"

// CartItem is one cart row, scoped by an anonymous session token. The
// unique index keeps at most one row per (session, product) pair; the cart
// service updates quantity instead of inserting a second row.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SessionID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_product" json:"session_id"`
	ProductID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
