package models

import "time"

// User is a storefront customer identified by phone number.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Phone        string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Name         string    `gorm:"type:varchar(200)" json:"name"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// Admin is a panel operator account.
type Admin struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Admin) TableName() string {
	return "admins"
}

// PasswordResetCode is a one-shot password recovery code tied to a phone.
type PasswordResetCode struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Phone     string    `gorm:"type:varchar(20);not null;index" json:"phone"`
	Code      string    `gorm:"type:varchar(10);not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name.
func (PasswordResetCode) TableName() string {
	return "password_reset_codes"
}
