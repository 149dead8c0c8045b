package repository

import (
	"errors"

	"github.com/myseringan/texnokross-bolt-sub000/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart_items table access interface. Rows are scoped
// by anonymous session, not by user account.
type CartRepository interface {
	ListBySession(sessionID string) ([]models.CartItem, error)
	GetBySessionAndProduct(sessionID, productID string) (*models.CartItem, error)
	GetByID(sessionID string, itemID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(itemID uint, quantity int) error
	Delete(itemID uint) error
	ClearBySession(sessionID string) error
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ListBySession returns the session's cart rows in insertion order, with
// product records preloaded.
func (r *GormCartRepository) ListBySession(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("session_id = ?", sessionID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetBySessionAndProduct returns the row for (session, product) or nil.
func (r *GormCartRepository) GetBySessionAndProduct(sessionID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("session_id = ? AND product_id = ?", sessionID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByID returns a row by ID, restricted to the session, or nil.
func (r *GormCartRepository) GetByID(sessionID string, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("id = ? AND session_id = ?", itemID, sessionID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a cart row.
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateQuantity sets the absolute quantity of a row.
func (r *GormCartRepository) UpdateQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity).Error
}

// Delete removes a row. Idempotent when the row is already gone.
func (r *GormCartRepository) Delete(itemID uint) error {
	return r.db.Delete(&models.CartItem{}, itemID).Error
}

// ClearBySession removes all rows for a session.
func (r *GormCartRepository) ClearBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
