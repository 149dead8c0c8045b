package repository

import (
	"errors"
	"strings"

	"github.com/myseringan/texnokross-bolt-sub000/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the remote product table access interface.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List returns products, newest-created first.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.InStockOnly {
		query = query.Where("in_stock = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(name_ru) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like,
		)
	}
	if err := query.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a product or nil when absent.
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves a full product record (full replacement, not a field merge).
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product row. Idempotent.
func (r *GormProductRepository) Delete(id string) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}
