package repository

import (
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"

	"gorm.io/gorm"
)

// BannerRepository is the banners table access interface.
type BannerRepository interface {
	List(activeOnly bool) ([]models.Banner, error)
	ReplaceAll(banners []models.Banner) error
}

// GormBannerRepository is the GORM implementation.
type GormBannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a banner repository.
func NewBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// List returns banners in stored display order, optionally active only.
func (r *GormBannerRepository) List(activeOnly bool) ([]models.Banner, error) {
	var banners []models.Banner
	query := r.db.Order("sort_order ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// ReplaceAll swaps the full banner list in one transaction; list order
// becomes the stored display order.
func (r *GormBannerRepository) ReplaceAll(banners []models.Banner) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Banner{}).Error; err != nil {
			return err
		}
		for i := range banners {
			banners[i].ID = 0
			banners[i].SortOrder = i
			if err := tx.Create(&banners[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
