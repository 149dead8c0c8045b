package service

import (
	"strings"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

// BannerService serves the storefront hero banners. The storefront must
// always render something, so an empty table or a read failure falls back
// to a single built-in banner.
type BannerService struct {
	repo repository.BannerRepository
}

// NewBannerService creates a banner service.
func NewBannerService(repo repository.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// DefaultBanners returns the built-in fallback banner set.
func DefaultBanners() []models.Banner {
	return []models.Banner{
		{
			Title:    "TEXNOKROSS",
			Subtitle: "Uy texnikasi qulay narxlarda",
			Type:     constants.BannerTypeSale,
			IsActive: true,
		},
	}
}

// List returns the active banners in sort order, or the default set when
// the table is empty or unreadable.
func (s *BannerService) List() []models.Banner {
	banners, err := s.repo.List(true)
	if err != nil {
		logger.Warnw("banner_list_failed", "error", err)
		return DefaultBanners()
	}
	if len(banners) == 0 {
		return DefaultBanners()
	}
	return banners
}

// ListAll returns every banner, active or not, for the admin panel. The
// default fallback applies here too so the panel always shows the set the
// storefront would render.
func (s *BannerService) ListAll() []models.Banner {
	banners, err := s.repo.List(false)
	if err != nil {
		logger.Warnw("banner_list_failed", "error", err)
		return DefaultBanners()
	}
	if len(banners) == 0 {
		return DefaultBanners()
	}
	return banners
}

// SaveAll validates and stores the full banner set, replacing whatever was
// stored before. Order in the slice becomes display order.
func (s *BannerService) SaveAll(banners []models.Banner) ([]models.Banner, error) {
	for i := range banners {
		banners[i].Title = strings.TrimSpace(banners[i].Title)
		if banners[i].Title == "" {
			return nil, ErrBannerInvalid
		}
		if !constants.IsValidBannerType(banners[i].Type) {
			banners[i].Type = constants.BannerTypeCustom
		}
	}
	if err := s.repo.ReplaceAll(banners); err != nil {
		return nil, err
	}
	stored, err := s.repo.List(false)
	if err != nil {
		return nil, err
	}
	return stored, nil
}
