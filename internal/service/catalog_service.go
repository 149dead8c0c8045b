package service

import (
	"strings"

	"github.com/myseringan/texnokross-bolt-sub000/internal/localstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

const maxProductImages = 4

// Reconcile merges remote catalog records with local overrides and deletion
// markers into one consistent list. Priority: a deletion marker suppresses
// a product from either side; a local record shadows the remote record with
// the same ID; remote records otherwise pass through unchanged. Order
// within each partition is preserved from its source (local first).
func Reconcile(remote, local []models.Product, deleted map[string]bool) []models.Product {
	localIDs := make(map[string]bool, len(local))
	result := make([]models.Product, 0, len(local)+len(remote))
	for _, product := range local {
		localIDs[product.ID] = true
		if deleted[product.ID] {
			continue
		}
		result = append(result, product)
	}
	for _, product := range remote {
		if localIDs[product.ID] || deleted[product.ID] {
			continue
		}
		result = append(result, product)
	}
	return result
}

// CatalogService produces the merged product view shown to the storefront
// and the admin panel, and routes admin writes through the local override
// store before the remote table.
type CatalogService struct {
	repo  repository.ProductRepository
	local *localstore.Store
}

// NewCatalogService creates a catalog service.
func NewCatalogService(repo repository.ProductRepository, local *localstore.Store) *CatalogService {
	return &CatalogService{repo: repo, local: local}
}

// List returns the reconciled catalog. A remote read failure degrades to
// local-only data and is logged, never surfaced: a dead backend must not
// blank the storefront.
func (s *CatalogService) List(filter repository.ProductListFilter) []models.Product {
	remote, err := s.repo.List(filter)
	if err != nil {
		logger.Warnw("catalog_remote_list_failed", "error", err)
		remote = nil
	}
	merged := Reconcile(remote, s.local.ListProducts(), s.local.DeletedIDs())
	return filterProducts(merged, filter)
}

// Get returns one reconciled product by ID.
func (s *CatalogService) Get(id string) (*models.Product, error) {
	for _, product := range s.local.ListProducts() {
		if product.ID == id {
			if s.local.DeletedIDs()[id] {
				return nil, ErrNotFound
			}
			p := product
			return &p, nil
		}
	}
	if s.local.DeletedIDs()[id] {
		return nil, ErrNotFound
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// SaveInput carries an admin product create/edit.
type SaveInput struct {
	ID            string
	CategoryID    *string
	Name          string
	NameRu        string
	Description   string
	DescriptionRu string
	Price         models.Money
	Image         string
	Images        []string
	InStock       *bool
	Specs         models.SpecList
	SpecsRu       models.SpecList
}

// Save validates and persists an admin product edit: first to the local
// override store (never lost), then to the remote table. A remote failure
// is surfaced as ErrRemoteSyncFailed after the local write has succeeded.
func (s *CatalogService) Save(input SaveInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if input.Price.IsNegative() {
		return nil, ErrProductPriceInvalid
	}
	if len(input.Images) > maxProductImages {
		return nil, ErrTooManyImages
	}

	isNew := strings.TrimSpace(input.ID) == ""
	product := models.Product{
		ID:            strings.TrimSpace(input.ID),
		CategoryID:    input.CategoryID,
		Name:          name,
		NameRu:        strings.TrimSpace(input.NameRu),
		Description:   input.Description,
		DescriptionRu: input.DescriptionRu,
		Price:         input.Price,
		Image:         strings.TrimSpace(input.Image),
		Images:        models.StringArray(input.Images),
		InStock:       true,
		Specs:         input.Specs,
		SpecsRu:       input.SpecsRu,
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if isNew {
		product.ID = models.NewLocalProductID()
	}

	if err := s.local.UpsertProduct(product); err != nil {
		return nil, err
	}

	if err := s.syncRemote(&product, isNew); err != nil {
		logger.Errorw("catalog_remote_sync_failed", "product_id", product.ID, "error", err)
		return &product, ErrRemoteSyncFailed
	}
	return &product, nil
}

// Delete marks a product deleted locally (a permanent marker) and attempts
// the remote delete. The marker guarantees the product disappears from
// reconciled views even when the remote row survives.
func (s *CatalogService) Delete(id string) error {
	if err := s.local.MarkDeleted(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		logger.Errorw("catalog_remote_delete_failed", "product_id", id, "error", err)
		return ErrRemoteSyncFailed
	}
	return nil
}

func (s *CatalogService) syncRemote(product *models.Product, isNew bool) error {
	if isNew {
		return s.repo.Create(product)
	}
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return s.repo.Create(product)
	}
	// Full replacement, not a partial field merge.
	product.CreatedAt = existing.CreatedAt
	return s.repo.Update(product)
}

// filterProducts applies the listing filter to locally-sourced records too,
// so local overrides obey the same category/search narrowing as remote rows.
func filterProducts(products []models.Product, filter repository.ProductListFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if filter.CategoryID == "" && search == "" && !filter.InStockOnly {
		return products
	}
	result := make([]models.Product, 0, len(products))
	for _, product := range products {
		if filter.CategoryID != "" && (product.CategoryID == nil || *product.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.InStockOnly && !product.InStock {
			continue
		}
		if search != "" && !matchesSearch(&product, search) {
			continue
		}
		result = append(result, product)
	}
	return result
}

func matchesSearch(product *models.Product, loweredSearch string) bool {
	return strings.Contains(strings.ToLower(product.Name), loweredSearch) ||
		strings.Contains(strings.ToLower(product.NameRu), loweredSearch) ||
		strings.Contains(strings.ToLower(product.Description), loweredSearch)
}
