package service

import (
	"github.com/shopspring/decimal"

	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

// CartService keeps per-session carts consistent: at most one row per
// (session, product), quantity zero means removal, and every mutation
// answers with a fresh read of the stored cart.
type CartService struct {
	repo    repository.CartRepository
	catalog *CatalogService
}

// NewCartService creates a cart service.
func NewCartService(repo repository.CartRepository, catalog *CatalogService) *CartService {
	return &CartService{repo: repo, catalog: catalog}
}

// Get returns the session's cart items with product data attached. Items
// whose product no longer resolves (deleted meanwhile) are dropped from
// the view and pruned from storage.
func (s *CartService) Get(sessionID string) ([]models.CartItem, error) {
	items, err := s.repo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	result := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		product, err := s.catalog.Get(item.ProductID)
		if err != nil {
			_ = s.repo.Delete(item.ID)
			continue
		}
		item.Product = product
		result = append(result, item)
	}
	return result, nil
}

// Add puts quantity units of a product into the cart. An existing row for
// the same product is incremented instead of duplicated.
func (s *CartService) Add(sessionID, productID string, quantity int) ([]models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}
	if _, err := s.catalog.Get(productID); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetBySessionAndProduct(sessionID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.repo.UpdateQuantity(existing.ID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
	} else {
		item := &models.CartItem{SessionID: sessionID, ProductID: productID, Quantity: quantity}
		if err := s.repo.Create(item); err != nil {
			return nil, err
		}
	}
	return s.Get(sessionID)
}

// UpdateQuantity sets the absolute quantity of a cart row. Zero or negative
// removes the row. Unknown item IDs are ignored, matching removal semantics.
func (s *CartService) UpdateQuantity(sessionID string, itemID uint, quantity int) ([]models.CartItem, error) {
	item, err := s.repo.GetByID(sessionID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return s.Get(sessionID)
	}
	if quantity <= 0 {
		if err := s.repo.Delete(item.ID); err != nil {
			return nil, err
		}
	} else if err := s.repo.UpdateQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.Get(sessionID)
}

// Remove deletes a cart row. Removing an absent row is a no-op.
func (s *CartService) Remove(sessionID string, itemID uint) ([]models.CartItem, error) {
	item, err := s.repo.GetByID(sessionID, itemID)
	if err != nil {
		return nil, err
	}
	if item != nil {
		if err := s.repo.Delete(item.ID); err != nil {
			return nil, err
		}
	}
	return s.Get(sessionID)
}

// Clear empties the session's cart.
func (s *CartService) Clear(sessionID string) error {
	return s.repo.ClearBySession(sessionID)
}

// Total sums price*quantity over the given items. An empty cart totals zero.
func (s *CartService) Total(items []models.CartItem) models.Money {
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}

// ItemCount sums quantities over the given items.
func (s *CartService) ItemCount(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
