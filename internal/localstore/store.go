// Package localstore is the admin-side local override store: a shadow copy
// of catalog records kept in a kvstore namespace so admin edits survive and
// render even when the remote table store is unreachable. Reads never fail:
// a corrupt or unreadable blob is treated as "no local data".
package localstore

import (
	"encoding/json"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/kvstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
)

// Store persists locally created/edited products, the deleted-ID marker set
// and a local category list.
type Store struct {
	kv kvstore.Store
}

// New creates a Store over the given storage port.
func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// ListProducts returns the local product set, most-recently-added first.
// Empty on missing or corrupt storage, never an error.
func (s *Store) ListProducts() []models.Product {
	var products []models.Product
	if !s.readJSON(constants.KeyLocalProducts, &products) {
		return []models.Product{}
	}
	return products
}

// SaveProducts overwrites the whole local product set in one storage write.
func (s *Store) SaveProducts(products []models.Product) error {
	return s.writeJSON(constants.KeyLocalProducts, products)
}

// UpsertProduct replaces the record with the same ID in place, or prepends
// a new record so the most recent edit lists first.
func (s *Store) UpsertProduct(product models.Product) error {
	products := s.ListProducts()
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			return s.SaveProducts(products)
		}
	}
	return s.SaveProducts(append([]models.Product{product}, products...))
}

// DeletedIDs returns the set of product IDs hidden regardless of remote
// state. Empty on missing or corrupt storage.
func (s *Store) DeletedIDs() map[string]bool {
	var ids []string
	if !s.readJSON(constants.KeyDeletedIDs, &ids) {
		return map[string]bool{}
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// MarkDeleted adds id to the deleted set. Idempotent.
func (s *Store) MarkDeleted(id string) error {
	var ids []string
	s.readJSON(constants.KeyDeletedIDs, &ids)
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.writeJSON(constants.KeyDeletedIDs, append(ids, id))
}

// ClearDeleted removes id from the deleted set. Markers are otherwise
// permanent; this exists for admin reset only.
func (s *Store) ClearDeleted(id string) error {
	var ids []string
	if !s.readJSON(constants.KeyDeletedIDs, &ids) {
		return nil
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return s.writeJSON(constants.KeyDeletedIDs, kept)
}

// ListCategories returns the local category list, falling back to the
// built-in default set when storage is empty or corrupt.
func (s *Store) ListCategories() []models.Category {
	var categories []models.Category
	if !s.readJSON(constants.KeyLocalCats, &categories) || len(categories) == 0 {
		return DefaultCategories()
	}
	return categories
}

// SaveCategories overwrites the local category list.
func (s *Store) SaveCategories(categories []models.Category) error {
	return s.writeJSON(constants.KeyLocalCats, categories)
}

func (s *Store) readJSON(key string, dest interface{}) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil || !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// Corrupt local data must not block rendering remote data.
		return false
	}
	return true
}

func (s *Store) writeJSON(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.kv.Set(key, string(raw))
}
