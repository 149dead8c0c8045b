package localstore

import (
	"testing"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/kvstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
)

func TestListProductsEmptyStorage(t *testing.T) {
	store := New(kvstore.NewMemoryStore())
	if got := store.ListProducts(); len(got) != 0 {
		t.Fatalf("expected empty product list, got %d entries", len(got))
	}
}

func TestListProductsCorruptJSONTreatedAsEmpty(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	if err := kv.Set(constants.KeyLocalProducts, "{not valid json"); err != nil {
		t.Fatalf("seed corrupt blob failed: %v", err)
	}
	store := New(kv)
	if got := store.ListProducts(); len(got) != 0 {
		t.Fatalf("corrupt storage should read as empty, got %d entries", len(got))
	}
}

func TestUpsertProductPrependsNewAndReplacesExisting(t *testing.T) {
	store := New(kvstore.NewMemoryStore())

	first := models.Product{ID: "local_1", Name: "Artel TV 43"}
	second := models.Product{ID: "local_2", Name: "Samsung muzlatgich"}
	if err := store.UpsertProduct(first); err != nil {
		t.Fatalf("upsert first failed: %v", err)
	}
	if err := store.UpsertProduct(second); err != nil {
		t.Fatalf("upsert second failed: %v", err)
	}

	got := store.ListProducts()
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	if got[0].ID != "local_2" || got[1].ID != "local_1" {
		t.Fatalf("expected most-recent-first order, got %s then %s", got[0].ID, got[1].ID)
	}

	first.Name = "Artel TV 43 UA43"
	if err := store.UpsertProduct(first); err != nil {
		t.Fatalf("upsert replace failed: %v", err)
	}
	got = store.ListProducts()
	if len(got) != 2 {
		t.Fatalf("replace must not add a row, got %d", len(got))
	}
	if got[1].Name != "Artel TV 43 UA43" {
		t.Fatalf("expected in-place replacement, got name %q", got[1].Name)
	}
}

func TestMarkDeletedIdempotent(t *testing.T) {
	store := New(kvstore.NewMemoryStore())
	if err := store.MarkDeleted("p_55"); err != nil {
		t.Fatalf("mark deleted failed: %v", err)
	}
	if err := store.MarkDeleted("p_55"); err != nil {
		t.Fatalf("second mark deleted failed: %v", err)
	}
	set := store.DeletedIDs()
	if len(set) != 1 || !set["p_55"] {
		t.Fatalf("expected single deleted marker for p_55, got %v", set)
	}
}

func TestClearDeletedRemovesMarker(t *testing.T) {
	store := New(kvstore.NewMemoryStore())
	if err := store.MarkDeleted("p_55"); err != nil {
		t.Fatalf("mark deleted failed: %v", err)
	}
	if err := store.ClearDeleted("p_55"); err != nil {
		t.Fatalf("clear deleted failed: %v", err)
	}
	if set := store.DeletedIDs(); len(set) != 0 {
		t.Fatalf("expected empty deleted set, got %v", set)
	}
}

func TestListCategoriesFallsBackToDefaults(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	store := New(kv)

	got := store.ListCategories()
	if len(got) != len(DefaultCategories()) {
		t.Fatalf("expected default categories, got %d entries", len(got))
	}

	custom := []models.Category{{ID: "c_1", Name: "Changyutgichlar", Slug: "changyutgichlar"}}
	if err := store.SaveCategories(custom); err != nil {
		t.Fatalf("save categories failed: %v", err)
	}
	got = store.ListCategories()
	if len(got) != 1 || got[0].ID != "c_1" {
		t.Fatalf("expected saved categories, got %v", got)
	}

	if err := kv.Set(constants.KeyLocalCats, "[[["); err != nil {
		t.Fatalf("seed corrupt blob failed: %v", err)
	}
	got = store.ListCategories()
	if len(got) != len(DefaultCategories()) {
		t.Fatalf("corrupt category blob should fall back to defaults, got %d entries", len(got))
	}
}
