package service

import (
	"errors"
	"testing"

	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

func newCartFixture(t *testing.T) (*CartService, *CatalogService) {
	t.Helper()
	db := newTestDB(t)
	catalog := NewCatalogService(repository.NewProductRepository(db), newTestLocalStore())
	cart := NewCartService(repository.NewCartRepository(db), catalog)
	return cart, catalog
}

func seedProduct(t *testing.T, catalog *CatalogService, name string, price int64) *models.Product {
	t.Helper()
	product, err := catalog.Save(SaveInput{Name: name, Price: models.NewMoneyFromInt(price)})
	if err != nil {
		t.Fatalf("seed product %q: %v", name, err)
	}
	return product
}

func TestCartAddSameProductTwiceKeepsOneRow(t *testing.T) {
	cart, catalog := newCartFixture(t)
	product := seedProduct(t, catalog, "Artel muzlatgich", 3200000)

	if _, err := cart.Add("sess-1", product.ID, 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	items, err := cart.Add("sess-1", product.ID, 1)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected one row per product, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	cart, catalog := newCartFixture(t)
	product := seedProduct(t, catalog, "LG kir yuvish mashinasi", 5400000)

	if _, err := cart.Add("sess-1", product.ID, 0); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("qty 0: expected ErrQuantityInvalid, got %v", err)
	}
	if _, err := cart.Add("sess-1", product.ID, -3); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("qty -3: expected ErrQuantityInvalid, got %v", err)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	cart, _ := newCartFixture(t)

	if _, err := cart.Add("sess-1", "p_missing", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartUpdateQuantityZeroRemovesRow(t *testing.T) {
	cart, catalog := newCartFixture(t)
	product := seedProduct(t, catalog, "Shivaki konditsioner", 4200000)

	items, err := cart.Add("sess-1", product.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err = cart.UpdateQuantity("sess-1", items[0].ID, 0)
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after zero quantity, got %d rows", len(items))
	}
}

func TestCartUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	cart, catalog := newCartFixture(t)
	product := seedProduct(t, catalog, "Samsung televizor", 7500000)

	items, err := cart.Add("sess-1", product.ID, 5)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	items, err = cart.UpdateQuantity("sess-1", items[0].ID, 3)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("expected absolute quantity 3, got %+v", items)
	}
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	cart, catalog := newCartFixture(t)
	product := seedProduct(t, catalog, "Artel chang yutgich", 900000)

	items, err := cart.Add("sess-1", product.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	itemID := items[0].ID

	if items, err = cart.Remove("sess-1", itemID); err != nil || len(items) != 0 {
		t.Fatalf("first remove: err=%v rows=%d", err, len(items))
	}
	if items, err = cart.Remove("sess-1", itemID); err != nil || len(items) != 0 {
		t.Fatalf("second remove must be a no-op: err=%v rows=%d", err, len(items))
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	cart, catalog := newCartFixture(t)
	product := seedProduct(t, catalog, "Muzlatgich", 3000000)

	if _, err := cart.Add("sess-a", product.ID, 1); err != nil {
		t.Fatalf("add sess-a: %v", err)
	}
	itemsB, err := cart.Get("sess-b")
	if err != nil {
		t.Fatalf("get sess-b: %v", err)
	}
	if len(itemsB) != 0 {
		t.Fatalf("session b sees session a's cart: %+v", itemsB)
	}
	// A session cannot touch another session's rows either.
	itemsA, _ := cart.Get("sess-a")
	if got, err := cart.UpdateQuantity("sess-b", itemsA[0].ID, 9); err != nil || len(got) != 0 {
		t.Fatalf("cross-session update must be ignored: err=%v rows=%d", err, len(got))
	}
	itemsA, _ = cart.Get("sess-a")
	if itemsA[0].Quantity != 1 {
		t.Fatalf("cross-session update leaked: %+v", itemsA[0])
	}
}

func TestCartTotalsAndCounts(t *testing.T) {
	cart, catalog := newCartFixture(t)
	tv := seedProduct(t, catalog, "Televizor", 5000000)
	fridge := seedProduct(t, catalog, "Muzlatgich", 3000000)

	if got := cart.Total(nil); got.String() != "0" {
		t.Fatalf("empty cart total: expected 0, got %s", got.String())
	}
	if got := cart.ItemCount(nil); got != 0 {
		t.Fatalf("empty cart count: expected 0, got %d", got)
	}

	if _, err := cart.Add("sess-1", tv.ID, 2); err != nil {
		t.Fatalf("add tv: %v", err)
	}
	items, err := cart.Add("sess-1", fridge.ID, 1)
	if err != nil {
		t.Fatalf("add fridge: %v", err)
	}

	if got := cart.Total(items); got.String() != "13000000" {
		t.Fatalf("total: expected 13000000, got %s", got.String())
	}
	if got := cart.ItemCount(items); got != 3 {
		t.Fatalf("count: expected 3, got %d", got)
	}
}

func TestCartDropsItemsForDeletedProducts(t *testing.T) {
	cart, catalog := newCartFixture(t)
	product := seedProduct(t, catalog, "Eskirgan model", 100000)

	if _, err := cart.Add("sess-1", product.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := catalog.Delete(product.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	items, err := cart.Get("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart still shows deleted product: %+v", items)
	}
}
