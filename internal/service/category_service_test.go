package service

import (
	"errors"
	"testing"

	"github.com/myseringan/texnokross-bolt-sub000/internal/localstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

func newCategoryFixture(t *testing.T) (*CategoryService, *localstore.Store, repository.ProductRepository) {
	t.Helper()
	db := newTestDB(t)
	local := newTestLocalStore()
	return NewCategoryService(repository.NewCategoryRepository(db), local), local, repository.NewProductRepository(db)
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Kir yuvish mashinalari", "kir-yuvish-mashinalari"},
		{"Televizorlar №1!", "televizorlar-1"},
		{"  Oshxona   texnikasi  ", "oshxona-texnikasi"},
		{"UPPER", "upper"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoryCreateAndList(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	created, err := svc.Create("Mikroto'lqinli pechlar", "Микроволновые печи")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "mikrotolqinli-pechlar" {
		t.Fatalf("apostrophe must be stripped from slug, got %q", created.Slug)
	}

	found := false
	for _, cat := range svc.List() {
		if cat.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("created category missing from list")
	}
}

func TestCategoryDuplicateNameRejectedBeforeWrite(t *testing.T) {
	svc, local, _ := newCategoryFixture(t)

	if _, err := svc.Create("Televizorlar va audio", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	before := len(local.ListCategories())

	if _, err := svc.Create("TELEVIZORLAR VA AUDIO", ""); !errors.Is(err, ErrCategoryNameExists) {
		t.Fatalf("case-insensitive duplicate: expected ErrCategoryNameExists, got %v", err)
	}
	if after := len(local.ListCategories()); after != before {
		t.Fatalf("rejected create must not write: %d -> %d categories", before, after)
	}
}

func TestCategoryBlankNameRejected(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	if _, err := svc.Create("   ", ""); !errors.Is(err, ErrCategoryNameRequired) {
		t.Fatalf("expected ErrCategoryNameRequired, got %v", err)
	}
	if _, err := svc.Update("c_any", "", ""); !errors.Is(err, ErrCategoryNameRequired) {
		t.Fatalf("update blank: expected ErrCategoryNameRequired, got %v", err)
	}
}

func TestCategoryUpdateRegeneratesSlug(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	created, err := svc.Create("Pechlar", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.Update(created.ID, "Gaz plitalari", "Газовые плиты")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "gaz-plitalari" {
		t.Fatalf("slug not regenerated: %q", updated.Slug)
	}

	// Keeping its own name is not a duplicate.
	if _, err := svc.Update(created.ID, "Gaz plitalari", ""); err != nil {
		t.Fatalf("same-name update: %v", err)
	}
}

func TestCategoryDeleteBlockedWhileInUse(t *testing.T) {
	svc, _, products := newCategoryFixture(t)

	created, err := svc.Create("Konditsionerlar premium", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := products.Create(&models.Product{
		ID:         models.NewProductID(),
		Name:       "Shivaki inverter",
		CategoryID: &created.ID,
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	if err := svc.Delete(created.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
	if _, err := svc.Get(created.ID); err != nil {
		t.Fatalf("category must survive rejected delete: %v", err)
	}
}

func TestCategoryDeleteRemovesUnusedCategory(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	created, err := svc.Create("Vaqtinchalik", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCategoryListDefaultsWhenEmpty(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	categories := svc.List()
	if len(categories) == 0 {
		t.Fatalf("expected built-in default categories")
	}
	names := map[string]bool{}
	for _, cat := range categories {
		names[cat.Name] = true
	}
	if !names["Televizorlar"] || !names["Muzlatgichlar"] {
		t.Fatalf("default set incomplete: %v", names)
	}
}
