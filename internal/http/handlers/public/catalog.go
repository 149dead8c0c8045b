// Package public holds the storefront endpoint handlers.
package public

import (
	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/http/handlers/shared"
	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/i18n"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/provider"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

// Handler serves the public storefront endpoints.
type Handler struct {
	shared.Handler
}

// New creates the public handler set.
func New(container *provider.Container) *Handler {
	return &Handler{Handler: shared.New(container)}
}

// localizeProduct resolves the display fields for the locale, falling back
// to the primary language where no translation exists. The *_ru source
// fields still serialize so the panel round-trips records unchanged.
func localizeProduct(p models.Product, locale string) models.Product {
	p.Name = p.LocalizedName(locale)
	p.Description = p.LocalizedDescription(locale)
	p.Specs = p.LocalizedSpecs(locale)
	if p.Category != nil {
		category := localizeCategory(*p.Category, locale)
		p.Category = &category
	}
	return p
}

func localizeCategory(category models.Category, locale string) models.Category {
	category.Name = category.LocalizedName(locale)
	return category
}

// ListProducts answers the reconciled catalog, optionally narrowed by
// category and search text.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		CategoryID:   c.Query("category"),
		Search:       c.Query("search"),
		WithCategory: true,
	}
	locale := i18n.ResolveLocale(c)
	products := h.Catalog.List(filter)
	for i := range products {
		products[i] = localizeProduct(products[i], locale)
	}
	response.Success(c, products)
}

// GetProduct answers one product by ID.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, localizeProduct(*product, i18n.ResolveLocale(c)))
}

// ListCategories answers the category registry.
func (h *Handler) ListCategories(c *gin.Context) {
	locale := i18n.ResolveLocale(c)
	categories := h.Categories.List()
	for i := range categories {
		categories[i] = localizeCategory(categories[i], locale)
	}
	response.Success(c, categories)
}

// ListBanners answers the active banner set, never empty.
func (h *Handler) ListBanners(c *gin.Context) {
	response.Success(c, h.Banners.List())
}
