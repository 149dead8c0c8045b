// Package admin holds the panel endpoint handlers. Everything except login
// sits behind the operator JWT middleware.
package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/http/handlers/shared"
	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/provider"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
	"github.com/myseringan/texnokross-bolt-sub000/internal/service"
)

// Handler serves the admin panel endpoints.
type Handler struct {
	shared.Handler
}

// New creates the admin handler set.
func New(container *provider.Container) *Handler {
	return &Handler{Handler: shared.New(container)}
}

type loginRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

// Login authenticates a panel operator.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	if err := h.Captcha.Verify(req.CaptchaID, req.CaptchaAnswer); err != nil {
		h.RespondError(c, err)
		return
	}
	admin, token, err := h.AdminAuth.Login(req.Username, req.Password)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"token":    token,
		"username": admin.Username,
	})
}

type productRequest struct {
	CategoryID    *string         `json:"category_id"`
	Name          string          `json:"name"`
	NameRu        string          `json:"name_ru"`
	Description   string          `json:"description"`
	DescriptionRu string          `json:"description_ru"`
	Price         models.Money    `json:"price"`
	Image         string          `json:"image"`
	Images        []string        `json:"images"`
	InStock       *bool           `json:"in_stock"`
	Specs         models.SpecList `json:"specs"`
	SpecsRu       models.SpecList `json:"specs_ru"`
}

func (r productRequest) toInput(id string) service.SaveInput {
	return service.SaveInput{
		ID:            id,
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		NameRu:        r.NameRu,
		Description:   r.Description,
		DescriptionRu: r.DescriptionRu,
		Price:         r.Price,
		Image:         r.Image,
		Images:        r.Images,
		InStock:       r.InStock,
		Specs:         r.Specs,
		SpecsRu:       r.SpecsRu,
	}
}

// ListProducts answers the reconciled catalog including out-of-stock items.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		CategoryID:   c.Query("category"),
		Search:       c.Query("search"),
		WithCategory: true,
	}
	response.Success(c, h.Catalog.List(filter))
}

// CreateProduct stores a new product, local override first.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	h.respondSave(c, req.toInput(""))
}

// UpdateProduct replaces a product record in full.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	h.respondSave(c, req.toInput(c.Param("id")))
}

// respondSave answers a product write. A remote sync failure still returns
// the product: the local write stuck, and the panel needs to show it.
func (h *Handler) respondSave(c *gin.Context, input service.SaveInput) {
	product, err := h.Catalog.Save(input)
	if errors.Is(err, service.ErrRemoteSyncFailed) {
		response.ErrorWithData(c, http.StatusBadGateway, "remote_sync_failed", product)
		return
	}
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct hides a product permanently and attempts the remote delete.
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.Catalog.Delete(c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
