package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/service"
)

type categoryRequest struct {
	Name   string `json:"name" binding:"required"`
	NameRu string `json:"name_ru"`
}

// ListCategories answers the category registry.
func (h *Handler) ListCategories(c *gin.Context) {
	response.Success(c, h.Categories.List())
}

// CreateCategory validates and adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	category, err := h.Categories.Create(req.Name, req.NameRu)
	if errors.Is(err, service.ErrRemoteSyncFailed) {
		response.ErrorWithData(c, http.StatusBadGateway, "remote_sync_failed", category)
		return
	}
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, category)
}

// UpdateCategory renames a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	category, err := h.Categories.Update(c.Param("id"), req.Name, req.NameRu)
	if errors.Is(err, service.ErrRemoteSyncFailed) {
		response.ErrorWithData(c, http.StatusBadGateway, "remote_sync_failed", category)
		return
	}
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes an unused category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.Categories.Delete(c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
