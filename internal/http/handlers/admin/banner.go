package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
)

type saveBannersRequest struct {
	Banners []models.Banner `json:"banners" binding:"required"`
}

// ListBanners answers every banner, active or not.
func (h *Handler) ListBanners(c *gin.Context) {
	response.Success(c, h.Banners.ListAll())
}

// SaveBanners replaces the full banner set; list order becomes display
// order.
func (h *Handler) SaveBanners(c *gin.Context) {
	var req saveBannersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	banners, err := h.Banners.SaveAll(req.Banners)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, banners)
}
