package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
	"github.com/myseringan/texnokross-bolt-sub000/internal/router/middleware"
)

// ListOrders answers all orders, filterable by status.
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := h.Pagination(c)
	orders, total, err := h.Orders.List(repository.OrderListFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.SuccessPage(c, orders, total, page, pageSize)
}

// GetOrder answers one order with its item lines.
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := h.UintParam(c, "id")
	if !ok {
		return
	}
	order, err := h.Orders.Get(orderID)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := h.UintParam(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	order, err := h.Orders.UpdateStatus(orderID, req.Status)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	adminID, _ := middleware.CurrentAdminID(c)
	logger.Infow("order_status_changed",
		"order_id", orderID,
		"status", order.Status,
		"admin_id", adminID,
	)
	response.Success(c, order)
}
