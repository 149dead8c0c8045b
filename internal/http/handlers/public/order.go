package public

import (
	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
	"github.com/myseringan/texnokross-bolt-sub000/internal/router/middleware"
	"github.com/myseringan/texnokross-bolt-sub000/internal/service"
)

type placeOrderRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address"`
	Comment      string `json:"comment"`
}

// PlaceOrder creates an order from the session's cart and clears it.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	input := service.PlaceOrderInput{
		SessionID:    h.SessionID(c),
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Comment:      req.Comment,
	}
	if userID, ok := middleware.CurrentUserID(c); ok {
		input.UserID = &userID
	}
	order, err := h.Orders.Place(input)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, order)
}

// ListOrders answers the caller's own orders: the authenticated user's, or
// the anonymous session's.
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := h.Pagination(c)
	filter := repository.OrderListFilter{Page: page, PageSize: pageSize}
	if userID, ok := middleware.CurrentUserID(c); ok {
		filter.UserID = &userID
	} else {
		filter.SessionID = h.SessionID(c)
	}
	orders, total, err := h.Orders.List(filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.SuccessPage(c, orders, total, page, pageSize)
}

// GetOrder answers one of the caller's orders. Orders belonging to someone
// else are indistinguishable from missing ones.
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
	if userID, authed := middleware.CurrentUserID(c); authed {
		if order.UserID == nil || *order.UserID != userID {
			response.NotFound(c)
			return
		}
	} else if order.SessionID != h.SessionID(c) {
		response.NotFound(c)
		return
	}
	response.Success(c, order)
}

// CaptchaImage answers a fresh captcha challenge for the admin login form.
func (h *Handler) CaptchaImage(c *gin.Context) {
	id, image, err := h.Captcha.Generate()
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"captcha_id": id,
		"image":      image,
		"enabled":    h.Captcha.Enabled(),
	})
}
