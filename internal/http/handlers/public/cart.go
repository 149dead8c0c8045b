package public

import (
	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
)

type cartView struct {
	Items     []models.CartItem `json:"items"`
	Total     models.Money      `json:"total"`
	ItemCount int               `json:"item_count"`
}

func (h *Handler) cartResponse(c *gin.Context, items []models.CartItem) {
	response.Success(c, cartView{
		Items:     items,
		Total:     h.Cart.Total(items),
		ItemCount: h.Cart.ItemCount(items),
	})
}

// GetCart answers the session's cart with totals.
func (h *Handler) GetCart(c *gin.Context) {
	items, err := h.Cart.Get(h.SessionID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.cartResponse(c, items)
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// AddCartItem puts a product into the session's cart. Quantity defaults
// to one.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	items, err := h.Cart.Add(h.SessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.cartResponse(c, items)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets the absolute quantity of a cart row; zero removes it.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, ok := h.UintParam(c, "id")
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	items, err := h.Cart.UpdateQuantity(h.SessionID(c), itemID, req.Quantity)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.cartResponse(c, items)
}

// RemoveCartItem deletes a cart row.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	itemID, ok := h.UintParam(c, "id")
	if !ok {
		return
	}
	items, err := h.Cart.Remove(h.SessionID(c), itemID)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.cartResponse(c, items)
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.Cart.Clear(h.SessionID(c)); err != nil {
		h.RespondError(c, err)
		return
	}
	h.cartResponse(c, nil)
}
