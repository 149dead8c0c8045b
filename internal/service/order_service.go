package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

// OrderNotifier receives new-order events. A nil notifier means
// notifications are off.
type OrderNotifier interface {
	NotifyNewOrder(order *models.Order) error
}

// PlaceOrderInput carries a checkout request.
type PlaceOrderInput struct {
	SessionID    string
	UserID       *uint
	CustomerName string
	Phone        string
	Address      string
	Comment      string
}

// OrderService turns session carts into orders and manages their status.
type OrderService struct {
	orders   repository.OrderRepository
	cart     *CartService
	notifier OrderNotifier
}

// NewOrderService creates an order service.
func NewOrderService(orders repository.OrderRepository, cart *CartService, notifier OrderNotifier) *OrderService {
	return &OrderService{orders: orders, cart: cart, notifier: notifier}
}

// Place creates an order from the session's current cart, snapshotting
// product names and prices, then clears the cart. The notification is
// fire-and-forget: a queue failure never fails the checkout.
func (s *OrderService) Place(input PlaceOrderInput) (*models.Order, error) {
	phone, err := NormalizePhone(input.Phone)
	if err != nil {
		return nil, err
	}
	items, err := s.cart.Get(input.SessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		OrderNo:       newOrderNo(),
		SessionID:     input.SessionID,
		UserID:        input.UserID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: phone,
		Address:       strings.TrimSpace(input.Address),
		Comment:       strings.TrimSpace(input.Comment),
		Total:         s.cart.Total(items),
		Status:        constants.OrderStatusNew,
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
		})
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	if err := s.cart.Clear(input.SessionID); err != nil {
		logger.Warnw("order_cart_clear_failed", "order_no", order.OrderNo, "error", err)
	}
	if s.notifier != nil {
		if err := s.notifier.NotifyNewOrder(order); err != nil {
			logger.Warnw("order_notify_failed", "order_no", order.OrderNo, "error", err)
		}
	}
	return order, nil
}

// Get returns one order by ID.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// List returns orders matching the filter with the total row count.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orders.List(filter)
}

// UpdateStatus moves an order to a new status.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// newOrderNo builds a time-prefixed order number with a random suffix.
func newOrderNo() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("TX%s%04d", time.Now().Format("20060102150405"), suffix)
}
