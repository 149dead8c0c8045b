// Package queue publishes background tasks over asynq.
package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
)

// Task type names.
const (
	TypeOrderNotification = "order:notify"
)

// OrderNotificationPayload is the queued snapshot of a new order.
type OrderNotificationPayload struct {
	OrderID      uint      `json:"order_id"`
	OrderNo      string    `json:"order_no"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Comment      string    `json:"comment"`
	Total        string    `json:"total"`
	Lines        []string  `json:"lines"`
	PlacedAt     time.Time `json:"placed_at"`
}

// RedisOpt builds the asynq redis connection options from queue config.
func RedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Client enqueues tasks.
type Client struct {
	client *asynq.Client
}

// NewClient creates a queue client.
func NewClient(cfg *config.QueueConfig) *Client {
	return &Client{client: asynq.NewClient(RedisOpt(cfg))}
}

// NotifyNewOrder enqueues an order-notification task.
func (c *Client) NotifyNewOrder(order *models.Order) error {
	payload := OrderNotificationPayload{
		OrderID:      order.ID,
		OrderNo:      order.OrderNo,
		CustomerName: order.CustomerName,
		Phone:        order.CustomerPhone,
		Address:      order.Address,
		Comment:      order.Comment,
		Total:        order.Total.String(),
		PlacedAt:     order.CreatedAt,
	}
	for _, item := range order.Items {
		payload.Lines = append(payload.Lines,
			fmt.Sprintf("%s x%d = %s", item.ProductName, item.Quantity, item.UnitPrice.String()))
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeOrderNotification, raw)
	info, err := c.client.Enqueue(task,
		asynq.Queue(constants.QueueDefault),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return err
	}
	logger.Infow("task_enqueued", "type", task.Type(), "task_id", info.ID, "order_no", order.OrderNo)
	return nil
}

// Close shuts the underlying connection down.
func (c *Client) Close() {
	if err := c.client.Close(); err != nil {
		logger.Warnw("queue_client_close_failed", "error", err)
	}
}
