// Package worker consumes queued tasks: currently the Telegram
// notification sent to the operator chat for every new order.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/queue"
)

// Worker runs the asynq server and its task handlers.
type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	telegram *TelegramSender
}

// New creates a worker from queue and telegram config.
func New(queueCfg *config.QueueConfig, telegramCfg *config.TelegramConfig) *Worker {
	concurrency := queueCfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	queues := queueCfg.Queues
	if len(queues) == 0 {
		queues = map[string]int{constants.QueueDefault: 10}
	}
	server := asynq.NewServer(queue.RedisOpt(queueCfg), asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
		Logger:      asynqLogger{},
	})

	w := &Worker{
		server:   server,
		mux:      asynq.NewServeMux(),
		telegram: NewTelegramSender(telegramCfg),
	}
	w.mux.HandleFunc(queue.TypeOrderNotification, w.handleOrderNotification)
	return w
}

// Name implements app.Service.
func (w *Worker) Name() string { return "worker" }

// Start runs the asynq server until Stop.
func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

// Stop shuts the asynq server down, waiting for in-flight tasks.
func (w *Worker) Stop(ctx context.Context) error {
	w.server.Shutdown()
	return nil
}

func (w *Worker) handleOrderNotification(ctx context.Context, task *asynq.Task) error {
	var payload queue.OrderNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Malformed payloads never become valid; drop instead of retrying.
		logger.Errorw("order_notification_bad_payload", "error", err)
		return nil
	}
	if err := w.telegram.SendOrder(ctx, &payload); err != nil {
		logger.Warnw("order_notification_send_failed", "order_no", payload.OrderNo, "error", err)
		return err
	}
	logger.Infow("order_notification_sent", "order_no", payload.OrderNo)
	return nil
}

// TelegramSender posts messages to the operator chat through the Bot API.
type TelegramSender struct {
	cfg    *config.TelegramConfig
	client *http.Client
}

// NewTelegramSender creates a sender. A disabled config produces a sender
// whose sends are no-ops.
func NewTelegramSender(cfg *config.TelegramConfig) *TelegramSender {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TelegramSender{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// SendOrder formats and delivers the new-order message.
func (s *TelegramSender) SendOrder(ctx context.Context, payload *queue.OrderNotificationPayload) error {
	if !s.cfg.Enabled || s.cfg.BotToken == "" || s.cfg.ChatID == "" {
		return nil
	}
	return s.sendMessage(ctx, formatOrderMessage(payload))
}

func (s *TelegramSender) sendMessage(ctx context.Context, text string) error {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.cfg.BotToken)
	form := url.Values{}
	form.Set("chat_id", s.cfg.ChatID)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram api status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func formatOrderMessage(p *queue.OrderNotificationPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Yangi buyurtma %s\n", p.OrderNo)
	if p.CustomerName != "" {
		fmt.Fprintf(&b, "Mijoz: %s\n", p.CustomerName)
	}
	fmt.Fprintf(&b, "Telefon: %s\n", p.Phone)
	if p.Address != "" {
		fmt.Fprintf(&b, "Manzil: %s\n", p.Address)
	}
	if p.Comment != "" {
		fmt.Fprintf(&b, "Izoh: %s\n", p.Comment)
	}
	b.WriteString("\n")
	for _, line := range p.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nJami: %s so'm", p.Total)
	return b.String()
}

// asynqLogger routes asynq's log output into the structured logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { logger.S().Debug(args...) }
func (asynqLogger) Info(args ...interface{})  { logger.S().Info(args...) }
func (asynqLogger) Warn(args ...interface{})  { logger.S().Warn(args...) }
func (asynqLogger) Error(args ...interface{}) { logger.S().Error(args...) }
func (asynqLogger) Fatal(args ...interface{}) { logger.S().Fatal(args...) }
