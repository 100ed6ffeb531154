package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// maxTelegramResponseSize limits the response body size read on errors
const maxTelegramResponseSize = 64 * 1024

// TelegramNotifier posts new-order notifications to a Telegram chat via the
// Bot API. When no bot token is configured the notifier is a no-op, so local
// development works without Telegram credentials.
type TelegramNotifier struct {
	botToken   string
	chatID     string
	apiBase    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTelegramNotifier creates a notifier from the Telegram configuration
func NewTelegramNotifier(cfg config.TelegramConfig, logger *zap.Logger) *TelegramNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TelegramNotifier{
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		apiBase:  strings.TrimSuffix(cfg.APIBase, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("telegram"),
	}
}

// Enabled reports whether the notifier has credentials to send with
func (n *TelegramNotifier) Enabled() bool {
	return n.botToken != "" && n.chatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// NotifyNewOrder sends the order summary to the configured chat. Returns nil
// without sending when the notifier is not configured.
func (n *TelegramNotifier) NotifyNewOrder(ctx context.Context, o *order.Order) error {
	if !n.Enabled() {
		n.logger.Debug("telegram notifications disabled, skipping",
			zap.String("order_id", o.ID.String()))
		return nil
	}

	payload := sendMessageRequest{
		ChatID:    n.chatID,
		Text:      FormatOrderMessage(o),
		ParseMode: "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Error("telegram request failed",
			zap.String("order_id", o.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxTelegramResponseSize))

	var apiResp sendMessageResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil || !apiResp.OK || resp.StatusCode != http.StatusOK {
		n.logger.Error("telegram API rejected message",
			zap.String("order_id", o.ID.String()),
			zap.Int("status", resp.StatusCode),
			zap.String("description", apiResp.Description))
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, apiResp.Description)
	}

	n.logger.Info("order notification sent",
		zap.String("order_id", o.ID.String()))
	return nil
}

// FormatOrderMessage renders the HTML message body for a new order
func FormatOrderMessage(o *order.Order) string {
	var b strings.Builder

	b.WriteString("🛒 <b>New Order</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>Customer:</b> %s\n", escapeHTML(o.CustomerName))
	fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n", escapeHTML(o.CustomerPhone))
	fmt.Fprintf(&b, "🏙 <b>City:</b> %s\n", escapeHTML(o.CustomerCity))
	fmt.Fprintf(&b, "📍 <b>Address:</b> %s\n", escapeHTML(o.CustomerAddress))

	b.WriteString("\n<b>Items:</b>\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "• %s × %d — %s\n",
			escapeHTML(item.ProductName),
			item.Quantity,
			item.PriceMoney().MultiplyByInt(int64(item.Quantity)).Display())
	}

	fmt.Fprintf(&b, "\n💰 <b>Total:</b> %s\n", o.TotalMoney().Display())
	fmt.Fprintf(&b, "📦 <b>Status:</b> %s\n", o.Status)

	if notes := strings.TrimSpace(o.Notes); notes != "" {
		fmt.Fprintf(&b, "📝 <b>Notes:</b> %s\n", escapeHTML(notes))
	}

	fmt.Fprintf(&b, "\n🕐 %s", o.CreatedAt.Format("2006-01-02 15:04"))

	return b.String()
}

// escapeHTML escapes the characters Telegram's HTML parse mode treats specially
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
