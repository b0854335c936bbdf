package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	ParseModeMarkdown = "Markdown"

	// Bot API description prefix for rejected markup.
	entityParseError = "can't parse entities"

	defaultTimeout = 15 * time.Second
)

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	apiResp, err := b.call(ctx, "setWebhook", map[string]string{"url": webhookURL})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
// When Telegram cannot parse the markup, usually a stray _ or * from user
// text, the same text is resent without a parse mode.
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	apiResp, err := b.send(ctx, chatID, text, parseMode)
	if err != nil {
		return err
	}
	if !apiResp.OK && parseMode != "" && strings.Contains(apiResp.Description, entityParseError) {
		apiResp, err = b.send(ctx, chatID, text, "")
		if err != nil {
			return err
		}
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram sendMessage failed: %s", apiResp.Description)
	}
	return nil
}

func (b *Bot) send(ctx context.Context, chatID int64, text, parseMode string) (*APIResponse, error) {
	apiResp, err := b.call(ctx, "sendMessage", SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return apiResp, nil
}

// call POSTs payload to the given Bot API method and decodes the envelope.
func (b *Bot) call(ctx context.Context, method string, payload any) (*APIResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	return &apiResp, nil
}
