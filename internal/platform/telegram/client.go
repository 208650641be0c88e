package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"raffle-manager-backend/internal/common/logger"
)

const defaultAPIURL = "https://api.telegram.org"

// Client talks to the Telegram Bot API.
type Client struct {
	httpClient *http.Client
	token      string
	apiURL     string
}

// Response is the envelope every Bot API method answers with.
type Response struct {
	Ok          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
}

type Option func(*Client)

// WithAPIURL points the client at another Bot API server.
func WithAPIURL(apiURL string) Option {
	return func(c *Client) { c.apiURL = strings.TrimRight(apiURL, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		token:  token,
		apiURL: defaultAPIURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendMessage posts a plain text message to chatID.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	params := url.Values{
		"chat_id": {strconv.FormatInt(chatID, 10)},
		"text":    {text},
	}

	var response Response
	if err := c.makeRequest(ctx, "sendMessage", params, &response); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	if !response.Ok {
		return fmt.Errorf("telegram API error %d: %s", response.ErrorCode, response.Description)
	}

	logger.Debug().Int64("chat_id", chatID).Msg("Telegram message sent")
	return nil
}

func (c *Client) makeRequest(ctx context.Context, method string, data url.Values, result interface{}) error {
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.apiURL, c.token, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	return nil
}
