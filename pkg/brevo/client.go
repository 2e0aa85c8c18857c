package brevo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client sends transactional email through the Brevo API
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Config holds configuration for the Brevo client
type Config struct {
	BaseURL string
	APIKey  string
}

// NewClient creates a new Brevo API client
func NewClient(config Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Contact is an email address with an optional display name
type Contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SendRequest is the wire format of POST /v3/smtp/email
type SendRequest struct {
	Sender      Contact   `json:"sender"`
	To          []Contact `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent,omitempty"`
	TextContent string    `json:"textContent,omitempty"`
}

// SendEmail submits a transactional email. A non-2xx response is returned as
// an error carrying Brevo's response body for diagnosis.
func (c *Client) SendEmail(sendReq SendRequest) error {
	jsonData, err := json.Marshal(sendReq)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	url := fmt.Sprintf("%s/v3/smtp/email", c.baseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}

	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo send failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
