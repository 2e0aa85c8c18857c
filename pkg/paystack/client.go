package paystack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusSuccess is the only transaction status that authorizes confirming a
// booking. Anything else (failed, abandoned, reversed, ...) is a rejection.
const StatusSuccess = "success"

// Client talks to the Paystack REST API using the merchant secret key.
// The secret key is privileged and must never be exposed to clients.
type Client struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// Config holds configuration for the Paystack client
type Config struct {
	BaseURL   string
	SecretKey string
}

// NewClient creates a new Paystack API client
func NewClient(config Config) *Client {
	return &Client{
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		secretKey: config.SecretKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Transaction is Paystack's authoritative record of a transaction.
// Amount is in minor currency units (kobo).
type Transaction struct {
	Status        string
	Amount        int64
	CustomerEmail string
}

// Succeeded reports whether Paystack recorded the transaction as successful
func (t *Transaction) Succeeded() bool {
	return t.Status == StatusSuccess
}

// verifyResponse is the wire format of GET /transaction/verify/{reference}
type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string `json:"status"`
		Amount   int64  `json:"amount"`
		Customer struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

// VerifyTransaction resolves a payment reference to Paystack's record of the
// transaction. It is read-only and is the source of truth for whether money
// actually moved.
func (c *Client) VerifyTransaction(reference string) (*Transaction, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, reference)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create verify request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send verify request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read verify response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verify request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var verifyResp verifyResponse
	if err := json.Unmarshal(body, &verifyResp); err != nil {
		return nil, fmt.Errorf("failed to parse verify response: %w", err)
	}

	return &Transaction{
		Status:        verifyResp.Data.Status,
		Amount:        verifyResp.Data.Amount,
		CustomerEmail: strings.ToLower(verifyResp.Data.Customer.Email),
	}, nil
}

// InitializeRequest contains the parameters for creating a one-time payment
type InitializeRequest struct {
	Amount    int64                  `json:"amount"` // minor units (kobo)
	Email     string                 `json:"email"`
	Reference string                 `json:"reference"`
	Currency  string                 `json:"currency"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Authorization is the payment page returned by transaction initialize
type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// initializeResponse is the wire format of POST /transaction/initialize
type initializeResponse struct {
	Status  bool          `json:"status"`
	Message string        `json:"message"`
	Data    Authorization `json:"data"`
}

// InitializeTransaction creates a Paystack one-time payment and returns the
// hosted payment page the guest should be redirected to.
func (c *Client) InitializeTransaction(initReq InitializeRequest) (*Authorization, error) {
	jsonData, err := json.Marshal(initReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	url := fmt.Sprintf("%s/transaction/initialize", c.baseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create initialize request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send initialize request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read initialize response: %w", err)
	}

	var initResp initializeResponse
	if err := json.Unmarshal(body, &initResp); err != nil {
		return nil, fmt.Errorf("failed to parse initialize response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("initialize request failed with status %d: %s", resp.StatusCode, initResp.Message)
	}

	if initResp.Data.AuthorizationURL == "" {
		return nil, fmt.Errorf("paystack did not return a payment URL")
	}

	return &initResp.Data, nil
}
