package paystack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient(Config{
		BaseURL:   "https://api.paystack.co/",
		SecretKey: "sk_test_secret",
	})

	assert.NotNil(t, client)
	assert.Equal(t, "https://api.paystack.co", client.baseURL)
	assert.Equal(t, "sk_test_secret", client.secretKey)
	assert.NotNil(t, client.client)
}

func TestVerifyTransaction_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/PZ-1001", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"status": "success",
				"amount": 500000,
				"customer": map[string]interface{}{
					"email": "A@X.com",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_secret"})
	tx, err := client.VerifyTransaction("PZ-1001")

	require.NoError(t, err)
	assert.Equal(t, "success", tx.Status)
	assert.True(t, tx.Succeeded())
	assert.Equal(t, int64(500000), tx.Amount)
	assert.Equal(t, "a@x.com", tx.CustomerEmail, "payer email is normalized to lower case")
}

func TestVerifyTransaction_FailedStatusIsReturnedNotErrored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"status": "abandoned",
				"amount": 500000,
				"customer": map[string]interface{}{
					"email": "a@x.com",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_secret"})
	tx, err := client.VerifyTransaction("PZ-1001")

	require.NoError(t, err)
	assert.Equal(t, "abandoned", tx.Status)
	assert.False(t, tx.Succeeded())
}

func TestVerifyTransaction_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_secret"})
	tx, err := client.VerifyTransaction("PZ-unknown")

	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "status 404")
}

func TestVerifyTransaction_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_secret"})
	tx, err := client.VerifyTransaction("PZ-1001")

	require.Error(t, err)
	assert.Nil(t, tx)
}

func TestInitializeTransaction_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(500000), body["amount"])
		assert.Equal(t, "a@x.com", body["email"])
		assert.Equal(t, "NGN", body["currency"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]interface{}{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "abc123",
				"reference":         "PZ-1001",
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_secret"})
	auth, err := client.InitializeTransaction(InitializeRequest{
		Amount:    500000,
		Email:     "a@x.com",
		Reference: "PZ-1001",
		Currency:  "NGN",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", auth.AuthorizationURL)
	assert.Equal(t, "PZ-1001", auth.Reference)
}

func TestInitializeTransaction_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_bad"})
	auth, err := client.InitializeTransaction(InitializeRequest{
		Amount:    500000,
		Email:     "a@x.com",
		Reference: "PZ-1001",
		Currency:  "NGN",
	})

	require.Error(t, err)
	assert.Nil(t, auth)
	assert.Contains(t, err.Error(), "Invalid key")
}

func TestInitializeTransaction_MissingPaymentURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Authorization URL created",
			"data":    map[string]interface{}{},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, SecretKey: "sk_test_secret"})
	auth, err := client.InitializeTransaction(InitializeRequest{
		Amount:    500000,
		Email:     "a@x.com",
		Reference: "PZ-1001",
		Currency:  "NGN",
	})

	require.Error(t, err)
	assert.Nil(t, auth)
	assert.Contains(t, err.Error(), "payment URL")
}
