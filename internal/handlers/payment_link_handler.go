package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pzedhomes/booking-payments-backend/internal/config"
	"github.com/pzedhomes/booking-payments-backend/internal/models"
	"github.com/pzedhomes/booking-payments-backend/pkg/paystack"
)

// PaymentInitializer creates hosted payment pages. Satisfied by
// *paystack.Client.
type PaymentInitializer interface {
	InitializeTransaction(req paystack.InitializeRequest) (*paystack.Authorization, error)
}

// PaymentLinkHandler handles payment link creation
type PaymentLinkHandler struct {
	gateway PaymentInitializer
	config  *config.Config
	logger  *logrus.Logger
}

// NewPaymentLinkHandler creates a new PaymentLinkHandler
func NewPaymentLinkHandler(gateway PaymentInitializer, cfg *config.Config, logger *logrus.Logger) *PaymentLinkHandler {
	return &PaymentLinkHandler{
		gateway: gateway,
		config:  cfg,
		logger:  logger,
	}
}

// CreatePaymentLink handles POST /api/v1/payments/link
//
// Shapes the booking payment into a Paystack transaction initialize call and
// returns the hosted payment page URL.
func (h *PaymentLinkHandler) CreatePaymentLink(c *gin.Context) {
	if h.config.Paystack.SecretKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Paystack is not configured. Set PAYSTACK_SECRET_KEY.",
		})
		return
	}

	var req models.CreatePaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: amount_in_kobo, email, reference"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: amount_in_kobo, email, reference", "details": err.Error()})
		return
	}

	// The reference correlates the booking to the gateway transaction. It is
	// normally chosen by the booking flow; generate one only when absent.
	reference := req.Reference
	if reference == "" {
		reference = "PZ-" + uuid.New().String()
	}

	metadata := map[string]interface{}{
		"booking_reference": reference,
	}
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	auth, err := h.gateway.InitializeTransaction(paystack.InitializeRequest{
		Amount:    req.AmountInKobo,
		Email:     req.Email,
		Reference: reference,
		Currency:  "NGN",
		Metadata:  metadata,
	})
	if err != nil {
		h.logger.WithField("reference", reference).WithError(err).Error("Payment link creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment link", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": auth.AuthorizationURL})
}
