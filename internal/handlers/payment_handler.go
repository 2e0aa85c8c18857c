package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pzedhomes/booking-payments-backend/internal/config"
	"github.com/pzedhomes/booking-payments-backend/internal/models"
	"github.com/pzedhomes/booking-payments-backend/internal/services"
)

// PaymentHandler handles payment verification requests
type PaymentHandler struct {
	reconciliation *services.ReconciliationService
	config         *config.Config
	logger         *logrus.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(reconciliation *services.ReconciliationService, cfg *config.Config, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{
		reconciliation: reconciliation,
		config:         cfg,
		logger:         logger,
	}
}

// VerifyPayment handles POST /api/v1/payments/verify
//
// It validates the payment claim, re-verifies the reference against
// Paystack, cross-checks the stored booking, and confirms the booking
// exactly once when everything agrees. Every failure is terminal; nothing
// is retried and no partial progress is kept.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	// Secrets are checked before the body is touched so a misconfigured
	// deployment never reads client data.
	if h.config.Paystack.SecretKey == "" || h.config.Database.URL == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing server configuration"})
		return
	}

	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Unparseable body and missing fields are the same failure.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
		return
	}

	if err := h.reconciliation.VerifyAndConfirm(&req); err != nil {
		status, message := verifyErrorResponse(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// verifyErrorResponse maps a workflow failure to its HTTP status and
// client-facing message. Booking-not-found is the only 404; unanticipated
// errors surface as 500 with their description.
func verifyErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrGatewayError):
		return http.StatusBadRequest, "Payment verification failed"
	case errors.Is(err, models.ErrPaymentNotSuccessful):
		return http.StatusBadRequest, "Payment not successful"
	case errors.Is(err, models.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errors.Is(err, models.ErrBookingMismatch):
		return http.StatusBadRequest, "Booking details mismatch"
	case errors.Is(err, models.ErrPaymentMismatch):
		return http.StatusBadRequest, "Payment details mismatch"
	case errors.Is(err, models.ErrConfirmationFailed):
		return http.StatusBadRequest, "Failed to confirm booking"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
