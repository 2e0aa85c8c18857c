package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pzedhomes/booking-payments-backend/internal/config"
	"github.com/pzedhomes/booking-payments-backend/internal/models"
	"github.com/pzedhomes/booking-payments-backend/pkg/brevo"
)

// Mailer sends transactional email. Satisfied by *brevo.Client.
type Mailer interface {
	SendEmail(req brevo.SendRequest) error
}

// EmailHandler handles transactional email sending
type EmailHandler struct {
	mailer Mailer
	config *config.Config
	logger *logrus.Logger
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(mailer Mailer, cfg *config.Config, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{
		mailer: mailer,
		config: cfg,
		logger: logger,
	}
}

// SendEmail handles POST /api/v1/emails/send
func (h *EmailHandler) SendEmail(c *gin.Context) {
	if !h.config.EmailConfigured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing Brevo configuration"})
		return
	}

	var req models.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
		return
	}

	to := make([]brevo.Contact, len(req.To))
	for i, r := range req.To {
		to[i] = brevo.Contact{Email: r.Email, Name: r.Name}
	}

	err := h.mailer.SendEmail(brevo.SendRequest{
		Sender: brevo.Contact{
			Email: h.config.Brevo.SenderEmail,
			Name:  h.config.Brevo.SenderName,
		},
		To:          to,
		Subject:     req.Subject,
		HTMLContent: req.HTML,
		TextContent: req.Text,
	})
	if err != nil {
		h.logger.WithError(err).Error("Email send failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brevo send failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
