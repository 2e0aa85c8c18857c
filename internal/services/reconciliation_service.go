package services

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pzedhomes/booking-payments-backend/internal/models"
	"github.com/pzedhomes/booking-payments-backend/pkg/paystack"
)

// GatewayVerifier resolves a payment reference to the gateway's authoritative
// transaction record. Satisfied by *paystack.Client.
type GatewayVerifier interface {
	VerifyTransaction(reference string) (*paystack.Transaction, error)
}

// BookingStore is the persistent booking store: a read-only projection lookup
// and the single atomic confirm transition. Satisfied by
// *database.BookingRepository. ConfirmGuestBooking must itself be safe
// against duplicate invocation; this service never calls it more than once
// per request and performs no locking of its own.
type BookingStore interface {
	GetPaymentProjection(bookingID string) (*models.BookingPayment, error)
	ConfirmGuestBooking(bookingID string, paidAmount int64, paymentReference, paymentMethod, guestEmail string) error
}

// ReconciliationService runs the payment verification workflow: re-verify
// the claimed payment against the gateway, cross-check it against the stored
// booking, and confirm the booking only when every check passes.
type ReconciliationService struct {
	gateway GatewayVerifier
	store   BookingStore
	logger  *logrus.Logger
}

// NewReconciliationService creates a new ReconciliationService
func NewReconciliationService(gateway GatewayVerifier, store BookingStore, logger *logrus.Logger) *ReconciliationService {
	return &ReconciliationService{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// VerifyAndConfirm runs the full workflow for one validated payment claim.
// The sequence is strictly linear: gateway verify, booking load, consistency
// checks, confirm. The first failure terminates the request with one of the
// models sentinel errors and no state has been mutated; the confirm call is
// the only mutating step and happens at most once.
func (s *ReconciliationService) VerifyAndConfirm(req *models.VerifyPaymentRequest) error {
	tx, err := s.gateway.VerifyTransaction(req.PaymentReference)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"booking_id": req.BookingID,
			"reference":  req.PaymentReference,
		}).WithError(err).Warn("Gateway verification failed")
		return fmt.Errorf("%w: %v", models.ErrGatewayError, err)
	}

	if !tx.Succeeded() {
		s.logger.WithFields(logrus.Fields{
			"booking_id": req.BookingID,
			"reference":  req.PaymentReference,
			"status":     tx.Status,
		}).Warn("Payment not in success state")
		return models.ErrPaymentNotSuccessful
	}

	booking, err := s.store.GetPaymentProjection(req.BookingID)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrBookingNotFound, err)
	}

	if err := checkConsistency(req, tx, booking); err != nil {
		s.logger.WithFields(logrus.Fields{
			"booking_id": req.BookingID,
			"reference":  req.PaymentReference,
		}).WithError(err).Warn("Payment reconciliation check failed")
		return err
	}

	if err := s.store.ConfirmGuestBooking(
		booking.ID,
		tx.Amount,
		req.PaymentReference,
		models.PaymentMethodOnline,
		req.GuestEmail,
	); err != nil {
		s.logger.WithField("booking_id", req.BookingID).WithError(err).Error("Booking confirmation failed")
		return fmt.Errorf("%w: %v", models.ErrConfirmationFailed, err)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"reference":  req.PaymentReference,
		"amount":     tx.Amount,
	}).Info("Booking payment verified and confirmed")

	return nil
}

// checkConsistency cross-checks the client claim, the gateway record, and
// the stored booking. The checks run in a fixed order and stop at the first
// failure: reference and guest email against the stored booking first
// (BookingMismatch), then amount and payer email against the gateway record
// (PaymentMismatch). Emails compare case-insensitively; amounts are exact
// integer minor units with no tolerance.
func checkConsistency(req *models.VerifyPaymentRequest, tx *paystack.Transaction, booking *models.BookingPayment) error {
	if booking.PaymentReference != req.PaymentReference {
		return models.ErrBookingMismatch
	}

	if !strings.EqualFold(booking.GuestEmail, req.GuestEmail) {
		return models.ErrBookingMismatch
	}

	if booking.TotalAmount != tx.Amount {
		return models.ErrPaymentMismatch
	}

	if !strings.EqualFold(tx.CustomerEmail, req.GuestEmail) {
		return models.ErrPaymentMismatch
	}

	return nil
}
