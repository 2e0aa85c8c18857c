package database

import (
	"fmt"

	"github.com/pzedhomes/booking-payments-backend/internal/models"
)

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// GetPaymentProjection retrieves the payment projection of a booking by id.
// Returns sql.ErrNoRows through the error chain when no booking matches.
func (r *BookingRepository) GetPaymentProjection(bookingID string) (*models.BookingPayment, error) {
	query := `
		SELECT id, total_amount, guest_email, payment_reference
		FROM bookings
		WHERE id = $1
	`

	booking := &models.BookingPayment{}
	if err := r.db.Get(booking, query, bookingID); err != nil {
		return nil, err
	}

	return booking, nil
}

// ConfirmGuestBooking invokes the store's atomic confirm transition. The SQL
// function marks the booking paid and writes the income record in one
// transaction, and raises when the booking is already confirmed, so calling
// it twice cannot double-credit income.
func (r *BookingRepository) ConfirmGuestBooking(bookingID string, paidAmount int64, paymentReference, paymentMethod, guestEmail string) error {
	query := `SELECT confirm_guest_booking($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(query, bookingID, paidAmount, paymentReference, paymentMethod, guestEmail); err != nil {
		return fmt.Errorf("confirm_guest_booking failed: %w", err)
	}

	return nil
}
