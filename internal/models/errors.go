package models

import "errors"

// Workflow failure taxonomy for payment verification. Every failure maps to
// exactly one of these; handlers translate them to HTTP responses.
var (
	// ErrGatewayError covers transport failures and non-2xx responses from
	// the payment gateway lookup.
	ErrGatewayError = errors.New("payment verification failed")

	// ErrPaymentNotSuccessful means the gateway resolved the reference but
	// did not record the transaction as successful.
	ErrPaymentNotSuccessful = errors.New("payment not successful")

	// ErrBookingNotFound means no stored booking matches the claimed id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingMismatch means the stored booking disagrees with the
	// client's claim on reference or guest email.
	ErrBookingMismatch = errors.New("booking details mismatch")

	// ErrPaymentMismatch means the gateway record disagrees with the stored
	// amount or the claimed payer email.
	ErrPaymentMismatch = errors.New("payment details mismatch")

	// ErrConfirmationFailed means the store's atomic confirm operation
	// rejected the transition, e.g. the booking is already confirmed.
	ErrConfirmationFailed = errors.New("failed to confirm booking")
)
