package models

import "errors"

// PaymentMethodOnline is the payment method recorded for gateway-verified
// online payments when a booking is confirmed.
const PaymentMethodOnline = "online"

// BookingPayment is the payment projection of a stored booking: the only
// columns the reconciliation workflow needs to cross-check a payment claim.
type BookingPayment struct {
	ID               string `json:"id" db:"id"`
	TotalAmount      int64  `json:"total_amount" db:"total_amount"`
	GuestEmail       string `json:"guest_email" db:"guest_email"`
	PaymentReference string `json:"payment_reference" db:"payment_reference"`
}

// VerifyPaymentRequest is the client's payment claim. All three fields are
// untrusted: amount and status always come from the gateway, never the client.
type VerifyPaymentRequest struct {
	BookingID        string `json:"booking_id"`
	PaymentReference string `json:"payment_reference"`
	GuestEmail       string `json:"guest_email"`
}

// Validate validates the verify payment request
func (r *VerifyPaymentRequest) Validate() error {
	if r.BookingID == "" || r.PaymentReference == "" || r.GuestEmail == "" {
		return errors.New("booking_id, payment_reference and guest_email are required")
	}
	return nil
}

// CreatePaymentLinkRequest is the request to create a Paystack payment link
type CreatePaymentLinkRequest struct {
	AmountInKobo int64                  `json:"amount_in_kobo"`
	Email        string                 `json:"email"`
	Reference    string                 `json:"reference"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// Validate validates the create payment link request
func (r *CreatePaymentLinkRequest) Validate() error {
	if r.AmountInKobo <= 0 || r.Email == "" {
		return errors.New("amount_in_kobo and email are required")
	}
	return nil
}

// EmailRecipient is a single transactional email recipient
type EmailRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SendEmailRequest is the request to send a transactional email
type SendEmailRequest struct {
	To      []EmailRecipient `json:"to"`
	Subject string           `json:"subject"`
	HTML    string           `json:"html,omitempty"`
	Text    string           `json:"text,omitempty"`
}

// Validate validates the send email request
func (r *SendEmailRequest) Validate() error {
	if len(r.To) == 0 || r.Subject == "" || (r.HTML == "" && r.Text == "") {
		return errors.New("to, subject and one of html or text are required")
	}
	return nil
}
