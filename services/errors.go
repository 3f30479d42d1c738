package services

import "errors"

// Sentinel errors surfaced at the store boundary. Controllers map these onto
// HTTP statuses; everything else is wrapped as an internal error.
var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrGuestNotFound   = errors.New("guest_not_found")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrInvoiceNotFound = errors.New("invoice_not_found")
	ErrPaymentNotFound = errors.New("payment_not_found")

	ErrRoomUnavailable   = errors.New("room_unavailable")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrInvalidTransition = errors.New("invalid_status_transition")
	ErrInvalidDateRange  = errors.New("invalid_date_range")
	ErrAlreadyRefunded   = errors.New("payment_already_refunded")
	ErrRefundTooLarge    = errors.New("refund_exceeds_payment")
	ErrNotCheckedIn      = errors.New("not_checked_in")
)
