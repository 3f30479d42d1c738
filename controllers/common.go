package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/services"
)

// statusForError maps store sentinel errors onto HTTP statuses. Anything not
// listed is an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrInvoiceNotFound),
		errors.Is(err, services.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRoomUnavailable):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrAlreadyRefunded),
		errors.Is(err, services.ErrRefundTooLarge),
		errors.Is(err, services.ErrNotCheckedIn):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
