package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// CheckoutService composes the booking and financial stores: completing a
// checkout flips the booking to checked-out and derives its invoice+payment
// pair in a single transaction, so a crash cannot leave a checked-out stay
// without a bill.
type CheckoutService struct {
	DB       *gorm.DB
	invoices *InvoiceService
}

func NewCheckoutService(db *gorm.DB, invoices *InvoiceService) *CheckoutService {
	return &CheckoutService{DB: db, invoices: invoices}
}

func (s *CheckoutService) Complete(bookingID uint, processedBy string) (*models.Invoice, error) {
	var inv *models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to retrieve booking %d: %w", bookingID, err)
		}

		if booking.Status != models.BookingStatusCheckedIn {
			return ErrNotCheckedIn
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingStatusCheckedOut,
			"payment_status": models.PaymentStatusPaid,
		}).Error; err != nil {
			return fmt.Errorf("failed to check out booking %d: %w", bookingID, err)
		}

		var txErr error
		inv, txErr = s.invoices.generateFromBooking(tx, bookingID, processedBy)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}
