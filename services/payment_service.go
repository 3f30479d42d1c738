package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService owns the append-only payment log.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// Process appends a payment that is not tied to invoice settlement (deposits,
// walk-in sales). Cross-references must resolve when present; no invoice is
// touched.
func (s *PaymentService) Process(payment *models.Payment) error {
	if !models.IsValidPaymentMethod(payment.Method) {
		return ErrInvalidStatus
	}

	if payment.InvoiceID != nil {
		var count int64
		if err := s.DB.Model(&models.Invoice{}).Where("id = ?", *payment.InvoiceID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check invoice %s: %w", *payment.InvoiceID, err)
		}
		if count == 0 {
			return ErrInvoiceNotFound
		}
	}
	if payment.BookingID != nil {
		var count int64
		if err := s.DB.Model(&models.Booking{}).Where("id = ?", *payment.BookingID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check booking %d: %w", *payment.BookingID, err)
		}
		if count == 0 {
			return ErrBookingNotFound
		}
	}

	payment.ID = uuid.New()
	if payment.Status == "" {
		payment.Status = models.PaymentRecordCompleted
	}
	if payment.ProcessedAt.IsZero() {
		payment.ProcessedAt = time.Now().UTC()
	}

	if err := s.DB.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}

// Refund mutates the existing payment record in place; no reversing entry is
// written and invoice totals are left untouched. amount 0 refunds in full.
func (s *PaymentService) Refund(paymentID uuid.UUID, amount float64, reason string) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&payment, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("failed to retrieve payment %s: %w", paymentID, err)
		}

		if payment.Status == models.PaymentRecordRefunded {
			return ErrAlreadyRefunded
		}
		if amount == 0 {
			amount = payment.Amount
		}
		if amount > payment.Amount {
			return ErrRefundTooLarge
		}

		now := time.Now().UTC()
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":        models.PaymentRecordRefunded,
			"refund_amount": amount,
			"refund_reason": reason,
			"refunded_at":   now,
		}).Error; err != nil {
			return fmt.Errorf("failed to refund payment %s: %w", paymentID, err)
		}

		payment.Status = models.PaymentRecordRefunded
		payment.RefundAmount = amount
		payment.RefundReason = reason
		payment.RefundedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Order("processed_at DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	return payments, nil
}

// MethodStats sums completed payments processed in [start, end] (whole days)
// per method, hyphens rendered as spaces for display.
func (s *PaymentService) MethodStats(start, end time.Time) (map[string]float64, error) {
	var payments []models.Payment
	if err := s.DB.
		Where("status = ?", models.PaymentRecordCompleted).
		Where("processed_at >= ? AND processed_at <= ?",
			utils.BeginningOfDay(start), utils.EndOfDay(end)).
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve payments for stats: %w", err)
	}

	stats := make(map[string]float64)
	for _, p := range payments {
		label := strings.ReplaceAll(p.Method, "-", " ")
		stats[label] += p.Amount
	}
	return stats, nil
}
