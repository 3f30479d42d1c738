package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank-transfer"
	PaymentMethodCheck        = "check"
	PaymentMethodOnline       = "online"
)

const (
	PaymentRecordCompleted = "completed"
	PaymentRecordPending   = "pending"
	PaymentRecordFailed    = "failed"
	PaymentRecordRefunded  = "refunded"
)

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodCheck, PaymentMethodOnline:
		return true
	}
	return false
}

// Payment is an append-only money-received record. A refund flips the status
// on the existing row and fills the refund fields; no reversing entry is
// written.
type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	InvoiceID *uuid.UUID `gorm:"type:uuid;index;column:invoice_id" json:"invoiceId,omitempty"`
	BookingID *uint      `gorm:"index;column:booking_id" json:"bookingId,omitempty"`

	Amount   float64 `json:"amount"`
	Currency string  `gorm:"size:8;default:USD" json:"currency"`
	Method   string  `gorm:"size:32;index" json:"method"`
	Status   string  `gorm:"size:16;default:completed;index" json:"status"`

	ProcessedAt time.Time `gorm:"column:processed_at;index" json:"processedAt"`
	ProcessedBy string    `gorm:"size:150" json:"processedBy,omitempty"`

	Reference     string `gorm:"size:128" json:"reference,omitempty"`
	TransactionID string `gorm:"column:transaction_id;size:128" json:"transactionId,omitempty"`

	RefundAmount float64    `gorm:"column:refund_amount" json:"refundAmount,omitempty"`
	RefundReason string     `gorm:"column:refund_reason;size:255" json:"refundReason,omitempty"`
	RefundedAt   *time.Time `gorm:"column:refunded_at" json:"refundedAt,omitempty"`
}
