package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func TestProcessPaymentValidatesMethod(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	err := svc.Process(&models.Payment{Amount: 50, Method: "crypto"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestProcessPaymentChecksReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	missingInvoice := uuid.New()
	err := svc.Process(&models.Payment{
		Amount: 50, Method: models.PaymentMethodCash, InvoiceID: &missingInvoice,
	})
	assert.ErrorIs(t, err, ErrInvoiceNotFound)

	missingBooking := uint(9999)
	err = svc.Process(&models.Payment{
		Amount: 50, Method: models.PaymentMethodCash, BookingID: &missingBooking,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestProcessPaymentDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	payment := models.Payment{Amount: 75, Method: models.PaymentMethodCash}
	require.NoError(t, svc.Process(&payment))

	assert.NotEqual(t, uuid.Nil, payment.ID)
	assert.Equal(t, models.PaymentRecordCompleted, payment.Status)
	assert.False(t, payment.ProcessedAt.IsZero())
}

func TestRefundSemantics(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	payment := models.Payment{Amount: 200, Method: models.PaymentMethodCard}
	require.NoError(t, svc.Process(&payment))

	_, err := svc.Refund(payment.ID, 250, "too much")
	assert.ErrorIs(t, err, ErrRefundTooLarge)

	// amount 0 refunds in full
	refunded, err := svc.Refund(payment.ID, 0, "stay cut short")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRecordRefunded, refunded.Status)
	assert.Equal(t, 200.0, refunded.RefundAmount)
	assert.Equal(t, "stay cut short", refunded.RefundReason)
	require.NotNil(t, refunded.RefundedAt)

	_, err = svc.Refund(payment.ID, 0, "again")
	assert.ErrorIs(t, err, ErrAlreadyRefunded)

	_, err = svc.Refund(uuid.New(), 0, "ghost")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestMethodStatsSumsCompletedOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	require.NoError(t, svc.Process(&models.Payment{Amount: 100, Method: models.PaymentMethodCard}))
	require.NoError(t, svc.Process(&models.Payment{Amount: 40, Method: models.PaymentMethodCard}))
	require.NoError(t, svc.Process(&models.Payment{Amount: 50, Method: models.PaymentMethodBankTransfer}))

	excluded := models.Payment{Amount: 500, Method: models.PaymentMethodCash}
	require.NoError(t, svc.Process(&excluded))
	_, err := svc.Refund(excluded.ID, 0, "cancelled event")
	require.NoError(t, err)

	today := time.Now().UTC()
	stats, err := svc.MethodStats(today, today)
	require.NoError(t, err)

	assert.Equal(t, 140.0, stats["card"])
	assert.Equal(t, 50.0, stats["bank transfer"]) // hyphen rendered as space
	assert.NotContains(t, stats, "cash")
}
