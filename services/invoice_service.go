package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTaxRate applies when no tax policy is configured. Both the manual
// invoice path and the booking-derivation path read the same configured rate;
// an item that arrives with an explicit rate keeps it.
const DefaultTaxRate = 0.10

// InvoiceService owns invoice numbering and lifecycle.
type InvoiceService struct {
	DB      *gorm.DB
	taxRate float64
}

func NewInvoiceService(db *gorm.DB, taxRate float64) *InvoiceService {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &InvoiceService{DB: db, taxRate: taxRate}
}

func (s *InvoiceService) TaxRate() float64 {
	return s.taxRate
}

// allocateInvoiceNumber hands out INV-{year}-{seq}, seq zero-padded to three
// digits. The per-year counter row is read under a row lock inside the
// caller's transaction, so concurrent creations cannot collide.
func (s *InvoiceService) allocateInvoiceNumber(tx *gorm.DB) (string, error) {
	year := time.Now().UTC().Year()

	var seq models.InvoiceSequence
	err := lockForUpdate(tx).Where("year = ?", year).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = models.InvoiceSequence{Year: year, Next: 2}
		if err := tx.Create(&seq).Error; err != nil {
			return "", fmt.Errorf("failed to create invoice sequence: %w", err)
		}
		return fmt.Sprintf("INV-%d-%03d", year, 1), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read invoice sequence: %w", err)
	}

	n := seq.Next
	if err := tx.Model(&models.InvoiceSequence{}).
		Where("year = ?", year).
		Update("next", n+1).Error; err != nil {
		return "", fmt.Errorf("failed to advance invoice sequence: %w", err)
	}
	return fmt.Sprintf("INV-%d-%03d", year, n), nil
}

// Create stores a manually composed invoice. Item totals, subtotal, tax and
// grand total are recomputed here; items without an explicit tax rate get the
// configured policy rate.
func (s *InvoiceService) Create(inv *models.Invoice) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		number, err := s.allocateInvoiceNumber(tx)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		inv.ID = uuid.New()
		inv.InvoiceNumber = number
		if inv.IssueDate.IsZero() {
			inv.IssueDate = utils.BeginningOfDay(now)
		}
		if inv.Status == "" {
			inv.Status = models.InvoiceStatusDraft
		}
		inv.RemindersSent = 0

		var subtotal, tax float64
		for i := range inv.Items {
			item := &inv.Items[i]
			item.ID = uuid.New()
			item.InvoiceID = inv.ID
			if item.Quantity <= 0 {
				item.Quantity = 1
			}
			if item.TaxRate == 0 {
				item.TaxRate = s.taxRate
			}
			if item.Date.IsZero() {
				item.Date = inv.IssueDate
			}
			item.TotalPrice = utils.Round2(float64(item.Quantity) * item.UnitPrice)
			subtotal += item.TotalPrice
			tax += item.TotalPrice * item.TaxRate
		}

		inv.Subtotal = utils.Round2(subtotal)
		inv.TaxAmount = utils.Round2(tax)
		inv.TotalAmount = utils.Round2(inv.Subtotal + inv.TaxAmount - inv.DiscountAmount)

		if err := tx.Create(inv).Error; err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}
		return nil
	})
}

// GenerateFromBooking derives an invoice from a completed stay: one item per
// room charge (quantity 1), subtotal the sum of charge amounts, tax at the
// configured rate, and a same-timestamp completed card payment for the grand
// total.
func (s *InvoiceService) GenerateFromBooking(bookingID uint, processedBy string) (*models.Invoice, error) {
	var inv *models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		inv, txErr = s.generateFromBooking(tx, bookingID, processedBy)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) generateFromBooking(tx *gorm.DB, bookingID uint, processedBy string) (*models.Invoice, error) {
	var booking models.Booking
	if err := tx.Preload("Charges").Preload("Guest").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", bookingID, err)
	}

	number, err := s.allocateInvoiceNumber(tx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	issueDate := utils.BeginningOfDay(now)

	items := make([]models.InvoiceItem, 0, len(booking.Charges))
	var subtotal float64
	for _, charge := range booking.Charges {
		items = append(items, models.InvoiceItem{
			ID:          uuid.New(),
			Description: charge.Description,
			Quantity:    1,
			UnitPrice:   charge.Amount,
			TotalPrice:  charge.Amount,
			TaxRate:     s.taxRate,
			Category:    charge.Category,
			Date:        charge.Date,
		})
		subtotal += charge.Amount
	}

	subtotal = utils.Round2(subtotal)
	taxAmount := utils.Round2(subtotal * s.taxRate)
	totalAmount := utils.Round2(subtotal + taxAmount)

	guestID := booking.GuestID
	inv := &models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: number,
		BookingID:     &booking.ID,
		GuestID:       &guestID,
		GuestName:     booking.Guest.FullName,
		GuestEmail:    booking.Guest.Email,
		IssueDate:     issueDate,
		Subtotal:      subtotal,
		TaxAmount:     taxAmount,
		TotalAmount:   totalAmount,
		Currency:      booking.Currency,
		Status:        models.InvoiceStatusPaid,
		PaymentDate:   &now,
		PaymentMethod: models.PaymentMethodCard,
		ProcessedBy:   processedBy,
		Items:         items,
	}
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}

	if err := tx.Create(inv).Error; err != nil {
		return nil, fmt.Errorf("failed to create invoice for booking %d: %w", bookingID, err)
	}

	payment := models.Payment{
		ID:          uuid.New(),
		InvoiceID:   &inv.ID,
		BookingID:   &booking.ID,
		Amount:      totalAmount,
		Currency:    booking.Currency,
		Method:      models.PaymentMethodCard,
		Status:      models.PaymentRecordCompleted,
		ProcessedAt: now,
		ProcessedBy: processedBy,
		Reference:   number,
	}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment for invoice %s: %w", number, err)
	}

	return inv, nil
}

func (s *InvoiceService) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.DB.Preload("Items").Order("issue_date DESC, created_at DESC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.DB.Preload("Items").First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to retrieve invoice %s: %w", id, err)
	}
	return &inv, nil
}

// Send moves a draft invoice to sent, assigns a due date when missing and
// emails the bill (mock delivery without SMTP config).
func (s *InvoiceService) Send(id uuid.UUID) (*models.Invoice, error) {
	inv, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoiceStatusDraft {
		return nil, fmt.Errorf("%w: cannot send %s invoice", ErrInvalidStatus, inv.Status)
	}

	updates := map[string]interface{}{"status": models.InvoiceStatusSent}
	if inv.DueDate == nil {
		due := inv.IssueDate.AddDate(0, 0, 14)
		inv.DueDate = &due
		updates["due_date"] = due
	}
	inv.Status = models.InvoiceStatusSent

	if err := s.DB.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to mark invoice %s sent: %w", inv.InvoiceNumber, err)
	}

	if inv.GuestEmail != "" {
		if mailErr := utils.SendBillEmail(inv.GuestEmail, s.billEmailData(inv)); mailErr != nil {
			log.Printf("warning: bill email for %s failed: %v", inv.InvoiceNumber, mailErr)
		}
	}
	return inv, nil
}

func (s *InvoiceService) billEmailData(inv *models.Invoice) utils.BillEmailData {
	var hotel models.HotelSetting
	_ = s.DB.First(&hotel).Error

	lines := make([]utils.BillLine, 0, len(inv.Items))
	for _, item := range inv.Items {
		lines = append(lines, utils.BillLine{
			Description: fmt.Sprintf("%s x%d", item.Description, item.Quantity),
			Amount:      utils.FormatCurrency(item.TotalPrice, inv.Currency),
		})
	}

	return utils.BillEmailData{
		HotelName:     hotel.Name,
		HotelAddress:  hotel.Address,
		HotelPhone:    hotel.Phone,
		HotelEmail:    hotel.Email,
		GuestName:     inv.GuestName,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		Lines:         lines,
		Subtotal:      utils.FormatCurrency(inv.Subtotal, inv.Currency),
		TaxAmount:     utils.FormatCurrency(inv.TaxAmount, inv.Currency),
		GrandTotal:    utils.FormatCurrency(inv.TotalAmount, inv.Currency),
	}
}

// MarkPaid records a payment against the invoice and flips it to paid in the
// same transaction.
func (s *InvoiceService) MarkPaid(id uuid.UUID, payment *models.Payment) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var inv models.Invoice
		if err := lockForUpdate(tx).First(&inv, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return fmt.Errorf("failed to retrieve invoice %s: %w", id, err)
		}

		now := time.Now().UTC()
		payment.ID = uuid.New()
		payment.InvoiceID = &inv.ID
		payment.BookingID = inv.BookingID
		if payment.Amount == 0 {
			payment.Amount = inv.TotalAmount
		}
		if payment.Currency == "" {
			payment.Currency = inv.Currency
		}
		if payment.Method == "" {
			payment.Method = models.PaymentMethodCash
		}
		if !models.IsValidPaymentMethod(payment.Method) {
			return ErrInvalidStatus
		}
		payment.Status = models.PaymentRecordCompleted
		if payment.ProcessedAt.IsZero() {
			payment.ProcessedAt = now
		}

		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		if err := tx.Model(&inv).Updates(map[string]interface{}{
			"status":            models.InvoiceStatusPaid,
			"payment_date":      payment.ProcessedAt,
			"payment_method":    payment.Method,
			"payment_reference": payment.Reference,
		}).Error; err != nil {
			return fmt.Errorf("failed to mark invoice %s paid: %w", inv.InvoiceNumber, err)
		}
		return nil
	})
}

// SendReminder bumps the reminder counter and re-notifies the guest. The
// reminder email is best-effort; delivery failure does not fail the call.
func (s *InvoiceService) SendReminder(id uuid.UUID) (*models.Invoice, error) {
	inv, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := utils.BeginningOfDay(now)
	if err := s.DB.Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reminders_sent":     gorm.Expr("reminders_sent + ?", 1),
		"last_reminder_date": today,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update reminder state for %s: %w", inv.InvoiceNumber, err)
	}
	inv.RemindersSent++
	inv.LastReminderDate = &today

	if inv.GuestEmail != "" {
		var hotel models.HotelSetting
		_ = s.DB.First(&hotel).Error

		due := "n/a"
		if inv.DueDate != nil {
			due = inv.DueDate.Format("2006-01-02")
		}
		if mailErr := utils.SendInvoiceReminderEmail(
			inv.GuestEmail, hotel.Name, inv.GuestName, inv.InvoiceNumber,
			due, utils.FormatCurrency(inv.TotalAmount, inv.Currency),
		); mailErr != nil {
			log.Printf("warning: reminder email for %s failed: %v", inv.InvoiceNumber, mailErr)
		}
	}
	return inv, nil
}

// GetOutstanding returns invoices that have been sent and not yet paid.
func (s *InvoiceService) GetOutstanding() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.DB.Preload("Items").
		Where("status = ?", models.InvoiceStatusSent).
		Order("issue_date ASC").
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve outstanding invoices: %w", err)
	}
	return invoices, nil
}

// GetOverdue returns the outstanding subset whose due date is before today.
func (s *InvoiceService) GetOverdue() ([]models.Invoice, error) {
	today := utils.BeginningOfDay(time.Now().UTC())

	var invoices []models.Invoice
	if err := s.DB.Preload("Items").
		Where("status = ?", models.InvoiceStatusSent).
		Where("due_date IS NOT NULL AND due_date < ?", today).
		Order("due_date ASC").
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve overdue invoices: %w", err)
	}
	return invoices, nil
}
