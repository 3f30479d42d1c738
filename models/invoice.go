package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

// Charge / invoice-item categories recognised by the revenue breakdown.
const (
	CategoryAccommodation = "accommodation"
	CategoryRestaurant    = "restaurant"
	CategoryRoomService   = "room-service"
	CategoryDining        = "dining"
	CategoryCatering      = "catering"
	CategoryBanquet       = "banquet"
	CategoryEquipment     = "equipment"
	CategoryEvent         = "event"
)

type Invoice struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Sequential per year, formatted INV-{year}-{seq}.
	InvoiceNumber string `gorm:"uniqueIndex;size:32" json:"invoiceNumber"`

	BookingID *uint `gorm:"index;column:booking_id" json:"bookingId,omitempty"`
	GuestID   *uint `gorm:"index;column:guest_id" json:"guestId,omitempty"`

	GuestName  string `gorm:"size:255" json:"guestName"`
	GuestEmail string `gorm:"size:150" json:"guestEmail"`

	IssueDate time.Time  `gorm:"column:issue_date;index" json:"issueDate"`
	DueDate   *time.Time `gorm:"column:due_date" json:"dueDate,omitempty"`

	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `gorm:"column:tax_amount" json:"taxAmount"`
	DiscountAmount float64 `gorm:"column:discount_amount" json:"discountAmount"`
	TotalAmount    float64 `gorm:"column:total_amount" json:"totalAmount"`
	Currency       string  `gorm:"size:8;default:USD" json:"currency"`

	Status string `gorm:"size:16;default:draft;index" json:"status"`

	PaymentDate      *time.Time `gorm:"column:payment_date" json:"paymentDate,omitempty"`
	PaymentMethod    string     `gorm:"size:32" json:"paymentMethod,omitempty"`
	PaymentReference string     `gorm:"size:128" json:"paymentReference,omitempty"`

	RemindersSent    int        `gorm:"column:reminders_sent;default:0" json:"remindersSent"`
	LastReminderDate *time.Time `gorm:"column:last_reminder_date" json:"lastReminderDate,omitempty"`

	Notes       string `gorm:"type:text" json:"notes,omitempty"`
	ProcessedBy string `gorm:"size:150" json:"processedBy,omitempty"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index" json:"invoiceId"`

	Description string    `gorm:"size:255" json:"description"`
	Quantity    int       `gorm:"default:1" json:"quantity"`
	UnitPrice   float64   `gorm:"column:unit_price" json:"unitPrice"`
	TotalPrice  float64   `gorm:"column:total_price" json:"totalPrice"`
	TaxRate     float64   `gorm:"column:tax_rate" json:"taxRate"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Date        time.Time `json:"date"`
}

// InvoiceSequence holds the per-year invoice counter. The row is incremented
// under a row lock inside the creating transaction so concurrent creations
// cannot allocate the same number.
type InvoiceSequence struct {
	Year int `gorm:"primaryKey;autoIncrement:false" json:"year"`
	Next int `gorm:"column:next;default:1" json:"next"`
}
