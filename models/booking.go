package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses. Normal flow is confirmed -> checked-in -> checked-out;
// cancelled and no-show are terminal alternates reachable from confirmed only.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
	BookingStatusNoShow     = "no-show"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID  uint `gorm:"index;column:room_id" json:"roomId"`
	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`

	// Calendar dates, half-open stay interval [CheckIn, CheckOut).
	CheckIn  time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out" json:"checkOut"`
	Nights   int       `gorm:"column:nights" json:"nights"`

	Status        string `gorm:"column:status;size:32;default:confirmed" json:"status"`
	PaymentStatus string `gorm:"column:payment_status;size:32;default:pending" json:"paymentStatus"`

	// Rate captured at booking time so later room price edits don't move
	// the booking total.
	RoomRate    float64 `gorm:"column:room_rate" json:"roomRate"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	Currency    string  `gorm:"size:8;default:USD" json:"currency"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	Room    Room         `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Guest   Guest        `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Charges []RoomCharge `gorm:"foreignKey:BookingID" json:"charges"`
}

// RoomCharge is a billable line appended to a booking during the stay.
// Charges are never mutated after insert.
type RoomCharge struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID uint      `gorm:"index;column:booking_id" json:"bookingId"`

	Description string    `json:"description" gorm:"size:255"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency" gorm:"size:8;default:USD"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category" gorm:"size:64;index"`
}
