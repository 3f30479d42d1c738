package services

import (
	"errors"
	"fmt"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns booking lifecycle and the no-double-booking guarantee.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Statuses that keep a booking out of the availability scan: a cancelled or
// checked-out stay no longer blocks the room.
var inactiveBookingStatuses = []string{
	models.BookingStatusCancelled,
	models.BookingStatusCheckedOut,
}

// Transitions allowed from each booking status. Anything not listed is
// terminal.
var bookingTransitions = map[string][]string{
	models.BookingStatusConfirmed: {
		models.BookingStatusCheckedIn,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	},
	models.BookingStatusCheckedIn: {
		models.BookingStatusCheckedOut,
	},
}

// lockForUpdate adds a row lock on dialects that support it. SQLite has no
// FOR UPDATE in its grammar and serializes writers anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// IsRoomBooked reports whether the room already has a non-cancelled,
// non-checked-out booking overlapping [checkIn, checkOut). The interval is
// half-open, so a stay starting exactly when another ends does not conflict.
// excludeBookingID (0 = none) skips one booking, used when re-validating an
// edited booking against itself.
func (s *BookingService) IsRoomBooked(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	return s.isRoomBooked(s.DB, roomID, checkIn, checkOut, excludeBookingID)
}

func (s *BookingService) isRoomBooked(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", inactiveBookingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check room availability: %w", err)
	}
	return count > 0, nil
}

// Create books a room. Availability is re-validated inside the transaction
// under a lock on the room row, so a caller-side pre-check is advisory only
// and two clients racing for the same dates cannot both succeed.
func (s *BookingService) Create(booking *models.Booking) error {
	if !booking.CheckOut.After(booking.CheckIn) {
		return ErrInvalidDateRange
	}

	var guest models.Guest
	if err := s.DB.First(&guest, booking.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("db error checking guest %d: %w", booking.GuestID, err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, booking.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("db error checking room %d: %w", booking.RoomID, err)
		}

		booked, err := s.isRoomBooked(tx, booking.RoomID, booking.CheckIn, booking.CheckOut, 0)
		if err != nil {
			return err
		}
		if booked {
			return ErrRoomUnavailable
		}

		booking.Status = models.BookingStatusConfirmed
		booking.PaymentStatus = models.PaymentStatusPending
		booking.Nights = utils.DaysBetween(booking.CheckIn, booking.CheckOut)
		booking.RoomRate = room.Rate
		booking.TotalAmount = float64(booking.Nights) * room.Rate
		if booking.Currency == "" {
			booking.Currency = room.Currency
		}
		if booking.Adults <= 0 {
			booking.Adults = 1
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// reload with relations
	if err := s.DB.
		Preload("Room").
		Preload("Guest").
		Preload("Charges").
		First(booking, booking.ID).Error; err != nil {
		return fmt.Errorf("failed to reload booking %d: %w", booking.ID, err)
	}
	return nil
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Room").
		Preload("Guest").
		Preload("Charges").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	for i := range list {
		if list[i].Charges == nil {
			list[i].Charges = []models.RoomCharge{}
		}
	}
	return list, nil
}

func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.
		Preload("Room").
		Preload("Guest").
		Preload("Charges").
		First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", bookingID, err)
	}
	if bk.Charges == nil {
		bk.Charges = []models.RoomCharge{}
	}
	return &bk, nil
}

// UpdateStatus enforces the linear lifecycle confirmed -> checked-in ->
// checked-out; cancelled and no-show are reachable from confirmed only.
func (s *BookingService) UpdateStatus(bookingID uint, status string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to retrieve booking %d: %w", bookingID, err)
		}

		if !transitionAllowed(booking.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
		}

		if err := tx.Model(&booking).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update booking %d status: %w", bookingID, err)
		}
		return nil
	})
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AddCharge appends a stay charge and recomputes the booking total
// (nights x rate plus all charges). Charges are append-only.
func (s *BookingService) AddCharge(bookingID uint, charge *models.RoomCharge) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to retrieve booking %d: %w", bookingID, err)
		}

		charge.ID = uuid.New()
		charge.BookingID = bookingID
		if charge.Date.IsZero() {
			charge.Date = utils.BeginningOfDay(time.Now().UTC())
		}
		if charge.Currency == "" {
			charge.Currency = booking.Currency
		}

		if err := tx.Create(charge).Error; err != nil {
			return fmt.Errorf("failed to add room charge: %w", err)
		}

		var chargeTotal float64
		if err := tx.Model(&models.RoomCharge{}).
			Where("booking_id = ?", bookingID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&chargeTotal).Error; err != nil {
			return fmt.Errorf("failed to sum charges for booking %d: %w", bookingID, err)
		}

		total := float64(booking.Nights)*booking.RoomRate + chargeTotal
		if err := tx.Model(&booking).Update("total_amount", total).Error; err != nil {
			return fmt.Errorf("failed to update booking %d total: %w", bookingID, err)
		}
		return nil
	})
}
