package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func TestCreateBookingComputesStayTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	booking := createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 10), date(2026, time.March, 13))

	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, models.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 150.0, booking.RoomRate)
	assert.Equal(t, 450.0, booking.TotalAmount)
	assert.Equal(t, "USD", booking.Currency)
	require.NotNil(t, booking.Room)
	assert.Equal(t, "101", booking.Room.RoomNumber)
}

func TestCreateBookingRejectsInvalidRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	day := date(2026, time.March, 10)
	err := svc.Create(&models.Booking{RoomID: room.ID, GuestID: guest.ID, CheckIn: day, CheckOut: day})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	err = svc.Create(&models.Booking{
		RoomID: room.ID, GuestID: guest.ID,
		CheckIn: date(2026, time.March, 12), CheckOut: date(2026, time.March, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateBookingUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	err := svc.Create(&models.Booking{
		RoomID: room.ID, GuestID: 9999,
		CheckIn: date(2026, time.March, 10), CheckOut: date(2026, time.March, 12),
	})
	assert.ErrorIs(t, err, ErrGuestNotFound)

	err = svc.Create(&models.Booking{
		RoomID: 9999, GuestID: guest.ID,
		CheckIn: date(2026, time.March, 10), CheckOut: date(2026, time.March, 12),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestOverlappingBookingsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 10), date(2026, time.March, 14))

	cases := []struct {
		name    string
		in, out time.Time
	}{
		{"inside existing stay", date(2026, time.March, 11), date(2026, time.March, 13)},
		{"spans existing stay", date(2026, time.March, 9), date(2026, time.March, 15)},
		{"overlaps the start", date(2026, time.March, 8), date(2026, time.March, 11)},
		{"overlaps the end", date(2026, time.March, 13), date(2026, time.March, 16)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(&models.Booking{
				RoomID: room.ID, GuestID: guest.ID, CheckIn: tc.in, CheckOut: tc.out,
			})
			assert.ErrorIs(t, err, ErrRoomUnavailable)
		})
	}

	// a different room with the same dates is fine
	other := createTestRoom(t, db, "102", 150)
	createTestBooking(t, svc, other.ID, guest.ID,
		date(2026, time.March, 11), date(2026, time.March, 13))
}

func TestBackToBackStaysDoNotConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 10), date(2026, time.March, 13))

	// checkout day is free for the next arrival
	createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 13), date(2026, time.March, 15))
}

func TestCancelledBookingFreesTheRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	first := createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 10), date(2026, time.March, 13))
	require.NoError(t, svc.UpdateStatus(first.ID, models.BookingStatusCancelled))

	createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 10), date(2026, time.March, 13))
}

func TestBookingStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	booking := createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 10), date(2026, time.March, 13))

	// cannot skip check-in
	err := svc.UpdateStatus(booking.ID, models.BookingStatusCheckedOut)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, svc.UpdateStatus(booking.ID, models.BookingStatusCheckedIn))

	// checked-in stays cannot be cancelled
	err = svc.UpdateStatus(booking.ID, models.BookingStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, svc.UpdateStatus(booking.ID, models.BookingStatusCheckedOut))

	// checked-out is terminal
	err = svc.UpdateStatus(booking.ID, models.BookingStatusCheckedIn)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.UpdateStatus(9999, models.BookingStatusCheckedIn)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAddChargeRecomputesBookingTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	booking := createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 10), date(2026, time.March, 13))
	require.Equal(t, 450.0, booking.TotalAmount)

	require.NoError(t, svc.AddCharge(booking.ID, &models.RoomCharge{
		Description: "Dinner",
		Amount:      60,
		Category:    models.CategoryRestaurant,
	}))
	require.NoError(t, svc.AddCharge(booking.ID, &models.RoomCharge{
		Description: "Minibar",
		Amount:      15,
		Category:    models.CategoryRoomService,
	}))

	reloaded, err := svc.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 525.0, reloaded.TotalAmount)
	assert.Len(t, reloaded.Charges, 2)
	assert.Equal(t, "USD", reloaded.Charges[0].Currency)
	assert.False(t, reloaded.Charges[0].Date.IsZero())

	err = svc.AddCharge(9999, &models.RoomCharge{Description: "x", Amount: 1})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetBookingNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.GetByID(1234)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestIsRoomBookedExcludesBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	room := createTestRoom(t, db, "101", 150)
	guest := createTestGuest(t, db, "Maria Santos")

	booking := createTestBooking(t, svc, room.ID, guest.ID,
		date(2026, time.March, 10), date(2026, time.March, 13))

	booked, err := svc.IsRoomBooked(room.ID, date(2026, time.March, 10), date(2026, time.March, 13), 0)
	require.NoError(t, err)
	assert.True(t, booked)

	// re-validating the booking against itself reports free
	booked, err = svc.IsRoomBooked(room.ID, date(2026, time.March, 10), date(2026, time.March, 13), booking.ID)
	require.NoError(t, err)
	assert.False(t, booked)
}
