package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
)

// newTestDB opens a named in-memory sqlite database unique to the test, so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, rate float64) models.Room {
	t.Helper()

	room := models.Room{
		RoomNumber:   number,
		Type:         "Standard",
		Floor:        "1",
		Rate:         rate,
		Currency:     "USD",
		Status:       models.RoomStatusClean,
		MaxOccupancy: 2,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createTestGuest(t *testing.T, db *gorm.DB, name string) models.Guest {
	t.Helper()

	guest := models.Guest{
		FullName: name,
		Email:    "guest@example.com",
		Phone:    "+1 555 0100",
	}
	require.NoError(t, db.Create(&guest).Error)
	return guest
}

func createTestBooking(t *testing.T, svc *BookingService, roomID, guestID uint, checkIn, checkOut time.Time) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		RoomID:   roomID,
		GuestID:  guestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   2,
	}
	require.NoError(t, svc.Create(booking))
	return booking
}
