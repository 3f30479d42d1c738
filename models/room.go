package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room statuses set by housekeeping / front desk. Rooms are never deleted
// during a session, only moved between statuses.
const (
	RoomStatusClean       = "clean"
	RoomStatusDirty       = "dirty"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusOutOfOrder  = "out-of-order"
)

func IsValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusClean, RoomStatusDirty, RoomStatusOccupied,
		RoomStatusMaintenance, RoomStatusOutOfOrder:
		return true
	}
	return false
}

type Room struct {
	gorm.Model

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Type       string `json:"type" gorm:"size:64"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`

	Rate     float64 `json:"rate"`
	Currency string  `json:"currency" gorm:"size:8;default:USD"`

	Status       string `json:"status" gorm:"size:32;default:clean"`
	MaxOccupancy int    `json:"maxOccupancy" gorm:"column:max_occupancy;default:2"`

	// JSON array of amenity names, e.g. ["wifi","minibar"].
	Amenities datatypes.JSON `json:"amenities" gorm:"column:amenities"`

	Description string `json:"description" gorm:"type:text"`
}
