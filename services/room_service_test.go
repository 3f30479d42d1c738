package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func TestCreateRoomDefaultsToClean(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	room := models.Room{RoomNumber: "101", Type: "Standard", Rate: 150}
	require.NoError(t, svc.Create(&room))
	assert.Equal(t, models.RoomStatusClean, room.Status)

	err := svc.Create(&models.Room{RoomNumber: "102", Status: "sparkling"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRoomsOrderedByNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	createTestRoom(t, db, "301", 340)
	createTestRoom(t, db, "101", 150)
	createTestRoom(t, db, "201", 220)

	rooms, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, "301", rooms[2].RoomNumber)
}

func TestUpdateRoomStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	room := createTestRoom(t, db, "101", 150)

	require.NoError(t, svc.UpdateStatus(room.ID, models.RoomStatusDirty))

	updated, err := svc.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusDirty, updated.Status)

	err = svc.UpdateStatus(room.ID, "sparkling")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(9999, models.RoomStatusClean)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdateRoomStripsProtectedColumns(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	room := createTestRoom(t, db, "101", 150)

	err := svc.Update(room.ID, map[string]interface{}{
		"id":   42,
		"rate": 175.0,
		"type": "Superior",
	})
	require.NoError(t, err)

	updated, err := svc.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, updated.ID)
	assert.Equal(t, 175.0, updated.Rate)
	assert.Equal(t, "Superior", updated.Type)

	err = svc.Update(room.ID, map[string]interface{}{"status": "sparkling"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
