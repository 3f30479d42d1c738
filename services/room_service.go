package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if room.Status == "" {
		room.Status = models.RoomStatusClean
	}
	if !models.IsValidRoomStatus(room.Status) {
		return ErrInvalidStatus
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room %d: %w", id, err)
	}
	return &room, nil
}

// UpdateStatus is the only mutation path for room state. Rooms are never
// deleted, only moved between housekeeping statuses.
func (s *RoomService) UpdateStatus(roomID uint, status string) error {
	if !models.IsValidRoomStatus(status) {
		return ErrInvalidStatus
	}

	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d status: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *RoomService) Update(roomID uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	if status, ok := updates["status"].(string); ok && !models.IsValidRoomStatus(status) {
		return ErrInvalidStatus
	}

	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
