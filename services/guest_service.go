package services

import (
	"errors"
	"fmt"
	"time"

	"frontdesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.
		Preload("Documents").
		Order("id DESC").
		Find(&guests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.Preload("Documents").First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to retrieve guest %d: %w", id, err)
	}
	return &guest, nil
}

// Update merges the non-zero fields of the payload into the stored profile.
// Guests are never deleted.
func (s *GuestService) Update(guest *models.Guest) error {
	res := s.DB.Model(&models.Guest{}).
		Where("id = ?", guest.ID).
		Updates(guest)
	if res.Error != nil {
		return fmt.Errorf("failed to update guest %d: %w", guest.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		// Updates with an all-zero payload also reports zero rows, so
		// distinguish a genuinely missing guest.
		var count int64
		s.DB.Model(&models.Guest{}).Where("id = ?", guest.ID).Count(&count)
		if count == 0 {
			return ErrGuestNotFound
		}
	}
	return nil
}

// AddDocument appends an uploaded ID document record to the guest profile.
func (s *GuestService) AddDocument(guestID uint, doc *models.GuestDocument) error {
	var count int64
	if err := s.DB.Model(&models.Guest{}).Where("id = ?", guestID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check guest %d: %w", guestID, err)
	}
	if count == 0 {
		return ErrGuestNotFound
	}

	doc.ID = uuid.New()
	doc.GuestID = guestID
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}

	if err := s.DB.Create(doc).Error; err != nil {
		return fmt.Errorf("failed to add guest document: %w", err)
	}
	return nil
}
