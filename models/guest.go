package models

import (
	"time"

	"github.com/google/uuid"
)

// VIP tiers. Classification only, no discount engine behind it.
const (
	VIPTierGold     = "gold"
	VIPTierPlatinum = "platinum"
	VIPTierDiamond  = "diamond"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName string `json:"fullName"`
	Email    string `json:"email" gorm:"size:150;index"`
	Phone    string `json:"phone" gorm:"size:50"`
	Address  string `json:"address" gorm:"type:text"`

	Nationality string     `json:"nationality" gorm:"size:64"`
	DateOfBirth *time.Time `json:"dateOfBirth"`

	// Optional classification (gold/platinum/diamond). Empty means regular.
	VIPTier string `json:"vipTier,omitempty" gorm:"column:vip_tier;size:16"`

	// Identification sub-record.
	IDType          string `json:"idType" gorm:"column:id_type;size:32"`
	IDNumber        string `json:"idNumber" gorm:"column:id_number;size:64"`
	IDIssuedCountry string `json:"idIssuedCountry" gorm:"column:id_issued_country;size:64"`

	// Emergency contact sub-record.
	EmergencyContactName  string `json:"emergencyContactName" gorm:"size:255"`
	EmergencyContactPhone string `json:"emergencyContactPhone" gorm:"size:50"`

	Notes string `json:"notes" gorm:"type:text"`

	Documents []GuestDocument `json:"documents" gorm:"foreignKey:GuestID"`
}

// GuestDocument is an uploaded ID document attached to a guest profile.
// Records are append-only; the file itself lives under /uploads.
type GuestDocument struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GuestID uint      `gorm:"index;column:guest_id" json:"guestId"`

	DocumentType string    `json:"documentType" gorm:"size:32"`
	FileName     string    `json:"fileName" gorm:"size:255"`
	FilePath     string    `json:"filePath" gorm:"size:255"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
