package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ReportTypeDaily   = "daily"
	ReportTypeMonthly = "monthly"
	ReportTypeYearly  = "yearly"
	ReportTypeCustom  = "custom"
)

// FinancialReport is an immutable snapshot appended to the report log.
// Data holds the aggregated metrics as JSON.
type FinancialReport struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Type      string    `gorm:"size:16;index" json:"type"`
	StartDate time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`

	Data datatypes.JSON `gorm:"column:data" json:"data"`

	GeneratedAt time.Time `gorm:"column:generated_at" json:"generatedAt"`
	GeneratedBy string    `gorm:"size:150" json:"generatedBy,omitempty"`
}
