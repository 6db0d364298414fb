// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ScanModel is the GORM-specific struct for the 'scans' table. Rows are
// insert-only; the check constraint enforces that a persisted risk level is
// always one of the three resolved values.
type ScanModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ImageURL         string     `gorm:"type:text;not null"`
	ImageMediaType   string     `gorm:"type:varchar(100)"`
	Address          string     `gorm:"type:text;not null;index:idx_scans_on_address"`
	Street           string     `gorm:"type:varchar(255)"`
	HouseNumber      string     `gorm:"type:varchar(50)"`
	Latitude         float64    `gorm:"type:decimal(10,8);not null"`
	Longitude        float64    `gorm:"type:decimal(11,8);not null"`
	RiskLevel        string     `gorm:"type:varchar(16);not null;check:risk_level IN ('LOW','MODERATE','HIGH')"`
	ClassifierOutput string     `gorm:"type:text"`
	UploadedBy       uuid.UUID  `gorm:"type:uuid;not null;index:idx_scans_on_uploader"`
	Uploader         *UserModel `gorm:"foreignKey:UploadedBy"`
	CreatedAt        time.Time  `gorm:"index:idx_scans_on_created_at"`
}

// TableName explicitly sets the table name for GORM.
func (ScanModel) TableName() string {
	return "scans"
}
