package models

import (
	"time"
)

type Report struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ReporterName    string    `json:"reporter_name" gorm:"not null;size:255"`
	ReporterEmail   string    `json:"reporter_email" gorm:"not null;size:255"`
	ReporterAddress string    `json:"reporter_address" gorm:"not null;type:text"`
	ReporterPhone   string    `json:"reporter_phone" gorm:"not null;size:50"`
	ReportDesc      string    `json:"report_desc" gorm:"not null;type:text"`
	ImagePath       string    `json:"image_path" gorm:"size:500"`
	LocationID      uint      `json:"location_id" gorm:"not null;index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}
