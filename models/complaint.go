package models

import (
	"time"
)

type Complaint struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	ComplainantName    string    `json:"complainant_name" gorm:"not null;size:255"`
	ComplainantEmail   string    `json:"complainant_email" gorm:"not null;size:255"`
	ComplainantAddress string    `json:"complainant_address" gorm:"not null;type:text"`
	ComplainantPhone   string    `json:"complainant_phone" gorm:"not null;size:50"`
	ComplaintDesc      string    `json:"complaint_desc" gorm:"not null;type:text"`
	ActualDate         string    `json:"actual_date" gorm:"not null;size:10"`
	ImagePath          string    `json:"image_path" gorm:"size:500"`
	LocationID         uint      `json:"location_id" gorm:"not null;index"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}
