package models

import (
	"time"
)

type Volunteer struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	VolunteerName    string    `json:"volunteer_name" gorm:"not null;size:255"`
	VolunteerEmail   string    `json:"volunteer_email" gorm:"uniqueIndex;not null;size:255"`
	VolunteerAddress string    `json:"volunteer_address" gorm:"not null;type:text"`
	VolunteerPhone   string    `json:"volunteer_phone" gorm:"not null;size:50"`
	VolunteerGender  string    `json:"volunteer_gender" gorm:"not null;size:20"`
	ReasonDesc       string    `json:"reason_desc" gorm:"not null;type:text"`
	PaymentMethod    string    `json:"payment_method" gorm:"not null;size:100"`
	ImageSlip        string    `json:"image_slip" gorm:"size:500"`
	ActivityID       uint      `json:"activity_id" gorm:"not null;index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Activity *Activity `json:"activity,omitempty" gorm:"foreignKey:ActivityID"`
}
