package models

import (
	"time"
)

type Donation struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	DonationAmount   int       `json:"donation_amount" gorm:"not null"`
	ImageSlip        string    `json:"image_slip" gorm:"size:500"`
	DonationMethodID uint      `json:"donation_method_id" gorm:"not null;index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	DonationMethod *DonationMethod `json:"donation_method,omitempty" gorm:"foreignKey:DonationMethodID"`
}
