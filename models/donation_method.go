package models

import (
	"time"
)

type DonationMethod struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	MethodName    string    `json:"method_name" gorm:"not null;size:100"`
	AccountNumber string    `json:"account_number" gorm:"not null;size:50"`
	OwnerName     string    `json:"owner_name" gorm:"not null;size:255"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Donations []Donation `json:"donations,omitempty" gorm:"foreignKey:DonationMethodID"`
}
