package models

import (
	"time"
)

// Location is deduplicated by its natural key (location_name,
// location_address). The composite unique index backs the resolver's
// look-up-before-insert so concurrent identical creates cannot produce two
// rows for the same place.
type Location struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	LocationName    string    `json:"location_name" gorm:"not null;size:255;uniqueIndex:idx_locations_name_address"`
	LocationAddress string    `json:"location_address" gorm:"not null;size:500;uniqueIndex:idx_locations_name_address"`
	Latitude        float64   `json:"latitude" gorm:"not null"`
	Longitude       float64   `json:"longitude" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Activity   *Activity   `json:"activity,omitempty" gorm:"foreignKey:LocationID"`
	Complaints []Complaint `json:"complaints,omitempty" gorm:"foreignKey:LocationID"`
	Reports    []Report    `json:"reports,omitempty" gorm:"foreignKey:LocationID"`
}
