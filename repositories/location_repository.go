package repositories

import (
	"errors"

	"gorm.io/gorm"

	"pesisir-api/models"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// FindOrCreate resolves a free-text place to its canonical Location row.
// The match on (location_name, location_address) is exact and case-sensitive;
// when a row already exists it is returned unchanged and the supplied
// coordinates are discarded. When the insert loses a race against a
// concurrent identical request, the unique index rejects it and the winner is
// looked up instead, so callers never see the conflict.
func (r *LocationRepository) FindOrCreate(name, address string, latitude, longitude float64) (*models.Location, error) {
	var location models.Location
	err := r.db.Where("location_name = ? AND location_address = ?", name, address).
		First(&location).Error
	if err == nil {
		return &location, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	location = models.Location{
		LocationName:    name,
		LocationAddress: address,
		Latitude:        latitude,
		Longitude:       longitude,
	}
	err = r.db.Create(&location).Error
	if err == nil {
		return &location, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// Lost the insert race; return the row that won.
	err = r.db.Where("location_name = ? AND location_address = ?", name, address).
		First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}
