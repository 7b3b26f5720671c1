package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pesisir-api/database"
	"pesisir-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Initialize("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func TestFindOrCreateCreatesNewLocation(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))

	location, err := repo.FindOrCreate("Pantai Parangtritis", "Jl. Pantai Selatan, Bantul", -7.9778, 110.3695)
	require.NoError(t, err)

	assert.NotZero(t, location.ID)
	assert.Equal(t, "Pantai Parangtritis", location.LocationName)
	assert.Equal(t, -7.9778, location.Latitude)
	assert.Equal(t, 110.3695, location.Longitude)
}

func TestFindOrCreateReusesExistingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)

	first, err := repo.FindOrCreate("Pantai A", "Jl. Kenanga", -7.8, 110.4)
	require.NoError(t, err)

	// Same natural key with different coordinates must return the original
	// row unchanged.
	second, err := repo.FindOrCreate("Pantai A", "Jl. Kenanga", 1.0, 2.0)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, -7.8, second.Latitude)
	assert.Equal(t, 110.4, second.Longitude)

	var count int64
	db.Model(&models.Location{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestFindOrCreateIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)

	_, err := repo.FindOrCreate("Pantai A", "Jl. Kenanga", -7.8, 110.4)
	require.NoError(t, err)

	// Matching is literal: a different casing is a different place.
	other, err := repo.FindOrCreate("pantai a", "Jl. Kenanga", -7.8, 110.4)
	require.NoError(t, err)

	var count int64
	db.Model(&models.Location{}).Count(&count)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, "pantai a", other.LocationName)
}

func TestFindOrCreateDistinguishesAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)

	_, err := repo.FindOrCreate("Pantai A", "Jl. Kenanga", -7.8, 110.4)
	require.NoError(t, err)
	_, err = repo.FindOrCreate("Pantai A", "Jl. Melati", -7.8, 110.4)
	require.NoError(t, err)

	var count int64
	db.Model(&models.Location{}).Count(&count)
	assert.Equal(t, int64(2), count)
}
